package handler

import (
	"github.com/evandrarf/adaptive-learning-be/internal/delivery/http/usecase"
	"github.com/evandrarf/adaptive-learning-be/internal/pkg/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	StudentHandler interface {
		Status(ctx *fiber.Ctx) error
	}

	studentHandler struct {
		logger  *logrus.Logger
		usecase usecase.StudentUsecase
	}
)

func NewStudentHandler(logger *logrus.Logger, usecase usecase.StudentUsecase) StudentHandler {
	return &studentHandler{
		logger:  logger,
		usecase: usecase,
	}
}

// GET /api/student/status
func (h *studentHandler) Status(ctx *fiber.Ctx) error {
	return response.NewSuccess(h.usecase.Status(ctx.UserContext())).Send(ctx)
}
