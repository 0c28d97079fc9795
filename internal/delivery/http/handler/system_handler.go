package handler

import (
	"github.com/evandrarf/adaptive-learning-be/internal/delivery/http/domain"
	"github.com/evandrarf/adaptive-learning-be/internal/delivery/http/entity"
	"github.com/evandrarf/adaptive-learning-be/internal/delivery/http/usecase"
	"github.com/evandrarf/adaptive-learning-be/internal/pkg/apperr"
	"github.com/evandrarf/adaptive-learning-be/internal/pkg/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	SystemHandler interface {
		Root(ctx *fiber.Ctx) error
		Health(ctx *fiber.Ctx) error
		ListModels(ctx *fiber.Ctx) error
	}

	systemHandler struct {
		logger  *logrus.Logger
		student usecase.StudentUsecase
		tutor   usecase.TutorUsecase
	}
)

func NewSystemHandler(logger *logrus.Logger, student usecase.StudentUsecase, tutor usecase.TutorUsecase) SystemHandler {
	return &systemHandler{
		logger:  logger,
		student: student,
		tutor:   tutor,
	}
}

// GET /
func (h *systemHandler) Root(ctx *fiber.Ctx) error {
	return response.NewSuccess(fiber.Map{"status": "online"}).Send(ctx)
}

// GET /api/health
func (h *systemHandler) Health(ctx *fiber.Ctx) error {
	return response.NewSuccess(h.student.Health()).Send(ctx)
}

// GET /api/ai/models
func (h *systemHandler) ListModels(ctx *fiber.Ctx) error {
	models, err := h.tutor.ListModels(ctx.UserContext())
	if err != nil {
		// every listing failure is a 500
		return response.NewFailed(domain.ErrorMessage(err, domain.MODELS_LIST_FAILED), apperr.Wrap(apperr.KindGeneration, "list models", err), h.logger).Send(ctx)
	}

	if models == nil {
		models = []string{}
	}
	return response.NewSuccess(entity.ModelsResponse{Models: models}).Send(ctx)
}
