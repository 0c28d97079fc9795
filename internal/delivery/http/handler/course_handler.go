package handler

import (
	"github.com/evandrarf/adaptive-learning-be/internal/delivery/http/domain"
	"github.com/evandrarf/adaptive-learning-be/internal/delivery/http/entity"
	"github.com/evandrarf/adaptive-learning-be/internal/delivery/http/usecase"
	"github.com/evandrarf/adaptive-learning-be/internal/pkg/response"
	"github.com/evandrarf/adaptive-learning-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	CourseHandler interface {
		GenerateCourse(ctx *fiber.Ctx) error
		PersonalizeSaga(ctx *fiber.Ctx) error
	}

	courseHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.CourseUsecase
	}
)

func NewCourseHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.CourseUsecase) CourseHandler {
	return &courseHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /api/ai/generate-course
func (h *courseHandler) GenerateCourse(ctx *fiber.Ctx) error {
	var req entity.GenerateCourseRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.COURSE_TOPIC_REQUIRED, err, h.logger).Send(ctx)
	}

	course, err := h.usecase.GenerateCourse(ctx.UserContext(), req)
	if err != nil {
		return response.NewFailed(domain.ErrorMessage(err, domain.COURSE_GENERATE_FAILED), err, h.logger).Send(ctx)
	}

	return response.NewSuccess(entity.CourseResponse{Course: *course}).Send(ctx)
}

// POST /api/ai/personalize-saga
func (h *courseHandler) PersonalizeSaga(ctx *fiber.Ctx) error {
	var req entity.PersonalizeSagaRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.INVALID_REQUEST_BODY, err, h.logger).Send(ctx)
	}

	chapters, err := h.usecase.PersonalizeSaga(ctx.UserContext(), req)
	if err != nil {
		return response.NewFailed(domain.ErrorMessage(err, domain.SAGA_GENERATE_FAILED), err, h.logger).Send(ctx)
	}

	return response.NewSuccess(entity.PersonalizeSagaResponse{Chapters: chapters}).Send(ctx)
}
