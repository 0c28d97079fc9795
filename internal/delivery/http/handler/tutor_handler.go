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
	TutorHandler interface {
		Explain(ctx *fiber.Ctx) error
		GenerateContent(ctx *fiber.Ctx) error
		GenerateLesson(ctx *fiber.Ctx) error
		StudyTool(ctx *fiber.Ctx) error
	}

	tutorHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.TutorUsecase
	}
)

func NewTutorHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.TutorUsecase) TutorHandler {
	return &tutorHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /api/ai/explain
func (h *tutorHandler) Explain(ctx *fiber.Ctx) error {
	var req entity.ExplainRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.INVALID_REQUEST_BODY, err, h.logger).Send(ctx)
	}

	text, err := h.usecase.Explain(ctx.UserContext(), req.Topic, *req.StruggleScore)
	if err != nil {
		return response.NewFailed(domain.ErrorMessage(err, domain.EXPLAIN_FAILED), err, h.logger).Send(ctx)
	}

	return response.NewSuccess(entity.ExplainResponse{Explanation: text}).Send(ctx)
}

// POST /api/generate
func (h *tutorHandler) GenerateContent(ctx *fiber.Ctx) error {
	var req entity.GenerateContentRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.INVALID_REQUEST_BODY, err, h.logger).Send(ctx)
	}

	text, err := h.usecase.GenerateContent(ctx.UserContext(), req.Topic, req.Difficulty)
	if err != nil {
		return response.NewFailed(domain.ErrorMessage(err, domain.CONTENT_GENERATE_FAILED), err, h.logger).Send(ctx)
	}

	return response.NewSuccess(entity.ContentResponse{Content: text}).Send(ctx)
}

// POST /api/ai/generate
func (h *tutorHandler) GenerateLesson(ctx *fiber.Ctx) error {
	var req entity.GenerateLessonRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.INVALID_REQUEST_BODY, err, h.logger).Send(ctx)
	}

	text, err := h.usecase.GenerateLesson(ctx.UserContext(), req.Topic, entity.LessonMode(req.Mode))
	if err != nil {
		return response.NewFailed(domain.ErrorMessage(err, domain.LESSON_GENERATE_FAILED), err, h.logger).Send(ctx)
	}

	return response.NewSuccess(entity.ContentResponse{Content: text}).Send(ctx)
}

// POST /api/ai/study-tool
func (h *tutorHandler) StudyTool(ctx *fiber.Ctx) error {
	var req entity.StudyToolRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return response.NewFailed(domain.INVALID_REQUEST_BODY, err, h.logger).Send(ctx)
	}

	result, err := h.usecase.StudyTool(ctx.UserContext(), req)
	if err != nil {
		return response.NewFailed(domain.ErrorMessage(err, domain.STUDY_TOOL_FAILED), err, h.logger).Send(ctx)
	}

	return response.NewSuccess(result).Send(ctx)
}
