package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/evandrarf/adaptive-learning-be/internal/delivery/http/entity"
	"github.com/evandrarf/adaptive-learning-be/internal/pkg/apperr"
	"github.com/evandrarf/adaptive-learning-be/internal/pkg/jsonx"
	"github.com/evandrarf/adaptive-learning-be/internal/pkg/mapper"
	"github.com/sirupsen/logrus"
)

type TutorUsecase interface {
	Explain(ctx context.Context, topic string, struggleScore int) (string, error)
	GenerateContent(ctx context.Context, topic string, difficulty string) (string, error)
	GenerateLesson(ctx context.Context, topic string, mode entity.LessonMode) (string, error)
	StudyTool(ctx context.Context, req entity.StudyToolRequest) (*entity.StudyToolResponse, error)
	ListModels(ctx context.Context) ([]string, error)
}

type TutorConfig struct {
	Generator ContentGenerator
	Models    ModelLister
	Log       *logrus.Logger
}

type tutorUsecase struct {
	cfg   TutorConfig
	tutor *AdaptiveTutor
}

func NewTutorUsecase(cfg TutorConfig) TutorUsecase {
	if cfg.Log == nil {
		cfg.Log = logrus.New()
	}
	u := &tutorUsecase{cfg: cfg}
	u.tutor = NewAdaptiveTutor(u)
	return u
}

func (u *tutorUsecase) Explain(ctx context.Context, topic string, struggleScore int) (string, error) {
	return u.tutor.Explain(ctx, strings.TrimSpace(topic), struggleScore)
}

func (u *tutorUsecase) GenerateContent(ctx context.Context, topic string, difficulty string) (string, error) {
	return u.cfg.Generator.GenerateContent(ctx, contentPrompt(strings.TrimSpace(topic), difficulty))
}

func (u *tutorUsecase) GenerateLesson(ctx context.Context, topic string, mode entity.LessonMode) (string, error) {
	mode = entity.LessonMode(strings.ToLower(strings.TrimSpace(string(mode))))
	return u.cfg.Generator.GenerateContent(ctx, lessonPrompt(topic, mode))
}

func (u *tutorUsecase) ListModels(ctx context.Context) ([]string, error) {
	if u.cfg.Models == nil {
		return nil, apperr.Configuration("model listing is not available")
	}
	return u.cfg.Models.ListModels(ctx)
}

// StudyTool dispatches one study-room tool. Required fields are checked
// before any remote call is made.
func (u *tutorUsecase) StudyTool(ctx context.Context, req entity.StudyToolRequest) (*entity.StudyToolResponse, error) {
	mode := entity.ToolMode(strings.ToLower(strings.TrimSpace(req.ToolType)))
	if mode == "" {
		mode = entity.ToolExplain
	}
	topic := strings.TrimSpace(req.Topic)

	u.cfg.Log.WithFields(logrus.Fields{
		"tool_type": mode,
		"topic":     truncateRunes(topic, 80),
	}).Debug("study tool request")

	switch mode {
	case entity.ToolSummarize:
		if strings.TrimSpace(req.InputText) == "" {
			return nil, apperr.InvalidRequest("summarizer requires input_text")
		}
		return u.textTool(ctx, mode, summarizePrompt(req.InputText, req.Detail))

	case entity.ToolQuiz:
		if topic == "" {
			return nil, apperr.InvalidRequest("quiz generator requires a topic")
		}
		n := defaultNumQuestions
		if req.NumQuestions != nil && *req.NumQuestions > 0 {
			n = *req.NumQuestions
		}
		return u.quizTool(ctx, quizPrompt(topic, n, req.Level))

	case entity.ToolSocratic:
		if topic == "" {
			return nil, apperr.InvalidRequest("socratic mode requires a topic or question")
		}
		return u.textTool(ctx, mode, socraticPrompt(topic))

	case entity.ToolVisualize:
		if topic == "" {
			return nil, apperr.InvalidRequest("visualizer requires a topic")
		}
		diagram := strings.ToLower(strings.TrimSpace(req.DiagramType))
		if diagram == "" {
			diagram = defaultDiagramType
		}
		return u.textTool(ctx, mode, visualizePrompt(truncateRunes(topic, maxVisualizeTopic), diagram))

	case entity.ToolExplain:
		if topic == "" {
			return nil, apperr.InvalidRequest("explain mode requires a topic")
		}
		text, err := u.GenerateLesson(ctx, topic, modeForDifficulty(req.Difficulty))
		if err != nil {
			return nil, err
		}
		return contentResult(mode, text), nil

	default:
		return nil, apperr.InvalidRequest("unsupported tool_type %q", req.ToolType)
	}
}

// modeForDifficulty maps the study-room difficulty slider onto a lesson mode.
func modeForDifficulty(difficulty *int) entity.LessonMode {
	switch {
	case difficulty == nil:
		return entity.LessonModeStandard
	case *difficulty <= 30:
		return entity.LessonModeSimplify
	case *difficulty <= 70:
		return entity.LessonModeStandard
	default:
		return entity.LessonModeDeepDive
	}
}

func (u *tutorUsecase) textTool(ctx context.Context, mode entity.ToolMode, prompt string) (*entity.StudyToolResponse, error) {
	text, err := u.cfg.Generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return contentResult(mode, text), nil
}

func (u *tutorUsecase) quizTool(ctx context.Context, prompt string) (*entity.StudyToolResponse, error) {
	raw, err := u.cfg.Generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	arr, err := jsonx.DecodeArray(raw)
	if err != nil {
		u.cfg.Log.WithField("raw_len", len(raw)).Warn("quiz output is not a JSON array")
		if errors.Is(err, jsonx.ErrNotArray) {
			return nil, apperr.MalformedUpstream("quiz JSON was not an array", err)
		}
		return nil, apperr.MalformedUpstream("quiz output is not valid JSON", err)
	}

	items, err := mapper.QuizItems(arr)
	if err != nil {
		return nil, apperr.MalformedUpstream("quiz items are malformed", err)
	}

	return &entity.StudyToolResponse{Mode: entity.ToolQuiz, Quiz: items}, nil
}

func contentResult(mode entity.ToolMode, text string) *entity.StudyToolResponse {
	return &entity.StudyToolResponse{Mode: mode, Content: &text}
}
