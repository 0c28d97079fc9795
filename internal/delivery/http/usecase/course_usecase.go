package usecase

import (
	"context"
	"strings"

	"github.com/evandrarf/adaptive-learning-be/internal/delivery/http/entity"
	"github.com/evandrarf/adaptive-learning-be/internal/pkg/apperr"
	"github.com/evandrarf/adaptive-learning-be/internal/pkg/jsonx"
	"github.com/evandrarf/adaptive-learning-be/internal/pkg/mapper"
	"github.com/sirupsen/logrus"
)

type CourseUsecase interface {
	GenerateCourse(ctx context.Context, req entity.GenerateCourseRequest) (*entity.Course, error)
	PersonalizeSaga(ctx context.Context, req entity.PersonalizeSagaRequest) ([]entity.Chapter, error)
}

type CourseConfig struct {
	Generator ContentGenerator
	Log       *logrus.Logger
}

type courseUsecase struct {
	cfg CourseConfig
}

func NewCourseUsecase(cfg CourseConfig) CourseUsecase {
	if cfg.Log == nil {
		cfg.Log = logrus.New()
	}
	return &courseUsecase{cfg: cfg}
}

// GenerateCourse always returns a structurally valid course once the remote
// call succeeds or returns unusable output. Quota, configuration and transport
// failures are returned to the caller.
func (u *courseUsecase) GenerateCourse(ctx context.Context, req entity.GenerateCourseRequest) (*entity.Course, error) {
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		return nil, apperr.InvalidRequest("Topic is required")
	}
	pace := strings.ToLower(strings.TrimSpace(req.Pace))
	if pace == "" {
		pace = string(entity.PaceModerate)
	}

	log := u.cfg.Log.WithFields(logrus.Fields{"topic": topic, "pace": pace})
	if req.StudentID != nil {
		log = log.WithField("student_id", *req.StudentID)
	}

	raw, err := u.cfg.Generator.GenerateContent(ctx, coursePrompt(topic, pace))
	if err != nil {
		if !recoverable(err) {
			return nil, err
		}
		log.WithError(err).Warn("course generation returned no usable output, serving fallback course")
		raw = ""
	}

	var course entity.Course
	if parsed, ok := jsonx.ExtractObject[map[string]any](raw); ok {
		course = mapper.CourseFromRaw(parsed)
	} else if raw != "" {
		log.WithField("raw_len", len(raw)).Warn("course output is not valid JSON, serving fallback course")
	}

	course = mapper.RepairCourse(course, topic, pace)
	return &course, nil
}

// PersonalizeSaga builds a chapter journey for the student profile. Only
// configuration and quota failures are surfaced; anything else yields the
// default journey for the skill level.
func (u *courseUsecase) PersonalizeSaga(ctx context.Context, req entity.PersonalizeSagaRequest) ([]entity.Chapter, error) {
	if strings.TrimSpace(req.LearningStyle) == "" {
		req.LearningStyle = "interactive"
	}
	level := strings.ToLower(strings.TrimSpace(req.PythonSkillLevel))

	log := u.cfg.Log.WithFields(logrus.Fields{"skill_level": level, "pace": req.PreferredPace})

	raw, err := u.cfg.Generator.GenerateContent(ctx, sagaPrompt(req))
	if err != nil {
		switch apperr.KindOf(err) {
		case apperr.KindConfiguration, apperr.KindQuotaExceeded:
			return nil, err
		}
		log.WithError(err).Warn("saga generation failed, serving default journey")
		return mapper.RepairChapters(DefaultJourney(level)), nil
	}

	var chapters []entity.Chapter
	if parsed, ok := jsonx.ExtractArray[[]any](raw); ok {
		chapters = mapper.ChaptersFromRaw(parsed)
	}
	if len(chapters) == 0 {
		log.WithField("raw_len", len(raw)).Warn("saga output has no usable chapters, serving default journey")
		chapters = DefaultJourney(level)
	}

	return mapper.RepairChapters(chapters), nil
}

// recoverable reports whether a generation error should be answered with a
// fallback object rather than surfaced.
func recoverable(err error) bool {
	switch apperr.KindOf(err) {
	case apperr.KindEmptyResponse, apperr.KindMalformedUpstream:
		return true
	}
	return false
}
