package usecase

import (
	"context"

	"github.com/evandrarf/adaptive-learning-be/internal/delivery/http/entity"
)

type LessonGenerator interface {
	GenerateLesson(ctx context.Context, topic string, mode entity.LessonMode) (string, error)
}

// AdaptiveTutor pitches an explanation according to how much the student is
// struggling.
type AdaptiveTutor struct {
	lessons LessonGenerator
}

func NewAdaptiveTutor(lessons LessonGenerator) *AdaptiveTutor {
	return &AdaptiveTutor{lessons: lessons}
}

// SelectMode maps a struggle score in [0,100] to a lesson mode. Higher scores
// mean the student is struggling more.
func SelectMode(struggleScore int) entity.LessonMode {
	switch {
	case struggleScore >= 70:
		return entity.LessonModeSimplify
	case struggleScore <= 30:
		return entity.LessonModeDeepDive
	default:
		return entity.LessonModeStandard
	}
}

func (t *AdaptiveTutor) Explain(ctx context.Context, topic string, struggleScore int) (string, error) {
	return t.lessons.GenerateLesson(ctx, topic, SelectMode(struggleScore))
}
