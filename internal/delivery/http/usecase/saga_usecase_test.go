package usecase

import (
	"context"
	"testing"

	"github.com/evandrarf/adaptive-learning-be/internal/delivery/http/entity"
	"github.com/evandrarf/adaptive-learning-be/internal/pkg/apperr"
	"github.com/evandrarf/adaptive-learning-be/internal/pkg/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sagaRequest(level string) entity.PersonalizeSagaRequest {
	return entity.PersonalizeSagaRequest{
		PythonSkillLevel: level,
		LearningGoals:    []string{"web apps"},
		PreferredPace:    "moderate",
		Interests:        []string{"games"},
	}
}

func assertChaptersValid(t *testing.T, chapters []entity.Chapter) {
	t.Helper()
	require.NotEmpty(t, chapters)
	for i, ch := range chapters {
		assert.Equal(t, i+1, ch.ChapterNumber)
		assert.NotEmpty(t, ch.Title)
		assert.Positive(t, ch.XPReward)
		assert.Positive(t, ch.EstimatedTimeMinutes)
		assert.Contains(t, []string{entity.ChapterVideo, entity.ChapterQuiz, entity.ChapterBossFight}, ch.Type)
		assert.NotEmpty(t, ch.ActionType)
		assert.NotEmpty(t, ch.ActionURL)
		assert.NotNil(t, ch.ActionParams)
	}
}

func TestDefaultJourney(t *testing.T) {
	tests := map[string]int{
		"beginner":     5,
		"intermediate": 4,
		"advanced":     2,
		"wizard":       2,
	}
	for level, want := range tests {
		t.Run(level, func(t *testing.T) {
			chapters := DefaultJourney(level)
			assert.Len(t, chapters, want)
			assertChaptersValid(t, chapters)
		})
	}
}

func TestDefaultJourney_FreshCopies(t *testing.T) {
	a := DefaultJourney("beginner")
	a[0].Title = "changed"
	a[0].ActionParams["highlight"] = "changed"

	b := DefaultJourney("beginner")
	assert.Equal(t, "The Awakening", b[0].Title)
	assert.Equal(t, "python-basics", b[0].ActionParams["highlight"])
}

func TestPersonalizeSaga_Parsed(t *testing.T) {
	raw := "```json\n" + `[
  {"chapter_number": 7, "title": "Start", "subtitle": "Basics", "xp_reward": 400, "estimated_time_minutes": 40, "type": "video"},
  {"title": "Quiz Time", "type": "mystery", "xp_reward": "650"}
]` + "\n```"
	u, p := newCourse(text(raw))

	chapters, err := u.PersonalizeSaga(context.Background(), sagaRequest("beginner"))
	require.NoError(t, err)
	assertChaptersValid(t, chapters)
	require.Len(t, chapters, 2)

	assert.Equal(t, "Start", chapters[0].Title)
	assert.Equal(t, 400, chapters[0].XPReward)
	assert.Equal(t, entity.ChapterVideo, chapters[1].Type)
	assert.Equal(t, 650, chapters[1].XPReward)
	assert.Equal(t, 30, chapters[1].EstimatedTimeMinutes)
	assert.Equal(t, "/dashboard/courses", chapters[1].ActionURL)

	assert.Contains(t, p.LastPrompt(), "Learning Style: interactive")
}

func TestPersonalizeSaga_FallsBackToDefaults(t *testing.T) {
	tests := []struct {
		name string
		resp llm.MockResponse
	}{
		{"unparseable", text("Here is your saga!")},
		{"empty array", text("[]")},
		{"empty response", text("")},
		{"transport error", fail(503)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, _ := newCourse(tt.resp)

			chapters, err := u.PersonalizeSaga(context.Background(), sagaRequest("Intermediate"))
			require.NoError(t, err)
			assertChaptersValid(t, chapters)
			assert.Equal(t, DefaultJourney("intermediate"), chapters)
		})
	}
}

func TestPersonalizeSaga_ErrorsSurface(t *testing.T) {
	u, _ := newCourse(fail(429))

	_, err := u.PersonalizeSaga(context.Background(), sagaRequest("beginner"))
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindQuotaExceeded))

	client := llm.NewClient(context.Background(), llm.Config{}, quietLogger())
	u = NewCourseUsecase(CourseConfig{Generator: client, Log: quietLogger()})

	_, err = u.PersonalizeSaga(context.Background(), sagaRequest("beginner"))
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindConfiguration))
}
