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

func newCourse(responses ...llm.MockResponse) (CourseUsecase, *llm.MockProvider) {
	client, p := mockClient(responses...)
	return NewCourseUsecase(CourseConfig{Generator: client, Log: quietLogger()}), p
}

func assertCourseValid(t *testing.T, c *entity.Course) {
	t.Helper()
	require.NotNil(t, c)
	assert.NotEmpty(t, c.Title)
	assert.NotEmpty(t, c.Description)
	assert.Contains(t, []string{entity.DifficultyBeginner, entity.DifficultyIntermediate, entity.DifficultyAdvanced}, c.Difficulty)
	require.NotEmpty(t, c.Modules)
	for _, m := range c.Modules {
		assert.NotEmpty(t, m.Title)
		assert.NotEmpty(t, m.Description)
		assert.NotEmpty(t, m.Lessons)
	}
}

func TestGenerateCourse_RequiresTopic(t *testing.T) {
	u, p := newCourse()

	_, err := u.GenerateCourse(context.Background(), entity.GenerateCourseRequest{Topic: "  "})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindInvalidRequest))
	assert.Zero(t, p.CallCount())
}

func TestGenerateCourse_FallbackModuleCounts(t *testing.T) {
	tests := []struct {
		pace string
		want int
	}{
		{"blitz", 3},
		{"moderate", 5},
		{"deep", 8},
		{"", 5},
		{"glacial", 5},
	}
	for _, tt := range tests {
		t.Run(tt.pace, func(t *testing.T) {
			u, _ := newCourse(text("I cannot produce JSON today."))

			c, err := u.GenerateCourse(context.Background(), entity.GenerateCourseRequest{Topic: "Rust", Pace: tt.pace})
			require.NoError(t, err)
			assertCourseValid(t, c)
			assert.Len(t, c.Modules, tt.want)
			assert.Equal(t, "Complete Guide to Rust", c.Title)
			assert.Equal(t, "Module 1: Rust Fundamentals", c.Modules[0].Title)
		})
	}
}

func TestGenerateCourse_EmptyResponseFallsBack(t *testing.T) {
	u, _ := newCourse(text("   "))

	c, err := u.GenerateCourse(context.Background(), entity.GenerateCourseRequest{Topic: "Go", Pace: "blitz"})
	require.NoError(t, err)
	assertCourseValid(t, c)
	assert.Len(t, c.Modules, 3)
}

func TestGenerateCourse_ParsedIsRepaired(t *testing.T) {
	raw := "```json\n" + `{
  "title": "Go in Practice",
  "difficulty": "expert",
  "modules": [
    {"title": "Goroutines", "lessons": [{"title": "Spawning", "content": "go f()"}]},
    {"description": "no title", "lessons": []}
  ]
}` + "\n```"
	studentID := "stu-9"
	u, p := newCourse(text(raw))

	c, err := u.GenerateCourse(context.Background(), entity.GenerateCourseRequest{Topic: "Go", Pace: "Deep", StudentID: &studentID})
	require.NoError(t, err)
	assertCourseValid(t, c)

	assert.Equal(t, "Go in Practice", c.Title)
	assert.Equal(t, entity.DifficultyIntermediate, c.Difficulty)
	require.Len(t, c.Modules, 2)
	assert.Equal(t, "Goroutines", c.Modules[0].Title)
	assert.Equal(t, "Module 2: Advanced Go", c.Modules[1].Title)
	assert.Equal(t, "no title", c.Modules[1].Description)
	assert.Contains(t, p.LastPrompt(), "Student Pace: deep")
}

func TestGenerateCourse_ErrorsSurface(t *testing.T) {
	tests := []struct {
		name   string
		status int
		kind   apperr.Kind
	}{
		{"quota", 429, apperr.KindQuotaExceeded},
		{"transport", 503, apperr.KindGeneration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, _ := newCourse(fail(tt.status))

			c, err := u.GenerateCourse(context.Background(), entity.GenerateCourseRequest{Topic: "Go"})
			require.Error(t, err)
			assert.Nil(t, c)
			assert.True(t, apperr.Is(err, tt.kind))
		})
	}
}

func TestGenerateCourse_NotConfigured(t *testing.T) {
	client := llm.NewClient(context.Background(), llm.Config{}, quietLogger())
	u := NewCourseUsecase(CourseConfig{Generator: client, Log: quietLogger()})

	_, err := u.GenerateCourse(context.Background(), entity.GenerateCourseRequest{Topic: "Go"})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindConfiguration))
}
