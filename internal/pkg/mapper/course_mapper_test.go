package mapper

import (
	"testing"

	"github.com/evandrarf/adaptive-learning-be/internal/delivery/http/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertCourseValid(t *testing.T, c entity.Course) {
	t.Helper()
	assert.NotEmpty(t, c.Title)
	assert.NotEmpty(t, c.Description)
	assert.Contains(t, []string{"beginner", "intermediate", "advanced"}, c.Difficulty)
	require.NotEmpty(t, c.Modules)
	for _, m := range c.Modules {
		assert.NotEmpty(t, m.Title)
		assert.NotEmpty(t, m.Description)
		require.NotEmpty(t, m.Lessons)
		for _, l := range m.Lessons {
			assert.NotEmpty(t, l.Title)
			assert.NotEmpty(t, l.Content)
		}
	}
}

func TestModuleCount(t *testing.T) {
	assert.Equal(t, 3, ModuleCount("blitz"))
	assert.Equal(t, 5, ModuleCount("moderate"))
	assert.Equal(t, 8, ModuleCount("deep"))
	assert.Equal(t, 8, ModuleCount("DEEP"))
	assert.Equal(t, 5, ModuleCount("leisurely"))
	assert.Equal(t, 5, ModuleCount(""))
}

func TestFallbackCourse(t *testing.T) {
	for pace, n := range map[string]int{"blitz": 3, "moderate": 5, "deep": 8, "": 5} {
		t.Run(pace, func(t *testing.T) {
			c := FallbackCourse("Go", pace)
			assertCourseValid(t, c)
			assert.Len(t, c.Modules, n)
			assert.Equal(t, "Complete Guide to Go", c.Title)
			assert.Equal(t, "intermediate", c.Difficulty)
			assert.Nil(t, c.ThumbnailURL)
			assert.Equal(t, "Module 1: Go Fundamentals", c.Modules[0].Title)
			assert.Equal(t, "Module 2: Advanced Go", c.Modules[1].Title)
			assert.Equal(t, "Lesson 2.1: Introduction", c.Modules[1].Lessons[0].Title)
		})
	}
}

func TestCourseFromRaw_PartialIsRepaired(t *testing.T) {
	raw := map[string]any{
		"title":      "Rust for Gophers",
		"difficulty": "Expert",
		"modules": []any{
			map[string]any{
				"title": "Ownership",
				"lessons": []any{
					map[string]any{"title": "Borrowing", "content": "References..."},
					map[string]any{},
					map[string]any{"content": "Lifetimes matter"},
				},
			},
			map[string]any{"description": "no title, no lessons"},
			"garbage",
		},
	}

	c := RepairCourse(CourseFromRaw(raw), "Rust", "blitz")
	assertCourseValid(t, c)

	assert.Equal(t, "Rust for Gophers", c.Title)
	assert.Equal(t, "intermediate", c.Difficulty)
	require.Len(t, c.Modules, 2)

	assert.Equal(t, "Ownership", c.Modules[0].Title)
	require.Len(t, c.Modules[0].Lessons, 2)
	assert.Equal(t, "Borrowing", c.Modules[0].Lessons[0].Title)
	assert.Equal(t, "Lesson 1.3", c.Modules[0].Lessons[1].Title)

	assert.Equal(t, "Module 2: Advanced Rust", c.Modules[1].Title)
	assert.Equal(t, "no title, no lessons", c.Modules[1].Description)
	assert.Len(t, c.Modules[1].Lessons, 1)
}

func TestCourseFromRaw_NoModulesUsesPaceFallback(t *testing.T) {
	c := RepairCourse(CourseFromRaw(map[string]any{"title": "X", "modules": "none"}), "X", "deep")
	assertCourseValid(t, c)
	assert.Len(t, c.Modules, 8)
}

func TestCourseFromRaw_Thumbnail(t *testing.T) {
	c := CourseFromRaw(map[string]any{"thumbnail_url": "https://img.example/x.png"})
	require.NotNil(t, c.ThumbnailURL)
	assert.Equal(t, "https://img.example/x.png", *c.ThumbnailURL)

	c = CourseFromRaw(map[string]any{"thumbnail_url": nil})
	assert.Nil(t, c.ThumbnailURL)
}
