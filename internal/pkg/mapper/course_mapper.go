package mapper

import (
	"fmt"
	"strings"

	"github.com/evandrarf/adaptive-learning-be/internal/delivery/http/entity"
)

var paceModuleCount = map[entity.Pace]int{
	entity.PaceBlitz:    3,
	entity.PaceModerate: 5,
	entity.PaceDeep:     8,
}

const defaultModuleCount = 5

// ModuleCount is the number of modules a fallback course has for pace.
func ModuleCount(pace string) int {
	if n, ok := paceModuleCount[entity.Pace(strings.ToLower(pace))]; ok {
		return n
	}
	return defaultModuleCount
}

// CourseFromRaw converts a decoded JSON object into a course without filling
// any defaults.
func CourseFromRaw(raw map[string]any) entity.Course {
	c := entity.Course{
		Title:       stringValue(raw["title"]),
		Description: stringValue(raw["description"]),
		Difficulty:  strings.ToLower(stringValue(raw["difficulty"])),
	}
	if u := stringValue(raw["thumbnail_url"]); u != "" {
		c.ThumbnailURL = &u
	}

	for _, item := range arrayValue(raw["modules"]) {
		obj := objectValue(item)
		if obj == nil {
			continue
		}
		m := entity.Module{
			Title:       stringValue(obj["title"]),
			Description: stringValue(obj["description"]),
		}
		for _, l := range arrayValue(obj["lessons"]) {
			lobj := objectValue(l)
			if lobj == nil {
				continue
			}
			m.Lessons = append(m.Lessons, entity.Lesson{
				Title:   stringValue(lobj["title"]),
				Content: stringValue(lobj["content"]),
			})
		}
		c.Modules = append(c.Modules, m)
	}
	return c
}

// FallbackCourse is the deterministic course served when generation output
// cannot be used.
func FallbackCourse(topic, pace string) entity.Course {
	return RepairCourse(entity.Course{}, topic, pace)
}

// RepairCourse fills missing course fields and guarantees every module has a
// title, a description and at least one lesson. A course with no modules gets
// the fallback module list for pace.
func RepairCourse(c entity.Course, topic, pace string) entity.Course {
	if pace == "" {
		pace = string(entity.PaceModerate)
	}

	if c.Title == "" {
		c.Title = fmt.Sprintf("Complete Guide to %s", topic)
	}
	if c.Description == "" {
		c.Description = fmt.Sprintf("A comprehensive course covering all aspects of %s, designed for %s pace learning.", topic, pace)
	}
	switch c.Difficulty {
	case entity.DifficultyBeginner, entity.DifficultyIntermediate, entity.DifficultyAdvanced:
	default:
		c.Difficulty = entity.DifficultyIntermediate
	}

	if len(c.Modules) == 0 {
		c.Modules = make([]entity.Module, ModuleCount(pace))
	}

	modules := make([]entity.Module, len(c.Modules))
	for i, m := range c.Modules {
		modules[i] = repairModule(m, i+1, topic)
	}
	c.Modules = modules

	return c
}

func repairModule(m entity.Module, n int, topic string) entity.Module {
	if m.Title == "" {
		if n == 1 {
			m.Title = fmt.Sprintf("Module %d: %s Fundamentals", n, topic)
		} else {
			m.Title = fmt.Sprintf("Module %d: Advanced %s", n, topic)
		}
	}
	if m.Description == "" {
		m.Description = fmt.Sprintf("Learn the key concepts of %s", topic)
	}

	lessons := make([]entity.Lesson, 0, len(m.Lessons))
	for j, l := range m.Lessons {
		if l.Title == "" && l.Content == "" {
			continue
		}
		if l.Title == "" {
			l.Title = fmt.Sprintf("Lesson %d.%d", n, j+1)
		}
		if l.Content == "" {
			l.Content = defaultLessonContent(topic)
		}
		lessons = append(lessons, l)
	}
	if len(lessons) == 0 {
		lessons = append(lessons, entity.Lesson{
			Title:   fmt.Sprintf("Lesson %d.1: Introduction", n),
			Content: defaultLessonContent(topic),
		})
	}
	m.Lessons = lessons

	return m
}

func defaultLessonContent(topic string) string {
	return fmt.Sprintf("This lesson covers the fundamentals of %s. You'll learn the core concepts and how to apply them in practice.", topic)
}
