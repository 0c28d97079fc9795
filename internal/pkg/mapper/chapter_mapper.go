package mapper

import (
	"fmt"

	"github.com/evandrarf/adaptive-learning-be/internal/delivery/http/entity"
)

const (
	defaultXPReward      = 500
	defaultChapterTime   = 30
	defaultActionType    = "course"
	defaultActionURL     = "/dashboard/courses"
	defaultChapterType   = entity.ChapterVideo
	defaultChapterPrefix = "Chapter"
)

// ChaptersFromRaw converts a decoded JSON array into chapters. Elements that
// are not objects are dropped.
func ChaptersFromRaw(raw []any) []entity.Chapter {
	chapters := make([]entity.Chapter, 0, len(raw))
	for _, item := range raw {
		obj := objectValue(item)
		if obj == nil {
			continue
		}

		ch := entity.Chapter{
			Title:        stringValue(obj["title"]),
			Subtitle:     stringValue(obj["subtitle"]),
			Type:         stringValue(obj["type"]),
			ActionType:   stringValue(obj["action_type"]),
			ActionURL:    stringValue(obj["action_url"]),
			ActionParams: objectValue(obj["action_params"]),
		}
		ch.ChapterNumber, _ = intValue(obj["chapter_number"])
		ch.XPReward, _ = intValue(obj["xp_reward"])
		ch.EstimatedTimeMinutes, _ = intValue(obj["estimated_time_minutes"])

		chapters = append(chapters, ch)
	}
	return chapters
}

// RepairChapters renumbers chapters by position and fills every missing field
// with its default. It is applied to parsed and fallback chapters alike.
func RepairChapters(chapters []entity.Chapter) []entity.Chapter {
	out := make([]entity.Chapter, len(chapters))
	for i, ch := range chapters {
		n := i + 1
		ch.ChapterNumber = n

		if ch.Title == "" {
			ch.Title = fmt.Sprintf("%s %d", defaultChapterPrefix, n)
		}
		if ch.XPReward <= 0 {
			ch.XPReward = defaultXPReward
		}
		if ch.EstimatedTimeMinutes <= 0 {
			ch.EstimatedTimeMinutes = defaultChapterTime
		}
		switch ch.Type {
		case entity.ChapterVideo, entity.ChapterQuiz, entity.ChapterBossFight:
		default:
			ch.Type = defaultChapterType
		}
		if ch.ActionType == "" {
			ch.ActionType = defaultActionType
		}
		if ch.ActionURL == "" {
			ch.ActionURL = defaultActionURL
		}
		if ch.ActionParams == nil {
			ch.ActionParams = map[string]any{}
		}

		out[i] = ch
	}
	return out
}
