package usecase

import "github.com/evandrarf/adaptive-learning-be/internal/delivery/http/entity"

// DefaultJourney returns a fresh copy of the canned journey for a skill level.
// Levels other than beginner and intermediate get the advanced journey.
func DefaultJourney(level string) []entity.Chapter {
	switch level {
	case entity.DifficultyBeginner:
		return []entity.Chapter{
			{
				ChapterNumber: 1, Title: "The Awakening", Subtitle: "Python Basics: Variables and Data Types",
				XPReward: 500, EstimatedTimeMinutes: 45, Type: entity.ChapterVideo,
				ActionType: "course", ActionURL: "/dashboard/courses",
				ActionParams: map[string]any{"highlight": "python-basics"},
			},
			{
				ChapterNumber: 2, Title: "The First Trial", Subtitle: "Control Flow: If Statements and Loops",
				XPReward: 750, EstimatedTimeMinutes: 60, Type: entity.ChapterQuiz,
				ActionType: "quiz", ActionURL: "/dashboard/study",
				ActionParams: map[string]any{"mode": "quiz", "topic": "Control Flow", "difficulty": "standard"},
			},
			{
				ChapterNumber: 3, Title: "The Collection Quest", Subtitle: "Lists, Tuples, and Dictionaries",
				XPReward: 1000, EstimatedTimeMinutes: 75, Type: entity.ChapterVideo,
				ActionType: "course", ActionURL: "/dashboard/courses",
				ActionParams: map[string]any{"highlight": "python-data-structures"},
			},
			{
				ChapterNumber: 4, Title: "Boss Battle: Functions", Subtitle: "Creating and Using Functions",
				XPReward: 1250, EstimatedTimeMinutes: 90, Type: entity.ChapterBossFight,
				ActionType: "study", ActionURL: "/dashboard/study",
				ActionParams: map[string]any{"mode": "explain", "topic": "Python Functions", "difficulty": 70},
			},
			{
				ChapterNumber: 5, Title: "The Final Challenge", Subtitle: "Object-Oriented Programming Basics",
				XPReward: 1500, EstimatedTimeMinutes: 120, Type: entity.ChapterBossFight,
				ActionType: "study", ActionURL: "/dashboard/study",
				ActionParams: map[string]any{"mode": "visualize", "topic": "Python OOP", "diagram_type": "Class Diagram"},
			},
		}
	case entity.DifficultyIntermediate:
		return []entity.Chapter{
			{
				ChapterNumber: 1, Title: "The Awakening", Subtitle: "Advanced Python: Decorators and Generators",
				XPReward: 1000, EstimatedTimeMinutes: 60, Type: entity.ChapterVideo,
				ActionType: "course", ActionURL: "/dashboard/courses",
				ActionParams: map[string]any{"highlight": "python-advanced"},
			},
			{
				ChapterNumber: 2, Title: "The First Trial", Subtitle: "Working with APIs and HTTP Requests",
				XPReward: 1200, EstimatedTimeMinutes: 75, Type: entity.ChapterQuiz,
				ActionType: "quiz", ActionURL: "/dashboard/study",
				ActionParams: map[string]any{"mode": "quiz", "topic": "Python APIs", "difficulty": "hard"},
			},
			{
				ChapterNumber: 3, Title: "The Data Quest", Subtitle: "Data Processing with Pandas",
				XPReward: 1500, EstimatedTimeMinutes: 90, Type: entity.ChapterVideo,
				ActionType: "course", ActionURL: "/dashboard/courses",
				ActionParams: map[string]any{"highlight": "python-data-science"},
			},
			{
				ChapterNumber: 4, Title: "Boss Battle: Async Programming", Subtitle: "Async/Await and Concurrency",
				XPReward: 2000, EstimatedTimeMinutes: 120, Type: entity.ChapterBossFight,
				ActionType: "study", ActionURL: "/dashboard/study",
				ActionParams: map[string]any{"mode": "explain", "topic": "Python Async", "difficulty": 85},
			},
		}
	default:
		return []entity.Chapter{
			{
				ChapterNumber: 1, Title: "The Awakening", Subtitle: "Advanced Design Patterns in Python",
				XPReward: 1500, EstimatedTimeMinutes: 90, Type: entity.ChapterVideo,
				ActionType: "course", ActionURL: "/dashboard/courses",
				ActionParams: map[string]any{"highlight": "python-design-patterns"},
			},
			{
				ChapterNumber: 2, Title: "The First Trial", Subtitle: "Building Production-Ready APIs",
				XPReward: 2000, EstimatedTimeMinutes: 120, Type: entity.ChapterBossFight,
				ActionType: "study", ActionURL: "/dashboard/study",
				ActionParams: map[string]any{"mode": "explain", "topic": "Python API Design", "difficulty": 90},
			},
		}
	}
}
