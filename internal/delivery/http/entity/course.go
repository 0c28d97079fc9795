package entity

type Pace string

const (
	PaceBlitz    Pace = "blitz"
	PaceModerate Pace = "moderate"
	PaceDeep     Pace = "deep"
)

const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

type GenerateCourseRequest struct {
	Topic     string  `json:"topic" validate:"required"`
	Pace      string  `json:"pace"`
	StudentID *string `json:"student_id"`
}

type Lesson struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type Module struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Lessons     []Lesson `json:"lessons"`
}

type Course struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Difficulty   string   `json:"difficulty"`
	ThumbnailURL *string  `json:"thumbnail_url"`
	Modules      []Module `json:"modules"`
}

type CourseResponse struct {
	Course Course `json:"course"`
}
