package entity

type LessonMode string

const (
	LessonModeSimplify LessonMode = "simplify"
	LessonModeStandard LessonMode = "standard"
	LessonModeDeepDive LessonMode = "deep_dive"
)

type ToolMode string

const (
	ToolExplain   ToolMode = "explain"
	ToolSummarize ToolMode = "summarize"
	ToolQuiz      ToolMode = "quiz"
	ToolSocratic  ToolMode = "socratic"
	ToolVisualize ToolMode = "visualize"
)

type ExplainRequest struct {
	Topic         string `json:"topic" validate:"required"`
	StruggleScore *int   `json:"struggle_score" validate:"required,min=0,max=100"`
}

type ExplainResponse struct {
	Explanation string `json:"explanation"`
}

type GenerateContentRequest struct {
	Topic      string `json:"topic" validate:"required"`
	Difficulty string `json:"difficulty"`
}

type GenerateLessonRequest struct {
	Topic string `json:"topic" validate:"required"`
	Mode  string `json:"mode"`
}

type ContentResponse struct {
	Content string `json:"content"`
}

// StudyToolRequest is a tagged union: which optional fields are required
// depends on ToolType.
type StudyToolRequest struct {
	ToolType     string `json:"tool_type" validate:"required"`
	Topic        string `json:"topic,omitempty"`
	InputText    string `json:"input_text,omitempty"`
	Difficulty   *int   `json:"difficulty,omitempty"`
	DiagramType  string `json:"diagram_type,omitempty"`
	NumQuestions *int   `json:"num_questions,omitempty" validate:"omitempty,min=1,max=20"`
	Level        string `json:"level,omitempty" validate:"omitempty,oneof=easy standard hard"`
	Detail       string `json:"detail,omitempty" validate:"omitempty,oneof=short standard deep"`
}

type QuizItem struct {
	ID            int      `json:"id,omitempty"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// StudyToolResponse has exactly one of Content or Quiz set.
type StudyToolResponse struct {
	Mode    ToolMode   `json:"mode"`
	Content *string    `json:"content"`
	Quiz    []QuizItem `json:"quiz"`
}

type ModelsResponse struct {
	Models []string `json:"models"`
}
