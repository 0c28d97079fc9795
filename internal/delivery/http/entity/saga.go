package entity

const (
	ChapterVideo     = "video"
	ChapterQuiz      = "quiz"
	ChapterBossFight = "boss_fight"
)

type PersonalizeSagaRequest struct {
	PythonSkillLevel string   `json:"python_skill_level" validate:"required"`
	LearningGoals    []string `json:"learning_goals" validate:"required"`
	PreferredPace    string   `json:"preferred_pace" validate:"required"`
	Interests        []string `json:"interests" validate:"required"`
	LearningStyle    string   `json:"learning_style"`
}

type Chapter struct {
	ChapterNumber        int            `json:"chapter_number"`
	Title                string         `json:"title"`
	Subtitle             string         `json:"subtitle"`
	XPReward             int            `json:"xp_reward"`
	EstimatedTimeMinutes int            `json:"estimated_time_minutes"`
	Type                 string         `json:"type"`
	ActionType           string         `json:"action_type"`
	ActionURL            string         `json:"action_url"`
	ActionParams         map[string]any `json:"action_params"`
}

type PersonalizeSagaResponse struct {
	Chapters []Chapter `json:"chapters"`
}
