package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/evandrarf/adaptive-learning-be/internal/delivery/http/entity"
	"github.com/evandrarf/adaptive-learning-be/internal/pkg/apperr"
	"github.com/evandrarf/adaptive-learning-be/internal/pkg/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quizJSON = `[
  {"id": 1, "question": "What is 2+2?", "options": ["3", "4", "5", "6"], "correctAnswer": "4"},
  {"id": 2, "question": "Capital of France?", "options": ["Paris", "Rome"], "correctAnswer": "Paris"}
]`

func newTutor(responses ...string) (TutorUsecase, func() (int, string)) {
	mocks := make([]llm.MockResponse, 0, len(responses))
	for _, r := range responses {
		mocks = append(mocks, text(r))
	}
	client, p := mockClient(mocks...)
	u := NewTutorUsecase(TutorConfig{Generator: client, Models: client, Log: quietLogger()})
	return u, func() (int, string) { return p.CallCount(), p.LastPrompt() }
}

func TestSelectMode(t *testing.T) {
	tests := []struct {
		score int
		want  entity.LessonMode
	}{
		{0, entity.LessonModeDeepDive},
		{30, entity.LessonModeDeepDive},
		{31, entity.LessonModeStandard},
		{69, entity.LessonModeStandard},
		{70, entity.LessonModeSimplify},
		{100, entity.LessonModeSimplify},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SelectMode(tt.score), "score %d", tt.score)
	}
}

func TestExplain_UsesSelectedMode(t *testing.T) {
	u, calls := newTutor("simple words")

	out, err := u.Explain(context.Background(), "recursion", 90)
	require.NoError(t, err)
	assert.Equal(t, "simple words", out)

	_, prompt := calls()
	assert.Equal(t, lessonPrompt("recursion", entity.LessonModeSimplify), prompt)
}

func TestGenerateLesson_NormalizesMode(t *testing.T) {
	u, calls := newTutor("deep text")

	_, err := u.GenerateLesson(context.Background(), "graphs", "DEEP_DIVE")
	require.NoError(t, err)

	_, prompt := calls()
	assert.Equal(t, lessonPrompt("graphs", entity.LessonModeDeepDive), prompt)
}

func TestStudyTool_MissingFieldsNeverCallRemote(t *testing.T) {
	tests := []struct {
		name string
		req  entity.StudyToolRequest
	}{
		{"summarize without text", entity.StudyToolRequest{ToolType: "summarize", Topic: "x"}},
		{"quiz without topic", entity.StudyToolRequest{ToolType: "quiz"}},
		{"socratic without topic", entity.StudyToolRequest{ToolType: "socratic", InputText: "x"}},
		{"visualize without topic", entity.StudyToolRequest{ToolType: "visualize"}},
		{"explain without topic", entity.StudyToolRequest{ToolType: "explain"}},
		{"unknown tool", entity.StudyToolRequest{ToolType: "dance", Topic: "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, calls := newTutor("unused")

			_, err := u.StudyTool(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, apperr.Is(err, apperr.KindInvalidRequest))

			n, _ := calls()
			assert.Zero(t, n)
		})
	}
}

func TestStudyTool_Summarize(t *testing.T) {
	u, calls := newTutor("- point one")

	res, err := u.StudyTool(context.Background(), entity.StudyToolRequest{
		ToolType:  "Summarize",
		InputText: "long lecture notes",
		Detail:    "short",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ToolSummarize, res.Mode)
	require.NotNil(t, res.Content)
	assert.Equal(t, "- point one", *res.Content)
	assert.Nil(t, res.Quiz)

	_, prompt := calls()
	assert.Contains(t, prompt, "long lecture notes")
	assert.Contains(t, prompt, "at most five bullet points")
}

func TestStudyTool_QuizFencedEqualsUnfenced(t *testing.T) {
	plain, _ := newTutor(quizJSON)
	fenced, _ := newTutor("```json\n" + quizJSON + "\n```")

	req := entity.StudyToolRequest{ToolType: "quiz", Topic: "trivia", NumQuestions: intPtr(2)}

	a, err := plain.StudyTool(context.Background(), req)
	require.NoError(t, err)
	b, err := fenced.StudyTool(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, entity.ToolQuiz, a.Mode)
	assert.Nil(t, a.Content)
	require.Len(t, a.Quiz, 2)
	assert.Equal(t, "4", a.Quiz[0].CorrectAnswer)
}

func TestStudyTool_QuizEmptyArray(t *testing.T) {
	u, _ := newTutor("```json\n[]\n```")

	res, err := u.StudyTool(context.Background(), entity.StudyToolRequest{ToolType: "quiz", Topic: "x"})
	require.NoError(t, err)
	assert.Equal(t, entity.ToolQuiz, res.Mode)
	assert.Nil(t, res.Content)
	assert.NotNil(t, res.Quiz)
	assert.Empty(t, res.Quiz)
}

func TestStudyTool_QuizPrompt(t *testing.T) {
	u, calls := newTutor(quizJSON)

	_, err := u.StudyTool(context.Background(), entity.StudyToolRequest{ToolType: "quiz", Topic: "trivia"})
	require.NoError(t, err)

	_, prompt := calls()
	assert.Contains(t, prompt, "Generate 5 multiple-choice questions")
	assert.Contains(t, prompt, "TOPIC: trivia")
}

func TestStudyTool_QuizMalformed(t *testing.T) {
	tests := map[string]string{
		"not json":     "Sure! Here is your quiz.",
		"object":       `{"question": "q"}`,
		"bad item":     `[{"question": "q", "options": ["only one"], "correctAnswer": "only one"}]`,
		"missing keys": `[{"question": "q"}]`,
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			u, _ := newTutor(raw)

			_, err := u.StudyTool(context.Background(), entity.StudyToolRequest{ToolType: "quiz", Topic: "x"})
			require.Error(t, err)
			assert.True(t, apperr.Is(err, apperr.KindMalformedUpstream))
			assert.Equal(t, 500, apperr.StatusCode(apperr.KindOf(err)))
		})
	}
}

func TestStudyTool_VisualizeTruncatesTopic(t *testing.T) {
	u, calls := newTutor("```mermaid\ngraph TD\n```")

	topic := strings.Repeat("a", 500)
	res, err := u.StudyTool(context.Background(), entity.StudyToolRequest{ToolType: "visualize", Topic: topic})
	require.NoError(t, err)
	assert.Equal(t, entity.ToolVisualize, res.Mode)

	_, prompt := calls()
	assert.Contains(t, prompt, "FLOWCHART")
	assert.Contains(t, prompt, strings.Repeat("a", 300))
	assert.NotContains(t, prompt, strings.Repeat("a", 301))
}

func TestStudyTool_VisualizeDiagramType(t *testing.T) {
	u, calls := newTutor("```mermaid\nsequenceDiagram\n```")

	_, err := u.StudyTool(context.Background(), entity.StudyToolRequest{
		ToolType:    "visualize",
		Topic:       "TCP handshake",
		DiagramType: "Sequence",
	})
	require.NoError(t, err)

	_, prompt := calls()
	assert.Contains(t, prompt, "Preferred diagram type: sequence.")
}

func TestStudyTool_ExplainDifficulty(t *testing.T) {
	tests := []struct {
		difficulty *int
		want       entity.LessonMode
	}{
		{nil, entity.LessonModeStandard},
		{intPtr(10), entity.LessonModeSimplify},
		{intPtr(50), entity.LessonModeStandard},
		{intPtr(90), entity.LessonModeDeepDive},
		{intPtr(-5), entity.LessonModeSimplify},
		{intPtr(250), entity.LessonModeDeepDive},
	}
	for _, tt := range tests {
		u, calls := newTutor("lesson")

		res, err := u.StudyTool(context.Background(), entity.StudyToolRequest{Topic: "loops", Difficulty: tt.difficulty})
		require.NoError(t, err)
		assert.Equal(t, entity.ToolExplain, res.Mode)

		_, prompt := calls()
		assert.Equal(t, lessonPrompt("loops", tt.want), prompt)
	}
}

func TestStudyTool_UpstreamErrorsPropagate(t *testing.T) {
	client, _ := mockClient(fail(429))
	u := NewTutorUsecase(TutorConfig{Generator: client, Log: quietLogger()})

	_, err := u.StudyTool(context.Background(), entity.StudyToolRequest{ToolType: "socratic", Topic: "why"})
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindQuotaExceeded))
}

func TestListModels(t *testing.T) {
	client, p := mockClient()
	p.Models = []string{"models/a", "models/b"}
	u := NewTutorUsecase(TutorConfig{Generator: client, Models: client, Log: quietLogger()})

	models, err := u.ListModels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"models/a", "models/b"}, models)
}
