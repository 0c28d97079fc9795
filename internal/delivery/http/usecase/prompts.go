package usecase

import (
	"fmt"
	"strings"

	"github.com/evandrarf/adaptive-learning-be/internal/delivery/http/entity"
)

const (
	defaultNumQuestions = 5
	maxVisualizeTopic   = 300
	defaultDiagramType  = "flowchart"
)

func contentPrompt(topic, difficulty string) string {
	switch strings.ToLower(strings.TrimSpace(difficulty)) {
	case "easy", "simplified", "beginner":
		return fmt.Sprintf("Explain %s to a 10-year-old using clear analogies and simple language.", topic)
	case "hard", "advanced", "phd":
		return fmt.Sprintf("Provide a PhD-level challenge question and short discussion prompt for the topic: %s.", topic)
	default:
		return fmt.Sprintf("Provide a concise, clear explanation of %s suitable for a university student.", topic)
	}
}

func lessonPrompt(topic string, mode entity.LessonMode) string {
	switch mode {
	case entity.LessonModeSimplify:
		return fmt.Sprintf("Explain %s to a struggling student using very simple analogies. "+
			"Keep it under 100 words and give one concrete example.", topic)
	case entity.LessonModeDeepDive:
		return fmt.Sprintf("Provide a comprehensive, advanced summary of %s. "+
			"Include one complex challenge question at the end.", topic)
	default:
		return fmt.Sprintf("Teach %s at a standard university level. "+
			"Include a short explanation and one quick check-your-understanding question.", topic)
	}
}

var summaryDetail = map[string]string{
	"short":    "Keep it to at most five bullet points.",
	"standard": "",
	"deep":     "Be thorough: cover every section and finish with a short list of open questions.",
}

func summarizePrompt(inputText, detail string) string {
	var b strings.Builder
	b.WriteString("Summarize the following text into clear bullet points and key takeaways. ")
	b.WriteString("Focus on clarity and structure.")
	if extra := summaryDetail[detail]; extra != "" {
		b.WriteString(" ")
		b.WriteString(extra)
	}
	b.WriteString("\n\nTEXT:\n")
	b.WriteString(inputText)
	return b.String()
}

var quizLevel = map[string]string{
	"easy":     "Questions should check basic recall and use plainly wrong distractors.",
	"standard": "",
	"hard":     "Questions should require multi-step reasoning and use plausible distractors.",
}

func quizPrompt(topic string, numQuestions int, level string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d multiple-choice questions about the following topic. ", numQuestions)
	if extra := quizLevel[level]; extra != "" {
		b.WriteString(extra)
		b.WriteString(" ")
	}
	b.WriteString("Return ONLY raw JSON (no commentary, no markdown) in this format:\n")
	b.WriteString("[\n")
	b.WriteString("  {\n")
	b.WriteString(`    "id": 1,` + "\n")
	b.WriteString(`    "question": "string",` + "\n")
	b.WriteString(`    "options": ["option A", "option B", "option C", "option D"],` + "\n")
	b.WriteString(`    "correctAnswer": "The exact string of the correct option"` + "\n")
	b.WriteString("  }\n")
	b.WriteString("]\n\n")
	fmt.Fprintf(&b, "TOPIC: %s", topic)
	return b.String()
}

func socraticPrompt(topic string) string {
	return "Act as a Socratic tutor. The student wants to learn the following topic. " +
		"Do NOT give the final answer. Instead, respond with one or two guiding " +
		"questions that probe their understanding and push them to think.\n\n" +
		"TOPIC OR QUESTION: " + topic
}

func visualizePrompt(topic, diagramType string) string {
	if diagramType == defaultDiagramType {
		return "You are a diagram engine. Generate a simple Mermaid.js FLOWCHART for this topic.\n" +
			"Respond with ONLY a ```mermaid code block and nothing else (no text before or after).\n\n" +
			"TOPIC: " + topic
	}
	return "Generate a concise Mermaid.js diagram for the topic below.\n" +
		"Preferred diagram type: " + diagramType + ".\n" +
		"Start with a ```mermaid code block containing ONLY the diagram code. " +
		"Optionally, you may add one short sentence of summary after the code block.\n\n" +
		"TOPIC: " + topic
}

var paceInstructions = map[entity.Pace]string{
	entity.PaceBlitz:    "Create 3-4 concise summary modules with key concepts only. Each module should be 15-20 minutes. Focus on essentials.",
	entity.PaceModerate: "Create 5-6 balanced modules with practice exercises. Each module should be 30-45 minutes. Include hands-on examples.",
	entity.PaceDeep:     "Create 7-10 detailed modules with quizzes, projects, and deep dives. Each module should be 60-90 minutes. Include comprehensive exercises and assessments.",
}

func coursePrompt(topic, pace string) string {
	instruction, ok := paceInstructions[entity.Pace(pace)]
	if !ok {
		instruction = paceInstructions[entity.PaceModerate]
	}

	return fmt.Sprintf(`You are an expert course creator. Create a comprehensive, engaging course on: %[1]s

Student Pace: %[2]s
%[3]s

Return ONLY a valid JSON object (no markdown, no explanation) with this exact structure:
{
  "title": "Course title (engaging and specific)",
  "description": "Detailed course description (2-3 sentences)",
  "difficulty": "beginner|intermediate|advanced",
  "thumbnail_url": null,
  "modules": [
    {
      "title": "Module title",
      "description": "Module description",
      "lessons": [
        {
          "title": "Lesson title",
          "content": "Detailed lesson content with explanations, examples, and key takeaways"
        }
      ]
    }
  ]
}

Make it practical, engaging, and tailored to %[2]s pace learning!`, topic, pace, instruction)
}

func sagaPrompt(req entity.PersonalizeSagaRequest) string {
	goals := strings.Join(req.LearningGoals, ", ")
	interests := strings.Join(req.Interests, ", ")

	return fmt.Sprintf(`You are an expert Python programming instructor creating a personalized, gamified learning journey.

Student Profile:
- Python Skill Level: %[1]s
- Learning Goals: %[2]s
- Preferred Pace: %[3]s
- Interests: %[4]s
- Learning Style: %[5]s

Create a personalized Python programming saga journey with 5-7 chapters. Each chapter should:
1. Have an epic, gamified title (like "The Awakening", "The First Trial", "Boss Battle: Functions")
2. Focus on Python programming concepts appropriate for %[1]s level
3. Align with their goals: %[2]s
4. Match their pace: %[3]s (adjust time estimates accordingly)
5. Include their interests: %[4]s

For each chapter, provide:
- chapter_number: sequential number starting from 1
- title: Epic, gamified title
- subtitle: Specific Python topic/concept
- xp_reward: Based on difficulty (beginner: 300-500, intermediate: 600-1000, advanced: 1200-2000)
- estimated_time_minutes: Based on pace (slow: 60-90min, moderate: 30-60min, fast: 15-30min)
- type: 'video', 'quiz', or 'boss_fight'
- action_type: 'course', 'quiz', or 'study'
- action_url: '/dashboard/courses' for videos, '/dashboard/study' for quizzes/study
- action_params: JSON object with mode, topic, difficulty based on type

Return ONLY a valid JSON array of chapter objects, no markdown, no explanation.
Example format:
[
  {
    "chapter_number": 1,
    "title": "The Awakening",
    "subtitle": "Python Basics: Variables and Data Types",
    "xp_reward": 500,
    "estimated_time_minutes": 45,
    "type": "video",
    "action_type": "course",
    "action_url": "/dashboard/courses",
    "action_params": {"highlight": "python-basics"}
  },
  {
    "chapter_number": 2,
    "title": "The First Trial",
    "subtitle": "Control Flow: If Statements and Loops",
    "xp_reward": 750,
    "estimated_time_minutes": 60,
    "type": "quiz",
    "action_type": "quiz",
    "action_url": "/dashboard/study",
    "action_params": {"mode": "quiz", "topic": "Control Flow", "difficulty": "standard"}
  }
]

Make it engaging, progressive, and tailored to their profile!`, req.PythonSkillLevel, goals, req.PreferredPace, interests, req.LearningStyle)
}

// truncateRunes keeps at most n characters of s.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
