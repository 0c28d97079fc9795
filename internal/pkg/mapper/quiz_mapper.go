package mapper

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/evandrarf/adaptive-learning-be/internal/delivery/http/entity"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

const quizSchemaURL = "schema://quiz-items.json"

const quizSchemaJSON = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["question", "options", "correctAnswer"],
    "properties": {
      "id": {"type": ["integer", "string"]},
      "question": {"type": "string", "minLength": 1},
      "options": {"type": "array", "minItems": 2, "items": {"type": "string"}},
      "correctAnswer": {"type": "string"}
    }
  }
}`

var (
	quizSchemaOnce sync.Once
	quizSchema     *jsonschema.Schema
	quizSchemaErr  error
)

func compiledQuizSchema() (*jsonschema.Schema, error) {
	quizSchemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(quizSchemaJSON), &def); err != nil {
			quizSchemaErr = fmt.Errorf("parse quiz schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(quizSchemaURL, def); err != nil {
			quizSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		quizSchema, quizSchemaErr = c.Compile(quizSchemaURL)
	})
	return quizSchema, quizSchemaErr
}

// QuizItems validates a decoded JSON array against the quiz item schema and
// converts it. snake_case correct_answer keys are accepted.
func QuizItems(raw []any) ([]entity.QuizItem, error) {
	for _, item := range raw {
		obj := objectValue(item)
		if obj == nil {
			continue
		}
		if _, ok := obj["correctAnswer"]; !ok {
			if v, ok := obj["correct_answer"]; ok {
				obj["correctAnswer"] = v
			}
		}
	}

	schema, err := compiledQuizSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(any(raw)); err != nil {
		return nil, fmt.Errorf("quiz schema validation failed: %w", err)
	}

	items := make([]entity.QuizItem, 0, len(raw))
	for _, item := range raw {
		obj := objectValue(item)
		q := entity.QuizItem{
			Question:      stringValue(obj["question"]),
			CorrectAnswer: stringValue(obj["correctAnswer"]),
		}
		q.ID, _ = intValue(obj["id"])
		for _, o := range arrayValue(obj["options"]) {
			if s, ok := o.(string); ok {
				q.Options = append(q.Options, s)
			}
		}
		items = append(items, q)
	}
	return items, nil
}
