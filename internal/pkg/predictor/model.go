package predictor

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed model.schema.json
var modelSchema []byte

const modelSchemaURL = "schema://predictor-model.json"

// Prediction is either a class label or a numeric score.
type Prediction struct {
	Label   string
	Value   float64
	IsLabel bool
}

// Model runs inference on a single feature row.
type Model interface {
	Predict(f Features) (Prediction, error)
}

type threshold struct {
	Min   float64 `json:"min"`
	Label string  `json:"label"`
}

// LinearModel is the artifact format produced by the training notebook: a
// weighted sum over numeric features plus per-category offsets. Classifiers
// map the score onto the label whose threshold it reaches.
type LinearModel struct {
	Kind        string                        `json:"kind"`
	Intercept   float64                       `json:"intercept"`
	Numeric     map[string]float64            `json:"numeric"`
	Categorical map[string]map[string]float64 `json:"categorical"`
	Labels      []threshold                   `json:"labels"`
}

var errBelowThresholds = errors.New("score is below every label threshold")

func (m *LinearModel) Predict(f Features) (Prediction, error) {
	score := m.Intercept

	num := f.numeric()
	for name, w := range m.Numeric {
		v, ok := num[name]
		if !ok {
			return Prediction{}, fmt.Errorf("unknown numeric feature %q", name)
		}
		score += w * v
	}

	cat := f.categorical()
	for name, weights := range m.Categorical {
		v, ok := cat[name]
		if !ok {
			return Prediction{}, fmt.Errorf("unknown categorical feature %q", name)
		}
		score += weights[v]
	}

	if m.Kind != "classifier" {
		return Prediction{Value: score}, nil
	}

	// Labels are sorted descending by Min at load time.
	for _, t := range m.Labels {
		if score >= t.Min {
			return Prediction{Label: t.Label, IsLabel: true}, nil
		}
	}
	return Prediction{}, errBelowThresholds
}

// LoadModel reads and validates a model artifact.
func LoadModel(path string) (*LinearModel, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	return ParseModel(raw)
}

func ParseModel(raw []byte) (*LinearModel, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid model JSON: %w", err)
	}

	schema, err := compileModelSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("model artifact failed validation: %w", err)
	}

	var m LinearModel
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}

	sort.SliceStable(m.Labels, func(i, j int) bool {
		return m.Labels[i].Min > m.Labels[j].Min
	})

	return &m, nil
}

func compileModelSchema() (*jsonschema.Schema, error) {
	var def any
	if err := json.Unmarshal(modelSchema, &def); err != nil {
		return nil, fmt.Errorf("parse model schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(modelSchemaURL, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(modelSchemaURL)
}
