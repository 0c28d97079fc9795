package predictor

import (
	"math"

	"github.com/sirupsen/logrus"
)

var labelScores = map[string]int{
	"Distinction": 90,
	"Pass":        60,
	"Fail":        30,
	"Withdrawn":   0,
}

// Predictor estimates a 0-100 final result. The model is optional and never
// changes after construction.
type Predictor struct {
	model Model
	log   *logrus.Logger
}

func New(model Model, log *logrus.Logger) *Predictor {
	if log == nil {
		log = logrus.New()
	}
	return &Predictor{model: model, log: log}
}

// Load builds a Predictor from the artifact at path. An empty path or a load
// failure leaves the predictor in heuristic-only mode for the process lifetime.
func Load(path string, log *logrus.Logger) *Predictor {
	if log == nil {
		log = logrus.New()
	}
	if path == "" {
		log.Info("no outcome model configured, using heuristic predictions")
		return New(nil, log)
	}

	m, err := LoadModel(path)
	if err != nil {
		log.WithError(err).WithField("path", path).Warn("failed to load outcome model, using heuristic predictions")
		return New(nil, log)
	}

	log.WithField("path", path).Info("outcome model loaded")
	return New(m, log)
}

func (p *Predictor) HasModel() bool {
	return p.model != nil
}

// PredictFinalResult never fails: inference errors and unknown labels fall
// back to the heuristic.
func (p *Predictor) PredictFinalResult(f Features) int {
	f = f.WithDefaults()
	fallback := Heuristic(f.StudiedCredits, f.TotalClicks)

	if p.model == nil {
		return fallback
	}

	pred, err := p.model.Predict(f)
	if err != nil {
		p.log.WithError(err).Warn("outcome prediction failed, using heuristic")
		return fallback
	}

	if pred.IsLabel {
		score, ok := labelScores[pred.Label]
		if !ok {
			return fallback
		}
		return score
	}

	if math.IsNaN(pred.Value) {
		return fallback
	}
	return int(math.Max(0, math.Min(100, math.Trunc(pred.Value))))
}

// Heuristic is the linear estimate used when no model is available.
func Heuristic(credits, clicks int) int {
	return clamp(int(math.Round(float64(credits)*2.5 + float64(clicks)*0.1)))
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
