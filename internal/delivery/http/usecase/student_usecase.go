package usecase

import (
	"context"

	"github.com/evandrarf/adaptive-learning-be/internal/delivery/http/entity"
	"github.com/evandrarf/adaptive-learning-be/internal/pkg/predictor"
	"github.com/sirupsen/logrus"
)

type StudentUsecase interface {
	Status(ctx context.Context) entity.StudentStatus
	Health() entity.HealthSnapshot
}

type OutcomePredictor interface {
	PredictFinalResult(f predictor.Features) int
}

type StudentConfig struct {
	Telemetry *TelemetryGenerator
	Predictor OutcomePredictor
	Log       *logrus.Logger
}

type studentUsecase struct {
	cfg StudentConfig
}

func NewStudentUsecase(cfg StudentConfig) StudentUsecase {
	if cfg.Log == nil {
		cfg.Log = logrus.New()
	}
	if cfg.Telemetry == nil {
		cfg.Telemetry = NewTelemetryGenerator()
	}
	if cfg.Predictor == nil {
		cfg.Predictor = predictor.New(nil, cfg.Log)
	}
	return &studentUsecase{cfg: cfg}
}

func (u *studentUsecase) Status(_ context.Context) entity.StudentStatus {
	sample := u.cfg.Telemetry.Sample()

	status := entity.StudentStatus{
		TelemetrySample: sample,
		RiskScore:       RiskScore(sample.Interactions, sample.LastScore, sample.DaysOverdue),
		PredictedFinalResult: u.cfg.Predictor.PredictFinalResult(
			predictor.NewFeatures(sample.StudiedCredits, sample.TotalClicks),
		),
	}

	u.cfg.Log.WithFields(logrus.Fields{
		"student_id": sample.StudentID,
		"risk_score": status.RiskScore,
		"predicted":  status.PredictedFinalResult,
	}).Debug("student status computed")

	return status
}

func (u *studentUsecase) Health() entity.HealthSnapshot {
	return entity.HealthSnapshot{
		StudentID:    "STU_001",
		RiskScore:    85,
		SystemStatus: "All Systems Go",
	}
}

// RiskScore is an additive disengagement heuristic capped at 100.
func RiskScore(interactions, lastScore, daysOverdue int) int {
	score := 0
	if interactions < 10 {
		score += 40
	}
	if lastScore < 50 {
		score += 30
	}
	if daysOverdue > 0 {
		score += 20
	}
	return min(score, 100)
}
