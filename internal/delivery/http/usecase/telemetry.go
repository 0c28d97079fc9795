package usecase

import (
	"math/rand/v2"
	"time"

	"github.com/evandrarf/adaptive-learning-be/internal/delivery/http/entity"
)

const demoStudentID = "demo-student-123"

var (
	overdueChoices = []int{0, 0, 1, 2, 3}
	creditChoices  = []int{0, 15, 30, 45, 60, 90, 120}
)

// TelemetryGenerator produces randomized engagement samples. The default
// source is the goroutine-safe global generator.
type TelemetryGenerator struct {
	intN func(n int) int
	now  func() time.Time
}

func NewTelemetryGenerator() *TelemetryGenerator {
	return &TelemetryGenerator{intN: rand.IntN, now: time.Now}
}

func NewSeededTelemetryGenerator(intN func(n int) int, now func() time.Time) *TelemetryGenerator {
	return &TelemetryGenerator{intN: intN, now: now}
}

func (g *TelemetryGenerator) Sample() entity.TelemetrySample {
	daysOverdue := overdueChoices[g.intN(len(overdueChoices))]

	return entity.TelemetrySample{
		StudentID:      demoStudentID,
		Interactions:   g.intN(31),
		LastScore:      g.intN(101),
		DaysOverdue:    daysOverdue,
		LastActive:     g.now().UTC().AddDate(0, 0, -daysOverdue).Format(time.RFC3339),
		StudiedCredits: creditChoices[g.intN(len(creditChoices))],
		TotalClicks:    g.intN(501),
	}
}
