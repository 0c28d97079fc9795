package entity

// TelemetrySample is a synthetic engagement snapshot. It is generated per
// request and never stored.
type TelemetrySample struct {
	StudentID      string `json:"student_id"`
	Interactions   int    `json:"interactions"`
	LastScore      int    `json:"last_score"`
	DaysOverdue    int    `json:"days_overdue"`
	LastActive     string `json:"last_active"`
	StudiedCredits int    `json:"studied_credits"`
	TotalClicks    int    `json:"total_clicks"`
}

type StudentStatus struct {
	TelemetrySample
	RiskScore            int `json:"risk_score"`
	PredictedFinalResult int `json:"predicted_final_result"`
}

type HealthSnapshot struct {
	StudentID    string `json:"student_id"`
	RiskScore    int    `json:"risk_score"`
	SystemStatus string `json:"system_status"`
}
