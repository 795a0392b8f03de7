package models

// RiskAnalysisRequest - данные инцидента для оценки риска
type RiskAnalysisRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Category    IncidentCategory `json:"category"`
	Severity    int              `json:"severity"`
}

// RiskAssessment - оценка риска: score в диапазоне [0, 1]
type RiskAssessment struct {
	RiskScore      float64 `json:"riskScore"`
	Recommendation string  `json:"recommendation"`
}
