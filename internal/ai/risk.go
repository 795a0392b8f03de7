package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/shenikar/safety_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	fallbackRecommendation    = "Stay alert and follow standard safety protocols."
	unavailableRecommendation = "Unable to analyze. Please exercise caution."
)

var jsonObject = regexp.MustCompile(`(?s)\{.*\}`)

// RiskAnalyzer оценивает риск инцидента через генеративную модель
type RiskAnalyzer struct {
	generator Generator
	logger    *logrus.Logger
}

func NewRiskAnalyzer(generator Generator, logger *logrus.Logger) *RiskAnalyzer {
	return &RiskAnalyzer{generator: generator, logger: logger}
}

// AnalyzeIncident не возвращает ошибок: при сбое модели score = 0.5,
// при неразборчивом ответе score = severity/5.
func (a *RiskAnalyzer) AnalyzeIncident(ctx context.Context, req models.RiskAnalysisRequest) models.RiskAssessment {
	log := a.logger.WithFields(logrus.Fields{
		"component": "ai",
		"method":    "AnalyzeIncident",
		"category":  req.Category,
	})

	text, err := a.generator.Generate(ctx, riskPrompt(req), AnalysisOptions)
	if err != nil {
		log.WithError(err).Warn("Risk analysis failed, using neutral score")
		return models.RiskAssessment{RiskScore: 0.5, Recommendation: unavailableRecommendation}
	}

	assessment, ok := parseAssessment(text)
	if !ok {
		log.Warn("Could not parse risk analysis response, falling back to severity")
		return models.RiskAssessment{
			RiskScore:      clamp(float64(req.Severity) / 5),
			Recommendation: fallbackRecommendation,
		}
	}
	return assessment
}

func riskPrompt(req models.RiskAnalysisRequest) string {
	return fmt.Sprintf(`Analyze this community safety incident and provide a risk assessment:

Title: %s
Description: %s
Category: %s
Reported Severity: %d/5

Based on this information:
1. Provide a risk score between 0 and 1 (where 0 is no risk and 1 is extreme risk)
2. Provide a brief safety recommendation (1-2 sentences)

Respond in JSON format:
{
  "riskScore": <number between 0 and 1>,
  "recommendation": "<brief safety recommendation>"
}`, req.Title, req.Description, req.Category, req.Severity)
}

// parseAssessment достаёт первый JSON-объект из ответа модели
func parseAssessment(text string) (models.RiskAssessment, bool) {
	match := jsonObject.FindString(text)
	if match == "" {
		return models.RiskAssessment{}, false
	}
	var raw struct {
		RiskScore      *float64 `json:"riskScore"`
		Recommendation string   `json:"recommendation"`
	}
	if err := json.Unmarshal([]byte(match), &raw); err != nil || raw.RiskScore == nil {
		return models.RiskAssessment{}, false
	}
	recommendation := strings.TrimSpace(raw.Recommendation)
	if recommendation == "" {
		recommendation = fallbackRecommendation
	}
	return models.RiskAssessment{
		RiskScore:      clamp(*raw.RiskScore),
		Recommendation: recommendation,
	}, true
}

func clamp(score float64) float64 {
	if math.IsNaN(score) {
		return 0.5
	}
	return math.Max(0, math.Min(1, score))
}
