package ai

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/safety_reporting_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	text   string
	err    error
	prompt string
	opts   GenerationOptions
}

func (s *stubGenerator) Generate(_ context.Context, prompt string, opts GenerationOptions) (string, error) {
	s.prompt = prompt
	s.opts = opts
	return s.text, s.err
}

func newTestAnalyzer(gen Generator) *RiskAnalyzer {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return NewRiskAnalyzer(gen, logger)
}

func TestAnalyzeIncident_ParsesJSONInsideText(t *testing.T) {
	gen := &stubGenerator{text: "Here you go:\n```json\n{\"riskScore\": 0.82, \"recommendation\": \"Avoid the area after dark.\"}\n```"}
	a := newTestAnalyzer(gen)

	got := a.AnalyzeIncident(context.Background(), models.RiskAnalysisRequest{
		Title:    "Break-in",
		Category: models.CategoryTheft,
		Severity: 4,
	})

	assert.InDelta(t, 0.82, got.RiskScore, 1e-9)
	assert.Equal(t, "Avoid the area after dark.", got.Recommendation)
	assert.Contains(t, gen.prompt, "Reported Severity: 4/5")
	assert.Equal(t, AnalysisOptions, gen.opts)
}

func TestAnalyzeIncident_ClampsScore(t *testing.T) {
	a := newTestAnalyzer(&stubGenerator{text: `{"riskScore": 3, "recommendation": "x"}`})

	got := a.AnalyzeIncident(context.Background(), models.RiskAnalysisRequest{Severity: 1})
	assert.Equal(t, 1.0, got.RiskScore)
}

func TestAnalyzeIncident_UnparseableFallsBackToSeverity(t *testing.T) {
	a := newTestAnalyzer(&stubGenerator{text: "I cannot help with that"})

	got := a.AnalyzeIncident(context.Background(), models.RiskAnalysisRequest{Severity: 3})
	assert.InDelta(t, 0.6, got.RiskScore, 1e-9)
	assert.Equal(t, fallbackRecommendation, got.Recommendation)
}

func TestAnalyzeIncident_MissingScoreFallsBackToSeverity(t *testing.T) {
	a := newTestAnalyzer(&stubGenerator{text: `{"recommendation": "stay safe"}`})

	got := a.AnalyzeIncident(context.Background(), models.RiskAnalysisRequest{Severity: 5})
	assert.Equal(t, 1.0, got.RiskScore)
}

func TestAnalyzeIncident_GeneratorError(t *testing.T) {
	a := newTestAnalyzer(&stubGenerator{err: errors.New("quota exceeded")})

	got := a.AnalyzeIncident(context.Background(), models.RiskAnalysisRequest{Severity: 5})
	assert.Equal(t, 0.5, got.RiskScore)
	assert.Equal(t, unavailableRecommendation, got.Recommendation)
}

func TestAnalyzeIncident_DisabledGenerator(t *testing.T) {
	a := newTestAnalyzer(DisabledGenerator{})

	got := a.AnalyzeIncident(context.Background(), models.RiskAnalysisRequest{Severity: 2})
	assert.Equal(t, 0.5, got.RiskScore)
}

func TestAssistantReply_IncludesHistory(t *testing.T) {
	gen := &stubGenerator{text: "  Lock your doors.  "}
	assistant := NewAssistant(gen)
	userID := uuid.New()
	history := []*models.ChatMessage{
		{UserID: userID, Role: models.ChatRoleUser, Content: "Someone is following me"},
		{UserID: userID, Role: models.ChatRoleAssistant, Content: "Go to a public place"},
	}

	reply, err := assistant.Reply(context.Background(), history, "What now?")

	require.NoError(t, err)
	assert.Equal(t, "Lock your doors.", reply)
	assert.Contains(t, gen.prompt, "User: Someone is following me\nAssistant: Go to a public place")
	assert.Contains(t, gen.prompt, "User's current message: What now?")
	assert.Equal(t, ChatOptions, gen.opts)
}

func TestAssistantReply_PropagatesError(t *testing.T) {
	assistant := NewAssistant(DisabledGenerator{})

	_, err := assistant.Reply(context.Background(), nil, "hi")
	assert.ErrorIs(t, err, ErrDisabled)
}
