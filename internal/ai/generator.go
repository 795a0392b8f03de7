package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

var ErrNoCandidates = errors.New("no response generated")

// ErrDisabled возвращается, когда ключ модели не настроен
var ErrDisabled = errors.New("generative model is not configured")

// GenerationOptions - параметры генерации
type GenerationOptions struct {
	Temperature     float32
	TopP            float32
	MaxOutputTokens int32
}

var (
	// AnalysisOptions - детерминированнее для оценки риска
	AnalysisOptions = GenerationOptions{Temperature: 0.3, TopP: 0.7, MaxOutputTokens: 300}
	// ChatOptions - чуть консервативнее обычного для советов по безопасности
	ChatOptions = GenerationOptions{Temperature: 0.6, TopP: 0.8, MaxOutputTokens: 800}
)

// Generator генерирует текст по промпту
type Generator interface {
	Generate(ctx context.Context, prompt string, opts GenerationOptions) (string, error)
}

type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string, opts GenerationOptions) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(opts.Temperature)
	model.SetTopP(opts.TopP)
	model.SetMaxOutputTokens(opts.MaxOutputTokens)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrNoCandidates
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", ErrNoCandidates
	}
	return sb.String(), nil
}

func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}

// DisabledGenerator всегда отвечает ErrDisabled; вызывающие переходят на запасные ответы
type DisabledGenerator struct{}

func (DisabledGenerator) Generate(context.Context, string, GenerationOptions) (string, error) {
	return "", ErrDisabled
}
