package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/shenikar/safety_reporting_system/internal/models"
)

const chatSystemPrompt = `You are a helpful and empathetic Community Safety Assistant. Your role is to:

1. Provide safety guidance and tips for various situations
2. Help users understand how to report incidents effectively
3. Offer emotional support and reassurance
4. Suggest appropriate actions based on the severity of situations
5. Educate about crime prevention and personal safety

Guidelines:
- Be empathetic and supportive
- Provide clear, actionable advice
- Encourage reporting serious incidents to authorities
- Never minimize safety concerns
- Offer practical tips for staying safe
- If someone is in immediate danger, advise them to call emergency services (911)`

// Assistant - ассистент чата по безопасности
type Assistant struct {
	generator Generator
}

func NewAssistant(generator Generator) *Assistant {
	return &Assistant{generator: generator}
}

func (a *Assistant) Reply(ctx context.Context, history []*models.ChatMessage, message string) (string, error) {
	reply, err := a.generator.Generate(ctx, chatPrompt(history, message), ChatOptions)
	if err != nil {
		return "", fmt.Errorf("chat assistant: %w", err)
	}
	return strings.TrimSpace(reply), nil
}

func chatPrompt(history []*models.ChatMessage, message string) string {
	lines := make([]string, 0, len(history))
	for _, msg := range history {
		speaker := "Assistant"
		if msg.Role == models.ChatRoleUser {
			speaker = "User"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", speaker, msg.Content))
	}

	return fmt.Sprintf(`%s

Previous conversation:
%s

User's current message: %s

Respond in a helpful, supportive manner with practical safety advice.`, chatSystemPrompt, strings.Join(lines, "\n"), message)
}
