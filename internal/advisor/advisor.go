package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"FinanceHub/internal/model"
)

// Fixed replies.
const (
	RefusalText = "This chatbot only answers finance-related questions. Please ask about stocks, investments, budgeting, or other financial topics."
	ApologyText = "I apologize, but I'm having trouble processing your request right now. Please try again later."
)

const promptTemplate = `You are a helpful financial advisor. Provide a clear, informative, and practical answer to this finance-related question:

Question: %s

Please format your response with:
- Clear explanations
- Practical tips when applicable
- Bullet points for easy reading
- Professional but friendly tone`

// Generator produces free text for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Advisor answers finance questions through a Generator.
type Advisor struct {
	gen      Generator
	keywords []string
	log      zerolog.Logger
}

// New creates an Advisor. Keywords are matched case-insensitively.
func New(gen Generator, keywords []string, log zerolog.Logger) *Advisor {
	lowered := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			lowered = append(lowered, k)
		}
	}
	return &Advisor{
		gen:      gen,
		keywords: lowered,
		log:      log.With().Str("component", "advisor").Logger(),
	}
}

// IsFinanceRelated reports whether question contains any keyword.
func IsFinanceRelated(question string, keywords []string) bool {
	q := strings.ToLower(question)
	for _, k := range keywords {
		if k != "" && strings.Contains(q, strings.ToLower(k)) {
			return true
		}
	}
	return false
}

// Respond answers question. Off-topic questions get RefusalText and
// generator failures get ApologyText; only a blank question is an error.
func (a *Advisor) Respond(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", model.ErrEmptyMessage
	}
	if !IsFinanceRelated(question, a.keywords) {
		a.log.Debug().Int("length", len(question)).Msg("off-topic question refused")
		return RefusalText, nil
	}
	if a.gen == nil {
		a.log.Warn().Msg("no text generator configured")
		return ApologyText, nil
	}

	text, err := a.gen.Generate(ctx, fmt.Sprintf(promptTemplate, question))
	if err != nil {
		a.log.Error().Err(err).Msg("error generating response")
		return ApologyText, nil
	}
	return FormatResponse(text), nil
}

// FormatResponse strips bold markers and turns remaining asterisks into bullets.
func FormatResponse(text string) string {
	text = strings.ReplaceAll(text, "**", "")
	return strings.ReplaceAll(text, "*", "• ")
}
