package generator

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
)

// ErrGenerationExhausted means neither the primary nor the fallback client
// produced any raw text. The request is over; nothing gets persisted.
var ErrGenerationExhausted = errors.New("both generation clients returned no response")

// Agent runs the two-tier generation flow: session client first, stateless
// client second, shared normalization on whichever produced text. Client
// errors are absorbed at this boundary; callers only see the terminal outcome.
type Agent struct {
	primary  LLMClient
	fallback LLMClient
	logger   *zap.Logger
}

func NewAgent(primary, fallback LLMClient, logger *zap.Logger) (*Agent, error) {
	if primary == nil {
		return nil, errors.New("primary llm client is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Agent{primary: primary, fallback: fallback, logger: logger}, nil
}

// Generate returns exactly TargetCount utterances for the intention, or
// ErrGenerationExhausted when no client produced text. The fallback client is
// invoked at most once, with the same prompt as the primary.
func (a *Agent) Generate(ctx context.Context, intention string) (UtteranceSet, error) {
	prompt := BuildUtterancePrompt(intention)

	raw, err := a.primary.Complete(ctx, prompt)
	if err != nil || strings.TrimSpace(raw) == "" {
		a.logger.Warn("primary client produced no response, trying fallback", zap.Error(err))
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if a.fallback == nil {
			return nil, ErrGenerationExhausted
		}
		raw, err = a.fallback.Complete(ctx, prompt)
		if err != nil || strings.TrimSpace(raw) == "" {
			a.logger.Error("fallback client produced no response", zap.Error(err))
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, ErrGenerationExhausted
		}
	}

	return Normalize(raw, intention), nil
}
