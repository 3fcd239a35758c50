package generator

import (
	"context"
	"errors"
)

// ErrNoResponse is returned by a client when the provider answered but the
// reply carried no text. The agent treats it like any other client failure.
var ErrNoResponse = errors.New("model returned no text")

// LLMClient abstracts a text-completion provider so the agent can swap the
// session-based and stateless variants (and mocks in tests).
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// LLMSettings carries the base configuration for concrete clients.
type LLMSettings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}
