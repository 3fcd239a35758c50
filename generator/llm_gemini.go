package generator

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/genai"
)

// GeminiLLM is the stateless fallback client: one blocking generateContent
// call, no session lifecycle. Unlike the session variant it requires an
// explicit API key up front; a missing key fails construction, before any
// remote call is made.
type GeminiLLM struct {
	Model  string
	APIKey string
}

func NewGeminiLLMFromConfig(cfg *LLMSettings) (*GeminiLLM, error) {
	if cfg == nil {
		return nil, errors.New("llm config is nil")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("gemini api key missing; set GOOGLE_API_KEY")
	}
	if cfg.Model == "" {
		return nil, errors.New("llm model is required")
	}
	return &GeminiLLM{Model: cfg.Model, APIKey: cfg.APIKey}, nil
}

func (g *GeminiLLM) Complete(ctx context.Context, prompt Prompt) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", err
	}

	config := &genai.GenerateContentConfig{}
	if prompt.System != "" {
		config.SystemInstruction = genai.NewContentFromText(prompt.System, genai.RoleUser)
	}

	resp, err := client.Models.GenerateContent(ctx, g.Model, genai.Text(prompt.User), config)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	appendChunkText(&sb, resp)
	raw := sb.String()
	if strings.TrimSpace(raw) == "" {
		return "", ErrNoResponse
	}
	return raw, nil
}
