package generator

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/genai"
)

// GeminiSessionLLM is the primary client. It opens an ephemeral chat session,
// sends the prompt as a single user message and folds the streamed response
// chunks into one raw text blob. Any failure during session setup or
// streaming surfaces as an error, which the agent converts into a fallback.
type GeminiSessionLLM struct {
	Model  string
	APIKey string
}

// NewGeminiSessionLLMFromConfig builds the session client. The API key may be
// empty; the SDK then falls back to ambient credentials (GOOGLE_API_KEY,
// service account, gcloud identity).
func NewGeminiSessionLLMFromConfig(cfg *LLMSettings) (*GeminiSessionLLM, error) {
	if cfg == nil {
		return nil, errors.New("llm config is nil")
	}
	if cfg.Model == "" {
		return nil, errors.New("llm model is required")
	}
	return &GeminiSessionLLM{Model: cfg.Model, APIKey: cfg.APIKey}, nil
}

func (g *GeminiSessionLLM) Complete(ctx context.Context, prompt Prompt) (string, error) {
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

	chat, err := client.Chats.Create(ctx, g.Model, config, nil)
	if err != nil {
		return "", err
	}

	// Fold over the finite stream: every text fragment in any candidate part
	// is appended, chunks without text are skipped.
	var sb strings.Builder
	for chunk, err := range chat.SendMessageStream(ctx, genai.Part{Text: prompt.User}) {
		if err != nil {
			return "", err
		}
		appendChunkText(&sb, chunk)
	}

	raw := sb.String()
	if strings.TrimSpace(raw) == "" {
		return "", ErrNoResponse
	}
	return raw, nil
}

func appendChunkText(sb *strings.Builder, resp *genai.GenerateContentResponse) {
	if resp == nil {
		return
	}
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part == nil || part.Text == "" {
				continue
			}
			sb.WriteString(part.Text)
		}
	}
}
