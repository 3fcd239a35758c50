package generator

import (
	"context"
	"fmt"
	"strings"
)

// MockLLM is a local placeholder that never calls a remote model. The canned
// reply is shaped like a typical model response (numbered lines, a bullet,
// blank lines) so the full normalization path is exercised offline.
type MockLLM struct{}

func (m MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	subject := prompt.User
	if i := strings.Index(subject, "\n"); i >= 0 {
		subject = subject[:i]
	}

	var sb strings.Builder
	sb.WriteString("Here are some options:\n\n")
	for i := 1; i <= TargetCount; i++ {
		sb.WriteString(fmt.Sprintf("%d. Mock utterance number %d\n", i, i))
	}
	sb.WriteString("- extra bullet that should be dropped\n")
	sb.WriteString(fmt.Sprintf("One more line about: %s\n", subject))
	return sb.String(), nil
}
