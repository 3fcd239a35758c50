package generator

import (
	"fmt"
	"strings"
)

// Prompt is the message pair sent to an LLM.
type Prompt struct {
	System string
	User   string
}

const systemInstruction = "You are an expert utterance generator. " +
	"Your responsibility is to generate diverse, natural utterances for given intentions or contexts. " +
	"Keep utterances natural and conversational, and focus on different ways people might express the same intent."

// BuildUtterancePrompt formats the intention into the generation instruction.
// The caller is responsible for rejecting blank intentions beforehand.
func BuildUtterancePrompt(intention string) Prompt {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Generate %d diverse utterances for this intention: %q\n\n", TargetCount, intention))
	sb.WriteString("Make each utterance unique and natural. Vary the:\n")
	sb.WriteString("- Sentence structure and length\n")
	sb.WriteString("- Level of formality\n")
	sb.WriteString("- Perspective (first person, questions, statements)\n")
	sb.WriteString("- Specific words and phrasing\n\n")
	sb.WriteString(fmt.Sprintf("Return exactly %d utterances, one per line, without numbers or bullet points.", TargetCount))

	return Prompt{
		System: systemInstruction,
		User:   sb.String(),
	}
}
