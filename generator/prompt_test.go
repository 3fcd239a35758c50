package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildUtterancePromptEmbedsIntention(t *testing.T) {
	p := BuildUtterancePrompt("order a pizza")

	assert.Contains(t, p.User, `"order a pizza"`)
	assert.Contains(t, p.User, "exactly 10 utterances")
	assert.Contains(t, p.User, "without numbers or bullet points")
	assert.NotEmpty(t, p.System)
}

func TestBuildUtterancePromptListsVariationAxes(t *testing.T) {
	p := BuildUtterancePrompt("anything")

	for _, axis := range []string{
		"Sentence structure and length",
		"Level of formality",
		"Perspective (first person, questions, statements)",
		"Specific words and phrasing",
	} {
		assert.Contains(t, p.User, axis)
	}
}
