package generator

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAlwaysReturnsTargetCount(t *testing.T) {
	inputs := []string{
		"",
		"one line",
		"a\nb\nc",
		strings.Repeat("line\n", 30),
		"- only\n- bullets\n- here",
	}
	for _, raw := range inputs {
		got := Normalize(raw, "order a pizza")
		assert.Len(t, got, TargetCount, "raw=%q", raw)
		for _, u := range got {
			assert.NotEmpty(t, strings.TrimSpace(u))
		}
	}
}

func TestNormalizeEmptyInputPadsWithPlaceholders(t *testing.T) {
	got := Normalize("", "order a pizza")
	require.Len(t, got, TargetCount)
	for _, u := range got {
		assert.Equal(t, "Alternative expression: order a pizza", u)
	}
}

func TestNormalizePartialInputPadsTail(t *testing.T) {
	got := Normalize("first\nsecond\n", "book a flight")
	require.Len(t, got, TargetCount)
	assert.Equal(t, "first", got[0])
	assert.Equal(t, "second", got[1])
	for _, u := range got[2:] {
		assert.Equal(t, "Alternative expression: book a flight", u)
	}
}

func TestNormalizeTruncatesToFirstTen(t *testing.T) {
	var sb strings.Builder
	for i := 1; i <= 15; i++ {
		sb.WriteString(fmt.Sprintf("utterance %d\n", i))
	}
	got := Normalize(sb.String(), "anything")
	require.Len(t, got, TargetCount)
	for i, u := range got {
		assert.Equal(t, fmt.Sprintf("utterance %d", i+1), u)
	}
}

func TestNormalizeStripsNumberedPrefix(t *testing.T) {
	got := Normalize("1. Hello there", "greet someone")
	assert.Equal(t, "Hello there", got[0])
}

func TestNormalizeDiscardsBullets(t *testing.T) {
	got := Normalize("- Hi\nkeep me", "greet someone")
	assert.Equal(t, "keep me", got[0])
	assert.Equal(t, "Alternative expression: greet someone", got[1])
}

func TestNormalizeDiscardsBlankAndWhitespaceLines(t *testing.T) {
	got := Normalize("\n   \nfirst\n\t\nsecond\n", "x")
	assert.Equal(t, "first", got[0])
	assert.Equal(t, "second", got[1])
}

func TestNormalizeNumberPrefixHeuristic(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"single digit prefix", "3. buy milk", "buy milk"},
		{"double digit prefix", "12. buy milk", "buy milk"},
		// Known limitation: a decimal inside the 5-char window is treated
		// like a list prefix.
		{"decimal false positive", "2.5 times faster", "5 times faster"},
		{"dot outside window", "10000. far away dot", "10000. far away dot"},
		{"digit without dot", "7 samurai", "7 samurai"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.in, "x")
			assert.Equal(t, tc.want, got[0])
		})
	}
}

func TestNormalizeDropsLineThatIsOnlyANumberPrefix(t *testing.T) {
	got := Normalize("1.\nreal line", "x")
	assert.Equal(t, "real line", got[0])
}
