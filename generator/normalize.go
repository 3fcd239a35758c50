package generator

import (
	"fmt"
	"strings"
)

// Normalize converts a raw model response into exactly TargetCount clean
// utterances. Blank lines and bullet lines are dropped, numbered-list
// prefixes are stripped, short responses are padded with a placeholder and
// verbose responses are truncated to the first TargetCount lines in order.
// One shared copy serves both client paths.
func Normalize(raw, intention string) UtteranceSet {
	utterances := make(UtteranceSet, 0, TargetCount)
	for _, line := range strings.Split(raw, "\n") {
		cleaned := strings.TrimSpace(line)
		if cleaned == "" || isBullet(cleaned) {
			continue
		}
		cleaned = strings.TrimSpace(stripListNumber(cleaned))
		if cleaned == "" {
			continue
		}
		utterances = append(utterances, cleaned)
	}

	for len(utterances) < TargetCount {
		utterances = append(utterances, fmt.Sprintf("Alternative expression: %s", intention))
	}
	return utterances[:TargetCount]
}

func isBullet(line string) bool {
	return strings.HasPrefix(line, "-") ||
		strings.HasPrefix(line, "•") ||
		strings.HasPrefix(line, "*")
}

// stripListNumber removes a leading list-number prefix ("3. buy milk" ->
// "buy milk") when the line starts with a digit and a '.' appears within its
// first 5 characters. The window also catches lines like "2.5 times faster"
// (-> "5 times faster"); that false positive is a known limitation of the
// heuristic and is kept as-is.
func stripListNumber(line string) string {
	if line == "" || line[0] < '0' || line[0] > '9' {
		return line
	}
	window := line
	if len(window) > 5 {
		window = window[:5]
	}
	if !strings.Contains(window, ".") {
		return line
	}
	_, rest, _ := strings.Cut(line, ".")
	return rest
}
