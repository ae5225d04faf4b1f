package llm

import (
	"regexp"
	"strings"
)

var (
	roleTagLine   = regexp.MustCompile(`(?i)^\s*(system|user|assistant|human|ai)\s*:\s*$`)
	roleTagPrefix = regexp.MustCompile(`(?i)^\s*(system|user|assistant|human|ai)\s*:\s+`)
	delimiterLine = regexp.MustCompile(`^\s*(#{2,}|-{3,}|={3,}|\*{3,})\s*$`)
)

// SanitizeCompletion strips role-tag and delimiter lines that
// completion-style models sometimes echo back, and trims the result.
func SanitizeCompletion(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if roleTagLine.MatchString(line) || delimiterLine.MatchString(line) {
			continue
		}
		out = append(out, roleTagPrefix.ReplaceAllString(line, ""))
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
