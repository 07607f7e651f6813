package render

import "strings"

// Truncate splits an over-long raw body into a display head and a retained
// tail. The line threshold is checked before the character threshold; a zero
// threshold disables that check. Both halves are returned so the consumer can
// reveal the remainder on demand; nothing is discarded.
func Truncate(body string, maxLines, maxChars int) (head, tail string, truncated bool) {
	if maxLines > 0 {
		lines := strings.Split(body, "\n")
		if len(lines) > maxLines {
			head = strings.Join(lines[:maxLines], "\n")
			tail = strings.Join(lines[maxLines:], "\n")
			return head, tail, true
		}
	}
	if maxChars > 0 {
		runes := []rune(body)
		if len(runes) > maxChars {
			return string(runes[:maxChars]), string(runes[maxChars:]), true
		}
	}
	return body, "", false
}
