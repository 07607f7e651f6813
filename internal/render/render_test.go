package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarkdownBasics(t *testing.T) {
	out := Markdown("hello **world**")
	require.Contains(t, out, "<strong>world</strong>")
}

func TestMarkdownStripsRawHTML(t *testing.T) {
	out := Markdown(`<script>alert("xss")</script>`)
	require.NotContains(t, out, "<script")

	// Inline raw HTML loses its tags but keeps the text.
	out = Markdown("hello <b onclick=alert(1)>bold</b> world")
	require.NotContains(t, out, "onclick")
	require.Contains(t, out, "bold")

	out = Markdown(`<img src=x onerror=alert(1)>`)
	require.NotContains(t, out, "onerror")
}

func TestMarkdownForcesNofollow(t *testing.T) {
	out := Markdown("[pills](http://example.com/pills)")
	require.Contains(t, out, `href="http://example.com/pills"`)
	require.Contains(t, out, "nofollow")
}

func TestMarkdownRestrictsLinkSchemes(t *testing.T) {
	out := Markdown("[click](javascript:alert(1))")
	require.NotContains(t, out, "javascript:")
}

func TestMarkdownHardWraps(t *testing.T) {
	out := Markdown("line one\nline two")
	require.Contains(t, out, "<br")
}

func TestTruncateCharThreshold(t *testing.T) {
	body := strings.Repeat("x", 1200)
	head, tail, truncated := Truncate(body, 10, 1024)
	require.True(t, truncated)
	require.Len(t, head, 1024)
	require.Len(t, tail, 176)
	require.Equal(t, body, head+tail)
}

func TestTruncateLineThresholdFirst(t *testing.T) {
	body := strings.TrimSuffix(strings.Repeat("short line\n", 15), "\n")
	head, tail, truncated := Truncate(body, 10, 1024)
	require.True(t, truncated)
	require.Len(t, strings.Split(head, "\n"), 10)
	require.Len(t, strings.Split(tail, "\n"), 5)
}

func TestTruncateShortBodyUntouched(t *testing.T) {
	head, tail, truncated := Truncate("just a line", 10, 1024)
	require.False(t, truncated)
	require.Equal(t, "just a line", head)
	require.Equal(t, "", tail)
}

func TestTruncateDisabledThresholds(t *testing.T) {
	body := strings.Repeat("x\n", 50)
	_, _, truncated := Truncate(body, 0, 0)
	require.False(t, truncated)
}

func TestTruncateMultibyteSafe(t *testing.T) {
	body := strings.Repeat("héllo wörld ", 100) // well past 1024 runes
	head, tail, truncated := Truncate(body, 0, 1024)
	require.True(t, truncated)
	require.Equal(t, body, head+tail)
	require.Equal(t, 1024, len([]rune(head)))
}
