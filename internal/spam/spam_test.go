package spam

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func candidate(author, body string) *Candidate {
	return &Candidate{
		Author: author,
		Body:   body,
		IP:     "127.0.0.1",
		Site:   "example.com",
		Time:   time.Now(),
	}
}

func TestHyperlinkAuthor(t *testing.T) {
	f := HyperlinkAuthor{}

	require.True(t, f.IsSpam(candidate("http://x", "hello")))
	require.True(t, f.IsSpam(candidate("https://x", "hello")))
	require.True(t, f.IsSpam(candidate("http://example.com/cheap-pills", "hello")))

	require.False(t, f.IsSpam(candidate("Steve", "hello")))
	require.False(t, f.IsSpam(candidate("Steve", "see http://example.com")))
	require.False(t, f.IsSpam(nil))
}

func TestKeyword(t *testing.T) {
	f := Keyword{}

	require.True(t, f.IsSpam(candidate("Steve", "buy viagra now")))
	require.True(t, f.IsSpam(candidate("Steve", "Buy VIAGRA now")))
	require.True(t, f.IsSpam(candidate("Steve", "bViAgRab")))

	require.False(t, f.IsSpam(candidate("Steve", "a perfectly nice comment")))
	require.False(t, f.IsSpam(nil))
}

func TestIPBlacklist(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "10.0.0.1"), nil, 0o644))

	f := IPBlacklist{Dir: dir}

	banned := candidate("Steve", "hello")
	banned.IP = "10.0.0.1"
	require.True(t, f.IsSpam(banned))

	clean := candidate("Steve", "hello")
	clean.IP = "10.0.0.2"
	require.False(t, f.IsSpam(clean))

	// Path separators in a forged address must not probe outside the dir.
	forged := candidate("Steve", "hello")
	forged.IP = "../10.0.0.1"
	require.False(t, f.IsSpam(forged))
}

func TestChainShortCircuits(t *testing.T) {
	chain := DefaultChain(t.TempDir())

	name, isSpam := chain.Classify(candidate("https://x", "viagra"))
	require.True(t, isSpam)
	require.Equal(t, "hyperlink-author", name)

	name, isSpam = chain.Classify(candidate("Steve", "hello"))
	require.False(t, isSpam)
	require.Equal(t, "", name)
}

func TestEmptyChainIsClean(t *testing.T) {
	_, isSpam := NewChain().Classify(candidate("https://x", "viagra"))
	require.False(t, isSpam)
}
