package spam

import "regexp"

var urlAuthor = regexp.MustCompile(`^https?://`)

// HyperlinkAuthor rejects submitters whose display name is itself a URL.
// Nobody is called http://, but plenty of link-dropping bots are.
type HyperlinkAuthor struct{}

func (HyperlinkAuthor) Name() string { return "hyperlink-author" }

func (HyperlinkAuthor) IsSpam(c *Candidate) bool {
	if c == nil {
		return false
	}
	return urlAuthor.MatchString(c.Author)
}
