package spam

import "regexp"

var spamKeyword = regexp.MustCompile(`(?i)viagra`)

// Keyword rejects bodies mentioning the vendor name that accounts for most of
// the unsolicited-ad traffic this service ever sees.
type Keyword struct{}

func (Keyword) Name() string { return "keyword" }

func (Keyword) IsSpam(c *Candidate) bool {
	if c == nil {
		return false
	}
	return spamKeyword.MatchString(c.Body)
}
