// Package spam classifies incoming comments before they reach storage.
// Filters are pure predicates over a candidate; the chain evaluates them in
// registration order and stops at the first positive match.
package spam

import "time"

// Candidate carries the submission fields a filter may inspect. Filters never
// mutate it.
type Candidate struct {
	Author string
	Body   string
	IP     string
	Site   string
	Time   time.Time
}

type Filter interface {
	Name() string
	IsSpam(c *Candidate) bool
}

// Chain is an explicit, ordered registry of filters built once at startup and
// injected into the ingestion pipeline.
type Chain struct {
	filters []Filter
}

func NewChain(filters ...Filter) *Chain {
	return &Chain{filters: filters}
}

// DefaultChain wires the stock policies: link-for-a-name authors, the known
// spam keyword, and the operator-maintained IP blacklist.
func DefaultChain(blacklistDir string) *Chain {
	return NewChain(
		HyperlinkAuthor{},
		Keyword{},
		IPBlacklist{Dir: blacklistDir},
	)
}

// Classify returns the name of the first filter that flags the candidate, or
// ("", false) when every filter passes it.
func (c *Chain) Classify(candidate *Candidate) (string, bool) {
	for _, f := range c.filters {
		if f.IsSpam(candidate) {
			return f.Name(), true
		}
	}
	return "", false
}
