package app

import (
	"context"
	"encoding/json"
	"html"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"commentd/internal/config"
	"commentd/internal/render"
	"commentd/internal/spam"
	"commentd/internal/storage"
	"commentd/internal/util"
)

const (
	SortForward = "forward"
	SortReverse = "reverse"
)

type commentStore interface {
	Add(ctx context.Context, discussionID, record string) error
	Get(ctx context.Context, discussionID string) ([]string, error)
}

type Service struct {
	cfg   config.Config
	store commentStore
	chain *spam.Chain
	now   func() time.Time
}

func NewService(cfg config.Config, store storage.Store, chain *spam.Chain) *Service {
	return &Service{cfg: cfg, store: store, chain: chain, now: time.Now}
}

// Submit runs the ingestion pipeline: validate, enrich, screen, mint a uuid,
// serialize, store. Every gate is hard; nothing reaches storage unless all of
// them pass, so a rejection leaves no partial state behind.
func (s *Service) Submit(ctx context.Context, in SubmitInput) error {
	if in.Discussion == "" {
		return missingField("id")
	}
	if strings.Contains(in.Discussion, "/") {
		return domainError(400, "INVALID_ID", "Discussion ids must not contain '/'", nil)
	}
	if in.Author == "" {
		return missingField("author")
	}
	if in.Body == "" {
		return missingField("body")
	}

	comment := Comment{
		Author: in.Author,
		Body:   in.Body,
		Email:  in.Email,
		Parent: in.Parent,
		IP:     in.IP,
		Site:   in.Site,
		Time:   s.now(),
	}

	candidate := &spam.Candidate{
		Author: comment.Author,
		Body:   comment.Body,
		IP:     comment.IP,
		Site:   comment.Site,
		Time:   comment.Time,
	}
	if name, isSpam := s.chain.Classify(candidate); isSpam {
		log.Printf("comment rejected as spam by filter %q (discussion=%s ip=%s)", name, in.Discussion, in.IP)
		return domainError(403, "SPAM_REJECTED",
			"The server marked this comment as likely to be SPAM.",
			map[string]any{"filter": name})
	}

	comment.UUID = uuid.NewString()

	record, err := json.Marshal(comment)
	if err != nil {
		return domainError(500, "STORAGE_FAILED", "Failed to serialize comment", nil)
	}
	if err := s.store.Add(ctx, in.Discussion, string(record)); err != nil {
		log.Printf("storing comment failed (discussion=%s): %v", in.Discussion, err)
		return domainError(500, "STORAGE_FAILED", "Failed to store comment", nil)
	}
	return nil
}

// Fetch runs the retrieval pipeline and returns the discussion's comments in
// time order (ties keep storage order), display-numbered 1..n over the final
// ordering. An unknown discussion yields an empty, non-nil slice.
func (s *Service) Fetch(ctx context.Context, discussionID, sortDir string) ([]Rendered, error) {
	records, err := s.store.Get(ctx, discussionID)
	if err != nil {
		log.Printf("reading comments failed (discussion=%s): %v", discussionID, err)
		return nil, domainError(500, "STORAGE_FAILED", "Failed to read comments", nil)
	}

	// Records that no longer parse are skipped, never fatal: one corrupt row
	// must not take the whole discussion down.
	comments := make([]Comment, 0, len(records))
	for _, record := range records {
		var c Comment
		if err := json.Unmarshal([]byte(record), &c); err != nil {
			continue
		}
		comments = append(comments, c)
	}

	depths := s.resolveDepths(comments)

	now := s.now()
	result := make([]Rendered, 0, len(comments))
	for _, c := range comments {
		head, tail, truncated := render.Truncate(c.Body, s.cfg.TruncateLines, s.cfg.TruncateChars)

		r := Rendered{
			UUID:             c.UUID,
			Author:           html.EscapeString(c.Author),
			Body:             render.Markdown(head),
			Truncated:        truncated,
			Ago:              util.TimeAgo(c.Time, now),
			Time:             c.Time,
			Depth:            1,
			CanReply:         true,
			ThreadingEnabled: s.cfg.Threading,
		}
		if truncated {
			r.BodyMore = render.Markdown(tail)
		}
		// The stored email is consumed here to derive the avatar and then
		// dropped; neither it nor the submitter's IP ever leaves the service.
		if c.Email != "" {
			r.Gravatar = util.GravatarURL(c.Email)
		}
		if s.cfg.Threading {
			if d, ok := depths[c.UUID]; ok {
				r.Depth = d
			}
			if r.Depth > 1 {
				r.Parent = c.Parent
			}
			if s.cfg.MaxDepth > 0 && r.Depth >= s.cfg.MaxDepth {
				r.CanReply = false
			}
		}
		result = append(result, r)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Time.Before(result[j].Time)
	})
	if sortDir == SortReverse || (sortDir == "" && s.cfg.Sort == SortReverse) {
		for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
			result[i], result[j] = result[j], result[i]
		}
	}
	for i := range result {
		result[i].ID = i + 1
	}
	return result, nil
}

// resolveDepths indexes the batch by uuid, then resolves each comment's
// nesting depth with memoization. Storage order is meaningless, so a child
// may well be read before its parent. A comment whose declared parent is not
// in the discussion (removed out-of-band, or forged) is treated as top-level
// rather than faulting; a parent cycle is broken at the node that closes it.
func (s *Service) resolveDepths(comments []Comment) map[string]int {
	if !s.cfg.Threading {
		return nil
	}

	parents := make(map[string]string, len(comments))
	for _, c := range comments {
		if c.UUID != "" {
			parents[c.UUID] = c.Parent
		}
	}

	depths := make(map[string]int, len(comments))
	var resolve func(id string, trail map[string]bool) int
	resolve = func(id string, trail map[string]bool) int {
		if d, ok := depths[id]; ok {
			return d
		}
		if trail[id] {
			// Parent cycle (forged parent values); break it here.
			return 1
		}
		trail[id] = true
		d := 1
		if parent := parents[id]; parent != "" {
			if _, exists := parents[parent]; exists {
				d = resolve(parent, trail) + 1
			}
		}
		depths[id] = d
		return d
	}
	for _, c := range comments {
		if c.UUID != "" {
			resolve(c.UUID, map[string]bool{})
		}
	}
	return depths
}
