package app

import "time"

// Comment is the stored wire form of a submission. Records are serialized to
// JSON once at ingestion and never rewritten; unknown fields in old records
// are ignored on read and absent optionals stay absent.
type Comment struct {
	UUID   string    `json:"uuid"`
	Author string    `json:"author"`
	Body   string    `json:"body"`
	Email  string    `json:"email,omitempty"`
	IP     string    `json:"ip,omitempty"`
	Site   string    `json:"site,omitempty"`
	Parent string    `json:"parent,omitempty"`
	Time   time.Time `json:"time"`
}

// Rendered is what the retrieval pipeline hands to the transport layer: body
// sanitized to HTML, author escaped, email and ip already stripped. ID is a
// 1-based display number assigned per request in final output order; UUID is
// the stable key.
type Rendered struct {
	ID        int    `json:"id"`
	UUID      string `json:"uuid"`
	Author    string `json:"author"`
	Body      string `json:"body"`
	BodyMore  string `json:"bodyMore,omitempty"`
	Truncated bool   `json:"truncated,omitempty"`

	Ago      string    `json:"ago"`
	Time     time.Time `json:"time"`
	Gravatar string    `json:"gravatar,omitempty"`

	Parent           string `json:"parent,omitempty"`
	Depth            int    `json:"depth"`
	CanReply         bool   `json:"canReply"`
	ThreadingEnabled bool   `json:"threadingEnabled"`
}

// SubmitInput carries one submission into the ingestion pipeline. IP and Site
// are captured by the transport from the request itself, not the form.
type SubmitInput struct {
	Discussion string
	Author     string
	Body       string
	Email      string
	Parent     string
	IP         string
	Site       string
}
