package domain

import "time"

// Post is a blog entry as returned by the backend. Read-only on the client.
type Post struct {
	ID             int64
	Title          string
	Content        string // Plain text, terminal escapes stripped
	HasImage       bool
	ImageURL       string
	AuthorUsername string
	CreatedAt      time.Time
}
