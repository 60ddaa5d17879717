package blogapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/CrestNiraj12/postboard/domain"
)

const postsPath = "/api/posts/"

// postService implements app.PostService against the blog REST API.
type postService struct {
	client *Client
}

// NewPostService creates a PostService backed by the blog API.
func NewPostService(client *Client) *postService {
	return &postService{client: client}
}

// apiPost is the wire shape of a post.
type apiPost struct {
	ID             int64           `json:"id"`
	Title          string          `json:"title"`
	Content        string          `json:"content"`
	Image          json.RawMessage `json:"image"`
	ImageURL       *string         `json:"image_url"`
	AuthorUsername string          `json:"author_username"`
	CreatedAt      string          `json:"created_at"`
}

func (s *postService) ListPosts(ctx context.Context, token string) ([]domain.Post, error) {
	data, err := s.client.Get(ctx, postsPath, token)
	if err != nil {
		return nil, fmt.Errorf("fetching posts: %w", err)
	}

	var posts []apiPost
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("parsing posts: %w", err)
	}
	return s.mapPosts(posts), nil
}

func (s *postService) mapPosts(in []apiPost) []domain.Post {
	out := make([]domain.Post, 0, len(in))
	for _, p := range in {
		createdAt, err := parseCreatedAt(p.CreatedAt)
		if err != nil {
			s.client.log.Warn().Err(err).Int64("post_id", p.ID).Msg("unparseable created_at")
		}

		imageURL := ""
		if p.ImageURL != nil {
			imageURL = strings.TrimSpace(*p.ImageURL)
		}

		out = append(out, domain.Post{
			ID:             p.ID,
			Title:          sanitizeForTerminal(p.Title),
			Content:        sanitizeForTerminal(p.Content),
			HasImage:       truthy(p.Image),
			ImageURL:       imageURL,
			AuthorUsername: sanitizeForTerminal(p.AuthorUsername),
			CreatedAt:      createdAt,
		})
	}
	return out
}

// naiveLayout matches timestamps without an offset, e.g. Django with USE_TZ=False.
const naiveLayout = "2006-01-02T15:04:05.999999999"

// parseCreatedAt accepts RFC 3339, then naive and date-only values in local
// time, the way a browser's Date does.
func parseCreatedAt(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(naiveLayout, raw, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(time.DateOnly, raw, time.Local); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("parsing created_at %q: unsupported format", raw)
}

// truthy reports whether a JSON value would be truthy in a browser:
// absent, null, false, "" and 0 are not.
func truthy(raw json.RawMessage) bool {
	v := bytes.TrimSpace(raw)
	if len(v) == 0 {
		return false
	}
	switch string(v) {
	case "null", "false", `""`, "0", "0.0":
		return false
	}
	return true
}

// sanitizeForTerminal strips escape sequences and control characters so
// server-supplied text cannot drive the terminal. Newlines and tabs stay.
func sanitizeForTerminal(s string) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
