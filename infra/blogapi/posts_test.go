package blogapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CrestNiraj12/postboard/domain"
)

func newTestService(t *testing.T, h http.HandlerFunc) *postService {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewPostService(NewClient(srv.URL+"/", zerolog.Nop()))
}

func TestListPosts_RequestShapeAndMapping(t *testing.T) {
	var gotAuth, gotPath, gotMethod string
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotMethod = r.Method
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{
				"id":              7,
				"title":           "Hello\x1b[31m red",
				"content":         "line1\nline2\x07",
				"image":           "/media/a.png",
				"image_url":       "http://localhost:8000/media/a.png",
				"author_username": "alice",
				"created_at":      "2024-03-05T10:20:30.123456Z",
			},
			{
				"id":              8,
				"title":           "Plain",
				"content":         "text",
				"image":           nil,
				"image_url":       nil,
				"author_username": "bob",
				"created_at":      "not-a-time",
			},
			{
				"id":              9,
				"title":           "Naive",
				"content":         "c",
				"author_username": "carol",
				"created_at":      "2024-03-05T10:20:30.123456",
			},
			{
				"id":              10,
				"title":           "Date only",
				"content":         "c",
				"author_username": "dave",
				"created_at":      "2024-03-05",
			},
		})
	})

	posts, err := svc.ListPosts(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/api/posts/", gotPath)
	assert.Equal(t, "Token tok", gotAuth)

	require.Len(t, posts, 4)
	first := posts[0]
	assert.EqualValues(t, 7, first.ID)
	assert.Equal(t, "Hello red", first.Title)
	assert.Equal(t, "line1\nline2", first.Content)
	assert.True(t, first.HasImage)
	assert.Equal(t, "http://localhost:8000/media/a.png", first.ImageURL)
	assert.Equal(t, "alice", first.AuthorUsername)
	assert.Equal(t, time.Date(2024, 3, 5, 10, 20, 30, 123456000, time.UTC), first.CreatedAt.UTC())

	second := posts[1]
	assert.False(t, second.HasImage)
	assert.Empty(t, second.ImageURL)
	assert.True(t, second.CreatedAt.IsZero())

	naive := posts[2]
	assert.True(t, naive.CreatedAt.Equal(time.Date(2024, 3, 5, 10, 20, 30, 123456000, time.Local)), "naive timestamp is local time: %v", naive.CreatedAt)
	assert.False(t, naive.HasImage, "absent image field is falsy")

	dateOnly := posts[3]
	assert.True(t, dateOnly.CreatedAt.Equal(time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local)), "date-only is local midnight: %v", dateOnly.CreatedAt)
}

func TestParseCreatedAt_LogsUnparseable(t *testing.T) {
	var buf bytes.Buffer
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":3,"created_at":"yesterday"}]`))
	}))
	t.Cleanup(srv.Close)
	svc := NewPostService(NewClient(srv.URL, zerolog.New(&buf)))

	posts, err := svc.ListPosts(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.True(t, posts[0].CreatedAt.IsZero())
	assert.Contains(t, buf.String(), "unparseable created_at")
	assert.Contains(t, buf.String(), `"post_id":3`)

	_, err = parseCreatedAt("2024-03-05T10:20:30+02:00")
	assert.NoError(t, err)
}

func TestListPosts_EmptyTokenStillSendsHeader(t *testing.T) {
	var gotAuth string
	var present bool
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		_, present = r.Header["Authorization"]
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte("[]"))
	})

	posts, err := svc.ListPosts(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, posts)
	assert.True(t, present, "authorization header must be sent")
	assert.Contains(t, gotAuth, "Token")
}

func TestListPosts_UnauthorizedMapsToSentinel(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Invalid token."}`, http.StatusUnauthorized)
	})

	_, err := svc.ListPosts(context.Background(), "bad")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusUnauthorized, se.StatusCode)
	assert.Contains(t, se.Body, "Invalid token")
}

func TestListPosts_ServerErrorIsNotUnauthorized(t *testing.T) {
	for _, code := range []int{http.StatusForbidden, http.StatusNotFound, http.StatusInternalServerError} {
		svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
		})
		_, err := svc.ListPosts(context.Background(), "tok")
		require.Error(t, err)
		assert.False(t, errors.Is(err, domain.ErrUnauthorized), "status %d", code)
	}
}

func TestListPosts_MalformedBody(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"}`))
	})
	_, err := svc.ListPosts(context.Background(), "tok")
	require.Error(t, err)
}

func TestListPosts_HonorsContextCancellation(t *testing.T) {
	release := make(chan struct{})
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.ListPosts(ctx, "tok")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestTruthy(t *testing.T) {
	cases := map[string]bool{
		``:               false,
		`null`:           false,
		`false`:          false,
		`""`:             false,
		`0`:              false,
		`true`:           true,
		`"/media/x.jpg"`: true,
		`1`:              true,
	}
	for in, want := range cases {
		assert.Equal(t, want, truthy(json.RawMessage(in)), "input %q", in)
	}
}

func TestSanitizeForTerminal_StripsMalformedSequences(t *testing.T) {
	in := "a\x1b[9999;9999Xb\x01c\x7fd"
	got := sanitizeForTerminal(in)
	assert.Equal(t, "abcd", got)
}
