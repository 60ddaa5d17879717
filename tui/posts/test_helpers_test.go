package posts

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/CrestNiraj12/postboard/domain"
)

type stubService struct {
	posts  []domain.Post
	err    error
	calls  int
	tokens []string
	ctxs   []context.Context
}

func (s *stubService) ListPosts(ctx context.Context, token string) ([]domain.Post, error) {
	s.calls++
	s.tokens = append(s.tokens, token)
	s.ctxs = append(s.ctxs, ctx)
	return s.posts, s.err
}

type navigatedMsg struct{ route string }

type recordingNav struct {
	routes []string
}

func (n *recordingNav) Navigate(route string) tea.Cmd {
	n.routes = append(n.routes, route)
	return func() tea.Msg { return navigatedMsg{route: route} }
}

func newTestModel(svc *stubService, nav *recordingNav, token string) Model {
	m := New(Deps{
		Service:   svc,
		Navigator: nav,
		Token:     token,
		Locale:    language.AmericanEnglish,
		Logger:    zerolog.Nop(),
	})
	m.width = 80
	return m
}

func makePost(id int64) domain.Post {
	return domain.Post{
		ID:             id,
		Title:          fmt.Sprintf("Title %d", id),
		Content:        fmt.Sprintf("body %d", id),
		AuthorUsername: fmt.Sprintf("author%d", id),
		CreatedAt:      time.Date(2024, 3, 5, 12, 0, 0, 0, time.Local),
	}
}

// loaded delivers a successful response for the model's current request.
func loaded(m Model, posts ...domain.Post) Model {
	updated, _ := m.Update(PostsLoadedMsg{Posts: posts, ReqSeq: m.reqSeq})
	return updated
}

// runCmd executes cmd and any batched children, returning all messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}
