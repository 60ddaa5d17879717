package posts

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) fetchPosts(ctx context.Context, reqSeq int) tea.Cmd {
	service := m.service
	token := m.token
	return func() tea.Msg {
		posts, err := service.ListPosts(ctx, token)
		if err != nil {
			return PostsErrorMsg{Err: err, ReqSeq: reqSeq}
		}
		return PostsLoadedMsg{Posts: posts, ReqSeq: reqSeq}
	}
}

// PostRoute is the detail route for a post id.
func PostRoute(id int64) string {
	return fmt.Sprintf("/post/%d", id)
}

func (m Model) openPost(id int64) tea.Cmd {
	if m.nav == nil {
		return nil
	}
	return m.nav.Navigate(PostRoute(id))
}
