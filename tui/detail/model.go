package detail

import (
	"fmt"
	"strings"

	"github.com/CrestNiraj12/postboard/domain"
	"github.com/CrestNiraj12/postboard/tui/common"
)

// Model is the post detail route. Only the header is shown; the body
// belongs to a dedicated detail screen.
type Model struct {
	id    int64
	post  domain.Post
	known bool
	keys  common.KeyMap
}

// New creates the detail view for id. post is used when known is true.
func New(id int64, post domain.Post, known bool) Model {
	return Model{id: id, post: post, known: known, keys: common.DefaultKeyMap()}
}

// ID returns the routed post id.
func (m Model) ID() int64 {
	return m.id
}

// View renders the breadcrumb and, when available, the post header.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render(fmt.Sprintf("Blog Posts › Post #%d", m.id)))
	b.WriteString("\n")
	if m.known {
		b.WriteString("  " + common.TitleStyle.Render(m.post.Title) + "\n")
		b.WriteString("  Posted by: " + common.AuthorStyle.Render(m.post.AuthorUsername) + "\n")
	} else {
		b.WriteString(common.MutedStyle.Render("  " + domain.ErrPostNotFound.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(common.HelpLine(m.keys.Back, m.keys.Quit))
	return b.String()
}
