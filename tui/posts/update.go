package posts

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/postboard/domain"
)

// Update handles messages for the post list.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorVisible()
		return m, nil

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case PostsLoadedMsg:
		if msg.ReqSeq != m.reqSeq {
			return m, nil
		}
		m.posts = msg.Posts
		m.loading = false
		m.errMsg = ""
		m.cursor = 0
		m.startIndex = 0
		m.log.Debug().Int("count", len(msg.Posts)).Msg("posts loaded")
		return m, nil

	case PostsErrorMsg:
		if msg.ReqSeq != m.reqSeq {
			return m, nil
		}
		return m.handleFetchError(msg.Err)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m Model) handleFetchError(err error) (Model, tea.Cmd) {
	m.loading = false
	m.log.Error().Err(err).Msg("error fetching posts")

	if errors.Is(err, domain.ErrUnauthorized) {
		m.errMsg = MsgUnauthorized
		if m.nav == nil {
			return m, nil
		}
		return m, m.nav.Navigate(LoginRoute)
	}
	m.errMsg = MsgFetchFailed
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Refresh):
		return m.Reload()

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
			m.ensureCursorVisible()
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.posts)-1 {
			m.cursor++
			m.ensureCursorVisible()
		}

	case key.Matches(msg, m.keys.Open):
		p, ok := m.SelectedPost()
		if !ok {
			break
		}
		return m, m.openPost(p.ID)
	}

	return m, nil
}
