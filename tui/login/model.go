package login

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/postboard/infra/auth"
	"github.com/CrestNiraj12/postboard/tui/common"
)

// TokenLoadedMsg is sent after the token source has been re-read.
type TokenLoadedMsg struct {
	Token string
	Err   error
}

// Model is the login route. It does not exchange credentials; it waits for
// the user to place a token and re-reads it on demand.
type Model struct {
	tokens    auth.TokenProvider
	tokenPath string
	reason    string
	checking  bool
	err       error
	keys      common.KeyMap
}

// New creates the login view. reason is shown above the instructions.
func New(tokens auth.TokenProvider, tokenPath, reason string) Model {
	return Model{
		tokens:    tokens,
		tokenPath: tokenPath,
		reason:    reason,
		keys:      common.DefaultKeyMap(),
	}
}

// Init does nothing; the login view waits for input.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the login view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TokenLoadedMsg:
		m.checking = false
		m.err = msg.Err
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Open) && !m.checking {
			m.checking = true
			m.err = nil
			return m, m.readToken()
		}
	}
	return m, nil
}

func (m Model) readToken() tea.Cmd {
	tokens := m.tokens
	return func() tea.Msg {
		if tokens == nil {
			return TokenLoadedMsg{Err: fmt.Errorf("no token source configured")}
		}
		token, err := tokens.AccessToken()
		return TokenLoadedMsg{Token: token, Err: err}
	}
}

// View renders the login prompt.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render("Log in"))
	b.WriteString("\n")
	if m.reason != "" {
		b.WriteString(common.ErrorStyle.Render("  " + m.reason))
		b.WriteString("\n\n")
	}
	b.WriteString("  Save your API token to:\n")
	b.WriteString("    " + common.AuthorStyle.Render(m.tokenPath) + "\n\n")
	switch {
	case m.checking:
		b.WriteString(common.MutedStyle.Render("  Reading token..."))
	case m.err != nil:
		b.WriteString(common.ErrorStyle.Render("  Error: " + m.err.Error()))
	default:
		b.WriteString(common.MutedStyle.Render("  Press enter once the token is in place."))
	}
	b.WriteString("\n\n")
	b.WriteString(common.HelpLine(m.keys.Open, m.keys.Back, m.keys.Quit))
	return b.String()
}
