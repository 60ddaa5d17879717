package posts

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/CrestNiraj12/postboard/app"
	"github.com/CrestNiraj12/postboard/domain"
	"github.com/CrestNiraj12/postboard/tui/common"
)

const (
	// MsgUnauthorized is shown when the API rejects the token.
	MsgUnauthorized = "Please log in to view posts"
	// MsgFetchFailed is shown for every other failure.
	MsgFetchFailed = "Failed to fetch posts. Please try again later."

	// LoginRoute is where an unauthorized fetch sends the user.
	LoginRoute = "/login"
)

// Navigator pushes a route. Implementations must be comparable so the view
// can tell when a different navigator was injected.
type Navigator interface {
	Navigate(route string) tea.Cmd
}

// --- Messages ---

// PostsLoadedMsg is sent when a fetch completes successfully.
type PostsLoadedMsg struct {
	Posts  []domain.Post
	ReqSeq int
}

// PostsErrorMsg is sent when a fetch fails.
type PostsErrorMsg struct {
	Err    error
	ReqSeq int
}

// Deps holds the view's injected collaborators.
type Deps struct {
	Service   app.PostService
	Navigator Navigator
	Token     string
	Timeout   time.Duration // per fetch; zero means no deadline
	Locale    language.Tag
	Logger    zerolog.Logger
}

// --- Model ---

// Model is the post list view. Exactly one of loading, errMsg or posts
// drives the render, in that precedence.
type Model struct {
	service app.PostService
	nav     Navigator
	token   string
	timeout time.Duration
	locale  language.Tag
	log     zerolog.Logger

	posts   []domain.Post
	loading bool
	errMsg  string

	reqSeq int
	ctx    context.Context
	cancel context.CancelFunc

	cursor     int
	startIndex int
	width      int
	height     int
	keys       common.KeyMap
	spinner    spinner.Model
}

// New creates the view and prepares its first activation; Init issues it.
func New(deps Deps) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6600"))

	m := Model{
		service: deps.Service,
		nav:     deps.Navigator,
		token:   deps.Token,
		timeout: deps.Timeout,
		locale:  deps.Locale,
		log:     deps.Logger,
		keys:    common.DefaultKeyMap(),
		spinner: s,
	}
	m.beginRequest()
	return m
}

// Init starts the first fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.fetchPosts(m.ctx, m.reqSeq),
		m.spinner.Tick,
	)
}

// Activate re-runs the fetch unconditionally, as when the route is entered.
func (m Model) Activate() (Model, tea.Cmd) {
	return m.Reload()
}

// SetAuth updates the view's inputs. It fetches once when the token or the
// navigator changed and does nothing for identical inputs.
func (m Model) SetAuth(token string, nav Navigator) (Model, tea.Cmd) {
	if token == m.token && nav == m.nav {
		return m, nil
	}
	m.token = token
	m.nav = nav
	return m.Reload()
}

// Reload cancels any in-flight fetch and starts a new one.
func (m Model) Reload() (Model, tea.Cmd) {
	m.beginRequest()
	return m, m.fetchPosts(m.ctx, m.reqSeq)
}

// Stop cancels the in-flight fetch, if any.
func (m Model) Stop() {
	if m.cancel != nil {
		m.cancel()
	}
}

func (m *Model) beginRequest() {
	if m.cancel != nil {
		m.cancel()
	}
	m.reqSeq++
	if m.timeout > 0 {
		m.ctx, m.cancel = context.WithTimeout(context.Background(), m.timeout)
	} else {
		m.ctx, m.cancel = context.WithCancel(context.Background())
	}
	m.loading = true
	m.errMsg = ""
}

// Posts returns the loaded posts in API order.
func (m Model) Posts() []domain.Post {
	return m.posts
}

// Loading returns whether a fetch is in flight.
func (m Model) Loading() bool {
	return m.loading
}

// Err returns the user-visible error message, if any.
func (m Model) Err() string {
	return m.errMsg
}

// Token returns the token the current fetch was issued with.
func (m Model) Token() string {
	return m.token
}

// Cursor returns the selected card index.
func (m Model) Cursor() int {
	return m.cursor
}

// PostByID looks up a loaded post.
func (m Model) PostByID(id int64) (domain.Post, bool) {
	for _, p := range m.posts {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Post{}, false
}

// SelectedPost returns the highlighted post, if any.
func (m Model) SelectedPost() (domain.Post, bool) {
	if m.loading || m.errMsg != "" || len(m.posts) == 0 {
		return domain.Post{}, false
	}
	return m.posts[m.cursor], true
}
