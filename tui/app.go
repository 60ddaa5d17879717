package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"github.com/CrestNiraj12/postboard/app"
	"github.com/CrestNiraj12/postboard/infra/auth"
	"github.com/CrestNiraj12/postboard/tui/common"
	"github.com/CrestNiraj12/postboard/tui/detail"
	"github.com/CrestNiraj12/postboard/tui/login"
	"github.com/CrestNiraj12/postboard/tui/posts"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Posts     app.PostService
	Tokens    auth.TokenProvider
	TokenPath string
	Token     string // Initial session token
	Timeout   time.Duration
	Locale    language.Tag
	Logger    zerolog.Logger
}

// NavigateMsg asks the router to switch routes.
type NavigateMsg struct {
	Route string
}

// routeNavigator is the navigation capability handed to views.
type routeNavigator struct{}

func (routeNavigator) Navigate(route string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Route: route} }
}

type activeView int

const (
	listView activeView = iota
	loginView
	detailView
)

// App is the root Bubble Tea model. It routes between views and owns the
// session token.
type App struct {
	deps   Deps
	active activeView
	nav    posts.Navigator
	token  string
	posts  posts.Model
	login  login.Model
	detail detail.Model
	keys   common.KeyMap
	status string // Transient status message
	log    zerolog.Logger
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	nav := routeNavigator{}
	return App{
		deps:   deps,
		active: listView,
		nav:    nav,
		token:  deps.Token,
		posts: posts.New(posts.Deps{
			Service:   deps.Posts,
			Navigator: nav,
			Token:     deps.Token,
			Timeout:   deps.Timeout,
			Locale:    deps.Locale,
			Logger:    deps.Logger,
		}),
		keys: common.DefaultKeyMap(),
		log:  deps.Logger,
	}
}

// Init starts on the post list.
func (a App) Init() tea.Cmd {
	return a.posts.Init()
}

// Update handles messages and routes to the active view.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || (a.active == listView && key.Matches(msg, a.keys.Quit)) {
			a.posts.Stop()
			return a, tea.Quit
		}
		if a.active != listView && key.Matches(msg, a.keys.Back) {
			return a.enterList()
		}

	case tea.WindowSizeMsg:
		a.posts, _ = a.posts.Update(msg)
		return a, nil

	case spinner.TickMsg, posts.PostsLoadedMsg, posts.PostsErrorMsg:
		// The list owns these even while another route is shown.
		var cmd tea.Cmd
		a.posts, cmd = a.posts.Update(msg)
		return a, cmd

	case NavigateMsg:
		return a.navigate(msg.Route)

	case login.TokenLoadedMsg:
		// Late result after the user already left the login route.
		if a.active != loginView {
			return a, nil
		}
		if msg.Err != nil {
			a.login, _ = a.login.Update(msg)
			return a, nil
		}
		a.token = msg.Token
		a.status = ""
		return a.enterList()
	}

	var cmd tea.Cmd
	switch a.active {
	case listView:
		a.posts, cmd = a.posts.Update(msg)
	case loginView:
		a.login, cmd = a.login.Update(msg)
	}
	return a, cmd
}

func (a App) navigate(route string) (App, tea.Cmd) {
	a.log.Debug().Str("route", route).Msg("navigate")
	a.status = ""

	switch {
	case route == "/":
		return a.enterList()

	case route == posts.LoginRoute:
		a.active = loginView
		a.login = login.New(a.deps.Tokens, a.deps.TokenPath, a.posts.Err())
		return a, a.login.Init()

	case strings.HasPrefix(route, "/post/"):
		id, err := strconv.ParseInt(strings.TrimPrefix(route, "/post/"), 10, 64)
		if err != nil {
			break
		}
		p, ok := a.posts.PostByID(id)
		a.active = detailView
		a.detail = detail.New(id, p, ok)
		return a, nil
	}

	a.status = "Unknown route: " + route
	return a, nil
}

// enterList shows the list. Entering the route fetches exactly once: through
// SetAuth when the session token changed, otherwise as a fresh activation.
func (a App) enterList() (App, tea.Cmd) {
	a.active = listView
	var cmd tea.Cmd
	a.posts, cmd = a.posts.SetAuth(a.token, a.nav)
	if cmd == nil {
		a.posts, cmd = a.posts.Activate()
	}
	return a, cmd
}

// View renders the active view.
func (a App) View() string {
	var s string

	switch a.active {
	case listView:
		s = a.posts.View()
	case loginView:
		s = a.login.View()
	case detailView:
		s = a.detail.View()
	}

	if a.status != "" {
		s += "\n" + common.StatusBarStyle.Render(a.status)
	}

	return s
}
