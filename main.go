package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/postboard/infra/auth"
	"github.com/CrestNiraj12/postboard/infra/blogapi"
	"github.com/CrestNiraj12/postboard/infra/config"
	"github.com/CrestNiraj12/postboard/infra/logging"
	"github.com/CrestNiraj12/postboard/tui"
	"github.com/CrestNiraj12/postboard/tui/common"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type cliMode int

const (
	cliRun cliMode = iota
	cliVersion
	cliHelp
	cliInvalid
)

func parseCLIArgs(args []string) (cliMode, string) {
	if len(args) == 0 {
		return cliRun, ""
	}

	switch args[0] {
	case "--version", "-version", "-v":
		return cliVersion, ""
	case "--help", "-h", "help":
		return cliHelp, ""
	default:
		return cliInvalid, fmt.Sprintf("unexpected argument: %s", strings.Join(args, " "))
	}
}

func usage() string {
	return "Usage: postboard [--version|-version|-v] [--help|-h]"
}

func resolveVersionInfo(v, c, d, moduleVersion string, settings map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(settings["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		t := strings.TrimSpace(settings["vcs.time"])
		if t != "" {
			d = t
		}
	}
	return v, c, d
}

func buildSettingsMap(in []debug.BuildSetting) map[string]string {
	out := make(map[string]string, len(in))
	for _, s := range in {
		out[s.Key] = s.Value
	}
	return out
}

func resolvedRuntimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, buildSettingsMap(info.Settings))
}

func main() {
	mode, msg := parseCLIArgs(os.Args[1:])
	switch mode {
	case cliVersion:
		v, c, d := resolvedRuntimeVersionInfo(version, commit, date)
		fmt.Printf("postboard %s\ncommit: %s\nbuilt: %s\n", v, c, d)
		return
	case cliHelp:
		fmt.Println(usage())
		return
	case cliInvalid:
		fmt.Fprintf(os.Stderr, "%s\n%s\n", msg, usage())
	}

	// 1. Load config from .env files, the config file and the environment.
	config.LoadDotEnv()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, logCloser, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	// 2. Build infrastructure.
	tokenProvider := auth.NewFileTokenProvider(cfg.TokenPath)
	token, err := tokenProvider.AccessToken()
	if err != nil {
		// Unreadable token: start anonymous and let the API decide.
		log.Warn().Err(err).Msg("token unavailable")
	}
	httpClient := blogapi.NewClient(cfg.APIURL, log)
	postSvc := blogapi.NewPostService(httpClient)

	log.Info().Str("api", cfg.APIURL).Str("version", version).Msg("starting")

	// 3. Wire root TUI model.
	rootModel := tui.NewApp(tui.Deps{
		Posts:     postSvc,
		Tokens:    tokenProvider,
		TokenPath: tokenProvider.Path(),
		Token:     token,
		Timeout:   cfg.RequestTimeout,
		Locale:    common.ParseLocale(cfg.Locale),
		Logger:    log,
	})

	// 4. Run.
	p := tea.NewProgram(rootModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("program exited")
		logCloser.Close()
		fmt.Fprintf(os.Stderr, "postboard: %v\n", err)
		os.Exit(1)
	}
}
