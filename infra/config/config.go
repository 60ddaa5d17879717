package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	defaultAPIURL   = "http://localhost:8000"
	defaultTimeout  = 10 * time.Second
	defaultLogLevel = "info"

	// LogDisabled as POSTBOARD_LOG turns logging off.
	LogDisabled = "-"
)

// Config holds application-level configuration.
type Config struct {
	APIURL         string        // e.g. "http://localhost:8000"
	TokenPath      string        // Path to file containing the API token
	RequestTimeout time.Duration // Upper bound for a single API call
	LogPath        string        // Log file, or LogDisabled
	LogLevel       string
	Locale         string // BCP 47 or POSIX locale used for dates
}

// Load reads configuration from the config file and environment variables.
// Environment always wins over the file.
//
//	POSTBOARD_CONFIG    : YAML config file (default: ~/.config/postboard/config.yaml)
//	POSTBOARD_API_URL   : Blog API base URL (default: http://localhost:8000)
//	POSTBOARD_TOKEN     : Path to token file (default: ~/.config/postboard/token)
//	POSTBOARD_TIMEOUT   : Request timeout as a Go duration (default: 10s)
//	POSTBOARD_LOG       : Log file path, "-" to disable (default: ~/.config/postboard/postboard.log)
//	POSTBOARD_LOG_LEVEL : zerolog level (default: info)
//	POSTBOARD_LOCALE    : Date locale (default: LC_ALL, LC_TIME, then LANG)
func Load() (Config, error) {
	dir, err := configDir()
	if err != nil {
		return Config{}, err
	}

	filePath := os.Getenv("POSTBOARD_CONFIG")
	if filePath == "" {
		filePath = filepath.Join(dir, "config.yaml")
	}
	fc, err := loadFile(filePath)
	if err != nil {
		return Config{}, err
	}

	apiURL, err := normalizeAPIURL(firstNonEmpty(os.Getenv("POSTBOARD_API_URL"), fc.APIURL, defaultAPIURL))
	if err != nil {
		return Config{}, err
	}

	timeout := defaultTimeout
	if raw := firstNonEmpty(os.Getenv("POSTBOARD_TIMEOUT"), fc.Timeout); raw != "" {
		timeout, err = time.ParseDuration(raw)
		if err != nil || timeout <= 0 {
			return Config{}, fmt.Errorf("invalid POSTBOARD_TIMEOUT %q: must be a positive duration", raw)
		}
	}

	return Config{
		APIURL:         apiURL,
		TokenPath:      firstNonEmpty(os.Getenv("POSTBOARD_TOKEN"), fc.TokenPath, filepath.Join(dir, "token")),
		RequestTimeout: timeout,
		LogPath:        firstNonEmpty(os.Getenv("POSTBOARD_LOG"), fc.LogPath, filepath.Join(dir, "postboard.log")),
		LogLevel:       firstNonEmpty(os.Getenv("POSTBOARD_LOG_LEVEL"), fc.LogLevel, defaultLogLevel),
		Locale: firstNonEmpty(
			os.Getenv("POSTBOARD_LOCALE"),
			fc.Locale,
			os.Getenv("LC_ALL"),
			os.Getenv("LC_TIME"),
			os.Getenv("LANG"),
		),
	}, nil
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", "postboard"), nil
}

func normalizeAPIURL(raw string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("invalid POSTBOARD_API_URL: must be an absolute URL")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("invalid POSTBOARD_API_URL: scheme must be http or https")
	}
	return strings.TrimRight(parsed.String(), "/"), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
