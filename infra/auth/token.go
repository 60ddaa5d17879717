package auth

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// TokenProvider supplies the API token for the current session.
type TokenProvider interface {
	AccessToken() (string, error)
}

// FileTokenProvider reads an API token from a file on disk.
type FileTokenProvider struct {
	path string
}

// NewFileTokenProvider creates a TokenProvider that reads from the given file path.
func NewFileTokenProvider(path string) *FileTokenProvider {
	return &FileTokenProvider{path: path}
}

// Path returns the token file location.
func (f *FileTokenProvider) Path() string {
	return f.path
}

// AccessToken reads and returns the token, trimming whitespace.
// A missing or empty file yields an empty token: the API decides
// whether anonymous access is allowed.
func (f *FileTokenProvider) AccessToken() (string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading token from %s: %w", f.path, err)
	}
	return strings.TrimSpace(string(data)), nil
}
