package auth

import (
	"fmt"
	"os"
	"strings"
)

// TokenProvider supplies the bearer token for the comment service.
// An empty token means the request is sent unauthenticated.
type TokenProvider interface {
	AccessToken() (string, error)
}

// FileTokenProvider reads a bearer token from a file on disk.
type FileTokenProvider struct {
	path string
}

// NewFileTokenProvider creates a TokenProvider that reads from the given file path.
func NewFileTokenProvider(path string) *FileTokenProvider {
	return &FileTokenProvider{path: path}
}

// AccessToken reads and returns the token, trimming whitespace.
func (f *FileTokenProvider) AccessToken() (string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", fmt.Errorf("reading token from %s: %w", f.path, err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("token file %s is empty", f.path)
	}

	return token, nil
}

// StaticToken is a token given directly, e.g. through the environment.
type StaticToken string

// AccessToken returns the trimmed token.
func (s StaticToken) AccessToken() (string, error) {
	return strings.TrimSpace(string(s)), nil
}

// FromSettings picks the token source: an inline token wins over a token
// file, and with neither the client runs unauthenticated (nil provider).
func FromSettings(token, tokenPath string) TokenProvider {
	if strings.TrimSpace(token) != "" {
		return StaticToken(token)
	}
	if strings.TrimSpace(tokenPath) != "" {
		return NewFileTokenProvider(tokenPath)
	}
	return nil
}
