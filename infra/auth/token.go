package auth

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// TokenProvider supplies an access token for API authentication.
type TokenProvider interface {
	AccessToken() (string, error)
}

// FileTokenProvider reads a bearer token from a file on disk. Reads are
// cached briefly so per-request token lookups do not hit the filesystem.
type FileTokenProvider struct {
	path string

	mu       sync.Mutex
	cached   string
	cachedAt time.Time
}

const tokenCacheTTL = 30 * time.Second

// NewFileTokenProvider creates a TokenProvider that reads from the given file path.
func NewFileTokenProvider(path string) *FileTokenProvider {
	return &FileTokenProvider{path: path}
}

// AccessToken reads and returns the token, trimming whitespace.
func (f *FileTokenProvider) AccessToken() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.cached != "" && time.Since(f.cachedAt) < tokenCacheTTL {
		return f.cached, nil
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", fmt.Errorf("reading token from %s: %w", f.path, err)
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("token file %s is empty", f.path)
	}

	f.cached = token
	f.cachedAt = time.Now()
	return token, nil
}

// StaticTokenProvider returns a fixed token. Used when the token comes
// straight from the environment instead of a file.
type StaticTokenProvider string

// AccessToken returns the fixed token.
func (s StaticTokenProvider) AccessToken() (string, error) {
	if strings.TrimSpace(string(s)) == "" {
		return "", fmt.Errorf("empty static token")
	}
	return string(s), nil
}
