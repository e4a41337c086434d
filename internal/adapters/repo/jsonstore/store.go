package jsonstore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/terabox-cookie-cli/internal/adapters/repo/fsutil"
	"github.com/bnema/terabox-cookie-cli/internal/domain"
	"github.com/bnema/terabox-cookie-cli/internal/ports"
	"github.com/spf13/viper"
)

const (
	cookiesPathKey    = "cookies.path"
	cookiesFileMode   = 0o600
	cookiesDirMode    = 0o700
	cookiesConfigDir  = ".tbc"
	cookiesConfigFile = "cookies.json"
	tempFilePattern   = ".cookies-*.json.tmp"
)

// Store keeps the request text of every account in a single JSON object
// keyed by display name. Writers are serialised per path and files are
// replaced atomically, so concurrent regenerations never lose an entry.
type Store struct {
	path string
	mu   *sync.RWMutex
}

var _ ports.CookieStore = (*Store)(nil)

func NewStore(cfg *viper.Viper) (*Store, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	if !cfg.IsSet(cookiesPathKey) {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		cfg.SetDefault(cookiesPathKey, filepath.Join(homeDir, cookiesConfigDir, cookiesConfigFile))
	}

	path := cfg.GetString(cookiesPathKey)
	if path == "" {
		return nil, errors.New("cookies path is empty")
	}
	path, err := fsutil.NormalizePath(path)
	if err != nil {
		return nil, fmt.Errorf("normalize cookies path: %w", err)
	}

	return &Store{path: path, mu: fsutil.LockForPath(path)}, nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Get(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := s.read()
	if err != nil {
		return "", err
	}

	requestText, ok := entries[name]
	if !ok {
		return "", fmt.Errorf("cookies for %q: %w", name, domain.ErrNoCookiesStored)
	}

	return requestText, nil
}

func (s *Store) Put(ctx context.Context, name string, requestText string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.read()
	if err != nil {
		return err
	}
	entries[name] = requestText

	if err := ctx.Err(); err != nil {
		return err
	}

	return s.write(entries)
}

func (s *Store) All(ctx context.Context) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.read()
}

func (s *Store) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read cookies file: %w", err)
	}

	entries := map[string]string{}
	if len(bytes.TrimSpace(data)) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode cookies file: %w", err)
	}

	return entries, nil
}

func (s *Store) write(entries map[string]string) error {
	// Request texts carry raw '&' and '<' that readers expect unescaped.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encode cookies file: %w", err)
	}
	data := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))

	if err := fsutil.WriteFileAtomic(s.path, data, cookiesDirMode, cookiesFileMode, tempFilePattern); err != nil {
		return fmt.Errorf("write cookies file: %w", err)
	}

	return nil
}
