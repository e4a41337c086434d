package file

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bnema/terabox-cookie-cli/internal/adapters/repo/fsutil"
	"github.com/bnema/terabox-cookie-cli/internal/ports"
)

const (
	diagnosticsDirMode  = 0o700
	diagnosticsFileMode = 0o600
	tempFilePattern     = ".diag-*.tmp"
)

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Sink writes diagnostic artifacts as flat files inside dir.
type Sink struct {
	dir string
}

var _ ports.DiagnosticsSink = (*Sink)(nil)

func NewSink(dir string) (*Sink, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("diagnostics directory is empty")
	}

	normalized, err := fsutil.NormalizePath(dir)
	if err != nil {
		return nil, fmt.Errorf("normalize diagnostics directory: %w", err)
	}

	return &Sink{dir: normalized}, nil
}

func (s *Sink) Dir() string {
	return s.dir
}

// Save writes data under a sanitised form of name and returns the final path.
// An existing artifact with the same name is replaced.
func (s *Sink) Save(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fileName := SanitizeName(name)
	if fileName == "" {
		return "", fmt.Errorf("invalid diagnostics name %q", name)
	}

	path := filepath.Join(s.dir, fileName)
	lock := fsutil.LockForPath(path)
	lock.Lock()
	defer lock.Unlock()

	if err := fsutil.WriteFileAtomic(path, data, diagnosticsDirMode, diagnosticsFileMode, tempFilePattern); err != nil {
		return "", fmt.Errorf("write diagnostics %s: %w", fileName, err)
	}

	return path, nil
}

// SanitizeName maps an artifact name to a single path element.
func SanitizeName(name string) string {
	cleaned := unsafeNameChars.ReplaceAllString(strings.TrimSpace(name), "_")
	cleaned = strings.Trim(cleaned, "._")
	if cleaned == "" {
		return ""
	}

	return cleaned
}
