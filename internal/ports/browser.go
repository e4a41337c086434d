package ports

import (
	"context"

	"github.com/bnema/terabox-cookie-cli/internal/domain"
)

type BrowserOptions struct {
	Headless     bool
	ExecPath     string
	UserAgent    string
	WindowWidth  int
	WindowHeight int
}

// BrowserLauncher starts an isolated browser process.
type BrowserLauncher interface {
	Open(ctx context.Context, opts BrowserOptions) (BrowserSession, error)
}

// BrowserSession is owned by a single login attempt. Close must be safe to
// call more than once.
type BrowserSession interface {
	Navigate(ctx context.Context, url string) error
	Find(ctx context.Context, locator domain.Locator) (Element, error)
	Inputs(ctx context.Context) ([]Element, error)
	ReadyState(ctx context.Context) (string, error)
	CurrentURL(ctx context.Context) (string, error)
	UserAgent(ctx context.Context) (string, error)
	Cookies(ctx context.Context) ([]domain.Cookie, error)
	Screenshot(ctx context.Context) ([]byte, error)
	PageSource(ctx context.Context) (string, error)
	Close() error
}

type Element interface {
	Attribute(ctx context.Context, name string) (string, error)
	Visible(ctx context.Context) (bool, error)
	Value(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
	Type(ctx context.Context, text string) error
	PressEnter(ctx context.Context) error
}
