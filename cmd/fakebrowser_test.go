package cmd

import (
	"context"
	"sync"

	"github.com/bnema/terabox-cookie-cli/internal/domain"
	"github.com/bnema/terabox-cookie-cli/internal/ports"
	"go.uber.org/zap"
)

// fakeBrowser serves a login page that accepts any credentials.
type fakeBrowser struct {
	mu      sync.Mutex
	opened  []ports.BrowserOptions
	typed   map[string]string
	closed  int
	cookies []domain.Cookie
}

func newFakeBrowser() *fakeBrowser {
	return &fakeBrowser{
		typed: map[string]string{},
		cookies: []domain.Cookie{
			{Name: "ndus", Value: "A", Domain: ".1024terabox.com"},
			{Name: "browserid", Value: "B", Domain: ".1024terabox.com"},
			{Name: "foo", Value: "C", Domain: ".1024terabox.com"},
		},
	}
}

func (b *fakeBrowser) install(t interface{ Cleanup(func()) }) {
	previous := newBrowserLauncher
	newBrowserLauncher = func(*zap.Logger) ports.BrowserLauncher { return b }
	t.Cleanup(func() { newBrowserLauncher = previous })
}

func (b *fakeBrowser) Open(_ context.Context, opts ports.BrowserOptions) (ports.BrowserSession, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.opened = append(b.opened, opts)
	return &fakeBrowserSession{browser: b}, nil
}

type fakeBrowserSession struct {
	browser *fakeBrowser
	mu      sync.Mutex
	url     string
}

func (s *fakeBrowserSession) setURL(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.url = url
}

func (s *fakeBrowserSession) Navigate(_ context.Context, url string) error {
	s.setURL(url)
	return nil
}

func (s *fakeBrowserSession) Find(_ context.Context, locator domain.Locator) (ports.Element, error) {
	switch locator {
	case domain.LocatorsFor(domain.FieldEmail)[0]:
		return &fakeBrowserElement{session: s, role: "email"}, nil
	case domain.LocatorsFor(domain.FieldPassword)[0]:
		return &fakeBrowserElement{session: s, role: "password"}, nil
	default:
		return nil, nil
	}
}

func (s *fakeBrowserSession) Inputs(context.Context) ([]ports.Element, error) {
	return []ports.Element{
		&fakeBrowserElement{session: s, role: "email"},
		&fakeBrowserElement{session: s, role: "password"},
	}, nil
}

func (s *fakeBrowserSession) ReadyState(context.Context) (string, error) {
	return "complete", nil
}

func (s *fakeBrowserSession) CurrentURL(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.url, nil
}

func (s *fakeBrowserSession) UserAgent(context.Context) (string, error) {
	return "UA/1.0", nil
}

func (s *fakeBrowserSession) Cookies(context.Context) ([]domain.Cookie, error) {
	return s.browser.cookies, nil
}

func (s *fakeBrowserSession) Screenshot(context.Context) ([]byte, error) {
	return []byte("png"), nil
}

func (s *fakeBrowserSession) PageSource(context.Context) (string, error) {
	return "<html></html>", nil
}

func (s *fakeBrowserSession) Close() error {
	s.browser.mu.Lock()
	defer s.browser.mu.Unlock()
	s.browser.closed++
	return nil
}

type fakeBrowserElement struct {
	session *fakeBrowserSession
	role    string
}

func (e *fakeBrowserElement) Attribute(_ context.Context, name string) (string, error) {
	if name == "type" {
		return e.role, nil
	}
	return "", nil
}

func (e *fakeBrowserElement) Visible(context.Context) (bool, error) {
	return true, nil
}

func (e *fakeBrowserElement) Value(context.Context) (string, error) {
	b := e.session.browser
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.typed[e.role], nil
}

func (e *fakeBrowserElement) Clear(context.Context) error {
	b := e.session.browser
	b.mu.Lock()
	defer b.mu.Unlock()
	b.typed[e.role] = ""
	return nil
}

func (e *fakeBrowserElement) Type(_ context.Context, text string) error {
	b := e.session.browser
	b.mu.Lock()
	defer b.mu.Unlock()
	b.typed[e.role] += text
	return nil
}

func (e *fakeBrowserElement) PressEnter(context.Context) error {
	e.session.setURL("https://www.1024terabox.com/main")
	return nil
}
