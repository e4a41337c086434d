package chromedp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bnema/terabox-cookie-cli/internal/domain"
	"github.com/bnema/terabox-cookie-cli/internal/ports"
	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/storage"
	"github.com/chromedp/chromedp"
)

const defaultCloseTimeout = 5 * time.Second

var (
	errSessionClosed = errors.New("browser session closed")
	errCloseTimeout  = errors.New("browser did not shut down in time")
)

type session struct {
	ctx         context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc
	// started is set once the browser process is up. Only a started browser
	// is shut down gracefully.
	started      bool
	closeTimeout time.Duration

	closeOnce sync.Once
	closeErr  error
}

var _ ports.BrowserSession = (*session)(nil)

// run executes actions on the browser tab while honouring the caller's
// cancellation and deadline.
func (s *session) run(callCtx context.Context, actions ...chromedp.Action) error {
	if s.ctx.Err() != nil {
		return errSessionClosed
	}

	runCtx, cancel := context.WithCancel(s.ctx)
	defer cancel()
	if deadline, ok := callCtx.Deadline(); ok {
		var cancelDeadline context.CancelFunc
		runCtx, cancelDeadline = context.WithDeadline(runCtx, deadline)
		defer cancelDeadline()
	}
	stop := context.AfterFunc(callCtx, cancel)
	defer stop()

	if err := chromedp.Run(runCtx, actions...); err != nil {
		if callErr := callCtx.Err(); callErr != nil {
			return callErr
		}
		return err
	}

	return nil
}

func (s *session) Navigate(ctx context.Context, url string) error {
	if err := s.run(ctx, chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("navigate to %s: %w", url, err)
	}
	return nil
}

func (s *session) Find(ctx context.Context, locator domain.Locator) (ports.Element, error) {
	selector, opt, err := querySelector(locator)
	if err != nil {
		return nil, err
	}

	var nodes []*cdp.Node
	if err := s.run(ctx, chromedp.Nodes(selector, &nodes, opt, chromedp.AtLeast(0))); err != nil {
		return nil, fmt.Errorf("query %s: %w", locator, err)
	}
	if len(nodes) == 0 {
		return nil, nil
	}

	return &element{session: s, id: nodes[0].NodeID}, nil
}

func (s *session) Inputs(ctx context.Context) ([]ports.Element, error) {
	var nodes []*cdp.Node
	if err := s.run(ctx, chromedp.Nodes("input", &nodes, chromedp.ByQueryAll, chromedp.AtLeast(0))); err != nil {
		return nil, fmt.Errorf("query inputs: %w", err)
	}

	elements := make([]ports.Element, 0, len(nodes))
	for _, node := range nodes {
		elements = append(elements, &element{session: s, id: node.NodeID})
	}

	return elements, nil
}

func (s *session) ReadyState(ctx context.Context) (string, error) {
	var state string
	if err := s.run(ctx, chromedp.Evaluate(`document.readyState`, &state)); err != nil {
		return "", fmt.Errorf("read document state: %w", err)
	}
	return state, nil
}

func (s *session) CurrentURL(ctx context.Context) (string, error) {
	var location string
	if err := s.run(ctx, chromedp.Location(&location)); err != nil {
		return "", fmt.Errorf("read location: %w", err)
	}
	return location, nil
}

func (s *session) UserAgent(ctx context.Context) (string, error) {
	var userAgent string
	if err := s.run(ctx, chromedp.Evaluate(`navigator.userAgent`, &userAgent)); err != nil {
		return "", fmt.Errorf("read user agent: %w", err)
	}
	return userAgent, nil
}

func (s *session) Cookies(ctx context.Context) ([]domain.Cookie, error) {
	var cookies []domain.Cookie
	err := s.run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		all, err := storage.GetCookies().Do(ctx)
		if err != nil {
			return err
		}
		cookies = make([]domain.Cookie, 0, len(all))
		for _, c := range all {
			cookies = append(cookies, domain.Cookie{Name: c.Name, Value: c.Value, Domain: c.Domain, Path: c.Path})
		}
		return nil
	}))
	if err != nil {
		return nil, fmt.Errorf("read cookies: %w", err)
	}

	return cookies, nil
}

func (s *session) Screenshot(ctx context.Context) ([]byte, error) {
	var buf []byte
	if err := s.run(ctx, chromedp.CaptureScreenshot(&buf)); err != nil {
		return nil, fmt.Errorf("capture screenshot: %w", err)
	}
	return buf, nil
}

func (s *session) PageSource(ctx context.Context) (string, error) {
	var html string
	if err := s.run(ctx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", fmt.Errorf("read page source: %w", err)
	}
	return html, nil
}

// Close shuts the tab and the browser process. Later calls return the first
// result.
func (s *session) Close() error {
	s.closeOnce.Do(func() {
		if s.started {
			s.closeErr = s.shutdown()
		}
		s.cancel()
		s.allocCancel()
		if errors.Is(s.closeErr, context.Canceled) {
			s.closeErr = nil
		}
	})
	return s.closeErr
}

// shutdown asks the browser to exit and waits at most closeTimeout. The
// allocator cancel that follows kills the process if it is still running.
func (s *session) shutdown() error {
	timeout := s.closeTimeout
	if timeout <= 0 {
		timeout = defaultCloseTimeout
	}

	done := make(chan error, 1)
	go func() {
		done <- chromedp.Cancel(s.ctx)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case err := <-done:
		return err
	case <-timer.C:
		return errCloseTimeout
	}
}

func querySelector(locator domain.Locator) (string, chromedp.QueryOption, error) {
	switch locator.Kind {
	case domain.LocatorCSS:
		return locator.Expr, chromedp.ByQueryAll, nil
	case domain.LocatorXPath:
		return locator.Expr, chromedp.BySearch, nil
	case domain.LocatorID:
		return `[id="` + strings.ReplaceAll(locator.Expr, `"`, `\"`) + `"]`, chromedp.ByQueryAll, nil
	default:
		return "", nil, fmt.Errorf("unsupported locator kind %q", locator.Kind)
	}
}
