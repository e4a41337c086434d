package application

import (
	"context"
	"fmt"

	"github.com/bnema/terabox-cookie-cli/internal/domain"
	"github.com/bnema/terabox-cookie-cli/internal/ports"
)

// CaptureCookies reads the session cookie jar and renders it both as an
// ordered cookie string and as a full request text.
func CaptureCookies(ctx context.Context, session ports.BrowserSession, tmpl domain.RequestTemplate, priority []string) (domain.Capture, error) {
	cookies, err := session.Cookies(ctx)
	if err != nil {
		return domain.Capture{}, fmt.Errorf("read cookies: %w", err)
	}

	set := domain.NewCookieSet(cookies)
	if set.Len() == 0 {
		return domain.Capture{}, domain.ErrEmptyCookieJar
	}
	if len(priority) == 0 {
		priority = domain.DefaultCookiePriority
	}
	ordered := domain.OrderCookies(set, priority)

	userAgent, err := session.UserAgent(ctx)
	if err != nil {
		return domain.Capture{}, fmt.Errorf("read user agent: %w", err)
	}

	requestText, err := domain.BuildRequestText(tmpl, userAgent, ordered)
	if err != nil {
		return domain.Capture{}, fmt.Errorf("build request text: %w", err)
	}

	return domain.Capture{
		Cookies:     ordered,
		UserAgent:   userAgent,
		RequestText: requestText,
	}, nil
}
