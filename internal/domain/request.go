package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// RequestTemplate holds the parts of the synthesized request that vary per
// deployment. Everything else is fixed header text.
type RequestTemplate struct {
	TargetURL string
	LoginURL  string
}

func (t RequestTemplate) Validate() error {
	if _, err := url.ParseRequestURI(t.TargetURL); err != nil {
		return fmt.Errorf("parse target url: %w", err)
	}
	if _, err := url.ParseRequestURI(t.LoginURL); err != nil {
		return fmt.Errorf("parse login url: %w", err)
	}
	return nil
}

// BuildRequestText renders the canonical GET request persisted for each
// account.
func BuildRequestText(tmpl RequestTemplate, userAgent string, cookies OrderedCookies) (string, error) {
	target, err := url.Parse(tmpl.TargetURL)
	if err != nil {
		return "", fmt.Errorf("parse target url: %w", err)
	}
	login, err := url.Parse(tmpl.LoginURL)
	if err != nil {
		return "", fmt.Errorf("parse login url: %w", err)
	}

	lines := []string{
		"GET " + target.RequestURI() + " HTTP/1.1",
		"Host: " + target.Host,
		"Connection: keep-alive",
		"Cache-Control: max-age=0",
		`sec-ch-ua: "Android WebView";v="143", "Chromium";v="143", "Not A(Brand";v="24"`,
		"sec-ch-ua-mobile: ?1",
		`sec-ch-ua-platform: "Android"`,
		"Upgrade-Insecure-Requests: 1",
		"User-Agent: " + userAgent,
		"Accept: text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8,application/signed-exchange;v=b3;q=0.7",
		"X-Requested-With: mark.via.gp",
		"Sec-Fetch-Site: same-origin",
		"Sec-Fetch-Mode: navigate",
		"Sec-Fetch-User: ?1",
		"Sec-Fetch-Dest: document",
		"Referer: " + login.Scheme + "://" + login.Host + "/",
		"Accept-Encoding: gzip, deflate, br, zstd",
		"Accept-Language: en-US,en;q=0.9",
		"Cookie: " + cookies.String(),
	}

	return strings.Join(lines, "\n"), nil
}

// CookieLine extracts the Cookie header value from a persisted request text.
func CookieLine(requestText string) (string, bool) {
	for _, line := range strings.Split(requestText, "\n") {
		if value, ok := strings.CutPrefix(line, "Cookie: "); ok {
			return value, true
		}
	}
	return "", false
}

// HostMatches reports whether host is domain itself or one of its subdomains.
func HostMatches(rawURL, domain string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := strings.ToLower(parsed.Hostname())
	domain = strings.ToLower(strings.TrimPrefix(domain, "."))
	if host == "" || domain == "" {
		return false
	}

	return host == domain || strings.HasSuffix(host, "."+domain)
}
