package status

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/terabox-cookie-cli/internal/application"
	"github.com/bnema/terabox-cookie-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	coverageBarWidth = 17
	sessionCookie    = "ndus"
	cookiePreviewLen = 60
)

type RenderOptions struct {
	// Priority is the cookie list coverage is measured against. Empty means
	// the default priority list.
	Priority    []string
	ShowCookies bool
}

func renderView(statuses []application.AccountStatus, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("TeraBox Accounts"),
		s.header.Render(fmt.Sprintf("accounts: %d", len(statuses))),
	}

	if len(statuses) == 0 {
		lines = append(lines, s.empty.Render("No accounts configured. Add one with `tbc account add`."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, status := range statuses {
		lines = append(lines, s.section.Render(renderAccount(status, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderAccount(status application.AccountStatus, opts RenderOptions, s styles) string {
	parts := []string{
		s.account.Render(fmt.Sprintf("%s (#%d)", status.Account.DisplayName(), status.Account.Number)),
		s.detail.Render("email: " + status.Account.Email),
		s.detail.Render("password: " + passwordLabel(status.PasswordSource)),
		cookieLine(status, opts, s),
	}

	if opts.ShowCookies && status.HasCookies {
		parts = append(parts, s.empty.Render(truncate(status.Cookie, cookiePreviewLen)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func passwordLabel(source application.PasswordSource) string {
	if source == application.PasswordSecret {
		return "secret store"
	}
	return "inline"
}

func cookieLine(status application.AccountStatus, opts RenderOptions, s styles) string {
	label := s.key.Render("cookies:")
	if !status.HasCookies {
		return lipgloss.JoinHorizontal(lipgloss.Top, label, " ", s.warning.Render("none stored"))
	}

	priority := opts.Priority
	if len(priority) == 0 {
		priority = domain.DefaultCookiePriority
	}

	set := domain.NewCookieSet(cookiePairs(status.Cookie))
	present := 0
	for _, name := range priority {
		if _, ok := set.Value(name); ok {
			present++
		}
	}

	line := lipgloss.JoinHorizontal(
		lipgloss.Top,
		label,
		" ",
		renderCoverageBar(present, len(priority), coverageBarWidth, s),
		" ",
		s.ok.Render(fmt.Sprintf("%d/%d priority", present, len(priority))),
		" ",
		s.header.Render(fmt.Sprintf("(%d total)", set.Len())),
	)

	if _, ok := set.Value(sessionCookie); !ok {
		line += " " + s.warning.Render("[missing "+sessionCookie+"]")
	}

	return line
}

func cookiePairs(line string) []domain.Cookie {
	pairs := domain.ParseCookieString(line)
	cookies := make([]domain.Cookie, 0, len(pairs))
	for _, pair := range pairs {
		cookies = append(cookies, domain.Cookie{Name: pair.Name, Value: pair.Value})
	}
	return cookies
}

func renderCoverageBar(present, total, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	fraction := 0.0
	if total > 0 {
		fraction = float64(present) / float64(total)
	}
	filled := int(math.Round(float64(width) * fraction))
	filled = max(0, min(filled, width))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func truncate(value string, limit int) string {
	if len(value) <= limit {
		return value
	}
	return value[:limit] + "..."
}
