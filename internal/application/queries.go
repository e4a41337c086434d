package application

import "github.com/bnema/terabox-cookie-cli/internal/domain"

type PasswordSource string

const (
	PasswordInline PasswordSource = "inline"
	PasswordSecret PasswordSource = "secret"
)

// AccountStatus never serializes the account itself so inline passwords
// stay out of encoded output.
type AccountStatus struct {
	Account        domain.Account `json:"-"`
	PasswordSource PasswordSource `json:"password_source"`
	HasCookies     bool           `json:"has_cookies"`
	Cookie         string         `json:"cookie,omitempty"`
}
