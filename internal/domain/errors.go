package domain

import "errors"

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrInvalidAccountNumber = errors.New("invalid account number")
	ErrSecretNotFound       = errors.New("secret not found")
	ErrNoCookiesStored      = errors.New("no cookies stored")

	ErrLaunch         = errors.New("browser launch failed")
	ErrFieldNotFound  = errors.New("field not found")
	ErrLoginRejected  = errors.New("login rejected")
	ErrEmptyCookieJar = errors.New("cookie jar is empty")
	ErrForwarding     = errors.New("cookie forwarding failed")
	ErrUnexpected     = errors.New("unexpected login failure")
)
