package domain

import (
	"fmt"
	"strconv"
	"strings"
)

type Account struct {
	// Number is the 1-based position of the account in the registry.
	Number   int
	Name     string
	Email    string
	Password string
	// PasswordRef points to a secret-store entry holding the password.
	PasswordRef string
}

func (a Account) Validate() error {
	if strings.TrimSpace(a.Email) == "" {
		return fmt.Errorf("email is required")
	}
	if a.Password == "" && strings.TrimSpace(a.PasswordRef) == "" {
		return fmt.Errorf("password is required")
	}

	return nil
}

// DisplayName is the key the cookie store uses for this account.
func (a Account) DisplayName() string {
	if name := strings.TrimSpace(a.Name); name != "" {
		return name
	}
	return fmt.Sprintf("Account %d", a.Number)
}

// CollectorNumber is the identifier the collector endpoint expects.
func (a Account) CollectorNumber() string {
	return "cookie-" + strconv.Itoa(a.Number)
}

func ParseAccountNumber(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAccountNumber, raw)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidAccountNumber, n)
	}

	return n, nil
}
