package ports

import (
	"context"

	"github.com/bnema/terabox-cookie-cli/internal/domain"
)

type AccountRepository interface {
	GetByNumber(ctx context.Context, number int) (domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	// Add appends account and returns it with its assigned number.
	Add(ctx context.Context, account domain.Account) (domain.Account, error)
	// Save replaces the account stored under account.Number.
	Save(ctx context.Context, account domain.Account) error
}
