package ports

import (
	"context"

	"github.com/bnema/terabox-cookie-cli/internal/domain"
)

// Forwarder publishes a bare cookie string to a downstream consumer.
type Forwarder interface {
	Forward(ctx context.Context, account domain.Account, cookie string) error
}
