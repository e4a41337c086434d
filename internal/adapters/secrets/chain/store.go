package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "github.com/bnema/terabox-cookie-cli/internal/adapters/secrets/file"
	passstore "github.com/bnema/terabox-cookie-cli/internal/adapters/secrets/pass"
	"github.com/bnema/terabox-cookie-cli/internal/domain"
	"github.com/bnema/terabox-cookie-cli/internal/ports"
)

// Store writes to the primary backend and falls back to the secondary one
// when the primary is unavailable. Reads consult both.
type Store struct {
	primary  ports.SecretStore
	fallback ports.SecretStore
}

var _ ports.SecretStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary secret store is nil")
	errNilFallbackStore = errors.New("fallback secret store is nil")
)

func NewStore(primary ports.SecretStore, fallback ports.SecretStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

// NewPassWithFileFallback prefers pass entries under passPrefix and keeps
// plain files under fileRoot for hosts without pass.
func NewPassWithFileFallback(passPrefix string, fileRoot string) (*Store, error) {
	return NewStore(passstore.NewStore(passPrefix), filestore.NewStore(fileRoot))
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	err := s.primary.Put(ctx, key, value)
	if err == nil {
		return nil
	}
	if isContextError(err) {
		return err
	}

	if fallbackErr := s.fallback.Put(ctx, key, value); fallbackErr != nil {
		return fmt.Errorf("primary backend put failed: %w; fallback backend put failed: %w", err, fallbackErr)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	value, err := s.primary.Get(ctx, key)
	if err == nil {
		return value, nil
	}
	if isContextError(err) {
		return "", err
	}

	fallbackValue, fallbackErr := s.fallback.Get(ctx, key)
	if fallbackErr == nil {
		return fallbackValue, nil
	}

	if errors.Is(err, domain.ErrSecretNotFound) && errors.Is(fallbackErr, domain.ErrSecretNotFound) {
		return "", fmt.Errorf("secret %q: %w", key, domain.ErrSecretNotFound)
	}

	return "", fmt.Errorf("primary backend get failed: %w; fallback backend get failed: %w", err, fallbackErr)
}

// Delete removes the key from both backends since a value may have been
// written to either one.
func (s *Store) Delete(ctx context.Context, key string) error {
	primaryErr := s.primary.Delete(ctx, key)
	if isContextError(primaryErr) {
		return primaryErr
	}
	if errors.Is(primaryErr, passstore.ErrUnavailable) {
		primaryErr = nil
	}

	fallbackErr := s.fallback.Delete(ctx, key)

	switch {
	case primaryErr != nil && fallbackErr != nil:
		return fmt.Errorf("primary backend delete failed: %w; fallback backend delete failed: %w", primaryErr, fallbackErr)
	case primaryErr != nil:
		return fmt.Errorf("primary backend delete failed: %w", primaryErr)
	case fallbackErr != nil:
		return fmt.Errorf("fallback backend delete failed: %w", fallbackErr)
	}

	return nil
}

func isContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
