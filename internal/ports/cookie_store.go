package ports

import "context"

// CookieStore persists request texts keyed by account display name.
type CookieStore interface {
	Get(ctx context.Context, name string) (string, error)
	Put(ctx context.Context, name string, requestText string) error
	All(ctx context.Context) (map[string]string, error)
}
