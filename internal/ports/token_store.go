package ports

import "context"

// TokenStore persists calendar-service credentials. The scheduling
// core never reads or writes it; only the auth flow does.
type TokenStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
