// Package session owns durable persistence of the authenticated session:
// the bearer token and the cached user record, stored as two independent
// key-value slots. There are no transactions across slots; partial state
// (token present, user missing) is a documented possibility the caller must
// tolerate.
package session

import "context"

// Storage keys for the two session slots.
const (
	TokenKey = "auth_token"
	UserKey  = "user_data"
)

// Repository is a durable key-value store. Get returns (nil, nil) when the
// key is absent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
