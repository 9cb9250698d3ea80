// Package storage provides the durable key-value mirror of the session
// state. The session store writes through to it on every mutation; the
// request pipeline may clear (but never write) its keys on an auth failure.
package storage

import "context"

// Keys under which the session mirror is persisted. Both keys are absent,
// not empty, when logged out.
const (
	KeyToken = "token"
	KeyUser  = "user"
)

// Repository is a small synchronous key-value store.
//
// Contract:
//   - Get returns (nil, nil) when the key is absent.
//   - Set inserts or overwrites.
//   - Delete is idempotent.
//   - Clear removes every key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
