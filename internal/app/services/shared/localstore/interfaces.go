package localstore

import "context"

// LocalStore is the durable on-device key-value store backing the session
// cache. Get returns (nil, nil) for an absent key; Delete of an absent key is
// not an error.
type LocalStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
