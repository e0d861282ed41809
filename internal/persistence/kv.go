package persistence

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KV.Get when a slot has never been written.
var ErrKeyNotFound = errors.New("key not found")

// KV is the string-keyed slot store the mirror serializes into. Each mutable
// collection gets its own slot holding a JSON array of records.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
