package domain

import (
	"context"
	"time"
)

// Store is the synchronous key-value persistence collaborator. Values
// are opaque strings; callers own all encoding and key naming. There
// are no transactional guarantees across keys.
//
// Get returns ErrNotFound when the key is absent. Set overwrites any
// existing value wholesale.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Clock supplies the current time. Services take it as a dependency so
// tests can pin timestamps.
type Clock func() time.Time
