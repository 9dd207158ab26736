package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/podshelf/podshelf/internal/domain"
)

// schemaVersion is stamped on every persisted document. Version 1 is
// the legacy layout: a bare payload with no envelope at all.
const schemaVersion = 2

type envelope struct {
	SchemaVersion int             `json:"schemaVersion"`
	Data          json.RawMessage `json:"data"`
}

// loadDoc reads the document stored under key and decodes its payload
// into dst. Payloads without a version envelope are read as legacy v1
// documents and migrated to the enveloped form on next save. A payload
// that cannot be decoded either way is logged and reported as absent,
// so callers fall back to their seed or empty defaults instead of
// failing startup.
func loadDoc(ctx context.Context, store domain.Store, key string, dst any) error {
	raw, err := store.Get(ctx, key)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err == nil && env.SchemaVersion >= 2 {
		if err := json.Unmarshal(env.Data, dst); err != nil {
			slog.Warn("corrupt document, treating as absent", "key", key, "error", err)
			return domain.ErrNotFound
		}
		return nil
	}

	// Legacy v1: the raw value is the payload itself.
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		slog.Warn("corrupt document, treating as absent", "key", key, "error", err)
		return domain.ErrNotFound
	}
	return nil
}

// saveDoc encodes v inside a version envelope and overwrites the
// document stored under key.
func saveDoc(ctx context.Context, store domain.Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q payload: %w", key, err)
	}
	payload, err := json.Marshal(envelope{SchemaVersion: schemaVersion, Data: data})
	if err != nil {
		return fmt.Errorf("encode %q envelope: %w", key, err)
	}
	return store.Set(ctx, key, string(payload))
}
