// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-cheat-catalog/internal/logger"
)

// jsonDocument stores one JSON-encoded value of type T under a fixed key.
type jsonDocument[T any] struct {
	kv     KeyValueStorage
	key    string
	logger *logger.Logger
}

// read decodes the document. ok is false when the key is absent, unreadable
// or corrupt; callers substitute their default in that case.
func (d jsonDocument[T]) read(ctx context.Context) (value T, ok bool) {
	raw, found, err := d.kv.Get(ctx, d.key)
	if err != nil {
		d.logger.Err(err).Str("key", d.key).Msg("error reading storage key, using default")
		return value, false
	}
	if !found {
		return value, false
	}

	if err = json.Unmarshal([]byte(raw), &value); err != nil {
		d.logger.Warn().Err(err).Str("key", d.key).Msg("corrupt value in storage, using default")
		var zero T
		return zero, false
	}

	return value, true
}

func (d jsonDocument[T]) write(ctx context.Context, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncodingValue, d.key, err)
	}

	if err = d.kv.Set(ctx, d.key, string(raw)); err != nil {
		return fmt.Errorf("error writing %s: %w", d.key, err)
	}

	return nil
}

func (d jsonDocument[T]) remove(ctx context.Context) error {
	if err := d.kv.Remove(ctx, d.key); err != nil {
		return fmt.Errorf("error removing %s: %w", d.key, err)
	}
	return nil
}
