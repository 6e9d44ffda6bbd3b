// Package kv provides the named-entry storage behind the local student store.
// A missing key reads as (nil, nil) in every implementation.
package kv

import "context"

// UpdateFunc receives the current value (nil when absent) and returns the
// value to store. Returning an error aborts the update without writing.
type UpdateFunc func(current []byte) ([]byte, error)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	// Update performs an atomic read-modify-write of key.
	Update(ctx context.Context, key string, fn UpdateFunc) error
}
