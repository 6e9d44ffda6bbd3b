// Package store implements the persistence adapter of the roster client:
// one Store contract with a local (key/value backed) and a remote (gRPC
// backed) implementation.
//
// Every failure is reported with one of the sentinels from package common,
// wrapped with %w so errors.Is keeps working:
//
//	List            -> common.ErrStoreUnavailable
//	Create, Delete  -> common.ErrWrite
//	Update          -> common.ErrNotFound for an unknown id, otherwise common.ErrWrite
package store

import (
	"context"

	"github.com/dmitrijs2005/roster/internal/roster"
)

type Store interface {
	List(ctx context.Context) ([]roster.Student, error)
	Create(ctx context.Context, f roster.Fields) (*roster.Student, error)
	Update(ctx context.Context, id string, f roster.Fields) error
	Delete(ctx context.Context, id string) error
}

// Kind selects the backing store.
type Kind string

const (
	KindLocal  Kind = "local"
	KindS3     Kind = "s3"
	KindRemote Kind = "remote"
)

func (k Kind) Valid() bool {
	switch k {
	case KindLocal, KindS3, KindRemote:
		return true
	}
	return false
}
