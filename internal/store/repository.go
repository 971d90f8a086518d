package store

import (
	"context"
	"errors"
)

// ErrSnapshotNotFound reports a missing snapshot row.
var ErrSnapshotNotFound = errors.New("store: snapshot not found")

// Repository abstracts storage operations for entry snapshots.
type Repository interface {
	Create(ctx context.Context, record *Snapshot) (*Snapshot, error)
	Update(ctx context.Context, record *Snapshot) (*Snapshot, error)
	GetByContentfulID(ctx context.Context, contentfulID, locale string) (*Snapshot, error)
	List(ctx context.Context, contentType string) ([]*Snapshot, error)
}
