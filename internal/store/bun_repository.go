package store

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunSnapshotRepository persists snapshots through bun.
type BunSnapshotRepository struct {
	db   *bun.DB
	repo repository.Repository[*Snapshot]
}

// NewBunSnapshotRepository constructs a Repository backed by bun.
func NewBunSnapshotRepository(db *bun.DB) *BunSnapshotRepository {
	handlers := repository.ModelHandlers[*Snapshot]{
		NewRecord: func() *Snapshot { return &Snapshot{} },
		GetID:     func(s *Snapshot) uuid.UUID { return s.ID },
		SetID: func(s *Snapshot, id uuid.UUID) {
			s.ID = id
		},
		GetIdentifier:      func() string { return "contentful_id" },
		GetIdentifierValue: func(s *Snapshot) string { return s.ContentfulID },
	}
	return &BunSnapshotRepository{
		db:   db,
		repo: repository.MustNewRepository[*Snapshot](db, handlers),
	}
}

func (r *BunSnapshotRepository) Create(ctx context.Context, record *Snapshot) (*Snapshot, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return created, nil
}

func (r *BunSnapshotRepository) Update(ctx context.Context, record *Snapshot) (*Snapshot, error) {
	updated, err := r.repo.Update(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return updated, nil
}

func (r *BunSnapshotRepository) GetByContentfulID(ctx context.Context, contentfulID, cmsLocale string) (*Snapshot, error) {
	record, err := r.repo.Get(ctx, withContentfulID(contentfulID, cmsLocale))
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return record, nil
}

func (r *BunSnapshotRepository) List(ctx context.Context, contentType string) ([]*Snapshot, error) {
	records, _, err := r.repo.List(ctx, withContentType(contentType))
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return records, nil
}

func withContentfulID(contentfulID, cmsLocale string) repository.SelectCriteria {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		q = q.Where("contentful_id = ?", contentfulID)
		if cmsLocale != "" {
			q = q.Where("locale = ?", cmsLocale)
		}
		return q
	}
}

func withContentType(contentType string) repository.SelectCriteria {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		if contentType != "" {
			q = q.Where("content_type = ?", contentType)
		}
		return q.Order("last_modified DESC")
	}
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return ErrSnapshotNotFound
	}
	return fmt.Errorf("store: repository error: %w", err)
}
