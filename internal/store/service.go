// Package store persists flattened entry payloads with change detection, so
// repeated syncs only write rows whose content actually changed.
package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-contentful/internal/logging"
	"github.com/goliatone/go-contentful/pkg/interfaces"
	"github.com/google/uuid"
)

var (
	// ErrContentfulIDRequired reports an upsert without an entry id.
	ErrContentfulIDRequired = errors.New("store: contentful id is required")
	// ErrContentTypeRequired reports an upsert without a content type tag.
	ErrContentTypeRequired = errors.New("store: content type is required")
)

// SnapshotInput captures the payload recorded for one entry.
type SnapshotInput struct {
	ContentfulID string
	ContentType  string
	Locale       string
	LastModified time.Time
	Data         map[string]any
}

// Service exposes snapshot use-cases.
type Service interface {
	// Upsert records the payload, skipping the write when the stored hash
	// already matches. The boolean reports whether a row was written.
	Upsert(ctx context.Context, input SnapshotInput) (*Snapshot, bool, error)
	Get(ctx context.Context, contentfulID, cmsLocale string) (*Snapshot, error)
	List(ctx context.Context, contentType string) ([]*Snapshot, error)
}

// ServiceOption customises the snapshot service.
type ServiceOption func(*service)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithServiceLogger attaches the store logger.
func WithServiceLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	repo   Repository
	logger interfaces.Logger
	clock  func() time.Time
}

// NewService constructs the snapshot service on top of a repository.
func NewService(repo Repository, opts ...ServiceOption) Service {
	s := &service{
		repo:   repo,
		logger: logging.NoOp(),
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Upsert(ctx context.Context, input SnapshotInput) (*Snapshot, bool, error) {
	if strings.TrimSpace(input.ContentfulID) == "" {
		return nil, false, ErrContentfulIDRequired
	}
	if strings.TrimSpace(input.ContentType) == "" {
		return nil, false, ErrContentTypeRequired
	}

	hash, err := hashData(input.Data)
	if err != nil {
		return nil, false, err
	}

	lastModified := input.LastModified
	if lastModified.IsZero() {
		lastModified = s.clock().UTC()
	}

	existing, err := s.repo.GetByContentfulID(ctx, input.ContentfulID, input.Locale)
	switch {
	case errors.Is(err, ErrSnapshotNotFound):
		record := &Snapshot{
			ID:           uuid.New(),
			ContentfulID: input.ContentfulID,
			ContentType:  input.ContentType,
			Locale:       input.Locale,
			LastModified: lastModified,
			DataHash:     hash,
			Data:         input.Data,
		}
		created, err := s.repo.Create(ctx, record)
		if err != nil {
			return nil, false, err
		}
		s.logger.Info("store.snapshot.created", "contentful_id", input.ContentfulID, "locale", input.Locale)
		return created, true, nil
	case err != nil:
		return nil, false, err
	}

	if existing.DataHash == hash {
		s.logger.Debug("store.snapshot.unchanged", "contentful_id", input.ContentfulID, "locale", input.Locale)
		return existing, false, nil
	}

	existing.ContentType = input.ContentType
	existing.Locale = input.Locale
	existing.LastModified = lastModified
	existing.DataHash = hash
	existing.Data = input.Data
	existing.UpdatedAt = s.clock().UTC()

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, false, err
	}
	s.logger.Info("store.snapshot.updated", "contentful_id", input.ContentfulID, "locale", input.Locale)
	return updated, true, nil
}

func (s *service) Get(ctx context.Context, contentfulID, cmsLocale string) (*Snapshot, error) {
	return s.repo.GetByContentfulID(ctx, contentfulID, cmsLocale)
}

func (s *service) List(ctx context.Context, contentType string) ([]*Snapshot, error) {
	return s.repo.List(ctx, contentType)
}

// hashData produces a stable digest of the payload. json.Marshal emits map
// keys in sorted order, so equal payloads hash identically.
func hashData(data map[string]any) (string, error) {
	encoded, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("store: encode payload: %w", err)
	}
	sum := sha256.Sum256(encoded)
	return hex.EncodeToString(sum[:]), nil
}
