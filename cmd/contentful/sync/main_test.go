package main

import (
	"context"
	"errors"
	"testing"
	"time"

	contentful "github.com/goliatone/go-contentful"
	"github.com/goliatone/go-contentful/cmd/contentful/internal/bootstrap"
	"github.com/goliatone/go-contentful/internal/client"
	"github.com/goliatone/go-contentful/internal/di"
	"github.com/goliatone/go-contentful/internal/logging"
	"github.com/goliatone/go-contentful/internal/pages"
	"github.com/goliatone/go-contentful/internal/store"
)

type stubPageService struct {
	listing []pages.PageInfo
	content map[string]*pages.PageContent
	entries map[string]*client.Entry
}

func (s *stubPageService) GetPageContent(_ context.Context, pageID string) (*pages.PageContent, error) {
	content, ok := s.content[pageID]
	if !ok {
		return nil, &client.NotFoundError{ID: pageID}
	}
	return content, nil
}

func (s *stubPageService) ListPages(context.Context) ([]pages.PageInfo, error) {
	return s.listing, nil
}

func (s *stubPageService) GetPageType(_ context.Context, pageID string) (string, error) {
	content, ok := s.content[pageID]
	if !ok {
		return "", &client.NotFoundError{ID: pageID}
	}
	return content.PageType, nil
}

func (s *stubPageService) GetEntry(_ context.Context, entryID string) (*client.Entry, error) {
	entry, ok := s.entries[entryID]
	if !ok {
		return nil, &client.NotFoundError{ID: entryID}
	}
	return entry, nil
}

func newStubPageService() *stubPageService {
	modified := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return &stubPageService{
		listing: []pages.PageInfo{{ID: "home", Title: "Home", Slug: "home"}},
		content: map[string]*pages.PageContent{
			"home": {
				PageType: "pageHome",
				Info:     pages.PageInfo{ID: "home", Title: "Home", Slug: "home"},
			},
		},
		entries: map[string]*client.Entry{
			"home": {ID: "home", ContentType: "pageHome", UpdatedAt: modified},
		},
	}
}

func stubModuleBuilder(t *testing.T) *contentful.Module {
	t.Helper()

	cfg := contentful.DefaultConfig()
	cfg.Features.Snapshots = true
	cfg.Storage.Driver = "memory"

	module, err := contentful.New(cfg, di.WithPageService(newStubPageService()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return module
}

func TestRunSyncPersistsSnapshots(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	module := stubModuleBuilder(t)
	moduleBuilder = func(bootstrap.Options) (*bootstrap.Module, error) {
		return &bootstrap.Module{Module: module, Logger: logging.NoOp()}, nil
	}

	if err := runSync([]string{"-content-type", "pageHome"}); err != nil {
		t.Fatalf("runSync returned error: %v", err)
	}

	snapshot, err := module.Store().Get(context.Background(), "home", "en-US")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if snapshot.ContentType != "pageHome" {
		t.Fatalf("unexpected content type %q", snapshot.ContentType)
	}
}

func TestRunSyncDryRunWritesNothing(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	module := stubModuleBuilder(t)
	moduleBuilder = func(bootstrap.Options) (*bootstrap.Module, error) {
		return &bootstrap.Module{Module: module, Logger: logging.NoOp()}, nil
	}

	if err := runSync([]string{"-dry-run"}); err != nil {
		t.Fatalf("runSync returned error: %v", err)
	}

	if _, err := module.Store().Get(context.Background(), "home", "en-US"); !errors.Is(err, store.ErrSnapshotNotFound) {
		t.Fatalf("expected ErrSnapshotNotFound, got %v", err)
	}
}
