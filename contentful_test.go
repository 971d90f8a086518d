package contentful_test

import (
	"context"
	"errors"
	"testing"
	"time"

	contentful "github.com/goliatone/go-contentful"
	"github.com/goliatone/go-contentful/internal/client"
	pagescmd "github.com/goliatone/go-contentful/internal/commands/pages"
	"github.com/goliatone/go-contentful/internal/di"
	"github.com/goliatone/go-contentful/internal/pages"
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

func TestNewReturnsDegradedModuleWithoutCredentials(t *testing.T) {
	module, err := contentful.New(contentful.DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if module.Client() != nil {
		t.Fatalf("expected nil client without credentials")
	}
	if module.Store() != nil {
		t.Fatalf("expected nil store while snapshots are disabled")
	}
	svc := module.Pages()
	if svc == nil {
		t.Fatalf("expected a page service")
	}
	if _, err := svc.ListPages(context.Background()); !errors.Is(err, pages.ErrClientUnavailable) {
		t.Fatalf("expected ErrClientUnavailable, got %v", err)
	}
}

func TestNewPropagatesConfigErrors(t *testing.T) {
	cfg := contentful.DefaultConfig()
	cfg.Client.SpaceID = "space123"
	cfg.Client.AccessKey = ""

	if _, err := contentful.New(cfg); !errors.Is(err, contentful.ErrAccessKeyRequired) {
		t.Fatalf("expected ErrAccessKeyRequired, got %v", err)
	}
}

func TestSyncPagesPersistsSnapshots(t *testing.T) {
	cfg := contentful.DefaultConfig()
	cfg.Features.Snapshots = true
	cfg.Storage.Driver = "memory"

	module, err := contentful.New(cfg, di.WithPageService(newStubPageService()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx := context.Background()
	if err := module.SyncPages(ctx, contentful.SyncPagesCommand{}); err != nil {
		t.Fatalf("SyncPages: %v", err)
	}

	snapshot, err := module.Store().Get(ctx, "home", "en-US")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if snapshot.ContentType != "pageHome" {
		t.Fatalf("unexpected content type %q", snapshot.ContentType)
	}
	if got, want := snapshot.LastModified, time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("unexpected last modified %v", got)
	}
}

func TestRegisterCommandsReturnsHandlerSet(t *testing.T) {
	cfg := contentful.DefaultConfig()
	cfg.Features.Snapshots = true
	cfg.Storage.Driver = "memory"

	module, err := contentful.New(cfg, di.WithPageService(newStubPageService()))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	set, err := module.RegisterCommands(nil)
	if err != nil {
		t.Fatalf("RegisterCommands: %v", err)
	}
	if set == nil || set.Sync == nil {
		t.Fatalf("expected a sync handler")
	}
	if got := (pagescmd.SyncPagesCommand{}).Type(); got != "contentful.pages.sync" {
		t.Fatalf("unexpected message type %q", got)
	}
}
