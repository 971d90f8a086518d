package di_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/goliatone/go-contentful/internal/di"
	"github.com/goliatone/go-contentful/internal/pages"
	"github.com/goliatone/go-contentful/internal/runtimeconfig"
	"github.com/goliatone/go-contentful/internal/store"
)

func TestNewContainerRejectsInvalidConfig(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Client.SpaceID = "space123"
	cfg.Client.AccessKey = ""

	if _, err := di.NewContainer(cfg); !errors.Is(err, runtimeconfig.ErrAccessKeyRequired) {
		t.Fatalf("expected ErrAccessKeyRequired, got %v", err)
	}
}

func TestNewContainerDegradedModeWithoutSpace(t *testing.T) {
	container, err := di.NewContainer(runtimeconfig.DefaultConfig())
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}

	if container.Client() != nil {
		t.Fatalf("expected nil delivery client without a space id")
	}
	svc := container.PageService()
	if svc == nil {
		t.Fatalf("expected a page service even in degraded mode")
	}
	if _, err := svc.ListPages(context.Background()); !errors.Is(err, pages.ErrClientUnavailable) {
		t.Fatalf("expected ErrClientUnavailable, got %v", err)
	}
	if container.StoreService() != nil {
		t.Fatalf("expected nil store service while snapshots are disabled")
	}
}

func TestNewContainerBuildsMemorySnapshotStore(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Snapshots = true
	cfg.Storage.Driver = "memory"

	container, err := di.NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}

	svc := container.StoreService()
	if svc == nil {
		t.Fatalf("expected a snapshot service for the memory driver")
	}

	ctx := context.Background()
	_, wrote, err := svc.Upsert(ctx, store.SnapshotInput{
		ContentfulID: "p1",
		ContentType:  "pageHome",
		Locale:       "en-US",
		LastModified: time.Now().UTC(),
		Data:         map[string]any{"page_type": "pageHome"},
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if !wrote {
		t.Fatalf("expected the first upsert to write")
	}
}

func TestNewContainerRequiresDatabaseForSQLDriver(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Snapshots = true
	cfg.Storage.Driver = "sqlite"
	cfg.Storage.DSN = "file:contentful.db"

	if _, err := di.NewContainer(cfg); err == nil {
		t.Fatalf("expected an error when no database handle is supplied")
	}
}

func TestNewContainerHonoursServiceOverrides(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Snapshots = true
	cfg.Storage.Driver = "memory"

	pageSvc := pages.NewService(nil)
	storeSvc := store.NewService(store.NewMemorySnapshotRepository())

	container, err := di.NewContainer(cfg,
		di.WithPageService(pageSvc),
		di.WithStoreService(storeSvc),
	)
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}

	if container.PageService() != pageSvc {
		t.Fatalf("expected the injected page service")
	}
	if container.StoreService() != storeSvc {
		t.Fatalf("expected the injected store service")
	}
}

func TestRegisterCommandsBuildsSyncHandler(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Snapshots = true
	cfg.Storage.Driver = "memory"

	container, err := di.NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer: %v", err)
	}

	set, err := container.RegisterCommands(nil)
	if err != nil {
		t.Fatalf("RegisterCommands: %v", err)
	}
	if set == nil || set.Sync == nil {
		t.Fatalf("expected a sync handler")
	}
}

func TestNewContainerRejectsUnknownLoggingProvider(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "zap"

	if _, err := di.NewContainer(cfg); !errors.Is(err, runtimeconfig.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}
