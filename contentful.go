package contentful

import (
	"context"

	"github.com/goliatone/go-contentful/internal/client"
	pagescmd "github.com/goliatone/go-contentful/internal/commands/pages"
	"github.com/goliatone/go-contentful/internal/di"
	"github.com/goliatone/go-contentful/internal/pages"
	"github.com/goliatone/go-contentful/internal/richtext"
	"github.com/goliatone/go-contentful/internal/store"
	"github.com/goliatone/go-contentful/pkg/interfaces"
)

// PageService exports the page walker contract for consumers of the module.
type PageService = pages.Service

// PageContent exports the flattened page payload.
type PageContent = pages.PageContent

// PageInfo exports the page summary DTO.
type PageInfo = pages.PageInfo

// Client exports the delivery client contract.
type Client = client.Client

// Entry exports the resolved delivery entry.
type Entry = client.Entry

// StoreService exports the snapshot service contract.
type StoreService = store.Service

// Snapshot exports the persisted snapshot record.
type Snapshot = store.Snapshot

// SyncPagesCommand exports the page snapshot sync message.
type SyncPagesCommand = pagescmd.SyncPagesCommand

// Module represents the top level Contentful runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a Contentful module using the provided configuration and
// optional DI overrides. A configuration without a space ID yields a degraded
// module: accessors work, delivery calls return an unavailable error.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Pages returns the configured page walker service.
func (m *Module) Pages() PageService {
	return m.container.PageService()
}

// Client returns the configured delivery client, nil in degraded mode.
func (m *Module) Client() Client {
	return m.container.Client()
}

// Store returns the snapshot service, nil when snapshots are disabled.
func (m *Module) Store() StoreService {
	return m.container.StoreService()
}

// Renderer returns the rich text renderer used by the page walker.
func (m *Module) Renderer() *richtext.Renderer {
	return m.container.Renderer()
}

// LoggerProvider returns the provider handed to module services.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.LoggerProvider()
}

// RegisterCommands wires the page command handlers into the supplied registry.
func (m *Module) RegisterCommands(reg pagescmd.CommandRegistry, opts ...pagescmd.Option) (*pagescmd.HandlerSet, error) {
	return m.container.RegisterCommands(reg, opts...)
}

// SyncPages runs the snapshot sync command once with the supplied message.
func (m *Module) SyncPages(ctx context.Context, msg SyncPagesCommand) error {
	handlers, err := m.container.RegisterCommands(nil)
	if err != nil {
		return err
	}
	return handlers.Sync.Execute(ctx, msg)
}
