package di

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/goliatone/go-contentful/internal/client"
	pagescmd "github.com/goliatone/go-contentful/internal/commands/pages"
	"github.com/goliatone/go-contentful/internal/logging"
	"github.com/goliatone/go-contentful/internal/logging/gologger"
	"github.com/goliatone/go-contentful/internal/pages"
	"github.com/goliatone/go-contentful/internal/richtext"
	"github.com/goliatone/go-contentful/internal/runtimeconfig"
	"github.com/goliatone/go-contentful/internal/store"
	"github.com/goliatone/go-contentful/pkg/interfaces"
	"github.com/uptrace/bun"
)

// Container wires module dependencies: the delivery client, the page walker,
// and the optional snapshot store. A container built from a configuration
// without credentials still constructs; delivery calls fail when invoked.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	httpClient     *http.Client
	renderer       *richtext.Renderer
	bunDB          *bun.DB

	cda          client.Client
	snapshotRepo store.Repository

	pageSvc  pages.Service
	storeSvc store.Service
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the default logger provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithClient overrides the default delivery client binding.
func WithClient(cda client.Client) Option {
	return func(c *Container) {
		c.cda = cda
	}
}

// WithHTTPClient overrides the transport used by the default delivery client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Container) {
		c.httpClient = httpc
	}
}

// WithRenderer overrides the rich text renderer handed to the page service.
func WithRenderer(renderer *richtext.Renderer) Option {
	return func(c *Container) {
		c.renderer = renderer
	}
}

// WithBunDB supplies the database used for the snapshot store.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithSnapshotRepository overrides the default snapshot repository binding.
func WithSnapshotRepository(repo store.Repository) Option {
	return func(c *Container) {
		c.snapshotRepo = repo
	}
}

// WithPageService overrides the default page service binding.
func WithPageService(svc pages.Service) Option {
	return func(c *Container) {
		c.pageSvc = svc
	}
}

// WithStoreService overrides the default snapshot service binding.
func WithStoreService(svc store.Service) Option {
	return func(c *Container) {
		c.storeSvc = svc
	}
}

// NewContainer creates a container with the provided configuration.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLogging(); err != nil {
		return nil, err
	}
	c.configureClient()
	c.configurePages()
	if err := c.configureStore(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Container) configureLogging() error {
	if c.loggerProvider != nil || !c.Config.Features.Logger {
		return nil
	}

	provider, err := gologger.NewProvider(gologger.Config{
		Level:     c.Config.Logging.Level,
		Format:    c.Config.Logging.Format,
		AddSource: c.Config.Logging.AddSource,
		Focus:     c.Config.Logging.Focus,
	})
	if err != nil {
		return err
	}
	c.loggerProvider = provider
	return nil
}

func (c *Container) configureClient() {
	if c.cda != nil || c.Config.Client.SpaceID == "" {
		return
	}

	clientOpts := []client.Option{
		client.WithLogger(logging.ClientLogger(c.loggerProvider)),
	}
	if env := c.Config.Client.Environment; env != "" {
		clientOpts = append(clientOpts, client.WithEnvironment(env))
	}
	if host := c.Config.Client.APIHost; host != "" {
		clientOpts = append(clientOpts, client.WithHost(host))
	}
	if c.httpClient != nil {
		clientOpts = append(clientOpts, client.WithHTTPClient(c.httpClient))
	}

	c.cda = client.New(c.Config.Client.SpaceID, c.Config.Client.AccessKey, clientOpts...)
}

func (c *Container) configurePages() {
	if c.renderer == nil {
		c.renderer = richtext.New(richtext.WithMarkTag("bold", "strong"))
	}
	if c.pageSvc != nil {
		return
	}

	pageOpts := []pages.ServiceOption{
		pages.WithLogger(logging.PagesLogger(c.loggerProvider)),
		pages.WithRenderer(c.renderer),
	}
	if depth := c.Config.Client.IncludeDepth; depth > 0 {
		pageOpts = append(pageOpts, pages.WithIncludeDepth(depth))
	}
	if siteLocale := c.Config.DefaultLocale; siteLocale != "" {
		pageOpts = append(pageOpts, pages.WithLocale(siteLocale))
	}

	c.pageSvc = pages.NewService(c.cda, pageOpts...)
}

func (c *Container) configureStore() error {
	if c.storeSvc != nil || !c.Config.Features.Snapshots {
		return nil
	}

	repo := c.snapshotRepo
	if repo == nil {
		switch {
		case c.bunDB != nil:
			repo = store.NewBunSnapshotRepository(c.bunDB)
		case strings.EqualFold(c.Config.Storage.Driver, "memory"):
			repo = store.NewMemorySnapshotRepository()
		default:
			return fmt.Errorf("di: snapshot storage requires a database handle for driver %q", c.Config.Storage.Driver)
		}
	}

	c.storeSvc = store.NewService(repo, store.WithServiceLogger(logging.StoreLogger(c.loggerProvider)))
	return nil
}

// LoggerProvider exposes the configured logger provider. It is nil when the
// logger feature is disabled and no provider was injected.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// Client exposes the configured delivery client, nil in degraded mode.
func (c *Container) Client() client.Client {
	return c.cda
}

// Renderer returns the rich text renderer handed to the page service.
func (c *Container) Renderer() *richtext.Renderer {
	return c.renderer
}

// PageService returns the configured page walker service.
func (c *Container) PageService() pages.Service {
	return c.pageSvc
}

// StoreService returns the snapshot service, nil when snapshots are disabled.
func (c *Container) StoreService() store.Service {
	return c.storeSvc
}

// RegisterCommands builds the page command handlers against the container's
// services, registering them when a registry is supplied.
func (c *Container) RegisterCommands(reg pagescmd.CommandRegistry, opts ...pagescmd.Option) (*pagescmd.HandlerSet, error) {
	gates := pagescmd.FeatureGates{
		SnapshotsEnabled: func() bool { return c.Config.Features.Snapshots },
	}
	return pagescmd.RegisterPageCommands(reg, c.pageSvc, c.storeSvc, c.loggerProvider, gates, opts...)
}
