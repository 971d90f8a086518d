package pagescmd

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"
	"github.com/goliatone/go-contentful/internal/commands"
	"github.com/goliatone/go-contentful/internal/pages"
	"github.com/goliatone/go-contentful/internal/store"
	"github.com/goliatone/go-contentful/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// CronRegistrar matches the function signature used by go-command registries.
type CronRegistrar func(command.HandlerConfig, any) error

// HandlerSet groups the page command handlers produced by RegisterPageCommands.
type HandlerSet struct {
	Sync *SyncPagesHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	syncHandlerOpts []commands.HandlerOption[SyncPagesCommand]
}

// WithSyncHandlerOptions forwards options to the SyncPagesHandler constructor.
func WithSyncHandlerOptions(opts ...commands.HandlerOption[SyncPagesCommand]) Option {
	return func(cfg *options) {
		cfg.syncHandlerOpts = append(cfg.syncHandlerOpts, opts...)
	}
}

// RegisterPageCommands builds page command handlers and registers them with
// the provided registry. A HandlerSet containing the constructed handlers is
// returned so callers can wire additional integrations (dispatcher, cron).
func RegisterPageCommands(reg CommandRegistry, service pages.Service, snapshots store.Service, provider interfaces.LoggerProvider, gates FeatureGates, opts ...Option) (*HandlerSet, error) {
	if service == nil {
		return nil, errors.New("page command registration: service is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "pages")

	syncHandler := NewSyncPagesHandler(service, snapshots, logger, gates, cfg.syncHandlerOpts...)

	if reg != nil {
		if err := reg.RegisterCommand(syncHandler); err != nil {
			return nil, err
		}
	}

	return &HandlerSet{Sync: syncHandler}, nil
}

// RegisterPagesCron wires the provided sync handler into a cron registrar
// using the supplied command configuration and message payload. The handler
// executes with a background context.
func RegisterPagesCron(reg CronRegistrar, handler *SyncPagesHandler, cfg command.HandlerConfig, msg SyncPagesCommand) error {
	if reg == nil || handler == nil {
		return nil
	}
	return reg(cfg, func() error {
		return handler.Execute(context.Background(), msg)
	})
}
