package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	contentful "github.com/goliatone/go-contentful"
	"github.com/goliatone/go-contentful/internal/di"
	"github.com/goliatone/go-contentful/internal/logging"
	"github.com/goliatone/go-contentful/internal/store"
	"github.com/goliatone/go-contentful/pkg/interfaces"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

// Environment variables consulted when flags are left empty. The names match
// the deployment environment of the marketing site this module serves.
const (
	EnvSpaceID   = "CONTENTFUL_SPACE_ID"
	EnvAccessKey = "CONTENTFUL_SPACE_KEY"
	EnvAPIHost   = "CONTENTFUL_SPACE_API"
)

// Options captures configuration for the delivery CLI bootstraps.
type Options struct {
	SpaceID        string
	AccessKey      string
	Environment    string
	APIHost        string
	DefaultLocale  string
	IncludeDepth   int
	LogLevel       string
	LogFormat      string
	Snapshots      bool
	DSN            string
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the contentful module and the loggers the CLIs report through.
type Module struct {
	Module *contentful.Module
	DB     *bun.DB
	Logger interfaces.Logger
}

// BuildModule constructs a contentful module from CLI options, falling back
// to the CONTENTFUL_* environment variables for credentials.
func BuildModule(opts Options) (*Module, error) {
	cfg := contentful.DefaultConfig()

	cfg.Client.SpaceID = fallbackEnv(opts.SpaceID, EnvSpaceID)
	cfg.Client.AccessKey = fallbackEnv(opts.AccessKey, EnvAccessKey)
	if host := fallbackEnv(opts.APIHost, EnvAPIHost); host != "" {
		cfg.Client.APIHost = host
	}
	if env := strings.TrimSpace(opts.Environment); env != "" {
		cfg.Client.Environment = env
	}
	if opts.IncludeDepth > 0 {
		cfg.Client.IncludeDepth = opts.IncludeDepth
	}
	if siteLocale := strings.TrimSpace(opts.DefaultLocale); siteLocale != "" {
		cfg.DefaultLocale = siteLocale
	}
	if level := strings.TrimSpace(opts.LogLevel); level != "" {
		cfg.Logging.Level = level
	}
	if format := strings.TrimSpace(opts.LogFormat); format != "" {
		cfg.Logging.Format = format
	}

	cfg.Features.Snapshots = opts.Snapshots
	cfg.Storage.DSN = strings.TrimSpace(opts.DSN)

	diOpts := []di.Option{}
	if opts.LoggerProvider != nil {
		diOpts = append(diOpts, di.WithLoggerProvider(opts.LoggerProvider))
	}

	var db *bun.DB
	if opts.Snapshots && cfg.Storage.DSN != "" {
		opened, err := OpenDatabase(context.Background(), cfg.Storage.DSN)
		if err != nil {
			return nil, fmt.Errorf("open snapshot database: %w", err)
		}
		db = opened
		diOpts = append(diOpts, di.WithBunDB(db))
	}

	module, err := contentful.New(cfg, diOpts...)
	if err != nil {
		if db != nil {
			db.Close()
		}
		return nil, fmt.Errorf("initialise contentful module: %w", err)
	}

	logger := logging.ModuleLogger(module.LoggerProvider(), "contentful.cli")

	return &Module{
		Module: module,
		DB:     db,
		Logger: logger,
	}, nil
}

// Close releases resources held by the bootstrap, currently the database.
func (m *Module) Close() error {
	if m == nil || m.DB == nil {
		return nil
	}
	return m.DB.Close()
}

// OpenDatabase opens a SQLite-backed bun handle and ensures the snapshot
// table exists.
func OpenDatabase(ctx context.Context, dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open(sqliteshim.DriverName(), dsn)
	if err != nil {
		return nil, err
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())
	if _, err := db.NewCreateTable().Model((*store.Snapshot)(nil)).IfNotExists().Exec(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func fallbackEnv(value, name string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return strings.TrimSpace(os.Getenv(name))
}
