package runtimeconfig

import (
	"errors"
	"strings"
)

// ErrAccessKeyRequired indicates a space was configured without an access key.
var ErrAccessKeyRequired = errors.New("contentful config: access key is required when a space id is configured")

// ErrSnapshotsRequireDSN ensures the snapshot store only builds with a
// database target. The "memory" driver is exempt.
var ErrSnapshotsRequireDSN = errors.New("contentful config: snapshots feature requires a storage dsn")

// ErrLoggingProviderUnknown reports an unrecognized logging provider identifier.
var ErrLoggingProviderUnknown = errors.New("contentful config: logging provider is invalid")

// ErrIncludeDepthInvalid reports an out-of-range reference expansion depth.
var ErrIncludeDepthInvalid = errors.New("contentful config: include depth must be between 0 and 10")

// Config aggregates client settings and feature flags for the adapter module.
// Fields intentionally use simple types so host applications can bind them to
// their own configuration loaders.
type Config struct {
	Enabled       bool
	DefaultLocale string
	Client        ClientConfig
	Storage       StorageConfig
	Logging       LoggingConfig
	Features      Features
}

// ClientConfig captures the Contentful Content Delivery API credentials.
type ClientConfig struct {
	SpaceID      string
	AccessKey    string
	Environment  string
	APIHost      string
	IncludeDepth int
}

// StorageConfig lists identifiers for the snapshot store.
type StorageConfig struct {
	Driver string
	DSN    string
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// Features toggles module functionality.
type Features struct {
	Snapshots bool
	Logger    bool
}

// DefaultConfig returns the baseline configuration. The environment and API
// host defaults match the values the marketing site deploys against.
func DefaultConfig() Config {
	return Config{
		Enabled:       true,
		DefaultLocale: "en-US",
		Client: ClientConfig{
			Environment:  "V0",
			APIHost:      "cdn.contentful.com",
			IncludeDepth: 5,
		},
		Storage: StorageConfig{
			Driver: "sqlite",
		},
		Logging: LoggingConfig{
			Provider: "gologger",
			Level:    "info",
			Format:   "json",
		},
	}
}

// Validate checks cross-field consistency before the container builds services.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}

	// An absent space id is a legal degraded mode: no client is constructed
	// and delivery calls fail when invoked. A space without a key is not.
	if strings.TrimSpace(c.Client.SpaceID) != "" && strings.TrimSpace(c.Client.AccessKey) == "" {
		return ErrAccessKeyRequired
	}
	if c.Client.IncludeDepth < 0 || c.Client.IncludeDepth > 10 {
		return ErrIncludeDepthInvalid
	}
	if c.Features.Snapshots && strings.TrimSpace(c.Storage.DSN) == "" &&
		!strings.EqualFold(strings.TrimSpace(c.Storage.Driver), "memory") {
		return ErrSnapshotsRequireDSN
	}
	if c.Features.Logger {
		switch strings.ToLower(strings.TrimSpace(c.Logging.Provider)) {
		case "", "gologger", "noop":
		default:
			return ErrLoggingProviderUnknown
		}
	}
	return nil
}
