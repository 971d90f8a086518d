package contentful

import "github.com/goliatone/go-contentful/internal/runtimeconfig"

var (
	ErrAccessKeyRequired      = runtimeconfig.ErrAccessKeyRequired
	ErrSnapshotsRequireDSN    = runtimeconfig.ErrSnapshotsRequireDSN
	ErrLoggingProviderUnknown = runtimeconfig.ErrLoggingProviderUnknown
	ErrIncludeDepthInvalid    = runtimeconfig.ErrIncludeDepthInvalid
)

type (
	Config        = runtimeconfig.Config
	ClientConfig  = runtimeconfig.ClientConfig
	StorageConfig = runtimeconfig.StorageConfig
	LoggingConfig = runtimeconfig.LoggingConfig
	Features      = runtimeconfig.Features
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
