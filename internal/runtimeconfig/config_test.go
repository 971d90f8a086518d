package runtimeconfig_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-contentful/internal/runtimeconfig"
)

func TestDefaultConfigTargetsDeliveryAPI(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()

	if !cfg.Enabled {
		t.Fatalf("expected module enabled by default")
	}
	if cfg.Client.Environment != "V0" {
		t.Fatalf("unexpected environment %q", cfg.Client.Environment)
	}
	if cfg.Client.APIHost != "cdn.contentful.com" {
		t.Fatalf("unexpected host %q", cfg.Client.APIHost)
	}
	if cfg.Client.IncludeDepth != 5 {
		t.Fatalf("unexpected include depth %d", cfg.Client.IncludeDepth)
	}
	if cfg.DefaultLocale != "en-US" {
		t.Fatalf("unexpected default locale %q", cfg.DefaultLocale)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected default config valid, got %v", err)
	}
}

func TestValidateAllowsDegradedModeWithoutSpace(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Client.SpaceID = ""
	cfg.Client.AccessKey = ""

	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected missing space to validate, got %v", err)
	}
}

func TestValidateRequiresKeyWithSpace(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Client.SpaceID = "space123"
	cfg.Client.AccessKey = ""

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrAccessKeyRequired) {
		t.Fatalf("expected ErrAccessKeyRequired, got %v", err)
	}
}

func TestValidateBoundsIncludeDepth(t *testing.T) {
	for _, depth := range []int{-1, 11} {
		cfg := runtimeconfig.DefaultConfig()
		cfg.Client.IncludeDepth = depth
		if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrIncludeDepthInvalid) {
			t.Fatalf("expected ErrIncludeDepthInvalid for depth %d, got %v", depth, err)
		}
	}
}

func TestValidateSnapshotsRequireDSN(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Snapshots = true
	cfg.Storage.DSN = ""

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrSnapshotsRequireDSN) {
		t.Fatalf("expected ErrSnapshotsRequireDSN, got %v", err)
	}

	cfg.Storage.Driver = "memory"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected memory driver to skip the dsn requirement, got %v", err)
	}

	cfg.Storage.Driver = "sqlite"
	cfg.Storage.DSN = "file:contentful.db"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected dsn-backed snapshots to validate, got %v", err)
	}
}

func TestValidateRejectsUnknownLoggingProvider(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "zap"

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}

	for _, provider := range []string{"", "gologger", "noop"} {
		cfg.Logging.Provider = provider
		if err := cfg.Validate(); err != nil {
			t.Fatalf("expected provider %q to validate, got %v", provider, err)
		}
	}
}

func TestValidateSkipsChecksWhenDisabled(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Enabled = false
	cfg.Client.SpaceID = "space123"
	cfg.Client.AccessKey = ""
	cfg.Client.IncludeDepth = 99

	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected disabled module to skip validation, got %v", err)
	}
}
