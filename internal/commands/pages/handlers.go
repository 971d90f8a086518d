package pagescmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	command "github.com/goliatone/go-command"
	"github.com/goliatone/go-contentful/internal/commands"
	"github.com/goliatone/go-contentful/internal/locale"
	"github.com/goliatone/go-contentful/internal/logging"
	"github.com/goliatone/go-contentful/internal/pages"
	"github.com/goliatone/go-contentful/internal/store"
	"github.com/goliatone/go-contentful/pkg/interfaces"
)

const (
	syncOperation = "pages.sync"

	defaultSnapshotLocale = "en-US"
)

// ErrSnapshotsFeatureDisabled is returned when the snapshots feature flag is disabled at runtime.
var ErrSnapshotsFeatureDisabled = errors.New("pages command: snapshots feature disabled")

var _ command.Commander[SyncPagesCommand] = (*SyncPagesHandler)(nil)

// SyncPagesHandler flattens every page entry and persists the result through
// the snapshot store via the shared command handler foundation.
type SyncPagesHandler struct {
	inner *commands.Handler[SyncPagesCommand]
}

// NewSyncPagesHandler creates a handler bound to the supplied page walker and snapshot store.
func NewSyncPagesHandler(service pages.Service, snapshots store.Service, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[SyncPagesCommand]) *SyncPagesHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg SyncPagesCommand) error {
		if !gates.snapshotsEnabled() {
			return ErrSnapshotsFeatureDisabled
		}
		if service == nil {
			return errors.New("pages command: page service is nil")
		}
		if snapshots == nil && !msg.DryRun {
			return errors.New("pages command: snapshot store is nil")
		}

		infos, err := service.ListPages(ctx)
		if err != nil {
			return fmt.Errorf("pages command: list pages: %w", err)
		}

		snapshotLocale := locale.Contentful(strings.TrimSpace(msg.Locale))
		if snapshotLocale == "" {
			snapshotLocale = defaultSnapshotLocale
		}

		var created, updated, unchanged, failed int
		for _, info := range infos {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			pageType, err := service.GetPageType(ctx, info.ID)
			if err != nil {
				failed++
				logging.WithFields(baseLogger, map[string]any{
					"page_id": info.ID,
					"error":   err.Error(),
				}).Warn("pages.command.sync.page_type_failed")
				continue
			}
			if msg.ContentType != "" && pageType != msg.ContentType {
				continue
			}

			content, err := service.GetPageContent(ctx, info.ID)
			if err != nil {
				failed++
				logging.WithFields(baseLogger, map[string]any{
					"page_id":   info.ID,
					"page_type": pageType,
					"error":     err.Error(),
				}).Warn("pages.command.sync.flatten_failed")
				continue
			}

			if msg.DryRun {
				unchanged++
				continue
			}

			entry, err := service.GetEntry(ctx, info.ID)
			if err != nil {
				failed++
				logging.WithFields(baseLogger, map[string]any{
					"page_id": info.ID,
					"error":   err.Error(),
				}).Warn("pages.command.sync.entry_failed")
				continue
			}

			data, err := contentPayload(content)
			if err != nil {
				failed++
				logging.WithFields(baseLogger, map[string]any{
					"page_id": info.ID,
					"error":   err.Error(),
				}).Warn("pages.command.sync.encode_failed")
				continue
			}

			existing := true
			if _, err := snapshots.Get(ctx, info.ID, snapshotLocale); err != nil {
				if !errors.Is(err, store.ErrSnapshotNotFound) {
					return fmt.Errorf("pages command: read snapshot %s: %w", info.ID, err)
				}
				existing = false
			}

			_, wrote, err := snapshots.Upsert(ctx, store.SnapshotInput{
				ContentfulID: info.ID,
				ContentType:  pageType,
				Locale:       snapshotLocale,
				LastModified: entry.UpdatedAt,
				Data:         data,
			})
			if err != nil {
				return fmt.Errorf("pages command: snapshot %s: %w", info.ID, err)
			}
			switch {
			case wrote && !existing:
				created++
			case wrote:
				updated++
			default:
				unchanged++
			}
		}

		logging.WithFields(baseLogger, map[string]any{
			"created_count":   created,
			"updated_count":   updated,
			"unchanged_count": unchanged,
			"error_count":     failed,
			"locale":          snapshotLocale,
			"dry_run":         msg.DryRun,
		}).Info("pages.command.sync.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[SyncPagesCommand]{
		commands.WithLogger[SyncPagesCommand](baseLogger),
		commands.WithOperation[SyncPagesCommand](syncOperation),
		commands.WithMessageFields(func(msg SyncPagesCommand) map[string]any {
			fields := map[string]any{}
			if msg.Locale != "" {
				fields["locale"] = msg.Locale
			}
			if msg.ContentType != "" {
				fields["content_type"] = msg.ContentType
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[SyncPagesCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SyncPagesHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[SyncPagesCommand].
func (h *SyncPagesHandler) Execute(ctx context.Context, msg SyncPagesCommand) error {
	return h.inner.Execute(ctx, msg)
}

// contentPayload round-trips the flattened page through JSON so the stored
// document uses the same shape templates consume.
func contentPayload(content *pages.PageContent) (map[string]any, error) {
	raw, err := json.Marshal(content)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return data, nil
}
