package pagescmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-contentful/internal/pages"
)

const syncPagesMessageType = "contentful.pages.sync"

// SyncPagesCommand triggers a flatten-and-snapshot run over the delivery
// space: every page entry is walked into its component payload and persisted
// through the snapshot store, skipping rows whose content hash is unchanged.
type SyncPagesCommand struct {
	// Locale records the CMS locale the snapshots are taken for. Empty
	// defaults to the delivery space default locale.
	Locale string `json:"locale,omitempty"`
	// ContentType restricts the run to one page archetype when set.
	ContentType string `json:"content_type,omitempty"`
	// DryRun walks and flattens every page without persisting snapshots.
	DryRun bool `json:"dry_run,omitempty"`
}

// Type implements command.Message.
func (SyncPagesCommand) Type() string { return syncPagesMessageType }

// Validate ensures the archetype filter, when present, names a known page type.
func (cmd SyncPagesCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.ContentType, validation.By(func(value any) error {
			contentType := strings.TrimSpace(value.(string))
			if contentType == "" {
				return nil
			}
			switch contentType {
			case pages.TypePageGeneral, pages.TypePageVersatile, pages.TypePageHome:
				return nil
			}
			return validation.NewError("contentful.pages.sync.content_type_unknown", "content type is not a page archetype")
		})),
	)
}
