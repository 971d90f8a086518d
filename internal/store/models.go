package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Snapshot persists the flattened payload fetched for one CMS entry, so the
// site can serve content and detect changes without refetching the space.
// One row exists per (content type, locale) pair.
type Snapshot struct {
	bun.BaseModel `bun:"table:contentful_entries,alias:ce"`

	ID           uuid.UUID      `bun:",pk,type:uuid"                json:"id"`
	ContentfulID string         `bun:"contentful_id,notnull,unique" json:"contentful_id"`
	ContentType  string         `bun:"content_type,notnull,unique:content_type_locale" json:"content_type"`
	Locale       string         `bun:"locale,notnull,unique:content_type_locale"       json:"locale"`
	LastModified time.Time      `bun:"last_modified,notnull"        json:"last_modified"`
	DataHash     string         `bun:"data_hash,notnull"            json:"data_hash"`
	Data         map[string]any `bun:"data,type:jsonb,notnull"      json:"data"`
	CreatedAt    time.Time      `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt    time.Time      `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}
