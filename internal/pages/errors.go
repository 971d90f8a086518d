package pages

import (
	"errors"
	"fmt"
)

// ErrClientUnavailable is returned when no delivery client was constructed,
// i.e. the module runs without a configured space id.
var ErrClientUnavailable = errors.New("pages: contentful client unavailable; configure a space id")

// UnsupportedContentTypeError reports an entry whose content type tag is not
// one of the recognized page archetypes. Callers can log, ignore, or fail on
// it; the walker itself no longer skips unknown archetypes silently.
type UnsupportedContentTypeError struct {
	EntryID     string
	ContentType string
}

func (e *UnsupportedContentTypeError) Error() string {
	return fmt.Sprintf("pages: entry %q has unsupported content type %q", e.EntryID, e.ContentType)
}
