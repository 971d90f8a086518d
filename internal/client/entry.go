package client

import "time"

// Entry is a single typed content object from the CMS. Fields holds the
// localized field mapping with references already resolved: values are
// scalars, rich text documents (map[string]any), *Entry, *Asset, or []any
// containing any of those.
type Entry struct {
	ID          string
	ContentType string
	UpdatedAt   time.Time
	Fields      map[string]any
}

// Asset is a resolved media asset. URL is protocol-relative exactly as
// delivered by the CMS; callers prepend a scheme.
type Asset struct {
	ID          string
	Title       string
	URL         string
	ContentType string
	Width       int
	Height      int
}

// String returns the named field as a string, or "" when the field is absent
// or not a string. Optional fields degrade to the empty string by contract.
func (e *Entry) String(key string) string {
	if e == nil {
		return ""
	}
	s, _ := e.Fields[key].(string)
	return s
}

// RequireString returns the named field as a string or a MalformedFieldError
// when it is absent or mistyped.
func (e *Entry) RequireString(key string) (string, error) {
	s, ok := e.Fields[key].(string)
	if !ok {
		return "", e.malformed(key)
	}
	return s, nil
}

// Document returns the named rich text field, or nil when absent. A nil
// document renders to the empty string downstream.
func (e *Entry) Document(key string) map[string]any {
	if e == nil {
		return nil
	}
	doc, _ := e.Fields[key].(map[string]any)
	return doc
}

// Link returns the referenced entry stored under key.
func (e *Entry) Link(key string) (*Entry, bool) {
	if e == nil {
		return nil, false
	}
	ref, ok := e.Fields[key].(*Entry)
	return ref, ok && ref != nil
}

// RequireLink returns the referenced entry or a MalformedFieldError when the
// reference is absent or unresolved.
func (e *Entry) RequireLink(key string) (*Entry, error) {
	ref, ok := e.Link(key)
	if !ok {
		return nil, e.malformed(key)
	}
	return ref, nil
}

// Links returns the sequence of referenced entries stored under key.
// Non-entry members are skipped.
func (e *Entry) Links(key string) ([]*Entry, bool) {
	if e == nil {
		return nil, false
	}
	raw, ok := e.Fields[key].([]any)
	if !ok {
		return nil, false
	}
	refs := make([]*Entry, 0, len(raw))
	for _, item := range raw {
		if ref, ok := item.(*Entry); ok && ref != nil {
			refs = append(refs, ref)
		}
	}
	return refs, true
}

// RequireLinks returns the referenced entry sequence or a MalformedFieldError
// when the field is absent entirely.
func (e *Entry) RequireLinks(key string) ([]*Entry, error) {
	refs, ok := e.Links(key)
	if !ok {
		return nil, e.malformed(key)
	}
	return refs, nil
}

// Asset returns the referenced asset stored under key.
func (e *Entry) Asset(key string) (*Asset, bool) {
	if e == nil {
		return nil, false
	}
	asset, ok := e.Fields[key].(*Asset)
	return asset, ok && asset != nil
}

// RequireAsset returns the referenced asset or a MalformedFieldError when the
// reference is absent or unresolved.
func (e *Entry) RequireAsset(key string) (*Asset, error) {
	asset, ok := e.Asset(key)
	if !ok {
		return nil, e.malformed(key)
	}
	return asset, nil
}

func (e *Entry) malformed(key string) error {
	err := &MalformedFieldError{Field: key}
	if e != nil {
		err.EntryID = e.ID
		err.ContentType = e.ContentType
	}
	return err
}
