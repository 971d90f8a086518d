package client

import "fmt"

// NotFoundError reports that the requested entry does not exist in the
// configured space.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	kind := e.Kind
	if kind == "" {
		kind = "entry"
	}
	return fmt.Sprintf("contentful: %s %q not found", kind, e.ID)
}

// APIError captures a non-2xx response from the delivery API.
type APIError struct {
	StatusCode int
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("contentful: api error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("contentful: api error %d", e.StatusCode)
}

// MalformedFieldError reports a required entry field that is absent or has an
// unexpected shape. It is produced at the decode boundary so callers get a
// typed failure instead of a panic on a missing key.
type MalformedFieldError struct {
	EntryID     string
	ContentType string
	Field       string
}

func (e *MalformedFieldError) Error() string {
	return fmt.Sprintf("contentful: entry %q (%s): field %q missing or malformed", e.EntryID, e.ContentType, e.Field)
}
