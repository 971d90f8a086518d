package logging

import "github.com/goliatone/go-contentful/pkg/interfaces"

// WithFields annotates a logger with structured fields. Implementations that
// do not support the FieldsLogger extension get the logger back unchanged;
// nil loggers and empty field maps are no-ops. The map is copied so callers
// may reuse or mutate theirs after the call.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}

	fieldsLogger, ok := logger.(interfaces.FieldsLogger)
	if !ok {
		return logger
	}

	copied := make(map[string]any, len(fields))
	for key, value := range fields {
		copied[key] = value
	}
	return fieldsLogger.WithFields(copied)
}
