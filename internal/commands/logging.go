package commands

import (
	"strings"

	"github.com/goliatone/go-contentful/internal/logging"
	"github.com/goliatone/go-contentful/pkg/interfaces"
)

// CommandLogger returns a module-scoped logger for command handlers. Loggers
// are named "contentful.commands.<module>" and tagged with the component and
// module fields so executions can be filtered predictably.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}

	return logging.WithFields(
		logging.ModuleLogger(provider, "contentful.commands."+name),
		map[string]any{
			"component":      "command",
			"command_module": name,
		},
	)
}
