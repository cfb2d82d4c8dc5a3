package plugin

import (
	"time"

	"tedit/internal/config"
	"tedit/internal/logger"
)

// Load builds the registry for cfg: built-in fallbacks, chroma for
// highlighting and one external linter per configured extension.
func Load(cfg *config.Config) *Registry {
	r := NewRegistry()
	RegisterBuiltins(r, Rules{MaxLineLength: cfg.MaxLineLength})

	r.UseChroma(NewChroma())

	sh := ShellFor(cfg)
	for ext, command := range cfg.Linters {
		r.RegisterLinter(ext, Linter{Name: command, File: ExternalLinter(sh, command)})
		logger.Info("registered linter %q for %s", command, ext)
	}
	return r
}

// ShellFor returns the shell configured in cfg.
func ShellFor(cfg *config.Config) Shell {
	return Shell{
		Path:    cfg.Shell,
		Timeout: time.Duration(cfg.CommandTimeoutSeconds) * time.Second,
	}
}
