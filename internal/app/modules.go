package app

import (
	"github.com/vk/restricteddsl/internal/plugin"
	"github.com/vk/restricteddsl/internal/report"
	"github.com/vk/restricteddsl/modules/restricted"
)

// coreModules is the definitive list of all plugins that are compiled into
// the restricteddsl binary.
func coreModules(cfg *Config) []plugin.Plugin {
	return []plugin.Plugin{
		&restricted.Module{Format: report.Format(cfg.OutputFormat)},
	}
}
