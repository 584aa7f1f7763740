package app

import (
	"fmt"
	"strings"

	"github.com/vk/restricteddsl/internal/report"
	"github.com/vk/restricteddsl/modules/restricted"
)

// DefaultTask is the task run after configuration when none is named.
const DefaultTask = restricted.TaskPrintConfiguration

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ScriptPaths []string // .hcl files or directories, applied in order
	Task        string

	OutputFormat string
	LogFormat    string
	LogLevel     string
}

// NewConfig fills defaults and validates cfg. Script paths are checked by
// App.Run, so a config without scripts can still be used to describe the
// schema.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Task == "" {
		cfg.Task = DefaultTask
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = string(report.FormatText)
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	format, err := report.ParseFormat(cfg.OutputFormat)
	if err != nil {
		return nil, err
	}
	cfg.OutputFormat = string(format)

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log-format '%s': must be 'text' or 'json'", cfg.LogFormat)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, fmt.Errorf("invalid log-level '%s': must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	return &cfg, nil
}
