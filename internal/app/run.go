package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/vk/restricteddsl/internal/nodepath"
	"github.com/vk/restricteddsl/internal/plugin"
	"github.com/vk/restricteddsl/internal/report"
	"github.com/vk/restricteddsl/internal/script"
)

// Run executes the configuration phase with the configured scripts and then
// the execution phase with the configured task.
func (a *App) Run(ctx context.Context) error {
	ctx = a.Context(ctx)
	a.logger.Debug("App.Run method started.")

	if len(a.config.ScriptPaths) == 0 {
		return errors.New("at least one script path is required")
	}

	stmts, err := a.loader.LoadFiles(ctx, a.config.ScriptPaths...)
	if err != nil {
		return fmt.Errorf("failed to load scripts: %w", err)
	}
	return a.execute(ctx, stmts)
}

// RunSource is Run with a single in-memory script.
func (a *App) RunSource(ctx context.Context, src []byte, filename string) error {
	ctx = a.Context(ctx)
	stmts, err := a.loader.ParseSource(ctx, src, filename)
	if err != nil {
		return fmt.Errorf("failed to load scripts: %w", err)
	}
	return a.execute(ctx, stmts)
}

func (a *App) execute(ctx context.Context, stmts []script.Statement) error {
	a.logger.Info("Configuring project.", "statements", len(stmts))
	if err := a.project.Configure(ctx, stmts); err != nil {
		return fmt.Errorf("configuration failed: %w", err)
	}

	a.logger.Info("Running task.", "task", a.config.Task)
	if err := a.project.RunTask(ctx, a.config.Task, a.outW); err != nil {
		return fmt.Errorf("task '%s' failed: %w", a.config.Task, err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// DescribeSchema writes the schema reachable from the node at path in
// format, which is "json" or "yaml". An empty path describes the whole
// project.
func (a *App) DescribeSchema(ctx context.Context, w io.Writer, format, path string) error {
	ctx = a.Context(ctx)
	root := plugin.ProjectType
	if path != "" {
		p, err := nodepath.Parse(path)
		if err != nil {
			return err
		}
		t, err := a.project.Schemas().Resolve(ctx, plugin.ProjectType, p)
		if err != nil {
			return fmt.Errorf("resolving '%s': %w", path, err)
		}
		root = t.Name()
	}

	desc, err := a.project.Schemas().Describe(ctx, root)
	if err != nil {
		return err
	}

	var out []byte
	switch f, err := report.ParseFormat(format); {
	case err != nil:
		return err
	case f == report.FormatJSON:
		out, err = desc.JSON()
		if err != nil {
			return err
		}
		out = append(out, '\n')
	case f == report.FormatYAML:
		out, err = desc.YAML()
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("schema cannot be described as '%s': use 'json' or 'yaml'", format)
	}

	_, err = w.Write(out)
	return err
}
