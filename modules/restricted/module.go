// Package restricted wires the restricted extension into a project and
// contributes the task that prints its configuration.
package restricted

import (
	"context"
	"fmt"
	"io"

	"github.com/vk/restricteddsl/internal/ctxlog"
	"github.com/vk/restricteddsl/internal/plugin"
	"github.com/vk/restricteddsl/internal/report"
	rext "github.com/vk/restricteddsl/internal/restricted"
	"github.com/vk/restricteddsl/internal/value"
)

// TaskPrintConfiguration prints the configured extension.
const TaskPrintConfiguration = "printConfiguration"

// Module implements the plugin.Plugin interface for this package.
type Module struct {
	// Format selects the printConfiguration output. The zero value prints text.
	Format report.Format
}

// Apply registers the node types, creates the extension and adds its task.
func (m *Module) Apply(ctx context.Context, p *plugin.Project) error {
	if _, exists := p.Extension(rext.ExtensionName); exists {
		return fmt.Errorf("extension '%s' already exists", rext.ExtensionName)
	}
	if _, ok := p.Values().Lookup(value.PointTypeName); !ok {
		p.Values().Register(value.PointTypeName, value.PointType)
	}
	rext.Register(p.Schemas(), p.Constructors())

	ext, err := plugin.CreateExtension[*rext.Extension](ctx, p, rext.ExtensionName, rext.ExtensionType)
	if err != nil {
		return fmt.Errorf("creating '%s' extension: %w", rext.ExtensionName, err)
	}

	format := m.Format
	if format == "" {
		format = report.FormatText
	}
	p.RegisterTask(TaskPrintConfiguration, func(ctx context.Context, w io.Writer) error {
		ctxlog.FromContext(ctx).Debug("Printing configuration.", "format", format)
		return report.Write(w, report.Take(ext), format)
	})
	return nil
}
