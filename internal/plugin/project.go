package plugin

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/vk/restricteddsl/internal/ctxlog"
	"github.com/vk/restricteddsl/internal/nodepath"
	"github.com/vk/restricteddsl/internal/object"
	"github.com/vk/restricteddsl/internal/schema"
	"github.com/vk/restricteddsl/internal/script"
	"github.com/vk/restricteddsl/internal/value"
)

// ProjectType is the schema name of the project node.
const ProjectType = "project"

// Plugin contributes node types, extensions and tasks to a project.
type Plugin interface {
	Apply(ctx context.Context, p *Project) error
}

// Task is work run during the execution phase.
type Task func(ctx context.Context, w io.Writer) error

// Project owns the registries, the runtime and every extension.
type Project struct {
	values  *value.Registry
	schemas *schema.Registry
	ctors   *object.Constructors
	runtime *object.Runtime

	extensions map[string]object.Node
	order      []string
	tasks      map[string]Task
	sealed     bool
	// failed is the error that stopped the project schema from building.
	// The schema is declared at most once, so it is final.
	failed error
}

// NewProject returns an empty project.
func NewProject() *Project {
	values := value.NewRegistry()
	ctors := object.NewConstructors()
	return &Project{
		values:     values,
		schemas:    schema.NewRegistry(values),
		ctors:      ctors,
		runtime:    object.NewRuntime(ctors),
		extensions: make(map[string]object.Node),
		tasks:      make(map[string]Task),
	}
}

// NodeType implements object.Node.
func (p *Project) NodeType() string { return ProjectType }

func (p *Project) Values() *value.Registry             { return p.values }
func (p *Project) Schemas() *schema.Registry           { return p.schemas }
func (p *Project) Constructors() *object.Constructors { return p.ctors }
func (p *Project) Runtime() *object.Runtime            { return p.runtime }

// Apply applies plugins in order and then seals the project schema. A
// schema-definition error in any reachable node type fails here, before a
// script can run, and every later Apply reports it again.
func (p *Project) Apply(ctx context.Context, plugins ...Plugin) error {
	logger := ctxlog.FromContext(ctx)
	if p.sealed {
		return fmt.Errorf("project already configured")
	}
	if p.failed != nil {
		return fmt.Errorf("project schema already failed to build: %w", p.failed)
	}
	for _, pl := range plugins {
		if err := pl.Apply(ctx, p); err != nil {
			return fmt.Errorf("applying plugin %T: %w", pl, err)
		}
	}
	p.schemas.Declare(p.describe())
	if _, err := p.schemas.Build(ctx, ProjectType); err != nil {
		p.failed = err
		return err
	}
	p.sealed = true
	logger.Debug("Project configured.", "extensions", p.order, "tasks", len(p.tasks))
	return nil
}

// CreateExtension builds the schema of typeName, then constructs the
// extension and registers it under name.
func (p *Project) CreateExtension(ctx context.Context, name, typeName string) (object.Node, error) {
	if p.sealed {
		return nil, fmt.Errorf("cannot create extension '%s': project already configured", name)
	}
	if _, exists := p.extensions[name]; exists {
		return nil, fmt.Errorf("extension '%s' already exists", name)
	}
	if _, err := p.schemas.Build(ctx, typeName); err != nil {
		return nil, err
	}
	n, err := p.runtime.New(ctx, typeName)
	if err != nil {
		return nil, err
	}
	p.extensions[name] = n
	p.order = append(p.order, name)
	ctxlog.FromContext(ctx).Debug("Created extension.", "name", name, "type", typeName)
	return n, nil
}

// CreateExtension is the typed form of Project.CreateExtension.
func CreateExtension[T object.Node](ctx context.Context, p *Project, name, typeName string) (T, error) {
	var zero T
	n, err := p.CreateExtension(ctx, name, typeName)
	if err != nil {
		return zero, err
	}
	t, ok := n.(T)
	if !ok {
		return zero, fmt.Errorf("extension '%s' is %T, expected %T", name, n, zero)
	}
	return t, nil
}

// Extension looks up an extension by name.
func (p *Project) Extension(name string) (object.Node, bool) {
	n, ok := p.extensions[name]
	return n, ok
}

// Extensions returns extension names in creation order.
func (p *Project) Extensions() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

// RegisterTask adds a task.
func (p *Project) RegisterTask(name string, task Task) {
	if _, exists := p.tasks[name]; exists {
		panic(fmt.Sprintf("task '%s' already registered", name))
	}
	p.tasks[name] = task
}

// Tasks returns the task names in lexical order.
func (p *Project) Tasks() []string {
	names := make([]string, 0, len(p.tasks))
	for name := range p.tasks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RunTask runs the named task.
func (p *Project) RunTask(ctx context.Context, name string, w io.Writer) error {
	task, ok := p.tasks[name]
	if !ok {
		return fmt.Errorf("task '%s' not found; available: %v", name, p.Tasks())
	}
	ctxlog.FromContext(ctx).Debug("Running task.", "task", name)
	return task(ctx, w)
}

// Configure runs a script against the project.
func (p *Project) Configure(ctx context.Context, stmts []script.Statement) error {
	if !p.sealed {
		return fmt.Errorf("project has not been configured with plugins yet")
	}
	return script.NewExecutor(p.schemas).Execute(ctx, p, nodepath.Path{}, stmts)
}

// describe declares one configuring function per extension.
func (p *Project) describe() schema.TypeDecl {
	decl := schema.TypeDecl{Name: ProjectType}
	for _, name := range p.order {
		ext := p.extensions[name]
		decl.Members = append(decl.Members, schema.ConfigureOf(name, ext.NodeType(),
			func(_ *Project, configure func(object.Node) error) error {
				return object.Configure(ext, configure)
			}))
	}
	return decl
}
