package hcl

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/restricteddsl/internal/ctxlog"
	"github.com/vk/restricteddsl/internal/fsutil"
	"github.com/vk/restricteddsl/internal/script"
)

// Extension is the file extension of script files.
const Extension = ".hcl"

// Loader turns HCL script files into statements.
type Loader struct{}

// NewLoader creates a new HCL script loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadFiles parses every script denoted by paths. Directories are walked for
// .hcl files; the resulting files are applied in lexical order and their
// statements are concatenated.
func (l *Loader) LoadFiles(ctx context.Context, paths ...string) ([]script.Statement, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, Extension)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered script files.", "count", len(files))

	parser := hclparse.NewParser()
	var stmts []script.Statement
	for _, file := range files {
		f, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		fileStmts, err := l.statements(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read HCL file %s: %w", file, err)
		}
		stmts = append(stmts, fileStmts...)
	}

	logger.Debug("HCL loading complete.", "files", len(files), "statements", len(stmts))
	return stmts, nil
}

// ParseSource parses a single in-memory script. filename is used only in
// diagnostics.
func (l *Loader) ParseSource(ctx context.Context, src []byte, filename string) ([]script.Statement, error) {
	f, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL source %s: %w", filename, diags)
	}
	stmts, err := l.statements(f)
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("Parsed HCL source.", "filename", filename, "statements", len(stmts))
	return stmts, nil
}

func (l *Loader) statements(f *hcl.File) ([]script.Statement, error) {
	body, ok := f.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("unsupported HCL body type %T", f.Body)
	}
	stmts, diags := translateBody(body)
	if diags.HasErrors() {
		return nil, diags
	}
	return stmts, nil
}

// translateBody flattens attributes and blocks back into source order, which
// hclsyntax splits into a map and a slice.
func translateBody(body *hclsyntax.Body) ([]script.Statement, hcl.Diagnostics) {
	type positioned struct {
		offset int
		stmt   script.Statement
	}

	var diags hcl.Diagnostics
	items := make([]positioned, 0, len(body.Attributes)+len(body.Blocks))

	for _, attr := range body.Attributes {
		items = append(items, positioned{
			offset: attr.SrcRange.Start.Byte,
			stmt:   script.Assign{Name: attr.Name, Expr: attr.Expr, Range: attr.SrcRange},
		})
	}

	for _, block := range body.Blocks {
		if len(block.Labels) > 0 {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unexpected block label",
				Detail:   fmt.Sprintf("Block '%s' takes no labels; configuring and adding calls are written as `%s { ... }`.", block.Type, block.Type),
				Subject:  block.LabelRanges[0].Ptr(),
			})
			continue
		}
		inner, innerDiags := translateBody(block.Body)
		diags = append(diags, innerDiags...)
		items = append(items, positioned{
			offset: block.TypeRange.Start.Byte,
			stmt: script.Invoke{
				Name:    block.Type,
				Body:    inner,
				HasBody: true,
				Range:   block.DefRange(),
			},
		})
	}

	sort.Slice(items, func(i, j int) bool { return items[i].offset < items[j].offset })

	stmts := make([]script.Statement, len(items))
	for i, it := range items {
		stmts[i] = it.stmt
	}
	return stmts, diags
}
