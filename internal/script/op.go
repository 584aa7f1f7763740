package script

import (
	"context"

	"github.com/vk/restricteddsl/internal/ctxlog"
	"github.com/vk/restricteddsl/internal/nodepath"
	"github.com/vk/restricteddsl/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

// op is a planned statement. All validation has already happened; path is
// where node sits in the graph.
type op interface {
	apply(ctx context.Context, node any, path nodepath.Path) error
}

type assignOp struct {
	entry schema.Entry
	value cty.Value
}

func (o assignOp) apply(ctx context.Context, node any, _ nodepath.Path) error {
	slot, err := o.entry.Binding.Slot(node)
	if err != nil {
		return err
	}
	if err := slot.AssignCty(o.value); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Debug("Assigned property.", "property", o.entry.Name)
	return nil
}

type configureOp struct {
	entry  schema.Entry
	body   []op
	target string
}

func (o configureOp) apply(ctx context.Context, node any, path nodepath.Path) error {
	inner := path.Child(o.entry.Name)
	return o.entry.Binding.Configure(ctx, node, func(target any) error {
		return applyAll(ctxlog.WithNode(ctx, o.target, inner.String()), target, inner, o.body)
	})
}

type addOp struct {
	entry  schema.Entry
	body   []op
	target string
}

func (o addOp) apply(ctx context.Context, node any, path nodepath.Path) error {
	inner := path.Child(o.entry.Name)
	if o.entry.Binding.Len != nil {
		n, err := o.entry.Binding.Len(node)
		if err != nil {
			return err
		}
		inner = path.Element(o.entry.Name, n)
	}
	_, err := o.entry.Binding.Add(ctx, node, func(element any) error {
		return applyAll(ctxlog.WithNode(ctx, o.target, inner.String()), element, inner, o.body)
	})
	return err
}

func applyAll(ctx context.Context, node any, path nodepath.Path, ops []op) error {
	for _, o := range ops {
		if err := o.apply(ctx, node, path); err != nil {
			return err
		}
	}
	return nil
}
