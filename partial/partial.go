// Package partial binds leading positional and keyword arguments to a function.
package partial

import (
	"maps"
	"slices"

	"github.com/on-the-ground/functools_ive_go/shared/fnmodel"
)

// Target is a function taking positional and keyword arguments.
type Target[R any] func(args []any, kwargs map[string]any) (R, error)

// Func is a Target with some arguments bound ahead of time.
type Func[R any] struct {
	target     Target[R]
	bound      []any
	boundKeyed map[string]any
	meta       fnmodel.Metadata
}

// Option overrides the metadata a Func mirrors from its target.
type Option func(*fnmodel.Metadata)

func WithName(name string) Option {
	return func(m *fnmodel.Metadata) { m.Name = name }
}

// WithDoc attaches a documentation string, typically the target's.
func WithDoc(doc string) Option {
	return func(m *fnmodel.Metadata) { m.Doc = doc }
}

func WithModule(module string) Option {
	return func(m *fnmodel.Metadata) { m.Module = module }
}

// WithMetadata overlays every non-empty field of meta.
func WithMetadata(meta fnmodel.Metadata) Option {
	return func(m *fnmodel.Metadata) { *m = m.Merge(meta) }
}

// New binds positional and keyed to target.
//
// Both collections are copied: editing them afterwards does not affect the
// returned Func. It fails with fnmodel.ErrNotCallable when target is nil.
func New[R any](target Target[R], positional []any, keyed map[string]any, opts ...Option) (*Func[R], error) {
	if target == nil {
		return nil, fnmodel.ErrNotCallable
	}
	meta := fnmodel.Describe(target, "partial")
	for _, opt := range opts {
		opt(&meta)
	}
	return &Func[R]{
		target:     target,
		bound:      slices.Clone(positional),
		boundKeyed: cloneKeyed(keyed),
		meta:       meta,
	}, nil
}

// Call invokes the target with the bound positional arguments followed by
// positional, and the bound keyword arguments overlaid by keyed. Keys given at
// call time win. The result and error of the target are returned unchanged.
func (p *Func[R]) Call(positional []any, keyed map[string]any) (R, error) {
	args := make([]any, 0, len(p.bound)+len(positional))
	args = append(args, p.bound...)
	args = append(args, positional...)

	kwargs := cloneKeyed(p.boundKeyed)
	maps.Copy(kwargs, keyed)

	return p.target(args, kwargs)
}

// Positional adapts p to a positional-only function, the shape purefn.Wrap accepts.
func (p *Func[R]) Positional() func(args ...any) (R, error) {
	return func(args ...any) (R, error) {
		return p.Call(args, nil)
	}
}

// Args returns a copy of the bound positional arguments.
func (p *Func[R]) Args() []any {
	return slices.Clone(p.bound)
}

// Keywords returns a copy of the bound keyword arguments.
func (p *Func[R]) Keywords() map[string]any {
	return cloneKeyed(p.boundKeyed)
}

func (p *Func[R]) Metadata() fnmodel.Metadata {
	return p.meta
}

func cloneKeyed(keyed map[string]any) map[string]any {
	cloned := make(map[string]any, len(keyed))
	maps.Copy(cloned, keyed)
	return cloned
}

// Bind1 fixes the first argument of a two-argument function.
func Bind1[A, B, R any](f func(A, B) R, a A) func(B) R {
	return func(b B) R {
		return f(a, b)
	}
}

// Bind2 fixes the first two arguments of a three-argument function.
func Bind2[A, B, C, R any](f func(A, B, C) R, a A, b B) func(C) R {
	return func(c C) R {
		return f(a, b, c)
	}
}
