package purefn

import (
	"github.com/on-the-ground/functools_ive_go/shared/fnmodel"
	"github.com/on-the-ground/functools_ive_go/shared/log"
	"go.uber.org/zap"
)

const defaultNumShards = 16

type config struct {
	meta      fnmodel.Metadata
	logger    *zap.Logger
	numShards int
}

// Option configures a Cached or Shared wrapper.
type Option func(*config)

// WithName overrides the display name mirrored from the target.
func WithName(name string) Option {
	return func(c *config) { c.meta.Name = name }
}

// WithDoc attaches a documentation string. Go keeps none at runtime.
func WithDoc(doc string) Option {
	return func(c *config) { c.meta.Doc = doc }
}

// WithModule overrides the defining-module identifier mirrored from the target.
func WithModule(module string) Option {
	return func(c *config) { c.meta.Module = module }
}

// WithMetadata overlays every non-empty field of meta.
func WithMetadata(meta fnmodel.Metadata) Option {
	return func(c *config) { c.meta = c.meta.Merge(meta) }
}

// WithLogger routes cache events to logger at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithNumShards sets the shard count of a Shared wrapper. Cached ignores it.
func WithNumShards(n int) Option {
	return func(c *config) { c.numShards = n }
}

func newConfig(target any, opts []Option) config {
	c := config{}
	for _, opt := range opts {
		opt(&c)
	}
	c.meta = fnmodel.Describe(target, "cached").Merge(c.meta)
	c.logger = log.OrNop(c.logger)
	if c.numShards <= 0 {
		c.numShards = defaultNumShards
	}
	return c
}

// describedBy puts the metadata of fn ahead of user options so they still win.
func describedBy(fn any, opts []Option) []Option {
	return append([]Option{WithMetadata(fnmodel.Describe(fn, "cached"))}, opts...)
}
