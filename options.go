package vglite

import "log/slog"

// ContextOption configures a Context during creation.
//
//	ctx, err := vglite.NewContext(
//		vglite.WithRenderer(r),
//		vglite.WithFeatures(vglite.DefaultFeatures.With(vglite.FeatureAlign16)),
//	)
//	if err != nil {
//		return err
//	}
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	renderer  Renderer
	allocator *Allocator
	features  Features
	logger    *slog.Logger
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		features: DefaultFeatures,
	}
}

// WithRenderer sets the renderer that executes drawing commands.
// The default is a SoftwareRenderer.
func WithRenderer(r Renderer) ContextOption {
	return func(o *contextOptions) {
		o.renderer = r
	}
}

// WithAllocator sets the allocator used for buffers the Context creates.
// When the feature set enables FeatureAlign16, the allocator's Align16 is
// forced on.
func WithAllocator(a *Allocator) ContextOption {
	return func(o *contextOptions) {
		o.allocator = a
	}
}

// WithFeatures replaces the reported feature set.
func WithFeatures(fs Features) ContextOption {
	return func(o *contextOptions) {
		o.features = fs
	}
}

// WithLogger sets a Context-specific logger. Without it the Context logs to
// the package logger (see SetLogger).
func WithLogger(l *slog.Logger) ContextOption {
	return func(o *contextOptions) {
		o.logger = l
	}
}
