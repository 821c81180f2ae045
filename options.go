package canvasex

import "log/slog"

// Option configures a Drawer during creation.
//
// Example:
//
//	// Permissive defaults
//	d := canvasex.NewDrawer(c)
//
//	// Reject unknown alignment and overflow values
//	d := canvasex.NewDrawer(c, canvasex.WithStrictEnums())
type Option func(*options)

// options holds optional configuration for Drawer creation.
type options struct {
	strict bool
	logger *slog.Logger
}

// defaultOptions returns the default Drawer options.
func defaultOptions() options {
	return options{
		strict: false,
		logger: nil, // falls back to Logger() at call time
	}
}

// WithStrictEnums makes the Drawer fail with an error wrapping
// ErrInvalidArgument when it is given an alignment or overflow value
// outside the declared enumerations. Without it such values degrade
// silently: the anchor offset stays at 0 and the overflow falls back to
// DefaultOverflow.
func WithStrictEnums() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithLogger sets a logger for this Drawer only, overriding the package
// logger configured with SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
