package observable

import (
	"github.com/AntonStoeckl/school-library-go/library/shared/shell"
)

// Option configures a CommandWrapper or a QueryWrapper.
type Option func(*shell.Observability)

func WithMetrics(collector shell.MetricsCollector) Option {
	return func(o *shell.Observability) {
		o.Metrics = collector
	}
}

func WithTracing(collector shell.TracingCollector) Option {
	return func(o *shell.Observability) {
		o.Tracing = collector
	}
}

// WithContextualLogging takes precedence over WithLogging.
func WithContextualLogging(logger shell.ContextualLogger) Option {
	return func(o *shell.Observability) {
		o.ContextualLogger = logger
	}
}

func WithLogging(logger shell.Logger) Option {
	return func(o *shell.Observability) {
		o.Logger = logger
	}
}

// WithObservability copies all collaborators at once.
func WithObservability(observability shell.Observability) Option {
	return func(o *shell.Observability) {
		*o = observability
	}
}

func build(opts []Option) shell.Observability {
	var o shell.Observability

	for _, opt := range opts {
		opt(&o)
	}

	return o
}
