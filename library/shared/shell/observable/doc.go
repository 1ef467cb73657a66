// Package observable wraps command and query handlers with metrics, tracing and logging.
//
// Wrapping happens at wiring time, so the handlers themselves stay free of observability:
//
//	handler := requestloan.NewCommandHandler(eventStore)
//	wrapped := observable.NewCommandWrapper[requestloan.Command](
//		handler,
//		observable.WithMetrics(metricsCollector),
//		observable.WithTracing(tracingCollector),
//		observable.WithContextualLogging(logger),
//	)
//
// Handlers used without a wrapper behave identically, which keeps their tests simple.
package observable
