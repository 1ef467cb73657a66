// Package testdoubles provides spies for the logging, metrics and tracing interfaces,
// so instrumentation can be asserted without a telemetry backend.
package testdoubles
