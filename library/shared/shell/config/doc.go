// Package config loads the service configuration and builds the infrastructure it describes:
// the slog logger, OpenTelemetry providers and PostgreSQL connection pools.
//
// Configuration is read from a YAML file named by CONFIG_PATH or --config. Every key can be
// overridden by its environment variable.
package config
