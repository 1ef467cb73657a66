// Package oteladapters implements the eventstore observability interfaces on OpenTelemetry.
// The same collectors are handed to the engines and to the command and query handlers.
package oteladapters
