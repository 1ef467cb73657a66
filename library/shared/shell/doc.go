// Package shell is the imperative shell around the library core.
//
// It maps domain events to storable events and back, runs the Query -> Decide -> Append cycle
// of the command handlers with optimistic concurrency retry, and holds the observability helpers
// shared by the command and query wrappers.
package shell
