// Package gateway is the HTTP API of the library.
//
// It authenticates callers with HS256 bearer tokens, guards every route group by role, binds and
// validates requests, and translates the error kinds of the core into HTTP status codes. Students get
// overdue notifications through a websocket hub.
package gateway
