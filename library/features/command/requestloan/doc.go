// Package requestloan lets a student request a book. The request reserves one copy right away, so a
// pending loan always holds a copy and concurrent requests for the last copy cannot both succeed.
//
// The loan id is chosen by the caller. Repeating a request with the same id is a no-op.
package requestloan
