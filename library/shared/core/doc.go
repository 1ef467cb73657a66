// Package core contains the domain of the school library: its events, the inventory ledger,
// the loan state machine and the error kinds every decision reports.
//
// Nothing in here does I/O. State is always a fold over events, and decisions are pure functions
// returning the events to append.
package core
