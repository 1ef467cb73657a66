// Package approveloan approves a pending loan and sets its due date.
//
// The copy was already reserved when the loan was requested, so approving does not touch the inventory.
// A second approval fails with InvalidState.
package approveloan
