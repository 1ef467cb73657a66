// Package updatebook changes the details of a catalog entry and resizes its copy count.
//
// Only the fields set in Changes are applied. A resize goes through the inventory ledger and can never drop
// the total below the copies currently on loan.
package updatebook
