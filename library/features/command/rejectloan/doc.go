// Package rejectloan rejects a pending loan and puts its reserved copy back on the shelf.
package rejectloan
