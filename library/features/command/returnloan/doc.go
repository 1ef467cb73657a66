// Package returnloan closes an approved, borrowed or overdue loan and puts its copy back on the shelf.
// A loan can be returned exactly once.
package returnloan
