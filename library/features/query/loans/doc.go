// Package loans is the admin view of all loans. Approved and borrowed loans past their due date are
// reported as overdue, so the status filter covers the pending and the overdue lists too.
package loans
