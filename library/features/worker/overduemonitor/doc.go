// Package overduemonitor periodically reports loans past their due date.
//
// Overdue is derived at read time, so the sweep never appends events. Each Check logs the overdue loans,
// records the library_overdue_loans gauge and notifies the borrowing students.
package overduemonitor
