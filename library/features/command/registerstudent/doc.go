// Package registerstudent creates a student account with an active library membership.
// Students register themselves, admins can register them too.
package registerstudent
