// Package changemembership activates or deactivates the library membership of a student.
// A deactivated student keeps open loans but cannot request new ones.
package changemembership
