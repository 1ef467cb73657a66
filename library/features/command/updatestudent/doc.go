// Package updatestudent changes the profile of a student. Only the fields set in Changes are applied.
package updatestudent
