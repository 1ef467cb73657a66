// Package students is the admin view of the student directory.
package students
