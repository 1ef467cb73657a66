// Package studentloans lists the loans of one student. Students see their own history, admins any student's.
package studentloans
