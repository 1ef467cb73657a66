// Package gradelevels lists the grade levels students can be assigned to.
package gradelevels
