// Package removestudent deletes a student account. Students with open loans cannot be removed.
package removestudent
