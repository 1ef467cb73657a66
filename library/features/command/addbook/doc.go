// Package addbook adds a book with its copy count to the catalog.
//
// The consistency boundary covers the book id, every event that moves the ISBN and the referenced category,
// so two concurrent adds with the same ISBN cannot both succeed.
package addbook
