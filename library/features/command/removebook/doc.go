// Package removebook takes a book out of the catalog. A book with copies on loan cannot be removed.
package removebook
