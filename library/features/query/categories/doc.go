// Package categories lists the book categories.
package categories
