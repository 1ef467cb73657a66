// Package books lists the catalog with live availability, optionally narrowed to one category.
package books
