// Package renamecategory renames a book category.
package renamecategory
