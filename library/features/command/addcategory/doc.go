// Package addcategory adds a book category. Category names are unique.
package addcategory
