// Package removecategory deletes a book category. Books keep their category id and show no category name afterwards.
package removecategory
