// Package addgradelevel adds a grade level students can be assigned to. Grade level names are unique.
package addgradelevel
