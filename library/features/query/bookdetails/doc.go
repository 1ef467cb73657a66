// Package bookdetails shows one catalog entry with its live availability.
package bookdetails
