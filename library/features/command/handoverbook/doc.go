// Package handoverbook marks an approved loan as borrowed once the student picked up the copy.
package handoverbook
