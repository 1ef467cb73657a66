// Package dashboard summarizes the library for admins.
package dashboard
