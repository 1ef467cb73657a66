// Package credentials looks up the password hash of an account for login.
package credentials
