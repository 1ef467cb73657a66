// Package registeradmin creates an admin account. The server seeds a default admin through it at startup.
package registeradmin
