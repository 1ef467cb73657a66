package gateway

import (
	"github.com/labstack/echo/v4"
)

// notifications streams the caller's notifications over a websocket. Browsers cannot set headers on
// the upgrade request, so the token travels in ?token=. A query token is replayable by any page, so the
// handshake origin is checked as well.
func (s *Server) notifications(c echo.Context) error {
	claims, found := claimsFrom(c)
	if !found {
		return errUnauthenticated
	}

	return s.hub.serve(c, s.upgrader, claims.Subject)
}
