package gateway

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var ErrNilLogger = errors.New("logger must not be nil")

// Config carries what the gateway needs besides the handlers.
type Config struct {
	JWTSecret []byte
	TokenTTL  time.Duration
	Logger    *slog.Logger

	// Clock defaults to time.Now. Commands take their occurred-at time from it.
	Clock func() time.Time

	// Hub defaults to a fresh hub. Share it with the overdue monitor to deliver its notifications.
	Hub *Hub

	// AllowedOrigins are the browser origins allowed to open the notification websocket.
	// Empty allows same-origin pages only.
	AllowedOrigins []string
}

// Server is an http.Handler serving the library API.
type Server struct {
	echo     *echo.Echo
	handlers Handlers
	tokens   TokenIssuer
	hub      *Hub
	upgrader *websocket.Upgrader
	logger   *slog.Logger
	now      func() time.Time
}

func NewServer(handlers Handlers, cfg Config) (*Server, error) {
	if cfg.Logger == nil {
		return nil, ErrNilLogger
	}

	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	if cfg.Hub == nil {
		cfg.Hub = NewHub(cfg.Logger)
	}

	tokens, err := NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL, cfg.Clock)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newRequestValidator()
	e.HTTPErrorHandler = errorHandler(cfg.Logger)

	s := &Server{
		echo:     e,
		handlers: handlers,
		tokens:   tokens,
		hub:      cfg.Hub,
		upgrader: newUpgrader(cfg.AllowedOrigins),
		logger:   cfg.Logger,
		now:      cfg.Clock,
	}

	registerMiddlewares(e, cfg.Logger)
	s.registerRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

func (s *Server) Hub() *Hub {
	return s.hub
}

// newID returns requested as uuid, or a fresh UUIDv7 if it is empty. Clients pass their own ids to
// make retried creates idempotent.
func newID(requested string) (uuid.UUID, error) {
	if requested == "" {
		return uuid.NewV7()
	}

	id, err := uuid.Parse(requested)
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "id must be a uuid")
	}

	return id, nil
}

func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "id must be a uuid")
	}

	return id, nil
}

// accountID returns the subject of the verified token.
func accountID(c echo.Context) (uuid.UUID, error) {
	claims, ok := claimsFrom(c)
	if !ok {
		return uuid.Nil, errUnauthenticated
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, errUnauthenticated
	}

	return id, nil
}

// created answers 201 for a new entity and 200 if the command was already fulfilled.
func created(c echo.Context, idempotent bool, msg string, id uuid.UUID) error {
	status := http.StatusCreated
	if idempotent {
		status = http.StatusOK
	}

	return c.JSON(status, messageResponse{Message: msg, ID: id.String()})
}

func ok(c echo.Context, msg string) error {
	return c.JSON(http.StatusOK, message(msg))
}
