package gateway

import (
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = pongWait * 9 / 10
	sendBuffer = 16
)

// newUpgrader accepts browser handshakes from allowedOrigins. Without any, only same-origin
// handshakes pass. Requests without an Origin header come from non-browser clients and always pass.
func newUpgrader(allowedOrigins []string) *websocket.Upgrader {
	if len(allowedOrigins) == 0 {
		return &websocket.Upgrader{}
	}

	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[strings.ToLower(strings.TrimRight(origin, "/"))] = struct{}{}
	}

	return &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}

			_, ok := allowed[strings.ToLower(origin)]

			return ok
		},
	}
}

type hubClient struct {
	userID string
	conn   *websocket.Conn
	send   chan []byte
}

// Hub fans notifications out to the open websocket connections of a user. A user may hold several.
type Hub struct {
	mu      sync.Mutex
	clients map[string]map[*hubClient]struct{}
	logger  *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{clients: make(map[string]map[*hubClient]struct{}), logger: logger}
}

// Notify queues notification for every connection of userID and returns how many got it.
// A connection whose buffer is full is dropped.
func (h *Hub) Notify(userID string, notification any) int {
	payload, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(notification)
	if err != nil {
		h.logger.Error("encoding notification failed", "user_id", userID, "error", err.Error())
		return 0
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	delivered := 0

	for client := range h.clients[userID] {
		select {
		case client.send <- payload:
			delivered++
		default:
			h.removeLocked(client)
		}
	}

	return delivered
}

// Connections returns the number of open connections of userID.
func (h *Hub) Connections(userID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.clients[userID])
}

func (h *Hub) add(client *hubClient) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[client.userID] == nil {
		h.clients[client.userID] = make(map[*hubClient]struct{})
	}

	h.clients[client.userID][client] = struct{}{}
}

func (h *Hub) remove(client *hubClient) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeLocked(client)
}

func (h *Hub) removeLocked(client *hubClient) {
	connections, ok := h.clients[client.userID]
	if !ok {
		return
	}

	if _, ok := connections[client]; !ok {
		return
	}

	delete(connections, client)
	close(client.send)

	if len(connections) == 0 {
		delete(h.clients, client.userID)
	}
}

// serve upgrades an authenticated request and pumps notifications until the client goes away.
func (h *Hub) serve(c echo.Context, upgrader *websocket.Upgrader, userID string) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return nil //nolint:nilerr // the upgrader already wrote the error response
	}

	client := &hubClient{userID: userID, conn: conn, send: make(chan []byte, sendBuffer)}
	h.add(client)

	go h.writePump(client)
	h.readPump(client)

	return nil
}

// readPump only consumes control frames, students never send anything.
func (h *Hub) readPump(client *hubClient) {
	defer func() {
		h.remove(client)
		_ = client.conn.Close()
	}()

	_ = client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		return client.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(client *hubClient) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = client.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-client.send:
			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))

			if !ok {
				_ = client.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := client.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
