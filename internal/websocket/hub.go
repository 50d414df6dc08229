// Package websocket pushes notification events to connected portal clients.
package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"whiteboard-backend/internal/models"
)

// channelPrefix matches the channel the notification service publishes on.
const channelPrefix = "user_updates:"

// Hub fans notification events out to each user's open portal connections.
// Events arrive over the per-user Redis channel, so every backend instance
// sees publishes regardless of which one holds the socket.
type Hub struct {
	redisClient *redis.Client
	jwtSecret   []byte
	upgrader    websocket.Upgrader

	mu        sync.RWMutex
	conns     map[uuid.UUID][]*websocket.Conn
	listeners map[uuid.UUID]context.CancelFunc
}

// NewHub builds a hub that accepts browser connections only from
// allowedOrigin. Requests without an Origin header (non-browser clients)
// are let through; the token check still applies to them.
func NewHub(redisClient *redis.Client, jwtSecret, allowedOrigin string) *Hub {
	h := &Hub{
		redisClient: redisClient,
		jwtSecret:   []byte(jwtSecret),
		conns:       make(map[uuid.UUID][]*websocket.Conn),
		listeners:   make(map[uuid.UUID]context.CancelFunc),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || origin == allowedOrigin
		},
	}
	return h
}

func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	userID, err := h.authenticate(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	h.register(userID, conn)

	// Drain the connection until the client goes away.
	go func() {
		defer h.unregister(userID, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// authenticate validates the token query parameter. The browser WebSocket
// API cannot set an Authorization header, so the token travels in the URL.
func (h *Hub) authenticate(r *http.Request) (uuid.UUID, error) {
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		return uuid.Nil, errors.New("missing token")
	}

	token, err := jwt.Parse(tokenStr, func(*jwt.Token) (interface{}, error) {
		return h.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid claims")
	}

	raw, _ := claims["user_id"].(string)
	return uuid.Parse(raw)
}

func (h *Hub) register(userID uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.conns[userID] = append(h.conns[userID], conn)

	// The first connection for a user starts that user's Redis listener.
	if len(h.conns[userID]) == 1 {
		ctx, cancel := context.WithCancel(context.Background())
		h.listeners[userID] = cancel
		go h.listen(ctx, userID)
	}

	log.Printf("WebSocket connected: user %s (total: %d)", userID, len(h.conns[userID]))
}

func (h *Hub) unregister(userID uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conn.Close()

	conns := h.conns[userID]
	for i, c := range conns {
		if c == conn {
			h.conns[userID] = append(conns[:i], conns[i+1:]...)
			break
		}
	}

	// Last connection gone: stop the listener.
	if len(h.conns[userID]) == 0 {
		delete(h.conns, userID)
		if cancel, ok := h.listeners[userID]; ok {
			cancel()
			delete(h.listeners, userID)
		}
	}

	log.Printf("WebSocket disconnected: user %s", userID)
}

// listen relays events published for userID. Payloads that do not decode to
// a complete notification event are dropped rather than forwarded verbatim.
func (h *Hub) listen(ctx context.Context, userID uuid.UUID) {
	pubsub := h.redisClient.Subscribe(ctx, channelPrefix+userID.String())
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			event, err := decodeEvent([]byte(msg.Payload))
			if err != nil {
				log.Printf("Dropping malformed event for user %s: %v", userID, err)
				continue
			}
			h.send(userID, event)
		}
	}
}

func decodeEvent(payload []byte) (*models.NotificationEvent, error) {
	var event models.NotificationEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, err
	}
	if event.Event == "" || event.Notification == nil {
		return nil, errors.New("incomplete notification event")
	}
	return &event, nil
}

// SendToUser pushes an event straight to a user's open connections,
// bypassing Redis. Single-instance deployments can use it directly.
func (h *Hub) SendToUser(userID uuid.UUID, event *models.NotificationEvent) {
	h.send(userID, event)
}

func (h *Hub) send(userID uuid.UUID, event *models.NotificationEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, conn := range h.conns[userID] {
		conn.WriteMessage(websocket.TextMessage, data)
	}
}
