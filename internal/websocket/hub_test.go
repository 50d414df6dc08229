package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"

	"whiteboard-backend/internal/models"
)

const (
	testSecret = "test-secret"
	testOrigin = "http://localhost:5173"
)

// newTestHub points Redis at an unreachable address; delivery tests push
// through SendToUser instead of pub/sub.
func newTestHub() *Hub {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	return NewHub(client, testSecret, testOrigin)
}

func signToken(t *testing.T, secret string, userID uuid.UUID) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID.String(),
		"exp":     time.Now().Add(time.Minute).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return signed
}

func wsURL(serverURL, token string) string {
	u := "ws" + strings.TrimPrefix(serverURL, "http")
	if token != "" {
		u += "?token=" + token
	}
	return u
}

func waitForConns(t *testing.T, h *Hub, userID uuid.UUID, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		h.mu.RLock()
		n := len(h.conns[userID])
		h.mu.RUnlock()
		if n == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("Expected %d connection(s) for user %s", want, userID)
}

func TestHandleWebSocket_RejectsBadTokens(t *testing.T) {
	hub := newTestHub()
	srv := httptest.NewServer(http.HandlerFunc(hub.HandleWebSocket))
	defer srv.Close()

	tests := []struct {
		name  string
		token string
	}{
		{"missing token", ""},
		{"garbage token", "not-a-jwt"},
		{"wrong signing key", signToken(t, "other-secret", uuid.New())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url := srv.URL
			if tt.token != "" {
				url += "?token=" + tt.token
			}
			resp, err := http.Get(url)
			if err != nil {
				t.Fatalf("Request failed: %v", err)
			}
			resp.Body.Close()
			if resp.StatusCode != http.StatusUnauthorized {
				t.Errorf("Expected status 401, got %d", resp.StatusCode)
			}
		})
	}
}

func TestHandleWebSocket_RejectsForeignOrigin(t *testing.T) {
	hub := newTestHub()
	srv := httptest.NewServer(http.HandlerFunc(hub.HandleWebSocket))
	defer srv.Close()

	token := signToken(t, testSecret, uuid.New())
	header := http.Header{"Origin": {"http://evil.example"}}

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL(srv.URL, token), header)
	if err == nil {
		conn.Close()
		t.Fatal("Expected handshake to fail for a foreign origin")
	}
	if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Errorf("Expected status 403, got %+v", resp)
	}
}

func TestSendToUser_DeliversTypedEvent(t *testing.T) {
	hub := newTestHub()
	srv := httptest.NewServer(http.HandlerFunc(hub.HandleWebSocket))
	defer srv.Close()

	userID := uuid.New()
	token := signToken(t, testSecret, userID)
	header := http.Header{"Origin": {testOrigin}}

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv.URL, token), header)
	if err != nil {
		t.Fatalf("Handshake failed: %v", err)
	}
	defer conn.Close()

	waitForConns(t, hub, userID, 1)

	sent := &models.NotificationEvent{
		Event: "notification",
		Notification: &models.Notification{
			ID:      uuid.New(),
			UserID:  userID,
			Title:   "Assignment graded",
			Message: "Practice Test 1 has been graded: 85/100",
			Type:    models.NotificationGrade,
		},
	}
	hub.SendToUser(userID, sent)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	got, err := decodeEvent(data)
	if err != nil {
		t.Fatalf("Delivered payload did not decode: %v", err)
	}
	if got.Event != "notification" {
		t.Errorf("Expected event %q, got %q", "notification", got.Event)
	}
	if got.Notification.ID != sent.Notification.ID {
		t.Errorf("Expected notification %s, got %s", sent.Notification.ID, got.Notification.ID)
	}
	if got.Notification.Title != sent.Notification.Title {
		t.Errorf("Expected title %q, got %q", sent.Notification.Title, got.Notification.Title)
	}
}

func TestDecodeEvent(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{
			name:    "complete event",
			payload: `{"event":"notification","notification":{"id":"` + uuid.NewString() + `","title":"New message"}}`,
		},
		{
			name:    "not json",
			payload: "ping",
			wantErr: true,
		},
		{
			name:    "missing notification",
			payload: `{"event":"notification"}`,
			wantErr: true,
		},
		{
			name:    "missing event name",
			payload: `{"notification":{"title":"New message"}}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := decodeEvent([]byte(tt.payload))
			if tt.wantErr {
				if err == nil {
					t.Error("Expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if event.Notification == nil {
				t.Error("Expected a notification")
			}
		})
	}
}
