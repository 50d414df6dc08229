package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/uuid"

	"whiteboard-backend/internal/models"
	"whiteboard-backend/internal/session"
	"whiteboard-backend/internal/store"
)

func newTestServer(t *testing.T) (*httptest.Server, uuid.UUID) {
	t.Helper()

	userID := uuid.New()
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.Email != "student@whiteboardconsultant.com" || req.Password != "demo123" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.ErrorResponse{
				Error: models.APIError{Code: "UNAUTHORIZED", Message: "Invalid email or password"},
			})
			return
		}
		json.NewEncoder(w).Encode(models.LoginResponse{
			AccessToken: "test-token",
			ExpiresIn:   900,
			User: &models.User{
				ID:        userID,
				Email:     req.Email,
				FirstName: "Priya",
				LastName:  "Raman",
				Role:      models.RoleStudent,
			},
		})
	})

	mux.HandleFunc("/api/v1/courses", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(models.ErrorResponse{
				Error: models.APIError{Code: "UNAUTHORIZED", Message: "Missing authorization header"},
			})
			return
		}
		json.NewEncoder(w).Encode([]*models.Course{
			{ID: uuid.New(), Title: "SAT Intensive", IsPublished: true},
			{ID: uuid.New(), Title: "Application Essay Workshop", IsPublished: true},
		})
	})

	mux.HandleFunc("/api/v1/notifications/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(models.ErrorResponse{
			Error: models.APIError{Code: "NOT_FOUND", Message: "Resource not found"},
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, userID
}

func TestAuthenticate_Success(t *testing.T) {
	srv, userID := newTestServer(t)
	c := New(srv.URL)

	identity, err := c.Authenticate(context.Background(), "student@whiteboardconsultant.com", "demo123")
	if err != nil {
		t.Fatalf("Expected login to succeed, got %v", err)
	}

	if identity.ID != userID {
		t.Errorf("Expected identity ID %s, got %s", userID, identity.ID)
	}
	if identity.Name != "Priya Raman" {
		t.Errorf("Expected full name 'Priya Raman', got %q", identity.Name)
	}
	if identity.Role != models.RoleStudent {
		t.Errorf("Expected student role, got %q", identity.Role)
	}
}

func TestAuthenticate_InvalidCredentials(t *testing.T) {
	srv, _ := newTestServer(t)
	c := New(srv.URL)

	_, err := c.Authenticate(context.Background(), "student@whiteboardconsultant.com", "wrong")
	if !errors.Is(err, session.ErrInvalidCredentials) {
		t.Fatalf("Expected ErrInvalidCredentials, got %v", err)
	}
}

func TestListCourses_SendsBearerToken(t *testing.T) {
	srv, _ := newTestServer(t)
	c := New(srv.URL)

	if _, err := c.Authenticate(context.Background(), "student@whiteboardconsultant.com", "demo123"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	courses, err := c.ListCourses(context.Background(), false)
	if err != nil {
		t.Fatalf("Expected course list, got %v", err)
	}
	if len(courses) != 2 {
		t.Errorf("Expected 2 courses, got %d", len(courses))
	}
}

func TestListCourses_Unauthenticated(t *testing.T) {
	srv, _ := newTestServer(t)
	c := New(srv.URL)

	_, err := c.ListCourses(context.Background(), false)

	var storeErr *store.Error
	if !errors.As(err, &storeErr) {
		t.Fatalf("Expected *store.Error, got %T", err)
	}
	if storeErr.Op != "list courses" {
		t.Errorf("Expected op 'list courses', got %q", storeErr.Op)
	}
	if storeErr.Message != "Missing authorization header" {
		t.Errorf("Expected the server's message to be carried over, got %q", storeErr.Message)
	}
}

// Per-user list queries must filter by the ID they were given, not silently
// fall back to whoever owns the bearer token.
func TestScopedLists_CarryIDFilter(t *testing.T) {
	id := uuid.New()
	ctx := context.Background()

	tests := []struct {
		name string
		key  string
		call func(c *Client) error
	}{
		{"progress", "student_id", func(c *Client) error {
			_, err := c.ListProgressByStudent(ctx, id, nil)
			return err
		}},
		{"submissions", "student_id", func(c *Client) error {
			_, err := c.ListSubmissionsByStudent(ctx, id)
			return err
		}},
		{"certificates", "student_id", func(c *Client) error {
			_, err := c.ListCertificatesByStudent(ctx, id)
			return err
		}},
		{"messages", "user_id", func(c *Client) error {
			_, err := c.ListMessagesByUser(ctx, id)
			return err
		}},
		{"notifications", "user_id", func(c *Client) error {
			_, err := c.ListNotificationsByUser(ctx, id)
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got url.Values
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.URL.Query()
				w.Write([]byte("[]"))
			}))
			defer srv.Close()

			c := New(srv.URL)
			c.setToken("test-token")

			if err := tt.call(c); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got.Get(tt.key) != id.String() {
				t.Errorf("Expected %s=%s, got %q", tt.key, id, got.Get(tt.key))
			}
		})
	}
}

func TestMarkNotificationRead_NotFound(t *testing.T) {
	srv, _ := newTestServer(t)
	c := New(srv.URL)
	c.setToken("test-token")

	err := c.MarkNotificationRead(context.Background(), uuid.New())

	var storeErr *store.Error
	if !errors.As(err, &storeErr) {
		t.Fatalf("Expected *store.Error, got %T", err)
	}
	if storeErr.Message != "Resource not found" {
		t.Errorf("Expected not-found message, got %q", storeErr.Message)
	}
}

func TestTransportFailure(t *testing.T) {
	c := New("http://127.0.0.1:1")

	_, err := c.ListUsers(context.Background())

	var storeErr *store.Error
	if !errors.As(err, &storeErr) {
		t.Fatalf("Expected transport failures to map to *store.Error, got %T", err)
	}
}
