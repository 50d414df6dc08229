package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func testDirectory(t *testing.T) *Directory {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	return NewDirectory([]DirectoryEntry{
		{
			Identity: Identity{
				ID:    uuid.New(),
				Email: "student@whiteboardconsultant.com",
				Name:  "Priya Raman",
				Role:  "student",
			},
			PasswordHash: hash,
		},
		{
			Identity: Identity{
				ID:    uuid.New(),
				Email: "admin@whiteboardconsultant.com",
				Name:  "Amara Whitfield",
				Role:  "admin",
			},
			PasswordHash: hash,
		},
	})
}

func newTestManager(t *testing.T) (*Manager, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	return NewManager(testDirectory(t), NewFileStore(path)), path
}

func TestLogin_Success(t *testing.T) {
	m, _ := newTestManager(t)

	if !m.Login(context.Background(), "student@whiteboardconsultant.com", "demo123") {
		t.Fatal("Expected login to succeed")
	}
	if !m.IsAuthenticated() {
		t.Error("Expected authenticated session after login")
	}

	who := m.Current()
	if who == nil || who.Email != "student@whiteboardconsultant.com" {
		t.Errorf("Expected student identity, got %+v", who)
	}
	if who.Role != "student" {
		t.Errorf("Expected role student, got %q", who.Role)
	}
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "student@whiteboardconsultant.com", "wrong"},
		{"unknown email", "nobody@whiteboardconsultant.com", "demo123"},
		{"empty credentials", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := newTestManager(t)
			if m.Login(context.Background(), tc.email, tc.password) {
				t.Fatal("Expected login to fail")
			}
			if m.IsAuthenticated() {
				t.Error("Expected unauthenticated session after failed login")
			}
		})
	}
}

func TestLogin_FailureKeepsExistingSession(t *testing.T) {
	m, _ := newTestManager(t)

	if !m.Login(context.Background(), "admin@whiteboardconsultant.com", "demo123") {
		t.Fatal("Expected first login to succeed")
	}

	if m.Login(context.Background(), "admin@whiteboardconsultant.com", "wrong") {
		t.Fatal("Expected second login to fail")
	}

	who := m.Current()
	if who == nil || who.Email != "admin@whiteboardconsultant.com" {
		t.Errorf("Expected the admin session to survive the failed attempt, got %+v", who)
	}
}

func TestLogout_Idempotent(t *testing.T) {
	m, path := newTestManager(t)

	m.Login(context.Background(), "student@whiteboardconsultant.com", "demo123")
	m.Logout()

	if m.IsAuthenticated() {
		t.Error("Expected unauthenticated session after logout")
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected persisted session to be removed, stat err = %v", err)
	}

	// Logging out again must not panic or error.
	m.Logout()
}

func TestRestore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStore(path)

	first := NewManager(testDirectory(t), store)
	if !first.Login(context.Background(), "student@whiteboardconsultant.com", "demo123") {
		t.Fatal("Expected login to succeed")
	}
	wantID := first.Current().ID

	second := NewManager(testDirectory(t), store)
	second.Restore()

	if !second.IsAuthenticated() {
		t.Fatal("Expected restored session to be authenticated")
	}
	if second.Current().ID != wantID {
		t.Errorf("Expected restored identity %s, got %s", wantID, second.Current().ID)
	}
}

func TestRestore_MissingFile(t *testing.T) {
	m, _ := newTestManager(t)
	m.Restore()

	if m.IsAuthenticated() {
		t.Error("Expected no session when nothing was persisted")
	}
}

func TestRestore_CorruptRecord(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "{{{"},
		{"empty object", "{}"},
		{"missing role", `{"id":"8a0f6f0e-2b3a-4e1c-9a43-93a4a5b6c7d8","email":"x@y.com","name":"X"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "session.json")
			if err := os.WriteFile(path, []byte(tc.content), 0600); err != nil {
				t.Fatalf("Failed to write session file: %v", err)
			}

			m := NewManager(testDirectory(t), NewFileStore(path))
			m.Restore()

			if m.IsAuthenticated() {
				t.Error("Expected corrupt record to leave the session unauthenticated")
			}
		})
	}
}
