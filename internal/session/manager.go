// Package session holds the client's authentication state: at most one
// identity is bound to the running process at a time, mirrored to local
// persistent storage so it survives restarts.
package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Identity is an authenticatable actor. Role never changes for the lifetime
// of a session.
type Identity struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
}

// Authenticator verifies credentials against the registered identity set.
// Implementations return ErrInvalidCredentials for unknown emails or wrong
// passwords and must not distinguish the two.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*Identity, error)
}

// PersistentStore keeps one serialized identity across restarts.
type PersistentStore interface {
	Save(identity *Identity) error
	Load() (*Identity, error)
	Clear() error
}

// Manager owns the single current-identity value. All mutation goes through
// Login, Logout and Restore.
type Manager struct {
	mu      sync.RWMutex
	auth    Authenticator
	store   PersistentStore
	current *Identity
}

func NewManager(auth Authenticator, store PersistentStore) *Manager {
	return &Manager{auth: auth, store: store}
}

// Login validates the credentials and, on success, installs and persists the
// identity. On failure the existing session is left untouched.
func (m *Manager) Login(ctx context.Context, email, password string) bool {
	identity, err := m.auth.Authenticate(ctx, email, password)
	if err != nil {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = identity
	if err := m.store.Save(identity); err != nil {
		// The in-memory session is still valid; only restoration is lost.
		return true
	}
	return true
}

// Logout clears the session and its persisted copy. Safe to call with no
// active session.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = nil
	m.store.Clear()
}

// Restore re-establishes a previously persisted session without re-validating
// credentials. An absent or malformed record leaves the session
// unauthenticated.
func (m *Manager) Restore() {
	identity, err := m.store.Load()
	if err != nil || identity == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = identity
}

// Current returns the authenticated identity, or nil.
func (m *Manager) Current() *Identity {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current != nil
}
