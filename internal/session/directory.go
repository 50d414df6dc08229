package session

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for an unknown email or a wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// DirectoryEntry pairs an identity with its bcrypt password hash.
type DirectoryEntry struct {
	Identity     Identity
	PasswordHash []byte
}

// Directory authenticates against a fixed identity set held in memory, with
// per-identity password hashes. Lookups are by exact email match.
type Directory struct {
	entries map[string]DirectoryEntry
}

func NewDirectory(entries []DirectoryEntry) *Directory {
	byEmail := make(map[string]DirectoryEntry, len(entries))
	for _, e := range entries {
		byEmail[e.Identity.Email] = e
	}
	return &Directory{entries: byEmail}
}

func (d *Directory) Authenticate(ctx context.Context, email, password string) (*Identity, error) {
	entry, ok := d.entries[email]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(entry.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	identity := entry.Identity
	return &identity, nil
}
