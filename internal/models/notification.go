package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification categories.
const (
	NotificationCourse     = "course"
	NotificationAssignment = "assignment"
	NotificationGrade      = "grade"
	NotificationMessage    = "message"
	NotificationSystem     = "system"
)

// NotificationEvent is the envelope published on the per-user update channel
// and delivered verbatim to websocket clients.
type NotificationEvent struct {
	Event        string        `json:"event"`
	Notification *Notification `json:"notification"`
}

type Notification struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Type      string     `json:"type"`
	IsRead    bool       `json:"is_read"`
	ActionURL *string    `json:"action_url"`
	CreatedAt time.Time  `json:"created_at"`
	ReadAt    *time.Time `json:"read_at"`
}
