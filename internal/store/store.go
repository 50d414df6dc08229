// Package store defines the contract between the remote LMS store and the
// client-side components (binding adapters, session manager, portal).
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"whiteboard-backend/internal/models"
)

// Error is the single failure type every store operation reports. Message is
// the remote store's human-readable message, suitable for display.
type Error struct {
	Op      string
	Message string
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Message
	}
	return e.Op + ": " + e.Message
}

// NewError wraps a remote-store failure for an operation.
func NewError(op, message string) *Error {
	return &Error{Op: op, Message: message}
}

// Store is the typed query surface of the remote store. Each method is a
// direct passthrough to one declarative filter/sort/join query; there is no
// client-side joining or caching behind this interface.
type Store interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)

	ListCourses(ctx context.Context, includeUnpublished bool) ([]*models.Course, error)
	GetCourse(ctx context.Context, id uuid.UUID) (*models.Course, error)

	ListEnrollmentsByStudent(ctx context.Context, studentID uuid.UUID) ([]*models.Enrollment, error)
	ListEnrollmentsByCourse(ctx context.Context, courseID uuid.UUID) ([]*models.Enrollment, error)

	ListProgressByStudent(ctx context.Context, studentID uuid.UUID, courseID *uuid.UUID) ([]*models.Progress, error)

	ListAssignmentsByCourse(ctx context.Context, courseID uuid.UUID) ([]*models.Assignment, error)
	ListSubmissionsByStudent(ctx context.Context, studentID uuid.UUID) ([]*models.Submission, error)
	ListCertificatesByStudent(ctx context.Context, studentID uuid.UUID) ([]*models.Certificate, error)

	ListMessagesByUser(ctx context.Context, userID uuid.UUID) ([]*models.Message, error)
	SendMessage(ctx context.Context, req models.SendMessageRequest) (*models.Message, error)

	ListNotificationsByUser(ctx context.Context, userID uuid.UUID) ([]*models.Notification, error)
	MarkNotificationRead(ctx context.Context, id uuid.UUID) error

	ListCalendarEvents(ctx context.Context, start, end *time.Time) ([]*models.CalendarEvent, error)
	ListReviewsByCourse(ctx context.Context, courseID uuid.UUID) ([]*models.Review, error)
}
