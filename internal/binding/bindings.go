package binding

import (
	"context"
	"time"

	"github.com/google/uuid"

	"whiteboard-backend/internal/models"
	"whiteboard-backend/internal/store"
)

// One constructor per query, mirroring the remote store's query surface.

func NewUsers(s store.Store) *Adapter[struct{}, *models.User] {
	return New(struct{}{}, func(ctx context.Context, _ struct{}) ([]*models.User, error) {
		return s.ListUsers(ctx)
	}, nil)
}

func NewCourses(s store.Store, includeUnpublished bool) *Adapter[bool, *models.Course] {
	return New(includeUnpublished, func(ctx context.Context, include bool) ([]*models.Course, error) {
		return s.ListCourses(ctx, include)
	}, nil)
}

func NewEnrollmentsByStudent(s store.Store, studentID uuid.UUID) *Adapter[uuid.UUID, *models.Enrollment] {
	return New(studentID, func(ctx context.Context, id uuid.UUID) ([]*models.Enrollment, error) {
		return s.ListEnrollmentsByStudent(ctx, id)
	}, requireID)
}

func NewEnrollmentsByCourse(s store.Store, courseID uuid.UUID) *Adapter[uuid.UUID, *models.Enrollment] {
	return New(courseID, func(ctx context.Context, id uuid.UUID) ([]*models.Enrollment, error) {
		return s.ListEnrollmentsByCourse(ctx, id)
	}, requireID)
}

// ProgressParams narrows a student's progress to one course when CourseID is
// set; uuid.Nil means all courses.
type ProgressParams struct {
	StudentID uuid.UUID
	CourseID  uuid.UUID
}

func NewProgress(s store.Store, params ProgressParams) *Adapter[ProgressParams, *models.Progress] {
	return New(params, func(ctx context.Context, p ProgressParams) ([]*models.Progress, error) {
		var courseID *uuid.UUID
		if p.CourseID != uuid.Nil {
			courseID = &p.CourseID
		}
		return s.ListProgressByStudent(ctx, p.StudentID, courseID)
	}, func(p ProgressParams) bool { return p.StudentID != uuid.Nil })
}

func NewMessages(s store.Store, userID uuid.UUID) *Adapter[uuid.UUID, *models.Message] {
	return New(userID, func(ctx context.Context, id uuid.UUID) ([]*models.Message, error) {
		return s.ListMessagesByUser(ctx, id)
	}, requireID)
}

func NewAssignments(s store.Store, courseID uuid.UUID) *Adapter[uuid.UUID, *models.Assignment] {
	return New(courseID, func(ctx context.Context, id uuid.UUID) ([]*models.Assignment, error) {
		return s.ListAssignmentsByCourse(ctx, id)
	}, requireID)
}

func NewSubmissions(s store.Store, studentID uuid.UUID) *Adapter[uuid.UUID, *models.Submission] {
	return New(studentID, func(ctx context.Context, id uuid.UUID) ([]*models.Submission, error) {
		return s.ListSubmissionsByStudent(ctx, id)
	}, requireID)
}

func NewCertificates(s store.Store, studentID uuid.UUID) *Adapter[uuid.UUID, *models.Certificate] {
	return New(studentID, func(ctx context.Context, id uuid.UUID) ([]*models.Certificate, error) {
		return s.ListCertificatesByStudent(ctx, id)
	}, requireID)
}

// CalendarRange bounds the event window; zero times mean unbounded.
type CalendarRange struct {
	Start time.Time
	End   time.Time
}

func NewCalendarEvents(s store.Store, r CalendarRange) *Adapter[CalendarRange, *models.CalendarEvent] {
	return New(r, func(ctx context.Context, r CalendarRange) ([]*models.CalendarEvent, error) {
		var start, end *time.Time
		if !r.Start.IsZero() {
			start = &r.Start
		}
		if !r.End.IsZero() {
			end = &r.End
		}
		return s.ListCalendarEvents(ctx, start, end)
	}, nil)
}

func NewReviews(s store.Store, courseID uuid.UUID) *Adapter[uuid.UUID, *models.Review] {
	return New(courseID, func(ctx context.Context, id uuid.UUID) ([]*models.Review, error) {
		return s.ListReviewsByCourse(ctx, id)
	}, requireID)
}

// Notifications adds the mark-as-read write path on top of the list query.
type Notifications struct {
	*Adapter[uuid.UUID, *models.Notification]
	store store.Store
}

func NewNotifications(s store.Store, userID uuid.UUID) *Notifications {
	adapter := New(userID, func(ctx context.Context, id uuid.UUID) ([]*models.Notification, error) {
		return s.ListNotificationsByUser(ctx, id)
	}, requireID)
	return &Notifications{Adapter: adapter, store: s}
}

// MarkAsRead flips the flag remotely, then reconciles the local copy
// optimistically instead of re-fetching.
func (n *Notifications) MarkAsRead(ctx context.Context, id uuid.UUID) {
	if err := n.store.MarkNotificationRead(ctx, id); err != nil {
		n.setError(err.Error())
		return
	}

	now := time.Now()
	n.mutate(func(rows []*models.Notification) {
		for _, row := range rows {
			if row.ID == id {
				row.IsRead = true
				row.ReadAt = &now
			}
		}
	})
}

func requireID(id uuid.UUID) bool { return id != uuid.Nil }
