package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"whiteboard-backend/internal/models"
)

type CalendarRepo struct {
	pool *pgxpool.Pool
}

func NewCalendarRepo(pool *pgxpool.Pool) *CalendarRepo {
	return &CalendarRepo{pool: pool}
}

// List returns calendar events earliest first. The optional bounds filter on
// start_time >= start and end_time <= end. Course and instructor sub-records
// are attached when the event references them.
func (r *CalendarRepo) List(ctx context.Context, start, end *time.Time) ([]*models.CalendarEvent, error) {
	query := `
		SELECT ev.id, ev.title, ev.description, ev.start_time, ev.end_time, ev.course_id,
			ev.instructor_id, ev.event_type, ev.location, ev.meeting_url, ev.is_recurring, ev.created_at,
			c.id, c.title, c.is_published, c.created_at,
			u.id, u.email, u.first_name, u.last_name, u.role, u.avatar_url
		FROM calendar_events ev
		LEFT JOIN courses c ON c.id = ev.course_id
		LEFT JOIN users u ON u.id = ev.instructor_id`

	var args []interface{}
	argIdx := 1
	where := ""
	if start != nil {
		where += fmt.Sprintf(" WHERE ev.start_time >= $%d", argIdx)
		args = append(args, *start)
		argIdx++
	}
	if end != nil {
		if where == "" {
			where = " WHERE"
		} else {
			where += " AND"
		}
		where += fmt.Sprintf(" ev.end_time <= $%d", argIdx)
		args = append(args, *end)
	}
	query += where + " ORDER BY ev.start_time ASC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*models.CalendarEvent, 0)
	for rows.Next() {
		ev := &models.CalendarEvent{}

		var courseID *uuid.UUID
		var courseTitle *string
		var coursePublished *bool
		var courseCreatedAt *time.Time

		var instructorID *uuid.UUID
		var instructorEmail, instructorFirst, instructorLast, instructorRole, instructorAvatar *string

		if err := rows.Scan(
			&ev.ID, &ev.Title, &ev.Description, &ev.StartTime, &ev.EndTime, &ev.CourseID,
			&ev.InstructorID, &ev.EventType, &ev.Location, &ev.MeetingURL, &ev.IsRecurring, &ev.CreatedAt,
			&courseID, &courseTitle, &coursePublished, &courseCreatedAt,
			&instructorID, &instructorEmail, &instructorFirst, &instructorLast, &instructorRole, &instructorAvatar,
		); err != nil {
			return nil, err
		}

		if courseID != nil {
			ev.Course = &models.Course{
				ID:          *courseID,
				Title:       *courseTitle,
				IsPublished: *coursePublished,
				CreatedAt:   *courseCreatedAt,
			}
		}
		if instructorID != nil {
			ev.Instructor = &models.User{
				ID:        *instructorID,
				Email:     *instructorEmail,
				FirstName: *instructorFirst,
				LastName:  *instructorLast,
				Role:      *instructorRole,
				AvatarURL: instructorAvatar,
			}
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// CountUpcomingByInstructor counts the instructor's events starting after now.
func (r *CalendarRepo) CountUpcomingByInstructor(ctx context.Context, instructorID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM calendar_events WHERE instructor_id = $1 AND start_time > NOW()",
		instructorID,
	).Scan(&count)
	return count, err
}

func (r *CalendarRepo) Create(ctx context.Context, ev *models.CalendarEvent) error {
	ev.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO calendar_events (id, title, description, start_time, end_time, course_id,
			instructor_id, event_type, location, meeting_url, is_recurring)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at`,
		ev.ID, ev.Title, ev.Description, ev.StartTime, ev.EndTime, ev.CourseID,
		ev.InstructorID, ev.EventType, ev.Location, ev.MeetingURL, ev.IsRecurring,
	).Scan(&ev.CreatedAt)
}
