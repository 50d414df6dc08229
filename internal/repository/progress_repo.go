package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"whiteboard-backend/internal/models"
)

type ProgressRepo struct {
	pool *pgxpool.Pool
}

func NewProgressRepo(pool *pgxpool.Pool) *ProgressRepo {
	return &ProgressRepo{pool: pool}
}

// ListByStudent returns the student's progress rows with lessons attached,
// newest first, optionally narrowed to a single course.
func (r *ProgressRepo) ListByStudent(ctx context.Context, studentID uuid.UUID, courseID *uuid.UUID) ([]*models.Progress, error) {
	query := `
		SELECT p.id, p.student_id, p.lesson_id, p.course_id, p.is_completed,
			p.time_spent_minutes, p.last_position, p.completed_at, p.created_at, p.updated_at,
			l.id, l.course_id, l.title, l.description, l.content, l.video_url,
			l.duration_minutes, l.order_index, l.is_preview, l.created_at, l.updated_at
		FROM progress p
		JOIN lessons l ON l.id = p.lesson_id
		WHERE p.student_id = $1`

	args := []interface{}{studentID}
	if courseID != nil {
		query += " AND p.course_id = $2"
		args = append(args, *courseID)
	}
	query += " ORDER BY p.created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	progress := make([]*models.Progress, 0)
	for rows.Next() {
		p := &models.Progress{}
		l := &models.Lesson{}
		if err := rows.Scan(
			&p.ID, &p.StudentID, &p.LessonID, &p.CourseID, &p.IsCompleted,
			&p.TimeSpentMinutes, &p.LastPosition, &p.CompletedAt, &p.CreatedAt, &p.UpdatedAt,
			&l.ID, &l.CourseID, &l.Title, &l.Description, &l.Content, &l.VideoURL,
			&l.DurationMinutes, &l.OrderIndex, &l.IsPreview, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, err
		}
		p.Lesson = l
		progress = append(progress, p)
	}
	return progress, rows.Err()
}

func (r *ProgressRepo) Create(ctx context.Context, p *models.Progress) error {
	p.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO progress (id, student_id, lesson_id, course_id, is_completed, time_spent_minutes, last_position, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`,
		p.ID, p.StudentID, p.LessonID, p.CourseID, p.IsCompleted,
		p.TimeSpentMinutes, p.LastPosition, p.CompletedAt,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}
