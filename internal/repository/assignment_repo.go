package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"whiteboard-backend/internal/models"
)

type AssignmentRepo struct {
	pool *pgxpool.Pool
}

func NewAssignmentRepo(pool *pgxpool.Pool) *AssignmentRepo {
	return &AssignmentRepo{pool: pool}
}

// ListByCourse returns the course's published assignments, earliest due first.
func (r *AssignmentRepo) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*models.Assignment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, course_id, lesson_id, title, description, instructions, type, max_points,
			due_date, is_published, allow_late_submission, late_penalty_percentage, created_at, updated_at
		FROM assignments
		WHERE course_id = $1 AND is_published = TRUE
		ORDER BY due_date ASC`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := make([]*models.Assignment, 0)
	for rows.Next() {
		a := &models.Assignment{}
		if err := rows.Scan(
			&a.ID, &a.CourseID, &a.LessonID, &a.Title, &a.Description, &a.Instructions,
			&a.Type, &a.MaxPoints, &a.DueDate, &a.IsPublished, &a.AllowLateSubmission,
			&a.LatePenaltyPercentage, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (r *AssignmentRepo) Create(ctx context.Context, a *models.Assignment) error {
	a.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO assignments (id, course_id, lesson_id, title, description, instructions, type,
			max_points, due_date, is_published, allow_late_submission, late_penalty_percentage)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at`,
		a.ID, a.CourseID, a.LessonID, a.Title, a.Description, a.Instructions, a.Type,
		a.MaxPoints, a.DueDate, a.IsPublished, a.AllowLateSubmission, a.LatePenaltyPercentage,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
}
