package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"whiteboard-backend/internal/models"
)

type ReviewRepo struct {
	pool *pgxpool.Pool
}

func NewReviewRepo(pool *pgxpool.Pool) *ReviewRepo {
	return &ReviewRepo{pool: pool}
}

// ListByCourse returns the course's published reviews, newest first, with the
// reviewing student attached.
func (r *ReviewRepo) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*models.Review, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT rv.id, rv.course_id, rv.student_id, rv.rating, rv.review_text,
			rv.is_published, rv.helpful_count, rv.created_at, rv.updated_at,
			u.id, u.email, u.first_name, u.last_name, u.role, u.avatar_url, u.phone, u.bio,
			u.is_active, u.last_login, u.created_at, u.updated_at
		FROM reviews rv
		JOIN users u ON u.id = rv.student_id
		WHERE rv.course_id = $1 AND rv.is_published = TRUE
		ORDER BY rv.created_at DESC`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]*models.Review, 0)
	for rows.Next() {
		rv := &models.Review{}
		student := &models.User{}
		if err := rows.Scan(
			&rv.ID, &rv.CourseID, &rv.StudentID, &rv.Rating, &rv.ReviewText,
			&rv.IsPublished, &rv.HelpfulCount, &rv.CreatedAt, &rv.UpdatedAt,
			&student.ID, &student.Email, &student.FirstName, &student.LastName,
			&student.Role, &student.AvatarURL, &student.Phone, &student.Bio,
			&student.IsActive, &student.LastLogin, &student.CreatedAt, &student.UpdatedAt,
		); err != nil {
			return nil, err
		}
		rv.Student = student
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

func (r *ReviewRepo) Create(ctx context.Context, rv *models.Review) error {
	rv.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO reviews (id, course_id, student_id, rating, review_text, is_published)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`,
		rv.ID, rv.CourseID, rv.StudentID, rv.Rating, rv.ReviewText, rv.IsPublished,
	).Scan(&rv.CreatedAt, &rv.UpdatedAt)
}
