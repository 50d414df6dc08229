package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"whiteboard-backend/internal/models"
)

type CertificateRepo struct {
	pool *pgxpool.Pool
}

func NewCertificateRepo(pool *pgxpool.Pool) *CertificateRepo {
	return &CertificateRepo{pool: pool}
}

// ListByStudent returns the student's certificates with courses attached,
// most recently issued first.
func (r *CertificateRepo) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*models.Certificate, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT ce.id, ce.student_id, ce.course_id, ce.certificate_number, ce.issued_date,
			ce.expiry_date, ce.certificate_url, ce.verification_code, ce.is_valid, ce.created_at,
			c.id, c.title, c.description, c.short_description, c.category_id, c.instructor_id,
			c.thumbnail_url, c.price, c.duration_weeks, c.difficulty_level, c.max_students,
			c.is_published, c.is_featured, c.rating, c.total_reviews, c.total_enrollments,
			c.created_at, c.updated_at
		FROM certificates ce
		JOIN courses c ON c.id = ce.course_id
		WHERE ce.student_id = $1
		ORDER BY ce.issued_date DESC`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	certificates := make([]*models.Certificate, 0)
	for rows.Next() {
		ce := &models.Certificate{}
		c := &models.Course{}
		if err := rows.Scan(
			&ce.ID, &ce.StudentID, &ce.CourseID, &ce.CertificateNumber, &ce.IssuedDate,
			&ce.ExpiryDate, &ce.CertificateURL, &ce.VerificationCode, &ce.IsValid, &ce.CreatedAt,
			&c.ID, &c.Title, &c.Description, &c.ShortDescription, &c.CategoryID, &c.InstructorID,
			&c.ThumbnailURL, &c.Price, &c.DurationWeeks, &c.DifficultyLevel, &c.MaxStudents,
			&c.IsPublished, &c.IsFeatured, &c.Rating, &c.TotalReviews, &c.TotalEnrollments,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		ce.Course = c
		certificates = append(certificates, ce)
	}
	return certificates, rows.Err()
}

func (r *CertificateRepo) Create(ctx context.Context, ce *models.Certificate) error {
	ce.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO certificates (id, student_id, course_id, certificate_number, expiry_date,
			certificate_url, verification_code, is_valid)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING issued_date, created_at`,
		ce.ID, ce.StudentID, ce.CourseID, ce.CertificateNumber, ce.ExpiryDate,
		ce.CertificateURL, ce.VerificationCode, ce.IsValid,
	).Scan(&ce.IssuedDate, &ce.CreatedAt)
}

func (r *CertificateRepo) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM certificates WHERE is_valid = TRUE").Scan(&count)
	return count, err
}

func (r *CertificateRepo) CountByStudent(ctx context.Context, studentID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM certificates WHERE student_id = $1 AND is_valid = TRUE",
		studentID,
	).Scan(&count)
	return count, err
}
