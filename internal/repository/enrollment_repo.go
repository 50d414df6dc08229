package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"whiteboard-backend/internal/models"
)

type EnrollmentRepo struct {
	pool *pgxpool.Pool
}

func NewEnrollmentRepo(pool *pgxpool.Pool) *EnrollmentRepo {
	return &EnrollmentRepo{pool: pool}
}

// ListByStudent returns every enrollment for the student, newest first. Each
// row carries its course, and each course its instructor (two-level embed).
func (r *EnrollmentRepo) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*models.Enrollment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT e.id, e.student_id, e.course_id, e.status, e.enrolled_at, e.completed_at,
			e.progress_percentage, e.last_accessed, e.certificate_issued,
			c.id, c.title, c.description, c.short_description, c.category_id, c.instructor_id,
			c.thumbnail_url, c.price, c.duration_weeks, c.difficulty_level, c.max_students,
			c.is_published, c.is_featured, c.rating, c.total_reviews, c.total_enrollments,
			c.created_at, c.updated_at,
			u.id, u.email, u.first_name, u.last_name, u.role, u.avatar_url, u.phone, u.bio,
			u.is_active, u.last_login, u.created_at, u.updated_at
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		JOIN users u ON u.id = c.instructor_id
		WHERE e.student_id = $1
		ORDER BY e.enrolled_at DESC`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	enrollments := make([]*models.Enrollment, 0)
	for rows.Next() {
		e := &models.Enrollment{}
		c := &models.Course{}
		instructor := &models.User{}
		if err := rows.Scan(
			&e.ID, &e.StudentID, &e.CourseID, &e.Status, &e.EnrolledAt, &e.CompletedAt,
			&e.ProgressPercentage, &e.LastAccessed, &e.CertificateIssued,
			&c.ID, &c.Title, &c.Description, &c.ShortDescription, &c.CategoryID, &c.InstructorID,
			&c.ThumbnailURL, &c.Price, &c.DurationWeeks, &c.DifficultyLevel, &c.MaxStudents,
			&c.IsPublished, &c.IsFeatured, &c.Rating, &c.TotalReviews, &c.TotalEnrollments,
			&c.CreatedAt, &c.UpdatedAt,
			&instructor.ID, &instructor.Email, &instructor.FirstName, &instructor.LastName,
			&instructor.Role, &instructor.AvatarURL, &instructor.Phone, &instructor.Bio,
			&instructor.IsActive, &instructor.LastLogin, &instructor.CreatedAt, &instructor.UpdatedAt,
		); err != nil {
			return nil, err
		}
		c.Instructor = instructor
		e.Course = c
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}

// ListByCourse returns every enrollment in the course with the student record
// attached, newest first.
func (r *EnrollmentRepo) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]*models.Enrollment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT e.id, e.student_id, e.course_id, e.status, e.enrolled_at, e.completed_at,
			e.progress_percentage, e.last_accessed, e.certificate_issued,
			u.id, u.email, u.first_name, u.last_name, u.role, u.avatar_url, u.phone, u.bio,
			u.is_active, u.last_login, u.created_at, u.updated_at
		FROM enrollments e
		JOIN users u ON u.id = e.student_id
		WHERE e.course_id = $1
		ORDER BY e.enrolled_at DESC`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	enrollments := make([]*models.Enrollment, 0)
	for rows.Next() {
		e := &models.Enrollment{}
		student := &models.User{}
		if err := rows.Scan(
			&e.ID, &e.StudentID, &e.CourseID, &e.Status, &e.EnrolledAt, &e.CompletedAt,
			&e.ProgressPercentage, &e.LastAccessed, &e.CertificateIssued,
			&student.ID, &student.Email, &student.FirstName, &student.LastName,
			&student.Role, &student.AvatarURL, &student.Phone, &student.Bio,
			&student.IsActive, &student.LastLogin, &student.CreatedAt, &student.UpdatedAt,
		); err != nil {
			return nil, err
		}
		e.Student = student
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}

func (r *EnrollmentRepo) Create(ctx context.Context, e *models.Enrollment) error {
	e.ID = uuid.New()
	if e.Status == "" {
		e.Status = models.EnrollmentActive
	}
	return r.pool.QueryRow(ctx, `
		INSERT INTO enrollments (id, student_id, course_id, status, progress_percentage)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING enrolled_at`,
		e.ID, e.StudentID, e.CourseID, e.Status, e.ProgressPercentage,
	).Scan(&e.EnrolledAt)
}

func (r *EnrollmentRepo) CountByStudent(ctx context.Context, studentID uuid.UUID, status string) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM enrollments WHERE student_id = $1 AND status = $2",
		studentID, status,
	).Scan(&count)
	return count, err
}

// CountStudentsByInstructor counts distinct students across all of the
// instructor's courses.
func (r *EnrollmentRepo) CountStudentsByInstructor(ctx context.Context, instructorID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(DISTINCT e.student_id)
		FROM enrollments e
		JOIN courses c ON c.id = e.course_id
		WHERE c.instructor_id = $1`, instructorID).Scan(&count)
	return count, err
}

func (r *EnrollmentRepo) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM enrollments").Scan(&count)
	return count, err
}
