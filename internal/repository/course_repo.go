package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"whiteboard-backend/internal/models"
)

type CourseRepo struct {
	pool *pgxpool.Pool
}

func NewCourseRepo(pool *pgxpool.Pool) *CourseRepo {
	return &CourseRepo{pool: pool}
}

const courseSelect = `
	SELECT c.id, c.title, c.description, c.short_description, c.category_id, c.instructor_id,
		c.thumbnail_url, c.price, c.duration_weeks, c.difficulty_level, c.max_students,
		c.is_published, c.is_featured, c.rating, c.total_reviews, c.total_enrollments,
		c.created_at, c.updated_at,
		cat.id, cat.name, cat.description, cat.icon, cat.color, cat.is_active, cat.created_at,
		u.id, u.email, u.first_name, u.last_name, u.role, u.avatar_url, u.phone, u.bio,
		u.is_active, u.last_login, u.created_at, u.updated_at
	FROM courses c
	LEFT JOIN categories cat ON cat.id = c.category_id
	JOIN users u ON u.id = c.instructor_id`

// scanCourse reads one row of courseSelect, attaching the joined Category
// (when present) and Instructor sub-records.
func scanCourse(rows pgx.Rows) (*models.Course, error) {
	c := &models.Course{}
	instructor := &models.User{}

	var catID *uuid.UUID
	var catName, catDescription, catIcon, catColor *string
	var catIsActive *bool
	var catCreatedAt *time.Time

	err := rows.Scan(
		&c.ID, &c.Title, &c.Description, &c.ShortDescription, &c.CategoryID, &c.InstructorID,
		&c.ThumbnailURL, &c.Price, &c.DurationWeeks, &c.DifficultyLevel, &c.MaxStudents,
		&c.IsPublished, &c.IsFeatured, &c.Rating, &c.TotalReviews, &c.TotalEnrollments,
		&c.CreatedAt, &c.UpdatedAt,
		&catID, &catName, &catDescription, &catIcon, &catColor, &catIsActive, &catCreatedAt,
		&instructor.ID, &instructor.Email, &instructor.FirstName, &instructor.LastName,
		&instructor.Role, &instructor.AvatarURL, &instructor.Phone, &instructor.Bio,
		&instructor.IsActive, &instructor.LastLogin, &instructor.CreatedAt, &instructor.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if catID != nil {
		c.Category = &models.Category{
			ID:        *catID,
			Name:      *catName,
			IsActive:  *catIsActive,
			CreatedAt: *catCreatedAt,
		}
		c.Category.Description = catDescription
		c.Category.Icon = catIcon
		c.Category.Color = catColor
	}
	c.Instructor = instructor
	return c, nil
}

// List returns courses newest first, each with its category and instructor
// attached. Unpublished courses are filtered out unless includeUnpublished.
func (r *CourseRepo) List(ctx context.Context, includeUnpublished bool) ([]*models.Course, error) {
	query := courseSelect
	if !includeUnpublished {
		query += " WHERE c.is_published = TRUE"
	}
	query += " ORDER BY c.created_at DESC"

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := make([]*models.Course, 0)
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// GetByID also attaches the course's lessons in order.
func (r *CourseRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	rows, err := r.pool.Query(ctx, courseSelect+" WHERE c.id = $1", id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, pgx.ErrNoRows
	}
	c, err := scanCourse(rows)
	if err != nil {
		return nil, err
	}
	rows.Close()

	lessons, err := r.listLessons(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Lessons = lessons
	return c, nil
}

func (r *CourseRepo) listLessons(ctx context.Context, courseID uuid.UUID) ([]*models.Lesson, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, course_id, title, description, content, video_url, duration_minutes,
			order_index, is_preview, created_at, updated_at
		FROM lessons WHERE course_id = $1 ORDER BY order_index ASC`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lessons := make([]*models.Lesson, 0)
	for rows.Next() {
		l := &models.Lesson{}
		if err := rows.Scan(
			&l.ID, &l.CourseID, &l.Title, &l.Description, &l.Content, &l.VideoURL,
			&l.DurationMinutes, &l.OrderIndex, &l.IsPreview, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, err
		}
		lessons = append(lessons, l)
	}
	return lessons, rows.Err()
}

func (r *CourseRepo) Create(ctx context.Context, c *models.Course) error {
	c.ID = uuid.New()
	query := `
		INSERT INTO courses (id, title, description, short_description, category_id, instructor_id,
			thumbnail_url, price, duration_weeks, difficulty_level, max_students, is_published, is_featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		c.ID, c.Title, c.Description, c.ShortDescription, c.CategoryID, c.InstructorID,
		c.ThumbnailURL, c.Price, c.DurationWeeks, c.DifficultyLevel, c.MaxStudents,
		c.IsPublished, c.IsFeatured,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
}

func (r *CourseRepo) CreateLesson(ctx context.Context, l *models.Lesson) error {
	l.ID = uuid.New()
	query := `
		INSERT INTO lessons (id, course_id, title, description, content, video_url, duration_minutes, order_index, is_preview)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		l.ID, l.CourseID, l.Title, l.Description, l.Content, l.VideoURL,
		l.DurationMinutes, l.OrderIndex, l.IsPreview,
	).Scan(&l.CreatedAt, &l.UpdatedAt)
}

func (r *CourseRepo) CountPublished(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM courses WHERE is_published = TRUE").Scan(&count)
	return count, err
}

func (r *CourseRepo) CountByInstructor(ctx context.Context, instructorID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM courses WHERE instructor_id = $1", instructorID).Scan(&count)
	return count, err
}
