package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"whiteboard-backend/internal/models"
)

type SubmissionRepo struct {
	pool *pgxpool.Pool
}

func NewSubmissionRepo(pool *pgxpool.Pool) *SubmissionRepo {
	return &SubmissionRepo{pool: pool}
}

// ListByStudent returns the student's submissions, newest first, each with its
// assignment and, when graded, the grade.
func (r *SubmissionRepo) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]*models.Submission, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT s.id, s.assignment_id, s.student_id, s.content, s.status, s.submitted_at,
			s.graded_at, s.created_at, s.updated_at,
			a.id, a.course_id, a.lesson_id, a.title, a.description, a.instructions, a.type,
			a.max_points, a.due_date, a.is_published, a.allow_late_submission,
			a.late_penalty_percentage, a.created_at, a.updated_at,
			g.id, g.submission_id, g.grader_id, g.points_earned, g.max_points, g.percentage,
			g.letter_grade, g.feedback, g.is_final, g.graded_at, g.created_at
		FROM submissions s
		JOIN assignments a ON a.id = s.assignment_id
		LEFT JOIN grades g ON g.submission_id = s.id
		WHERE s.student_id = $1
		ORDER BY s.created_at DESC`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	submissions := make([]*models.Submission, 0)
	for rows.Next() {
		s := &models.Submission{}
		a := &models.Assignment{}

		var gradeID, gradeSubmissionID, graderID *uuid.UUID
		var pointsEarned, maxPoints, percentage *float64
		var letterGrade, feedback *string
		var isFinal *bool
		var gradedAt, gradeCreatedAt *time.Time

		if err := rows.Scan(
			&s.ID, &s.AssignmentID, &s.StudentID, &s.Content, &s.Status, &s.SubmittedAt,
			&s.GradedAt, &s.CreatedAt, &s.UpdatedAt,
			&a.ID, &a.CourseID, &a.LessonID, &a.Title, &a.Description, &a.Instructions, &a.Type,
			&a.MaxPoints, &a.DueDate, &a.IsPublished, &a.AllowLateSubmission,
			&a.LatePenaltyPercentage, &a.CreatedAt, &a.UpdatedAt,
			&gradeID, &gradeSubmissionID, &graderID, &pointsEarned, &maxPoints, &percentage,
			&letterGrade, &feedback, &isFinal, &gradedAt, &gradeCreatedAt,
		); err != nil {
			return nil, err
		}

		s.Assignment = a
		if gradeID != nil {
			s.Grade = &models.Grade{
				ID:           *gradeID,
				SubmissionID: *gradeSubmissionID,
				GraderID:     *graderID,
				PointsEarned: pointsEarned,
				MaxPoints:    maxPoints,
				Percentage:   percentage,
				LetterGrade:  letterGrade,
				Feedback:     feedback,
				IsFinal:      *isFinal,
				GradedAt:     *gradedAt,
				CreatedAt:    *gradeCreatedAt,
			}
		}
		submissions = append(submissions, s)
	}
	return submissions, rows.Err()
}

func (r *SubmissionRepo) Create(ctx context.Context, s *models.Submission) error {
	s.ID = uuid.New()
	if s.Status == "" {
		s.Status = models.SubmissionDraft
	}
	return r.pool.QueryRow(ctx, `
		INSERT INTO submissions (id, assignment_id, student_id, content, status, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`,
		s.ID, s.AssignmentID, s.StudentID, s.Content, s.Status, s.SubmittedAt,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
}

// CountPendingByInstructor counts submissions awaiting grading across the
// instructor's courses.
func (r *SubmissionRepo) CountPendingByInstructor(ctx context.Context, instructorID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM submissions s
		JOIN assignments a ON a.id = s.assignment_id
		JOIN courses c ON c.id = a.course_id
		WHERE c.instructor_id = $1 AND s.status = $2`,
		instructorID, models.SubmissionSubmitted,
	).Scan(&count)
	return count, err
}

func (r *SubmissionRepo) CreateGrade(ctx context.Context, g *models.Grade) error {
	g.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO grades (id, submission_id, grader_id, points_earned, max_points, percentage,
			letter_grade, feedback, is_final)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING graded_at, created_at`,
		g.ID, g.SubmissionID, g.GraderID, g.PointsEarned, g.MaxPoints, g.Percentage,
		g.LetterGrade, g.Feedback, g.IsFinal,
	).Scan(&g.GradedAt, &g.CreatedAt)
}
