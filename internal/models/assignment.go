package models

import (
	"time"

	"github.com/google/uuid"
)

type Assignment struct {
	ID                    uuid.UUID  `json:"id"`
	CourseID              uuid.UUID  `json:"course_id"`
	LessonID              *uuid.UUID `json:"lesson_id"`
	Title                 string     `json:"title"`
	Description           *string    `json:"description"`
	Instructions          *string    `json:"instructions"`
	Type                  string     `json:"type"` // quiz, essay, project, presentation, practice_test
	MaxPoints             int        `json:"max_points"`
	DueDate               *time.Time `json:"due_date"`
	IsPublished           bool       `json:"is_published"`
	AllowLateSubmission   bool       `json:"allow_late_submission"`
	LatePenaltyPercentage float64    `json:"late_penalty_percentage"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// Submission lifecycle states.
const (
	SubmissionDraft     = "draft"
	SubmissionSubmitted = "submitted"
	SubmissionGraded    = "graded"
	SubmissionReturned  = "returned"
)

type Submission struct {
	ID           uuid.UUID  `json:"id"`
	AssignmentID uuid.UUID  `json:"assignment_id"`
	StudentID    uuid.UUID  `json:"student_id"`
	Content      *string    `json:"content"`
	Status       string     `json:"status"`
	SubmittedAt  *time.Time `json:"submitted_at"`
	GradedAt     *time.Time `json:"graded_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Assignment *Assignment `json:"assignment,omitempty"`
	Student    *User       `json:"student,omitempty"`
	Grade      *Grade      `json:"grade,omitempty"`
}

type Grade struct {
	ID           uuid.UUID `json:"id"`
	SubmissionID uuid.UUID `json:"submission_id"`
	GraderID     uuid.UUID `json:"grader_id"`
	PointsEarned *float64  `json:"points_earned"`
	MaxPoints    *float64  `json:"max_points"`
	Percentage   *float64  `json:"percentage"`
	LetterGrade  *string   `json:"letter_grade"`
	Feedback     *string   `json:"feedback"`
	IsFinal      bool      `json:"is_final"`
	GradedAt     time.Time `json:"graded_at"`
	CreatedAt    time.Time `json:"created_at"`

	Grader *User `json:"grader,omitempty"`
}
