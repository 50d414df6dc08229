package models

import (
	"time"

	"github.com/google/uuid"
)

// Enrollment lifecycle states.
const (
	EnrollmentActive    = "active"
	EnrollmentCompleted = "completed"
	EnrollmentDropped   = "dropped"
	EnrollmentPending   = "pending"
)

type Enrollment struct {
	ID                 uuid.UUID  `json:"id"`
	StudentID          uuid.UUID  `json:"student_id"`
	CourseID           uuid.UUID  `json:"course_id"`
	Status             string     `json:"status"`
	EnrolledAt         time.Time  `json:"enrolled_at"`
	CompletedAt        *time.Time `json:"completed_at"`
	ProgressPercentage float64    `json:"progress_percentage"`
	LastAccessed       *time.Time `json:"last_accessed"`
	CertificateIssued  bool       `json:"certificate_issued"`

	Student *User   `json:"student,omitempty"`
	Course  *Course `json:"course,omitempty"`
}

type Progress struct {
	ID               uuid.UUID  `json:"id"`
	StudentID        uuid.UUID  `json:"student_id"`
	LessonID         uuid.UUID  `json:"lesson_id"`
	CourseID         uuid.UUID  `json:"course_id"`
	IsCompleted      bool       `json:"is_completed"`
	TimeSpentMinutes int        `json:"time_spent_minutes"`
	LastPosition     int        `json:"last_position"`
	CompletedAt      *time.Time `json:"completed_at"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	Lesson *Lesson `json:"lesson,omitempty"`
}
