package models

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID           uuid.UUID `json:"id"`
	CourseID     uuid.UUID `json:"course_id"`
	StudentID    uuid.UUID `json:"student_id"`
	Rating       int       `json:"rating"`
	ReviewText   *string   `json:"review_text"`
	IsPublished  bool      `json:"is_published"`
	HelpfulCount int       `json:"helpful_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Course  *Course `json:"course,omitempty"`
	Student *User   `json:"student,omitempty"`
}
