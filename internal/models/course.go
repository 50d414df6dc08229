package models

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Icon        *string   `json:"icon"`
	Color       *string   `json:"color"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type Course struct {
	ID               uuid.UUID  `json:"id"`
	Title            string     `json:"title"`
	Description      *string    `json:"description"`
	ShortDescription *string    `json:"short_description"`
	CategoryID       *uuid.UUID `json:"category_id"`
	InstructorID     uuid.UUID  `json:"instructor_id"`
	ThumbnailURL     *string    `json:"thumbnail_url"`
	Price            float64    `json:"price"`
	DurationWeeks    *int       `json:"duration_weeks"`
	DifficultyLevel  *string    `json:"difficulty_level"`
	MaxStudents      *int       `json:"max_students"`
	IsPublished      bool       `json:"is_published"`
	IsFeatured       bool       `json:"is_featured"`
	Rating           float64    `json:"rating"`
	TotalReviews     int        `json:"total_reviews"`
	TotalEnrollments int        `json:"total_enrollments"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	// Expanded relations (populated only by queries that join them)
	Category   *Category `json:"category,omitempty"`
	Instructor *User     `json:"instructor,omitempty"`
	Lessons    []*Lesson `json:"lessons,omitempty"`
}

type Lesson struct {
	ID              uuid.UUID `json:"id"`
	CourseID        uuid.UUID `json:"course_id"`
	Title           string    `json:"title"`
	Description     *string   `json:"description"`
	Content         *string   `json:"content"`
	VideoURL        *string   `json:"video_url"`
	DurationMinutes *int      `json:"duration_minutes"`
	OrderIndex      int       `json:"order_index"`
	IsPreview       bool      `json:"is_preview"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
