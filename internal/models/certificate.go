package models

import (
	"time"

	"github.com/google/uuid"
)

type Certificate struct {
	ID                uuid.UUID  `json:"id"`
	StudentID         uuid.UUID  `json:"student_id"`
	CourseID          uuid.UUID  `json:"course_id"`
	CertificateNumber string     `json:"certificate_number"`
	IssuedDate        time.Time  `json:"issued_date"`
	ExpiryDate        *time.Time `json:"expiry_date"`
	CertificateURL    *string    `json:"certificate_url"`
	VerificationCode  string     `json:"verification_code"`
	IsValid           bool       `json:"is_valid"`
	CreatedAt         time.Time  `json:"created_at"`

	Student *User   `json:"student,omitempty"`
	Course  *Course `json:"course,omitempty"`
}
