package models

import (
	"time"

	"github.com/google/uuid"
)

// Calendar event types.
const (
	EventClass         = "class"
	EventAssignmentDue = "assignment_due"
	EventExam          = "exam"
	EventOfficeHours   = "office_hours"
	EventHoliday       = "holiday"
)

type CalendarEvent struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Description  *string    `json:"description"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      time.Time  `json:"end_time"`
	CourseID     *uuid.UUID `json:"course_id"`
	InstructorID *uuid.UUID `json:"instructor_id"`
	EventType    *string    `json:"event_type"`
	Location     *string    `json:"location"`
	MeetingURL   *string    `json:"meeting_url"`
	IsRecurring  bool       `json:"is_recurring"`
	CreatedAt    time.Time  `json:"created_at"`

	Course     *Course `json:"course,omitempty"`
	Instructor *User   `json:"instructor,omitempty"`
}
