package models

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	ID              uuid.UUID  `json:"id"`
	SenderID        uuid.UUID  `json:"sender_id"`
	RecipientID     uuid.UUID  `json:"recipient_id"`
	Subject         *string    `json:"subject"`
	Content         string     `json:"content"`
	IsRead          bool       `json:"is_read"`
	ParentMessageID *uuid.UUID `json:"parent_message_id"`
	CourseID        *uuid.UUID `json:"course_id"`
	SentAt          time.Time  `json:"sent_at"`
	ReadAt          *time.Time `json:"read_at"`

	Sender    *User `json:"sender,omitempty"`
	Recipient *User `json:"recipient,omitempty"`
}

type SendMessageRequest struct {
	RecipientID uuid.UUID  `json:"recipient_id"`
	Subject     *string    `json:"subject"`
	Content     string     `json:"content"`
	CourseID    *uuid.UUID `json:"course_id"`
}
