package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"whiteboard-backend/internal/models"
)

type MessageRepo struct {
	pool *pgxpool.Pool
}

func NewMessageRepo(pool *pgxpool.Pool) *MessageRepo {
	return &MessageRepo{pool: pool}
}

// ListByUser returns every message where the user is sender or recipient,
// newest first, with both participant records attached.
func (r *MessageRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Message, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT m.id, m.sender_id, m.recipient_id, m.subject, m.content, m.is_read,
			m.parent_message_id, m.course_id, m.sent_at, m.read_at,
			s.id, s.email, s.first_name, s.last_name, s.role, s.avatar_url, s.phone, s.bio,
			s.is_active, s.last_login, s.created_at, s.updated_at,
			rc.id, rc.email, rc.first_name, rc.last_name, rc.role, rc.avatar_url, rc.phone, rc.bio,
			rc.is_active, rc.last_login, rc.created_at, rc.updated_at
		FROM messages m
		JOIN users s ON s.id = m.sender_id
		JOIN users rc ON rc.id = m.recipient_id
		WHERE m.sender_id = $1 OR m.recipient_id = $1
		ORDER BY m.sent_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := make([]*models.Message, 0)
	for rows.Next() {
		m := &models.Message{}
		sender := &models.User{}
		recipient := &models.User{}
		if err := rows.Scan(
			&m.ID, &m.SenderID, &m.RecipientID, &m.Subject, &m.Content, &m.IsRead,
			&m.ParentMessageID, &m.CourseID, &m.SentAt, &m.ReadAt,
			&sender.ID, &sender.Email, &sender.FirstName, &sender.LastName,
			&sender.Role, &sender.AvatarURL, &sender.Phone, &sender.Bio,
			&sender.IsActive, &sender.LastLogin, &sender.CreatedAt, &sender.UpdatedAt,
			&recipient.ID, &recipient.Email, &recipient.FirstName, &recipient.LastName,
			&recipient.Role, &recipient.AvatarURL, &recipient.Phone, &recipient.Bio,
			&recipient.IsActive, &recipient.LastLogin, &recipient.CreatedAt, &recipient.UpdatedAt,
		); err != nil {
			return nil, err
		}
		m.Sender = sender
		m.Recipient = recipient
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *MessageRepo) Create(ctx context.Context, m *models.Message) error {
	m.ID = uuid.New()
	return r.pool.QueryRow(ctx, `
		INSERT INTO messages (id, sender_id, recipient_id, subject, content, parent_message_id, course_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING sent_at`,
		m.ID, m.SenderID, m.RecipientID, m.Subject, m.Content, m.ParentMessageID, m.CourseID,
	).Scan(&m.SentAt)
}

func (r *MessageRepo) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM messages WHERE recipient_id = $1 AND is_read = FALSE",
		userID,
	).Scan(&count)
	return count, err
}
