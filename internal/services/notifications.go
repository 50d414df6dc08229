package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"whiteboard-backend/internal/models"
	"whiteboard-backend/internal/repository"
)

// NotificationService creates notification rows and announces them on the
// per-user Redis channel so connected portal clients refresh without polling.
type NotificationService struct {
	repo  *repository.NotificationRepo
	redis *redis.Client
}

func NewNotificationService(repo *repository.NotificationRepo, redisClient *redis.Client) *NotificationService {
	return &NotificationService{repo: repo, redis: redisClient}
}

func (s *NotificationService) Notify(ctx context.Context, userID uuid.UUID, notifType, title, message string, actionURL *string) error {
	n := &models.Notification{
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      notifType,
		ActionURL: actionURL,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return err
	}

	s.publish(ctx, userID, n)
	return nil
}

func (s *NotificationService) publish(ctx context.Context, userID uuid.UUID, n *models.Notification) {
	payload, err := json.Marshal(models.NotificationEvent{
		Event:        "notification",
		Notification: n,
	})
	if err != nil {
		return
	}

	if err := s.redis.Publish(ctx, "user_updates:"+userID.String(), payload).Err(); err != nil {
		log.Printf("notification publish failed for user %s: %v", userID, err)
	}
}
