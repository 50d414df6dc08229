package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"whiteboard-backend/internal/middleware"
	"whiteboard-backend/internal/models"
	"whiteboard-backend/internal/repository"
	"whiteboard-backend/internal/services"
)

type MessageHandler struct {
	messageRepo   *repository.MessageRepo
	notifications *services.NotificationService
}

func NewMessageHandler(messageRepo *repository.MessageRepo, notifications *services.NotificationService) *MessageHandler {
	return &MessageHandler{messageRepo: messageRepo, notifications: notifications}
}

// List returns a user's messages, sent and received. ?user_id= defaults to
// the authenticated user.
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryUserID(r, "user_id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid user ID", r))
		return
	}

	messages, err := h.messageRepo.ListByUser(r.Context(), userID)
	if err != nil {
		handleRepoError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

// Send stores the message and raises a notification for the recipient.
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req models.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if req.RecipientID == uuid.Nil || req.Content == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "recipient_id and content are required", r))
		return
	}

	senderID := middleware.GetUserID(r.Context())
	msg := &models.Message{
		SenderID:    senderID,
		RecipientID: req.RecipientID,
		Subject:     req.Subject,
		Content:     req.Content,
		CourseID:    req.CourseID,
	}

	if err := h.messageRepo.Create(r.Context(), msg); err != nil {
		handleRepoError(w, r, err)
		return
	}

	title := "New message"
	if req.Subject != nil && *req.Subject != "" {
		title = *req.Subject
	}
	h.notifications.Notify(r.Context(), req.RecipientID, models.NotificationMessage, title, req.Content, nil)

	writeJSON(w, http.StatusCreated, msg)
}
