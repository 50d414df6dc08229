package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"whiteboard-backend/internal/repository"
)

type NotificationHandler struct {
	notificationRepo *repository.NotificationRepo
}

func NewNotificationHandler(notificationRepo *repository.NotificationRepo) *NotificationHandler {
	return &NotificationHandler{notificationRepo: notificationRepo}
}

// List serves a user's notifications. ?user_id= defaults to the authenticated
// user.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryUserID(r, "user_id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid user ID", r))
		return
	}

	notifications, err := h.notificationRepo.ListByUser(r.Context(), userID)
	if err != nil {
		handleRepoError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, notifications)
}

// MarkRead flips exactly one notification to read.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid notification ID", r))
		return
	}

	if err := h.notificationRepo.MarkRead(r.Context(), id); err != nil {
		handleRepoError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Notification marked as read"})
}
