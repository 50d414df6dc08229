package handlers

import (
	"net/http"
	"time"

	"whiteboard-backend/internal/repository"
)

type CalendarHandler struct {
	calendarRepo *repository.CalendarRepo
}

func NewCalendarHandler(calendarRepo *repository.CalendarRepo) *CalendarHandler {
	return &CalendarHandler{calendarRepo: calendarRepo}
}

// List serves /calendar?start=&end= with RFC 3339 bounds, both optional.
func (h *CalendarHandler) List(w http.ResponseWriter, r *http.Request) {
	var start, end *time.Time

	if raw := r.URL.Query().Get("start"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid start time", r))
			return
		}
		start = &t
	}
	if raw := r.URL.Query().Get("end"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid end time", r))
			return
		}
		end = &t
	}

	events, err := h.calendarRepo.List(r.Context(), start, end)
	if err != nil {
		handleRepoError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}
