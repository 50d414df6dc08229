package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"whiteboard-backend/internal/repository"
)

type EnrollmentHandler struct {
	enrollmentRepo *repository.EnrollmentRepo
	progressRepo   *repository.ProgressRepo
}

func NewEnrollmentHandler(enrollmentRepo *repository.EnrollmentRepo, progressRepo *repository.ProgressRepo) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentRepo: enrollmentRepo, progressRepo: progressRepo}
}

// List serves /enrollments?student_id= or ?course_id=. Exactly one filter is
// required; the query is a passthrough to the matching store query.
func (h *EnrollmentHandler) List(w http.ResponseWriter, r *http.Request) {
	if studentID := r.URL.Query().Get("student_id"); studentID != "" {
		id, err := uuid.Parse(studentID)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid student ID", r))
			return
		}
		enrollments, err := h.enrollmentRepo.ListByStudent(r.Context(), id)
		if err != nil {
			handleRepoError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, enrollments)
		return
	}

	if courseID := r.URL.Query().Get("course_id"); courseID != "" {
		id, err := uuid.Parse(courseID)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid course ID", r))
			return
		}
		enrollments, err := h.enrollmentRepo.ListByCourse(r.Context(), id)
		if err != nil {
			handleRepoError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, enrollments)
		return
	}

	writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "student_id or course_id is required", r))
}

// ListProgress serves a student's progress, optionally narrowed to one course
// via ?course_id=. ?student_id= selects the student; it defaults to the
// authenticated user.
func (h *EnrollmentHandler) ListProgress(w http.ResponseWriter, r *http.Request) {
	studentID, ok := queryUserID(r, "student_id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid student ID", r))
		return
	}

	var courseID *uuid.UUID
	if raw := r.URL.Query().Get("course_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid course ID", r))
			return
		}
		courseID = &id
	}

	progress, err := h.progressRepo.ListByStudent(r.Context(), studentID, courseID)
	if err != nil {
		handleRepoError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, progress)
}
