package handlers

import (
	"net/http"

	"github.com/google/uuid"

	"whiteboard-backend/internal/repository"
)

type AssignmentHandler struct {
	assignmentRepo *repository.AssignmentRepo
	submissionRepo *repository.SubmissionRepo
}

func NewAssignmentHandler(assignmentRepo *repository.AssignmentRepo, submissionRepo *repository.SubmissionRepo) *AssignmentHandler {
	return &AssignmentHandler{assignmentRepo: assignmentRepo, submissionRepo: submissionRepo}
}

// List serves /assignments?course_id=; published assignments only, earliest
// due date first.
func (h *AssignmentHandler) List(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("course_id")
	if raw == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "course_id is required", r))
		return
	}
	courseID, err := uuid.Parse(raw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid course ID", r))
		return
	}

	assignments, err := h.assignmentRepo.ListByCourse(r.Context(), courseID)
	if err != nil {
		handleRepoError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, assignments)
}

// ListSubmissions serves a student's submissions with assignments and grades
// attached. ?student_id= defaults to the authenticated user.
func (h *AssignmentHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	studentID, ok := queryUserID(r, "student_id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid student ID", r))
		return
	}

	submissions, err := h.submissionRepo.ListByStudent(r.Context(), studentID)
	if err != nil {
		handleRepoError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, submissions)
}
