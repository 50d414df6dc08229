package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"whiteboard-backend/internal/middleware"
	"whiteboard-backend/internal/models"
	"whiteboard-backend/internal/repository"
)

type CourseHandler struct {
	courseRepo   *repository.CourseRepo
	categoryRepo *repository.CategoryRepo
	reviewRepo   *repository.ReviewRepo
}

func NewCourseHandler(courseRepo *repository.CourseRepo, categoryRepo *repository.CategoryRepo, reviewRepo *repository.ReviewRepo) *CourseHandler {
	return &CourseHandler{courseRepo: courseRepo, categoryRepo: categoryRepo, reviewRepo: reviewRepo}
}

// List returns the catalog. Only admins and instructors may request
// unpublished courses; for students the flag is ignored.
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	includeUnpublished := r.URL.Query().Get("include_unpublished") == "true"
	role := middleware.GetRole(r.Context())
	if role == models.RoleStudent {
		includeUnpublished = false
	}

	courses, err := h.courseRepo.List(r.Context(), includeUnpublished)
	if err != nil {
		handleRepoError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, courses)
}

func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid course ID", r))
		return
	}

	course, err := h.courseRepo.GetByID(r.Context(), id)
	if err != nil {
		handleRepoError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, course)
}

func (h *CourseHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.List(r.Context())
	if err != nil {
		handleRepoError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *CourseHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid course ID", r))
		return
	}

	reviews, err := h.reviewRepo.ListByCourse(r.Context(), id)
	if err != nil {
		handleRepoError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}
