package handlers

import (
	"net/http"

	"whiteboard-backend/internal/repository"
)

type CertificateHandler struct {
	certificateRepo *repository.CertificateRepo
}

func NewCertificateHandler(certificateRepo *repository.CertificateRepo) *CertificateHandler {
	return &CertificateHandler{certificateRepo: certificateRepo}
}

// List serves a student's certificates. ?student_id= defaults to the
// authenticated user.
func (h *CertificateHandler) List(w http.ResponseWriter, r *http.Request) {
	studentID, ok := queryUserID(r, "student_id")
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid student ID", r))
		return
	}

	certificates, err := h.certificateRepo.ListByStudent(r.Context(), studentID)
	if err != nil {
		handleRepoError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, certificates)
}
