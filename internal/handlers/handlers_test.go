package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"whiteboard-backend/internal/middleware"
	"whiteboard-backend/internal/models"
)

// These cover the request-validation paths, which never reach a repository.

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	return resp
}

func withRole(r *http.Request, role string) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.RoleKey, role)
	return r.WithContext(ctx)
}

func TestEnrollmentList_RequiresFilter(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"no filter", "/api/v1/enrollments"},
		{"bad student id", "/api/v1/enrollments?student_id=not-a-uuid"},
		{"bad course id", "/api/v1/enrollments?course_id=42"},
	}

	h := NewEnrollmentHandler(nil, nil)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rr := httptest.NewRecorder()

			h.List(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("Expected 400, got %d", rr.Code)
			}
			if resp := decodeError(t, rr); resp.Error.Code != "VALIDATION_ERROR" {
				t.Errorf("Expected VALIDATION_ERROR, got %q", resp.Error.Code)
			}
		})
	}
}

func TestAssignmentList_RequiresCourseID(t *testing.T) {
	h := NewAssignmentHandler(nil, nil)

	for _, target := range []string{"/api/v1/assignments", "/api/v1/assignments?course_id=bogus"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rr := httptest.NewRecorder()

		h.List(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("Expected 400 for %s, got %d", target, rr.Code)
		}
	}
}

func TestScopedLists_RejectMalformedID(t *testing.T) {
	enrollmentH := NewEnrollmentHandler(nil, nil)
	assignmentH := NewAssignmentHandler(nil, nil)
	certificateH := NewCertificateHandler(nil)
	messageH := NewMessageHandler(nil, nil)
	notificationH := NewNotificationHandler(nil)

	tests := []struct {
		name    string
		target  string
		handler http.HandlerFunc
	}{
		{"progress", "/api/v1/progress?student_id=not-a-uuid", enrollmentH.ListProgress},
		{"submissions", "/api/v1/submissions?student_id=not-a-uuid", assignmentH.ListSubmissions},
		{"certificates", "/api/v1/certificates?student_id=not-a-uuid", certificateH.List},
		{"messages", "/api/v1/messages?user_id=not-a-uuid", messageH.List},
		{"notifications", "/api/v1/notifications?user_id=not-a-uuid", notificationH.List},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rr := httptest.NewRecorder()

			tc.handler(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("Expected 400, got %d", rr.Code)
			}
			if resp := decodeError(t, rr); resp.Error.Code != "VALIDATION_ERROR" {
				t.Errorf("Expected VALIDATION_ERROR, got %q", resp.Error.Code)
			}
		})
	}
}

func TestQueryUserID_FallsBackToTokenUser(t *testing.T) {
	tokenUser := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/certificates", nil)
	req = req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey, tokenUser))

	id, ok := queryUserID(req, "student_id")
	if !ok {
		t.Fatal("Expected the absent parameter to be accepted")
	}
	if id != tokenUser {
		t.Errorf("Expected fallback to %s, got %s", tokenUser, id)
	}

	other := uuid.New()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/certificates?student_id="+other.String(), nil)
	req = req.WithContext(context.WithValue(req.Context(), middleware.UserIDKey, tokenUser))

	id, ok = queryUserID(req, "student_id")
	if !ok {
		t.Fatal("Expected the explicit parameter to be accepted")
	}
	if id != other {
		t.Errorf("Expected explicit ID %s to win, got %s", other, id)
	}
}

func TestCalendarList_InvalidBounds(t *testing.T) {
	h := NewCalendarHandler(nil)

	tests := []struct {
		name   string
		target string
	}{
		{"bad start", "/api/v1/calendar?start=yesterday"},
		{"bad end", "/api/v1/calendar?end=2026-13-45"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rr := httptest.NewRecorder()

			h.List(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("Expected 400, got %d", rr.Code)
			}
		})
	}
}

func TestNotificationMarkRead_InvalidID(t *testing.T) {
	h := NewNotificationHandler(nil)

	r := chi.NewRouter()
	r.Put("/notifications/{id}/read", h.MarkRead)

	req := httptest.NewRequest(http.MethodPut, "/notifications/not-a-uuid/read", nil)
	rr := httptest.NewRecorder()

	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", rr.Code)
	}
}

func TestUserList_ForbiddenForNonAdmins(t *testing.T) {
	h := NewUserHandler(nil)

	for _, role := range []string{models.RoleInstructor, models.RoleStudent, ""} {
		req := withRole(httptest.NewRequest(http.MethodGet, "/api/v1/users", nil), role)
		rr := httptest.NewRecorder()

		h.List(rr, req)

		if rr.Code != http.StatusForbidden {
			t.Errorf("Expected 403 for role %q, got %d", role, rr.Code)
		}
		if resp := decodeError(t, rr); resp.Error.Code != "FORBIDDEN" {
			t.Errorf("Expected FORBIDDEN, got %q", resp.Error.Code)
		}
	}
}

func TestMessageSend_Validation(t *testing.T) {
	h := NewMessageHandler(nil, nil)

	tests := []struct {
		name string
		body string
	}{
		{"not json", "{{{"},
		{"missing recipient", `{"content":"hi"}`},
		{"missing content", `{"recipient_id":"8a0f6f0e-2b3a-4e1c-9a43-93a4a5b6c7d8"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/messages", bytes.NewReader([]byte(tc.body)))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			h.Send(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("Expected 400, got %d", rr.Code)
			}
		})
	}
}

func TestErrorResp_CarriesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil)
	req.Header.Set("X-Request-ID", "req-123")

	resp := errorResp("NOT_FOUND", "Resource not found", req)

	if resp.Error.RequestID != "req-123" {
		t.Errorf("Expected request ID to be echoed, got %q", resp.Error.RequestID)
	}
}
