// Package client is the HTTP implementation of the store contract. It talks
// to the backend API and is what the portal binds its adapters to.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"

	"whiteboard-backend/internal/models"
	"whiteboard-backend/internal/session"
	"whiteboard-backend/internal/store"
)

// Client implements store.Store over the /api/v1 surface. It also implements
// session.Authenticator so a session.Manager can log in through it; the bearer
// token from the last successful login is attached to every request.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Authenticate logs in against the backend and keeps the issued token for
// subsequent requests. Unknown email and wrong password are indistinguishable.
func (c *Client) Authenticate(ctx context.Context, email, password string) (*session.Identity, error) {
	body, err := json.Marshal(models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, store.NewError("login", err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/auth/login", bytes.NewReader(body))
	if err != nil {
		return nil, store.NewError("login", err.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, store.NewError("login", err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, session.ErrInvalidCredentials
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apiError("login", resp)
	}

	var loginResp models.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		return nil, store.NewError("login", err.Error())
	}

	c.mu.Lock()
	c.token = loginResp.AccessToken
	c.mu.Unlock()

	return &session.Identity{
		ID:        loginResp.User.ID,
		Email:     loginResp.User.Email,
		Name:      loginResp.User.FullName(),
		Role:      loginResp.User.Role,
		AvatarURL: loginResp.User.AvatarURL,
	}, nil
}

// setToken installs a bearer token without going through login. Tokens are
// never persisted, so only tests exercise requests this way.
func (c *Client) setToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) ListUsers(ctx context.Context) ([]*models.User, error) {
	var users []*models.User
	if err := c.get(ctx, "list users", "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, "get user", "/users/"+id.String(), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) ListCourses(ctx context.Context, includeUnpublished bool) ([]*models.Course, error) {
	q := url.Values{}
	if includeUnpublished {
		q.Set("include_unpublished", "true")
	}
	var courses []*models.Course
	if err := c.get(ctx, "list courses", "/courses", q, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *Client) GetCourse(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	var course models.Course
	if err := c.get(ctx, "get course", "/courses/"+id.String(), nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *Client) ListEnrollmentsByStudent(ctx context.Context, studentID uuid.UUID) ([]*models.Enrollment, error) {
	q := url.Values{"student_id": {studentID.String()}}
	var enrollments []*models.Enrollment
	if err := c.get(ctx, "list enrollments", "/enrollments", q, &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (c *Client) ListEnrollmentsByCourse(ctx context.Context, courseID uuid.UUID) ([]*models.Enrollment, error) {
	q := url.Values{"course_id": {courseID.String()}}
	var enrollments []*models.Enrollment
	if err := c.get(ctx, "list enrollments", "/enrollments", q, &enrollments); err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (c *Client) ListProgressByStudent(ctx context.Context, studentID uuid.UUID, courseID *uuid.UUID) ([]*models.Progress, error) {
	q := url.Values{"student_id": {studentID.String()}}
	if courseID != nil {
		q.Set("course_id", courseID.String())
	}
	var progress []*models.Progress
	if err := c.get(ctx, "list progress", "/progress", q, &progress); err != nil {
		return nil, err
	}
	return progress, nil
}

func (c *Client) ListAssignmentsByCourse(ctx context.Context, courseID uuid.UUID) ([]*models.Assignment, error) {
	q := url.Values{"course_id": {courseID.String()}}
	var assignments []*models.Assignment
	if err := c.get(ctx, "list assignments", "/assignments", q, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

func (c *Client) ListSubmissionsByStudent(ctx context.Context, studentID uuid.UUID) ([]*models.Submission, error) {
	q := url.Values{"student_id": {studentID.String()}}
	var submissions []*models.Submission
	if err := c.get(ctx, "list submissions", "/submissions", q, &submissions); err != nil {
		return nil, err
	}
	return submissions, nil
}

func (c *Client) ListCertificatesByStudent(ctx context.Context, studentID uuid.UUID) ([]*models.Certificate, error) {
	q := url.Values{"student_id": {studentID.String()}}
	var certificates []*models.Certificate
	if err := c.get(ctx, "list certificates", "/certificates", q, &certificates); err != nil {
		return nil, err
	}
	return certificates, nil
}

func (c *Client) ListMessagesByUser(ctx context.Context, userID uuid.UUID) ([]*models.Message, error) {
	q := url.Values{"user_id": {userID.String()}}
	var messages []*models.Message
	if err := c.get(ctx, "list messages", "/messages", q, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (c *Client) SendMessage(ctx context.Context, req models.SendMessageRequest) (*models.Message, error) {
	var message models.Message
	if err := c.post(ctx, "send message", "/messages", req, &message); err != nil {
		return nil, err
	}
	return &message, nil
}

func (c *Client) ListNotificationsByUser(ctx context.Context, userID uuid.UUID) ([]*models.Notification, error) {
	q := url.Values{"user_id": {userID.String()}}
	var notifications []*models.Notification
	if err := c.get(ctx, "list notifications", "/notifications", q, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (c *Client) MarkNotificationRead(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, "mark notification read", http.MethodPut, "/notifications/"+id.String()+"/read", nil, nil, nil)
}

func (c *Client) ListCalendarEvents(ctx context.Context, start, end *time.Time) ([]*models.CalendarEvent, error) {
	q := url.Values{}
	if start != nil {
		q.Set("start", start.Format(time.RFC3339))
	}
	if end != nil {
		q.Set("end", end.Format(time.RFC3339))
	}
	var events []*models.CalendarEvent
	if err := c.get(ctx, "list calendar events", "/calendar", q, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) ListReviewsByCourse(ctx context.Context, courseID uuid.UUID) ([]*models.Review, error) {
	var reviews []*models.Review
	if err := c.get(ctx, "list reviews", "/courses/"+courseID.String()+"/reviews", nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (c *Client) get(ctx context.Context, op, path string, query url.Values, out interface{}) error {
	return c.do(ctx, op, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, op, path string, in, out interface{}) error {
	return c.do(ctx, op, http.MethodPost, path, nil, in, out)
}

func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, in, out interface{}) error {
	u := c.baseURL + "/api/v1" + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body *bytes.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return store.NewError(op, err.Error())
		}
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return store.NewError(op, err.Error())
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return store.NewError(op, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apiError(op, resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return store.NewError(op, err.Error())
		}
	}
	return nil
}

// apiError turns a non-2xx response into a *store.Error, preferring the
// server's own error message when the body carries one.
func apiError(op string, resp *http.Response) *store.Error {
	var errResp models.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error.Message != "" {
		return store.NewError(op, errResp.Error.Message)
	}
	return store.NewError(op, fmt.Sprintf("unexpected status %d", resp.StatusCode))
}
