package handlers

import (
	"net/http"

	"whiteboard-backend/internal/middleware"
	"whiteboard-backend/internal/models"
	"whiteboard-backend/internal/repository"
	"whiteboard-backend/internal/session"
)

type DashboardHandler struct {
	userRepo        *repository.UserRepo
	courseRepo      *repository.CourseRepo
	enrollmentRepo  *repository.EnrollmentRepo
	submissionRepo  *repository.SubmissionRepo
	certificateRepo *repository.CertificateRepo
	messageRepo     *repository.MessageRepo
	calendarRepo    *repository.CalendarRepo
}

func NewDashboardHandler(
	userRepo *repository.UserRepo,
	courseRepo *repository.CourseRepo,
	enrollmentRepo *repository.EnrollmentRepo,
	submissionRepo *repository.SubmissionRepo,
	certificateRepo *repository.CertificateRepo,
	messageRepo *repository.MessageRepo,
	calendarRepo *repository.CalendarRepo,
) *DashboardHandler {
	return &DashboardHandler{
		userRepo:        userRepo,
		courseRepo:      courseRepo,
		enrollmentRepo:  enrollmentRepo,
		submissionRepo:  submissionRepo,
		certificateRepo: certificateRepo,
		messageRepo:     messageRepo,
		calendarRepo:    calendarRepo,
	}
}

// Stats returns the widget values for the authenticated role's dashboard.
// Which widgets exist per role comes from the capability table; this handler
// fills in the numbers for each of them.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	role := middleware.GetRole(ctx)

	type counter struct {
		widget string
		count  func() (int, error)
	}

	var counters []counter
	switch role {
	case models.RoleAdmin:
		counters = []counter{
			{"total_students", func() (int, error) { return h.userRepo.CountByRole(ctx, models.RoleStudent) }},
			{"active_courses", func() (int, error) { return h.courseRepo.CountPublished(ctx) }},
			{"certificates_issued", func() (int, error) { return h.certificateRepo.CountAll(ctx) }},
			{"total_enrollments", func() (int, error) { return h.enrollmentRepo.CountAll(ctx) }},
		}
	case models.RoleInstructor:
		counters = []counter{
			{"my_students", func() (int, error) { return h.enrollmentRepo.CountStudentsByInstructor(ctx, userID) }},
			{"my_courses", func() (int, error) { return h.courseRepo.CountByInstructor(ctx, userID) }},
			{"pending_submissions", func() (int, error) { return h.submissionRepo.CountPendingByInstructor(ctx, userID) }},
			{"upcoming_sessions", func() (int, error) { return h.calendarRepo.CountUpcomingByInstructor(ctx, userID) }},
		}
	case models.RoleStudent:
		counters = []counter{
			{"enrolled_courses", func() (int, error) { return h.enrollmentRepo.CountByStudent(ctx, userID, models.EnrollmentActive) }},
			{"completed_courses", func() (int, error) { return h.enrollmentRepo.CountByStudent(ctx, userID, models.EnrollmentCompleted) }},
			{"certificates", func() (int, error) { return h.certificateRepo.CountByStudent(ctx, userID) }},
			{"unread_messages", func() (int, error) { return h.messageRepo.CountUnread(ctx, userID) }},
		}
	}

	widgets := map[string]int{}
	for _, c := range counters {
		n, err := c.count()
		if err != nil {
			handleRepoError(w, r, err)
			return
		}
		widgets[c.widget] = n
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"role":         role,
		"capabilities": session.CapabilitiesForRole(role),
		"widgets":      widgets,
	})
}
