package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"whiteboard-backend/internal/handlers"
	"whiteboard-backend/internal/middleware"
	"whiteboard-backend/internal/websocket"
)

func New(
	jwtAuth *middleware.JWTAuth,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	courseHandler *handlers.CourseHandler,
	enrollmentHandler *handlers.EnrollmentHandler,
	assignmentHandler *handlers.AssignmentHandler,
	certificateHandler *handlers.CertificateHandler,
	messageHandler *handlers.MessageHandler,
	notificationHandler *handlers.NotificationHandler,
	calendarHandler *handlers.CalendarHandler,
	dashboardHandler *handlers.DashboardHandler,
	wsHub *websocket.Hub,
	frontendURL string,
	loginRateLimit int,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Auth rate limiter (login attempts per IP per minute)
	authLimiter := middleware.NewRateLimiter(loginRateLimit, time.Minute)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {

		// ──── Auth Routes ────
		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(authLimiter.Middleware)
				r.Post("/login", authHandler.Login)
			})

			r.Group(func(r chi.Router) {
				r.Use(jwtAuth.Middleware)
				r.Get("/me", authHandler.Me)
			})
		})

		// ──── Course Routes ────
		r.Route("/courses", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/", courseHandler.List)
			r.Get("/categories", courseHandler.ListCategories)
			r.Get("/{id}", courseHandler.Get)
			r.Get("/{id}/reviews", courseHandler.ListReviews)
		})

		// ──── Enrollment & Progress Routes ────
		r.Route("/enrollments", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/", enrollmentHandler.List)
		})

		r.Route("/progress", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/", enrollmentHandler.ListProgress)
		})

		// ──── Assignment & Submission Routes ────
		r.Route("/assignments", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/", assignmentHandler.List)
		})

		r.Route("/submissions", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/", assignmentHandler.ListSubmissions)
		})

		// ──── Certificate Routes ────
		r.Route("/certificates", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/", certificateHandler.List)
		})

		// ──── Message Routes ────
		r.Route("/messages", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/", messageHandler.List)
			r.Post("/", messageHandler.Send)
		})

		// ──── Notification Routes ────
		r.Route("/notifications", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/", notificationHandler.List)
			r.Put("/{id}/read", notificationHandler.MarkRead)
		})

		// ──── Calendar Routes ────
		r.Route("/calendar", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/", calendarHandler.List)
		})

		// ──── User Routes ────
		r.Route("/users", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/", userHandler.List)
			r.Get("/{id}", userHandler.Get)
		})

		// ──── Dashboard Routes ────
		r.Route("/dashboard", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/stats", dashboardHandler.Stats)
		})

		// ──── WebSocket ────
		r.Get("/ws", wsHub.HandleWebSocket)
	})

	return r
}
