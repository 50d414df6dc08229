package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"whiteboard-backend/internal/config"
	"whiteboard-backend/internal/database"
	"whiteboard-backend/internal/handlers"
	"whiteboard-backend/internal/middleware"
	"whiteboard-backend/internal/repository"
	"whiteboard-backend/internal/router"
	"whiteboard-backend/internal/services"
	"whiteboard-backend/internal/websocket"
)

func main() {
	log.Println("🚀 Starting Whiteboard Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize PostgreSQL Connection Pool ────
	pool, err := database.NewPostgresPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("✗ PostgreSQL connection failed: %v", err)
	}
	defer pool.Close()
	log.Println("✓ PostgreSQL connected")

	// ──── Step 3: Initialize Redis Clients ────
	redisClients, err := database.NewRedisClients(cfg.RedisURL)
	if err != nil {
		log.Fatalf("✗ Redis connection failed: %v", err)
	}
	defer redisClients.Close()
	log.Println("✓ Redis connected")

	// ──── Step 4: Run Database Migrations ────
	if err := database.RunMigrations(pool, "migrations"); err != nil {
		log.Fatalf("✗ Database migration failed: %v", err)
	}
	log.Println("✓ Database migrations applied")

	// ──── Initialize Repositories ────
	userRepo := repository.NewUserRepo(pool)
	categoryRepo := repository.NewCategoryRepo(pool)
	courseRepo := repository.NewCourseRepo(pool)
	enrollmentRepo := repository.NewEnrollmentRepo(pool)
	progressRepo := repository.NewProgressRepo(pool)
	assignmentRepo := repository.NewAssignmentRepo(pool)
	submissionRepo := repository.NewSubmissionRepo(pool)
	certificateRepo := repository.NewCertificateRepo(pool)
	messageRepo := repository.NewMessageRepo(pool)
	notificationRepo := repository.NewNotificationRepo(pool)
	calendarRepo := repository.NewCalendarRepo(pool)
	reviewRepo := repository.NewReviewRepo(pool)

	// ──── Initialize Services ────
	jwtAuth := middleware.NewJWTAuth(cfg.JWTSecret)
	authService := services.NewAuthService(userRepo, jwtAuth)
	notificationService := services.NewNotificationService(notificationRepo, redisClients.Publisher)

	// ──── Initialize Handlers ────
	authHandler := handlers.NewAuthHandler(authService, userRepo)
	userHandler := handlers.NewUserHandler(userRepo)
	courseHandler := handlers.NewCourseHandler(courseRepo, categoryRepo, reviewRepo)
	enrollmentHandler := handlers.NewEnrollmentHandler(enrollmentRepo, progressRepo)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentRepo, submissionRepo)
	certificateHandler := handlers.NewCertificateHandler(certificateRepo)
	messageHandler := handlers.NewMessageHandler(messageRepo, notificationService)
	notificationHandler := handlers.NewNotificationHandler(notificationRepo)
	calendarHandler := handlers.NewCalendarHandler(calendarRepo)
	dashboardHandler := handlers.NewDashboardHandler(userRepo, courseRepo, enrollmentRepo, submissionRepo, certificateRepo, messageRepo, calendarRepo)

	// ──── Step 5: Start WebSocket Hub ────
	wsHub := websocket.NewHub(redisClients.Subscriber, cfg.JWTSecret, cfg.FrontendURL)
	log.Println("✓ WebSocket hub started")

	// ──── Step 6: Start HTTP Server ────
	r := router.New(
		jwtAuth,
		authHandler,
		userHandler,
		courseHandler,
		enrollmentHandler,
		assignmentHandler,
		certificateHandler,
		messageHandler,
		notificationHandler,
		calendarHandler,
		dashboardHandler,
		wsHub,
		cfg.FrontendURL,
		cfg.LoginRateLimit,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Whiteboard Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/v1", cfg.Port)
	log.Printf("  WS:  ws://localhost:%s/api/v1/ws", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
