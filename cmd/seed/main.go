// Seed populates the database with the demo accounts and enough course data
// to exercise every portal view. Running it twice adds duplicates; use a
// fresh database.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"whiteboard-backend/internal/config"
	"whiteboard-backend/internal/database"
	"whiteboard-backend/internal/models"
	"whiteboard-backend/internal/repository"
)

func main() {
	log.Println("🌱 Seeding Whiteboard database...")

	cfg := config.Load()

	pool, err := database.NewPostgresPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("✗ PostgreSQL connection failed: %v", err)
	}
	defer pool.Close()

	if err := database.RunMigrations(pool, "migrations"); err != nil {
		log.Fatalf("✗ Database migration failed: %v", err)
	}

	ctx := context.Background()

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

	// All demo accounts share the configured password; each row still gets
	// its own hash so verification stays per identity.
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.DemoPassword), 12)
	if err != nil {
		log.Fatalf("✗ Password hashing failed: %v", err)
	}

	admin := &models.User{
		Email:        "admin@whiteboardconsultant.com",
		PasswordHash: string(hash),
		FirstName:    "Amara",
		LastName:     "Whitfield",
		Role:         models.RoleAdmin,
	}
	instructor := &models.User{
		Email:        "instructor@whiteboardconsultant.com",
		PasswordHash: string(hash),
		FirstName:    "Daniel",
		LastName:     "Osei",
		Role:         models.RoleInstructor,
	}
	student := &models.User{
		Email:        "student@whiteboardconsultant.com",
		PasswordHash: string(hash),
		FirstName:    "Priya",
		LastName:     "Raman",
		Role:         models.RoleStudent,
	}

	for _, u := range []*models.User{admin, instructor, student} {
		if err := userRepo.Create(ctx, u); err != nil {
			log.Fatalf("✗ Failed to create user %s: %v", u.Email, err)
		}
		log.Printf("✓ User created: %s (%s)", u.Email, u.Role)
	}

	testPrep := &models.Category{
		Name:        "Test Preparation",
		Description: strPtr("SAT, IELTS and other standardized test prep"),
		Icon:        strPtr("clipboard-check"),
		Color:       strPtr("#2563eb"),
		IsActive:    true,
	}
	admissions := &models.Category{
		Name:        "University Admissions",
		Description: strPtr("Application strategy, essays and interviews"),
		Icon:        strPtr("graduation-cap"),
		Color:       strPtr("#16a34a"),
		IsActive:    true,
	}
	for _, c := range []*models.Category{testPrep, admissions} {
		if err := categoryRepo.Create(ctx, c); err != nil {
			log.Fatalf("✗ Failed to create category %s: %v", c.Name, err)
		}
	}
	log.Println("✓ Categories created")

	satCourse := &models.Course{
		Title:            "SAT Intensive",
		Description:      strPtr("Twelve-week structured SAT preparation covering reading, writing and math with weekly practice tests."),
		ShortDescription: strPtr("Structured SAT prep with weekly practice tests"),
		CategoryID:       &testPrep.ID,
		InstructorID:     instructor.ID,
		Price:            450,
		DurationWeeks:    intPtr(12),
		DifficultyLevel:  strPtr("intermediate"),
		IsPublished:      true,
		IsFeatured:       true,
	}
	essayCourse := &models.Course{
		Title:            "Application Essay Workshop",
		Description:      strPtr("Small-group workshop on personal statements and supplemental essays."),
		ShortDescription: strPtr("Personal statement and supplemental essay workshop"),
		CategoryID:       &admissions.ID,
		InstructorID:     instructor.ID,
		Price:            300,
		DurationWeeks:    intPtr(6),
		DifficultyLevel:  strPtr("beginner"),
		IsPublished:      true,
	}
	draftCourse := &models.Course{
		Title:        "IELTS Foundations",
		CategoryID:   &testPrep.ID,
		InstructorID: instructor.ID,
		Price:        350,
		IsPublished:  false,
	}
	for _, c := range []*models.Course{satCourse, essayCourse, draftCourse} {
		if err := courseRepo.Create(ctx, c); err != nil {
			log.Fatalf("✗ Failed to create course %s: %v", c.Title, err)
		}
	}
	log.Println("✓ Courses created")

	var firstLesson *models.Lesson
	for i, title := range []string{"Diagnostic Test", "Reading Strategies", "Algebra Review"} {
		lesson := &models.Lesson{
			CourseID:        satCourse.ID,
			Title:           title,
			DurationMinutes: intPtr(60),
			OrderIndex:      i + 1,
			IsPreview:       i == 0,
		}
		if err := courseRepo.CreateLesson(ctx, lesson); err != nil {
			log.Fatalf("✗ Failed to create lesson %s: %v", title, err)
		}
		if firstLesson == nil {
			firstLesson = lesson
		}
	}
	log.Println("✓ Lessons created")

	enrollment := &models.Enrollment{
		StudentID:          student.ID,
		CourseID:           satCourse.ID,
		Status:             models.EnrollmentActive,
		ProgressPercentage: 25,
	}
	completed := &models.Enrollment{
		StudentID:          student.ID,
		CourseID:           essayCourse.ID,
		Status:             models.EnrollmentCompleted,
		ProgressPercentage: 100,
		CertificateIssued:  true,
	}
	for _, e := range []*models.Enrollment{enrollment, completed} {
		if err := enrollmentRepo.Create(ctx, e); err != nil {
			log.Fatalf("✗ Failed to create enrollment: %v", err)
		}
	}
	log.Println("✓ Enrollments created")

	now := time.Now()
	progress := &models.Progress{
		StudentID:        student.ID,
		LessonID:         firstLesson.ID,
		CourseID:         satCourse.ID,
		IsCompleted:      true,
		TimeSpentMinutes: 55,
		CompletedAt:      &now,
	}
	if err := progressRepo.Create(ctx, progress); err != nil {
		log.Fatalf("✗ Failed to create progress: %v", err)
	}

	dueDate := now.AddDate(0, 0, 7)
	assignment := &models.Assignment{
		CourseID:    satCourse.ID,
		Title:       "Practice Test 1",
		Description: strPtr("Full-length timed practice test. Submit your score report."),
		Type:        "practice_test",
		MaxPoints:   100,
		DueDate:     &dueDate,
		IsPublished: true,
	}
	if err := assignmentRepo.Create(ctx, assignment); err != nil {
		log.Fatalf("✗ Failed to create assignment: %v", err)
	}

	submission := &models.Submission{
		AssignmentID: assignment.ID,
		StudentID:    student.ID,
		Content:      strPtr("Scored 1280. Reading section remains the weakest."),
		Status:       models.SubmissionGraded,
		SubmittedAt:  &now,
	}
	if err := submissionRepo.Create(ctx, submission); err != nil {
		log.Fatalf("✗ Failed to create submission: %v", err)
	}

	grade := &models.Grade{
		SubmissionID: submission.ID,
		GraderID:     instructor.ID,
		PointsEarned: floatPtr(85),
		MaxPoints:    floatPtr(100),
		Percentage:   floatPtr(85),
		LetterGrade:  strPtr("B"),
		Feedback:     strPtr("Good pacing. Focus on inference questions next."),
		IsFinal:      true,
	}
	if err := submissionRepo.CreateGrade(ctx, grade); err != nil {
		log.Fatalf("✗ Failed to create grade: %v", err)
	}
	log.Println("✓ Assignment, submission and grade created")

	certificate := &models.Certificate{
		StudentID:         student.ID,
		CourseID:          essayCourse.ID,
		CertificateNumber: fmt.Sprintf("WB-%d-0001", now.Year()),
		VerificationCode:  uuid.NewString()[:8],
		IsValid:           true,
	}
	if err := certificateRepo.Create(ctx, certificate); err != nil {
		log.Fatalf("✗ Failed to create certificate: %v", err)
	}
	log.Println("✓ Certificate created")

	message := &models.Message{
		SenderID:    instructor.ID,
		RecipientID: student.ID,
		Subject:     strPtr("Practice Test 1 feedback"),
		Content:     "Your score report is graded. Let's review the reading section in our next session.",
		CourseID:    &satCourse.ID,
	}
	if err := messageRepo.Create(ctx, message); err != nil {
		log.Fatalf("✗ Failed to create message: %v", err)
	}

	notifications := []*models.Notification{
		{
			UserID:  student.ID,
			Title:   "Assignment graded",
			Message: "Practice Test 1 has been graded: 85/100",
			Type:    models.NotificationGrade,
		},
		{
			UserID:  student.ID,
			Title:   "New message",
			Message: "Daniel Osei sent you a message",
			Type:    models.NotificationMessage,
		},
		{
			UserID:  instructor.ID,
			Title:   "New enrollment",
			Message: "Priya Raman enrolled in SAT Intensive",
			Type:    models.NotificationCourse,
		},
	}
	for _, n := range notifications {
		if err := notificationRepo.Create(ctx, n); err != nil {
			log.Fatalf("✗ Failed to create notification: %v", err)
		}
	}
	log.Println("✓ Messages and notifications created")

	classStart := now.AddDate(0, 0, 2).Truncate(time.Hour)
	events := []*models.CalendarEvent{
		{
			Title:        "SAT Intensive: Reading Strategies",
			StartTime:    classStart,
			EndTime:      classStart.Add(90 * time.Minute),
			CourseID:     &satCourse.ID,
			InstructorID: &instructor.ID,
			EventType:    strPtr(models.EventClass),
			MeetingURL:   strPtr("https://meet.whiteboardconsultant.com/sat-intensive"),
		},
		{
			Title:        "Practice Test 1 due",
			StartTime:    dueDate,
			EndTime:      dueDate.Add(time.Hour),
			CourseID:     &satCourse.ID,
			InstructorID: &instructor.ID,
			EventType:    strPtr(models.EventAssignmentDue),
		},
	}
	for _, ev := range events {
		if err := calendarRepo.Create(ctx, ev); err != nil {
			log.Fatalf("✗ Failed to create calendar event: %v", err)
		}
	}
	log.Println("✓ Calendar events created")

	review := &models.Review{
		CourseID:    essayCourse.ID,
		StudentID:   student.ID,
		Rating:      5,
		ReviewText:  strPtr("The workshop transformed my personal statement."),
		IsPublished: true,
	}
	if err := reviewRepo.Create(ctx, review); err != nil {
		log.Fatalf("✗ Failed to create review: %v", err)
	}
	log.Println("✓ Review created")

	log.Println("🌱 Seed complete")
	log.Printf("  Demo accounts: admin@, instructor@, student@whiteboardconsultant.com (password %q)", cfg.DemoPassword)
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }

func floatPtr(f float64) *float64 { return &f }
