// Portal is a terminal client for the backend API. It drives the same
// session, store and binding layers a graphical frontend would, which makes
// it handy for smoke-testing a running server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"whiteboard-backend/internal/binding"
	"whiteboard-backend/internal/client"
	"whiteboard-backend/internal/models"
	"whiteboard-backend/internal/session"
)

func main() {
	apiURL := flag.String("api", "http://localhost:8080", "backend base URL")
	email := flag.String("email", "", "login email")
	password := flag.String("password", "", "login password")
	sessionFile := flag.String("session", ".whiteboard/session.json", "session persistence file")
	logout := flag.Bool("logout", false, "clear the persisted session and exit")
	flag.Parse()

	api := client.New(*apiURL)
	manager := session.NewManager(api, session.NewFileStore(*sessionFile))

	if *logout {
		manager.Logout()
		log.Println("Session cleared")
		return
	}

	manager.Restore()
	if who := manager.Current(); who != nil {
		log.Printf("Restored session: %s (%s)", who.Name, who.Role)
	}

	// Tokens are short-lived and not persisted, so every run authenticates.
	if *email == "" || *password == "" {
		log.Fatal("Usage: portal -email <email> -password <password>")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if !manager.Login(ctx, *email, *password) {
		log.Fatal("Login failed: invalid email or password")
	}

	identity := manager.Current()
	log.Printf("Logged in as %s (%s)", identity.Name, identity.Role)

	caps := session.CapabilitiesForRole(identity.Role)
	fmt.Printf("\nNavigation: %v\n", caps.NavItems)

	courses := binding.NewCourses(api, identity.Role != models.RoleStudent)
	courses.Refetch(ctx)
	printCourses(courses.Snapshot())

	notifications := binding.NewNotifications(api, identity.ID)
	notifications.Refetch(ctx)
	printNotifications(ctx, notifications)

	if identity.Role == models.RoleStudent {
		enrollments := binding.NewEnrollmentsByStudent(api, identity.ID)
		enrollments.Refetch(ctx)
		printEnrollments(enrollments.Snapshot())
	}
}

func printCourses(snap binding.Snapshot[*models.Course]) {
	if snap.Err != "" {
		fmt.Printf("\nCourses: error: %s\n", snap.Err)
		return
	}
	fmt.Printf("\nCourses (%d):\n", len(snap.Data))
	for _, c := range snap.Data {
		status := "published"
		if !c.IsPublished {
			status = "draft"
		}
		fmt.Printf("  - %s [%s]\n", c.Title, status)
	}
}

func printNotifications(ctx context.Context, n *binding.Notifications) {
	snap := n.Snapshot()
	if snap.Err != "" {
		fmt.Printf("\nNotifications: error: %s\n", snap.Err)
		return
	}
	fmt.Printf("\nNotifications (%d):\n", len(snap.Data))
	for _, row := range snap.Data {
		marker := " "
		if !row.IsRead {
			marker = "*"
		}
		fmt.Printf("  %s %s: %s\n", marker, row.Title, row.Message)
	}

	// Mark the newest unread one so the optimistic update is visible.
	for _, row := range snap.Data {
		if !row.IsRead {
			n.MarkAsRead(ctx, row.ID)
			fmt.Printf("  → marked %q as read\n", row.Title)
			break
		}
	}
}

func printEnrollments(snap binding.Snapshot[*models.Enrollment]) {
	if snap.Err != "" {
		fmt.Printf("\nEnrollments: error: %s\n", snap.Err)
		return
	}
	fmt.Printf("\nEnrollments (%d):\n", len(snap.Data))
	for _, e := range snap.Data {
		title := e.CourseID.String()
		if e.Course != nil {
			title = e.Course.Title
		}
		fmt.Printf("  - %s (%s, %.0f%%)\n", title, e.Status, e.ProgressPercentage)
	}
}
