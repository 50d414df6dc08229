package session

import (
	"testing"

	"whiteboard-backend/internal/models"
)

func contains(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}

func TestCapabilitiesForRole(t *testing.T) {
	tests := []struct {
		role        string
		wantNav     string
		wantWidget  string
		navItems    int
		widgetCount int
	}{
		{models.RoleAdmin, "users", "total_students", 7, 4},
		{models.RoleInstructor, "grades", "pending_submissions", 7, 4},
		{models.RoleStudent, "progress", "enrolled_courses", 7, 4},
	}

	for _, tc := range tests {
		t.Run(tc.role, func(t *testing.T) {
			caps := CapabilitiesForRole(tc.role)

			if len(caps.NavItems) != tc.navItems {
				t.Errorf("Expected %d nav items, got %d", tc.navItems, len(caps.NavItems))
			}
			if len(caps.DashboardWidgets) != tc.widgetCount {
				t.Errorf("Expected %d widgets, got %d", tc.widgetCount, len(caps.DashboardWidgets))
			}
			if !contains(caps.NavItems, tc.wantNav) {
				t.Errorf("Expected nav items to include %q, got %v", tc.wantNav, caps.NavItems)
			}
			if !contains(caps.DashboardWidgets, tc.wantWidget) {
				t.Errorf("Expected widgets to include %q, got %v", tc.wantWidget, caps.DashboardWidgets)
			}
		})
	}
}

func TestCapabilitiesForRole_SharedNavigation(t *testing.T) {
	for _, role := range []string{models.RoleAdmin, models.RoleInstructor, models.RoleStudent} {
		caps := CapabilitiesForRole(role)
		for _, item := range []string{"dashboard", "courses", "calendar", "messages"} {
			if !contains(caps.NavItems, item) {
				t.Errorf("Expected role %s to have base nav item %q", role, item)
			}
		}
	}
}

func TestCapabilitiesForRole_Unknown(t *testing.T) {
	caps := CapabilitiesForRole("auditor")

	if len(caps.NavItems) != len(baseNavItems) {
		t.Errorf("Expected base navigation only, got %v", caps.NavItems)
	}
	if len(caps.DashboardWidgets) != 0 {
		t.Errorf("Expected no widgets for unknown role, got %v", caps.DashboardWidgets)
	}
}
