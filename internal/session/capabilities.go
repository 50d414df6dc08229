package session

import "whiteboard-backend/internal/models"

// Capabilities lists what a role may see: sidebar navigation items and
// dashboard widgets. Centralized here so consuming views don't each encode
// role checks.
type Capabilities struct {
	NavItems         []string `json:"nav_items"`
	DashboardWidgets []string `json:"dashboard_widgets"`
}

var baseNavItems = []string{"dashboard", "courses", "calendar", "messages"}

var roleCapabilities = map[string]Capabilities{
	models.RoleAdmin: {
		NavItems:         append(append([]string{}, baseNavItems...), "users", "analytics", "settings"),
		DashboardWidgets: []string{"total_students", "active_courses", "certificates_issued", "total_enrollments"},
	},
	models.RoleInstructor: {
		NavItems:         append(append([]string{}, baseNavItems...), "students", "assignments", "grades"),
		DashboardWidgets: []string{"my_students", "my_courses", "pending_submissions", "upcoming_sessions"},
	},
	models.RoleStudent: {
		NavItems:         append(append([]string{}, baseNavItems...), "progress", "assignments", "certificates"),
		DashboardWidgets: []string{"enrolled_courses", "completed_courses", "certificates", "unread_messages"},
	},
}

// CapabilitiesForRole returns the capability set for a role. Unknown roles get
// the base navigation and no widgets.
func CapabilitiesForRole(role string) Capabilities {
	if caps, ok := roleCapabilities[role]; ok {
		return caps
	}
	return Capabilities{NavItems: append([]string{}, baseNavItems...)}
}
