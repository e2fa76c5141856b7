package model

// ── roles ──

const (
	RoleAdmin   = "Admin"
	RoleLecture = "Lecture"
	RoleStudent = "Student"
)

// ValidRole reports whether r is one of the three stored role names
func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleLecture, RoleStudent:
		return true
	}
	return false
}

// ── submission status ──

const (
	StatusSubmitted    = "Submitted"
	StatusNotSubmitted = "Not Submitted"
)

// ValidStatus reports whether s is an allowed submission status
func ValidStatus(s string) bool {
	return s == StatusSubmitted || s == StatusNotSubmitted
}
