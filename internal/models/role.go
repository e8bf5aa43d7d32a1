package models

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Role is the closed set of account roles the platform knows about.
// The backend emits roles in whatever casing the auth path produced
// ("JOB_SEEKER" from password login, "jobseeker" from OAuth, mixed
// forms from cached storage), so every comparison must go through
// NormalizeRole first.
type Role string

const (
	RoleJobSeeker Role = "jobseeker"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

var foldCaser = cases.Fold()

// NormalizeRole case-folds a raw role value and strips separators so
// "JOB_SEEKER", "Job_Seeker" and "jobseeker" all compare equal.
func NormalizeRole(raw string) string {
	s := foldCaser.String(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "_", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, " ", "")
	return s
}

// ParseRole maps any raw role spelling onto the canonical enum.
func ParseRole(raw string) (Role, error) {
	switch NormalizeRole(raw) {
	case string(RoleJobSeeker):
		return RoleJobSeeker, nil
	case string(RoleRecruiter):
		return RoleRecruiter, nil
	case string(RoleAdmin):
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("unknown role %q", raw)
	}
}

// Equal reports whether a raw role value names this role, regardless
// of casing or separators.
func (r Role) Equal(raw string) bool {
	return string(r) == NormalizeRole(raw)
}

// Display denormalizes the role for rendering only. Internally the
// enum value is canonical everywhere.
func (r Role) Display() string {
	switch r {
	case RoleJobSeeker:
		return "Job Seeker"
	case RoleRecruiter:
		return "Recruiter"
	case RoleAdmin:
		return "Admin"
	}
	return string(r)
}
