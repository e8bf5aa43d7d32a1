package nav

import (
	"fmt"
	"strings"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"

	"go-talentiq-client/internal/models"
)

// Public routes.
const (
	RouteLanding        = "/"
	RouteLogin          = "/login"
	RouteRegister       = "/register"
	RouteVerifyOTP      = "/verify-otp"
	RouteForgotPassword = "/forgot-password"
	RouteResetPassword  = "/reset-password"
	RouteOAuthCallback  = "/auth/callback"
)

// DashboardRoute resolves the role-scoped dashboard path, e.g.
// "/jobseeker/dashboard". Unknown roles land on the public landing
// view instead of a dead route.
func DashboardRoute(role string) string {
	parsed, err := models.ParseRole(role)
	if err != nil {
		return RouteLanding
	}
	return fmt.Sprintf("/%s/dashboard", parsed)
}

var authViews = mapset.NewSet(
	RouteLogin,
	RouteRegister,
	RouteVerifyOTP,
	RouteForgotPassword,
)

// IsAuthView reports whether a path belongs to the public auth flow.
// The reset-password and OAuth callback families carry suffixes
// (tokens), so they match by prefix.
func IsAuthView(path string) bool {
	if authViews.Contains(path) {
		return true
	}
	return strings.HasPrefix(path, RouteResetPassword) || strings.HasPrefix(path, RouteOAuthCallback)
}

// Navigator is where the gateway and guard send redirects.
type Navigator interface {
	// Current is the path of the active view.
	Current() string
	// Redirect replaces the active view.
	Redirect(path string)
}

// Memory is an in-process Navigator. It stands in for the browser
// location in a headless client and in tests.
type Memory struct {
	mu   sync.Mutex
	path string
}

func NewMemory(start string) *Memory {
	if start == "" {
		start = RouteLanding
	}
	return &Memory{path: start}
}

func (m *Memory) Current() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.path
}

func (m *Memory) Redirect(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.path = path
}
