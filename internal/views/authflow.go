package views

import (
	"context"
	"fmt"
	"log"

	"go-talentiq-client/internal/api"
	"go-talentiq-client/internal/gateway"
	"go-talentiq-client/internal/models"
	"go-talentiq-client/internal/nav"
	"go-talentiq-client/internal/session"
)

// AuthFlow is the login/registration view logic: it translates auth
// responses into session state and navigation, and auth failures into
// caller-facing feedback. No session is ever created without a token.
type AuthFlow struct {
	auth  *api.Auth
	store *session.Store
	nav   nav.Navigator
}

func NewAuthFlow(auth *api.Auth, store *session.Store, navigator nav.Navigator) *AuthFlow {
	return &AuthFlow{auth: auth, store: store, nav: navigator}
}

// ErrUnverified signals that the account exists but its email still
// needs OTP verification. The email to re-verify rides along.
type ErrUnverified struct {
	Email string
}

func (e *ErrUnverified) Error() string {
	return fmt.Sprintf("email %s requires verification", e.Email)
}

// Login signs in with credentials. An unverified account surfaces as
// *ErrUnverified with no session created; the caller routes the user
// to the OTP view instead.
func (f *AuthFlow) Login(ctx context.Context, email, password string) (*models.Identity, error) {
	resp, err := f.auth.Login(ctx, email, password)
	if err != nil {
		if apiErr, ok := gateway.AsAPIError(err); ok && apiErr.RequiresVerification {
			addr := apiErr.Email
			if addr == "" {
				addr = email
			}
			return nil, &ErrUnverified{Email: addr}
		}
		return nil, err
	}
	return f.complete(resp)
}

// Register creates the account and moves the user to the OTP view.
// No token is issued yet, so no session is created here.
func (f *AuthFlow) Register(ctx context.Context, req api.RegisterRequest) error {
	if _, err := f.auth.Register(ctx, req); err != nil {
		return err
	}
	f.nav.Redirect(nav.RouteVerifyOTP)
	return nil
}

// VerifyOTP confirms the emailed code and completes the session.
func (f *AuthFlow) VerifyOTP(ctx context.Context, email, otp string) (*models.Identity, error) {
	resp, err := f.auth.VerifyOTP(ctx, email, otp)
	if err != nil {
		return nil, err
	}
	return f.complete(resp)
}

// OAuthLogin checks whether the third-party account exists, then
// either signs it in or reports that registration is needed. The
// existence answer is the backend's to get right; a duplicate-account
// error from a racing registration propagates verbatim.
func (f *AuthFlow) OAuthLogin(ctx context.Context, token, provider string) (*models.Identity, error) {
	check, err := f.auth.OAuthCheck(ctx, token, provider)
	if err != nil {
		return nil, err
	}
	if !check.Exists {
		f.nav.Redirect(nav.RouteRegister)
		return nil, fmt.Errorf("no account found, please sign up first")
	}
	resp, err := f.auth.OAuthLogin(ctx, token, provider)
	if err != nil {
		return nil, err
	}
	return f.complete(resp)
}

// OAuthRegister creates an account from a third-party token with the
// chosen role and completes the session.
func (f *AuthFlow) OAuthRegister(ctx context.Context, token, provider, role string) (*models.Identity, error) {
	resp, err := f.auth.OAuthRegister(ctx, token, provider, role)
	if err != nil {
		return nil, err
	}
	return f.complete(resp)
}

// Logout clears the session and returns to the landing view.
func (f *AuthFlow) Logout() {
	f.store.Logout()
	f.nav.Redirect(nav.RouteLanding)
}

// complete turns a token-bearing auth response into a persisted
// session and lands on the role dashboard. A response without a
// token never becomes a session.
func (f *AuthFlow) complete(resp *models.AuthResponse) (*models.Identity, error) {
	if resp.Token == "" {
		return nil, fmt.Errorf("auth response carried no token")
	}
	identity, err := resp.Identity()
	if err != nil {
		return nil, fmt.Errorf("auth response rejected: %w", err)
	}
	f.store.Login(identity, resp.Token)
	route := nav.DashboardRoute(string(identity.Role))
	f.nav.Redirect(route)
	log.Printf("✅ Signed in as %s (%s), landing on %s", identity.Email, identity.Role, route)
	return &identity, nil
}
