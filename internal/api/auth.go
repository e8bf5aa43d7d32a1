package api

import (
	"context"
	"fmt"

	"go-talentiq-client/internal/gateway"
	"go-talentiq-client/internal/models"
)

// Auth wraps the /auth endpoints. Every call returns the backend's
// payload unchanged; translating failures into user feedback is the
// caller's job.
type Auth struct {
	gw *gateway.Client
}

func NewAuth(gw *gateway.Client) *Auth {
	return &Auth{gw: gw}
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// MessageResponse is the generic {"message": "..."} acknowledgment.
type MessageResponse struct {
	Message string `json:"message"`
}

// Register creates an account and triggers the server-side OTP email.
func (a *Auth) Register(ctx context.Context, req RegisterRequest) (*MessageResponse, error) {
	if req.Email == "" || req.Password == "" || req.FullName == "" || req.Role == "" {
		return nil, fmt.Errorf("email, password, full name and role are required")
	}
	var out MessageResponse
	if err := a.gw.Post(ctx, "/auth/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyOTP confirms the emailed code and returns the issued token
// plus identity.
func (a *Auth) VerifyOTP(ctx context.Context, email, otp string) (*models.AuthResponse, error) {
	if email == "" || otp == "" {
		return nil, fmt.Errorf("email and otp are required")
	}
	var out models.AuthResponse
	if err := a.gw.Post(ctx, "/auth/verify-otp", map[string]string{"email": email, "otp": otp}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResendOTP is the manual retry behind the "Resend Code" button.
func (a *Auth) ResendOTP(ctx context.Context, email string) (*MessageResponse, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	var out MessageResponse
	if err := a.gw.Post(ctx, "/auth/resend-otp", map[string]string{"email": email}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a token. An unverified account is
// refused with RequiresVerification set on the APIError; no session
// must be created from that.
func (a *Auth) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	var out models.AuthResponse
	if err := a.gw.Post(ctx, "/auth/login", map[string]string{"email": email, "password": password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// OAuthCheck asks whether an account already exists for the
// third-party token. Whether this answer can race a concurrent
// registration is the backend's contract; the client just branches
// on it and surfaces any duplicate-account error verbatim.
func (a *Auth) OAuthCheck(ctx context.Context, token, provider string) (*models.OAuthCheckResponse, error) {
	if token == "" || provider == "" {
		return nil, fmt.Errorf("token and provider are required")
	}
	var out models.OAuthCheckResponse
	body := map[string]string{"token": token, "provider": provider}
	if err := a.gw.Post(ctx, "/auth/oauth/check", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// OAuthLogin signs an existing OAuth account in.
func (a *Auth) OAuthLogin(ctx context.Context, token, provider string) (*models.AuthResponse, error) {
	if token == "" || provider == "" {
		return nil, fmt.Errorf("token and provider are required")
	}
	var out models.AuthResponse
	body := map[string]string{"token": token, "provider": provider}
	if err := a.gw.Post(ctx, "/auth/oauth/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// OAuthRegister creates an account from a third-party token with the
// chosen role.
func (a *Auth) OAuthRegister(ctx context.Context, token, provider, role string) (*models.AuthResponse, error) {
	if token == "" || provider == "" || role == "" {
		return nil, fmt.Errorf("token, provider and role are required")
	}
	var out models.AuthResponse
	body := map[string]string{"token": token, "provider": provider, "role": role}
	if err := a.gw.Post(ctx, "/auth/oauth/register", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ForgotPassword triggers the reset email.
func (a *Auth) ForgotPassword(ctx context.Context, email string) (*MessageResponse, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	var out MessageResponse
	if err := a.gw.Post(ctx, "/auth/forgot-password", map[string]string{"email": email}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResetPassword consumes a reset token from the emailed link.
func (a *Auth) ResetPassword(ctx context.Context, token, newPassword string) (*MessageResponse, error) {
	if token == "" || newPassword == "" {
		return nil, fmt.Errorf("token and new password are required")
	}
	body := map[string]string{"token": token, "newPassword": newPassword}
	var out MessageResponse
	if err := a.gw.Post(ctx, "/auth/reset-password", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword rotates the password of the signed-in account.
func (a *Auth) ChangePassword(ctx context.Context, currentPassword, newPassword string) (*MessageResponse, error) {
	if currentPassword == "" || newPassword == "" {
		return nil, fmt.Errorf("current and new password are required")
	}
	body := map[string]string{"currentPassword": currentPassword, "newPassword": newPassword}
	var out MessageResponse
	if err := a.gw.Post(ctx, "/auth/change-password", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
