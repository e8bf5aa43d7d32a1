package models

// Identity is the authenticated user record the backend returns on
// login/verification and the client persists alongside the token.
type Identity struct {
	ID                int64  `json:"id"`
	Email             string `json:"email"`
	Name              string `json:"name"`
	Role              Role   `json:"role"`
	ProfilePictureURL string `json:"profilePictureUrl,omitempty"`
	AuthProvider      string `json:"authProvider,omitempty"`
}

// AuthResponse is the payload of every auth endpoint that issues a
// token (login, verify-otp, oauth login/register). Role arrives in
// backend spelling and must be normalized before use.
type AuthResponse struct {
	Token        string `json:"token"`
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	FullName     string `json:"fullName"`
	Role         string `json:"role"`
	AuthProvider string `json:"authProvider,omitempty"`
}

// Identity converts an auth response into the persisted identity
// record, with the role folded onto the canonical enum.
func (a *AuthResponse) Identity() (Identity, error) {
	role, err := ParseRole(a.Role)
	if err != nil {
		return Identity{}, err
	}
	provider := a.AuthProvider
	if provider == "" {
		provider = "LOCAL"
	}
	return Identity{
		ID:           a.ID,
		Email:        a.Email,
		Name:         a.FullName,
		Role:         role,
		AuthProvider: provider,
	}, nil
}

// OAuthCheckResponse tells the client whether an OAuth account
// already exists before it decides between login and register. The
// backend owns the race against concurrent registration; the client
// just surfaces whatever it answers.
type OAuthCheckResponse struct {
	Exists bool   `json:"exists"`
	Email  string `json:"email,omitempty"`
}
