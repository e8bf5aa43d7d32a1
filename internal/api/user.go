package api

import (
	"context"
	"fmt"
	"io"

	"go-talentiq-client/internal/gateway"
)

// Users wraps the /user profile endpoints.
type Users struct {
	gw *gateway.Client
}

func NewUsers(gw *gateway.Client) *Users {
	return &Users{gw: gw}
}

// Profile is the backend's profile record.
type Profile struct {
	ID                int64  `json:"id"`
	Email             string `json:"email"`
	FullName          string `json:"fullName"`
	Role              string `json:"role"`
	ProfilePictureURL string `json:"profilePictureUrl,omitempty"`
	AuthProvider      string `json:"authProvider,omitempty"`
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Current returns the signed-in user's profile.
func (u *Users) Current(ctx context.Context) (*Profile, error) {
	var out Profile
	if err := u.gw.Get(ctx, "/user/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update edits name/email. Callers should feed the result into
// session.Store.UpdateUser so the cached identity follows.
func (u *Users) Update(ctx context.Context, req ProfileUpdate) (*Profile, error) {
	if req.FullName == "" && req.Email == "" {
		return nil, fmt.Errorf("nothing to update")
	}
	var out Profile
	if err := u.gw.Put(ctx, "/user/profile", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadPicture replaces the profile picture.
func (u *Users) UploadPicture(ctx context.Context, filename string, file io.Reader) (*Profile, error) {
	if filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	var out Profile
	if err := u.gw.PostMultipart(ctx, "/user/profile-picture", "file", filename, file, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePicture removes the profile picture.
func (u *Users) DeletePicture(ctx context.Context) error {
	return u.gw.Delete(ctx, "/user/profile-picture", nil)
}

// PictureURL builds the public picture path for a user id.
func PictureURL(baseURL string, userID int64) string {
	return fmt.Sprintf("%s/user/profile-picture/%d", baseURL, userID)
}
