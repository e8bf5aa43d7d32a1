package api

import (
	"context"
	"fmt"
	"io"

	"go-talentiq-client/internal/gateway"
	"go-talentiq-client/internal/models"
)

// Resumes wraps the /resumes endpoints. Parsing and text extraction
// happen server-side on upload.
type Resumes struct {
	gw *gateway.Client
}

func NewResumes(gw *gateway.Client) *Resumes {
	return &Resumes{gw: gw}
}

// Upload sends a resume file as multipart form data.
func (r *Resumes) Upload(ctx context.Context, filename string, file io.Reader) (*models.Resume, error) {
	if filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	var out models.Resume
	if err := r.gw.PostMultipart(ctx, "/resumes/upload", "file", filename, file, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Mine lists the signed-in user's uploaded resumes.
func (r *Resumes) Mine(ctx context.Context) ([]models.Resume, error) {
	var out []models.Resume
	if err := r.gw.Get(ctx, "/resumes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Text returns the extracted plain text of an uploaded resume, the
// input to every resume-related AI prompt.
func (r *Resumes) Text(ctx context.Context, resumeID int64) (string, error) {
	var out struct {
		Text string `json:"text"`
	}
	if err := r.gw.Get(ctx, fmt.Sprintf("/resumes/%d/text", resumeID), nil, &out); err != nil {
		return "", err
	}
	return out.Text, nil
}

// Delete removes an uploaded resume.
func (r *Resumes) Delete(ctx context.Context, resumeID int64) error {
	return r.gw.Delete(ctx, fmt.Sprintf("/resumes/%d", resumeID), nil)
}
