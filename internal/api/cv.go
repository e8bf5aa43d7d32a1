package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"go-talentiq-client/internal/gateway"
	"go-talentiq-client/internal/models"
)

// CVs wraps the /api/cv endpoints, including the AI generation and
// PDF family. Note the backend mounts these under /api/cv, not under
// the common prefix the other resources use.
type CVs struct {
	gw *gateway.Client
}

func NewCVs(gw *gateway.Client) *CVs {
	return &CVs{gw: gw}
}

// PDFResponse carries the storage URL of a generated PDF.
type PDFResponse struct {
	URL     string `json:"url"`
	Message string `json:"message,omitempty"`
}

// Create stores a new CV document.
func (c *CVs) Create(ctx context.Context, cv models.CV) (*models.CV, error) {
	if cv.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	var out models.CV
	if err := c.gw.Post(ctx, "/api/cv/create", cv, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces an existing CV document.
func (c *CVs) Update(ctx context.Context, cvID int64, cv models.CV) (*models.CV, error) {
	var out models.CV
	if err := c.gw.Put(ctx, fmt.Sprintf("/api/cv/%d", cvID), nil, cv, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get returns one CV document.
func (c *CVs) Get(ctx context.Context, cvID int64) (*models.CV, error) {
	var out models.CV
	if err := c.gw.Get(ctx, fmt.Sprintf("/api/cv/%d", cvID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Mine lists the signed-in user's CVs.
func (c *CVs) Mine(ctx context.Context) ([]models.CV, error) {
	var out []models.CV
	if err := c.gw.Get(ctx, "/api/cv/my-cvs", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a CV document.
func (c *CVs) Delete(ctx context.Context, cvID int64) error {
	return c.gw.Delete(ctx, fmt.Sprintf("/api/cv/%d", cvID), nil)
}

// Rename changes only the title; the backend takes it as a query
// parameter.
func (c *CVs) Rename(ctx context.Context, cvID int64, newTitle string) (*models.CV, error) {
	if newTitle == "" {
		return nil, fmt.Errorf("new title is required")
	}
	q := url.Values{}
	q.Set("newTitle", newTitle)
	var out models.CV
	if err := c.gw.Put(ctx, fmt.Sprintf("/api/cv/%d/rename", cvID), q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GenerateWithAI asks the backend to draft a CV from a job
// description (and optionally an uploaded resume's text). The LLM
// call happens server-side.
func (c *CVs) GenerateWithAI(ctx context.Context, req models.CVGenerateRequest) (*models.CV, error) {
	if req.JobDescription == "" {
		return nil, fmt.Errorf("job description is required")
	}
	var out models.CV
	if err := c.gw.Post(ctx, "/api/cv/generate-with-ai", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ImportFromResume converts an uploaded resume into a CV document
// using the given template.
func (c *CVs) ImportFromResume(ctx context.Context, resumeID int64, templateID string) (*models.CV, error) {
	q := url.Values{}
	if templateID != "" {
		q.Set("templateId", templateID)
	}
	var out models.CV
	path := "/api/cv/import-from-resume/" + strconv.FormatInt(resumeID, 10)
	if err := c.gw.Do(ctx, http.MethodPost, path, q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FromTailoredResume builds a CV out of an optimizer-tailored resume.
func (c *CVs) FromTailoredResume(ctx context.Context, req models.TailoredCVRequest) (*models.CV, error) {
	if req.TailoredText == "" {
		return nil, fmt.Errorf("tailored text is required")
	}
	var out models.CV
	if err := c.gw.Post(ctx, "/api/cv/from-tailored-resume", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GeneratePDF renders the CV server-side and returns the storage URL.
func (c *CVs) GeneratePDF(ctx context.Context, cvID int64) (*PDFResponse, error) {
	var out PDFResponse
	if err := c.gw.Post(ctx, fmt.Sprintf("/api/cv/%d/generate-pdf", cvID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DownloadPDF streams the rendered PDF into destPath. The bytes land
// in a temp file first and only move into place once the stream
// completed; the temp file is removed on any failure, so a partial
// download never survives.
func (c *CVs) DownloadPDF(ctx context.Context, cvID int64, destPath string) error {
	body, err := c.gw.Stream(ctx, fmt.Sprintf("/api/cv/%d/download-pdf", cvID))
	if err != nil {
		return err
	}
	defer body.Close()

	tmp, err := os.CreateTemp(filepath.Dir(destPath), ".cv-download-*")
	if err != nil {
		return fmt.Errorf("failed to create download file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		tmp.Close()
		if !committed {
			os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmp, body); err != nil {
		return fmt.Errorf("failed to download pdf: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to flush download: %w", err)
	}
	if err := os.Rename(tmpName, destPath); err != nil {
		return fmt.Errorf("failed to move download into place: %w", err)
	}
	committed = true
	return nil
}
