package api

import (
	"context"
	"fmt"
	"net/url"

	"go-talentiq-client/internal/gateway"
	"go-talentiq-client/internal/models"
)

// Applications wraps the /applications endpoints. Status transitions
// are requested here but applied authoritatively by the backend; the
// caller mirrors the returned record or reverts on error.
type Applications struct {
	gw *gateway.Client
}

func NewApplications(gw *gateway.Client) *Applications {
	return &Applications{gw: gw}
}

// Apply submits an application to a job.
func (a *Applications) Apply(ctx context.Context, req models.ApplicationRequest) (*models.Application, error) {
	if req.JobID == 0 {
		return nil, fmt.Errorf("job id is required")
	}
	var out models.Application
	if err := a.gw.Post(ctx, "/applications", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Mine returns the signed-in seeker's applications.
func (a *Applications) Mine(ctx context.Context) ([]models.Application, error) {
	var out []models.Application
	if err := a.gw.Get(ctx, "/applications/my-applications", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ForJob returns every application on one posting (recruiter view).
func (a *Applications) ForJob(ctx context.Context, jobID int64) ([]models.Application, error) {
	var out []models.Application
	if err := a.gw.Get(ctx, fmt.Sprintf("/applications/job/%d", jobID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RecruiterAll returns applications across all of the recruiter's
// postings.
func (a *Applications) RecruiterAll(ctx context.Context) ([]models.Application, error) {
	var out []models.Application
	if err := a.gw.Get(ctx, "/applications/recruiter/all", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus requests a transition. The backend takes status and
// notes as query parameters with an empty body.
func (a *Applications) UpdateStatus(ctx context.Context, applicationID int64, status models.ApplicationStatus, notes string) (*models.Application, error) {
	if status == "" {
		return nil, fmt.Errorf("status is required")
	}
	q := url.Values{}
	q.Set("status", string(status))
	if notes != "" {
		q.Set("notes", notes)
	}
	var out models.Application
	if err := a.gw.Put(ctx, fmt.Sprintf("/applications/%d/status", applicationID), q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Withdraw retracts the seeker's own application.
func (a *Applications) Withdraw(ctx context.Context, applicationID int64) (*models.Application, error) {
	var out models.Application
	if err := a.gw.Put(ctx, fmt.Sprintf("/applications/%d/withdraw", applicationID), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Stats returns the per-status breakdown for one posting.
func (a *Applications) Stats(ctx context.Context, jobID int64) (*models.JobStats, error) {
	var out models.JobStats
	if err := a.gw.Get(ctx, fmt.Sprintf("/applications/job/%d/stats", jobID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
