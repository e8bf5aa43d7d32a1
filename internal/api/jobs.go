package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"go-talentiq-client/internal/gateway"
	"go-talentiq-client/internal/models"
)

// Jobs wraps the /jobs endpoints.
type Jobs struct {
	gw *gateway.Client
}

func NewJobs(gw *gateway.Client) *Jobs {
	return &Jobs{gw: gw}
}

// List returns every open posting.
func (j *Jobs) List(ctx context.Context) ([]models.Job, error) {
	var out []models.Job
	if err := j.gw.Get(ctx, "/jobs", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListPaginated returns one page of postings.
func (j *Jobs) ListPaginated(ctx context.Context, page, size int) (*models.Page[models.Job], error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	var out models.Page[models.Job]
	if err := j.gw.Get(ctx, "/jobs/paginated", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Search filters postings by keyword, paginated.
func (j *Jobs) Search(ctx context.Context, keyword string, page, size int) (*models.Page[models.Job], error) {
	q := url.Values{}
	q.Set("keyword", keyword)
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	var out models.Page[models.Job]
	if err := j.gw.Get(ctx, "/jobs/search", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get returns a single posting.
func (j *Jobs) Get(ctx context.Context, jobID int64) (*models.Job, error) {
	var out models.Job
	if err := j.gw.Get(ctx, fmt.Sprintf("/jobs/%d", jobID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Mine returns the postings owned by the signed-in recruiter.
func (j *Jobs) Mine(ctx context.Context) ([]models.Job, error) {
	var out []models.Job
	if err := j.gw.Get(ctx, "/jobs/my-jobs", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create posts a new job.
func (j *Jobs) Create(ctx context.Context, req models.JobRequest) (*models.Job, error) {
	if req.Title == "" || req.Description == "" || req.Company == "" {
		return nil, fmt.Errorf("title, description and company are required")
	}
	var out models.Job
	if err := j.gw.Post(ctx, "/jobs", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces a posting's content.
func (j *Jobs) Update(ctx context.Context, jobID int64, req models.JobRequest) (*models.Job, error) {
	if req.Title == "" || req.Description == "" || req.Company == "" {
		return nil, fmt.Errorf("title, description and company are required")
	}
	var out models.Job
	if err := j.gw.Put(ctx, fmt.Sprintf("/jobs/%d", jobID), nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a posting.
func (j *Jobs) Delete(ctx context.Context, jobID int64) error {
	return j.gw.Delete(ctx, fmt.Sprintf("/jobs/%d", jobID), nil)
}
