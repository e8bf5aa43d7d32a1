package views

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	"go-talentiq-client/internal/api"
	"go-talentiq-client/internal/models"
)

// JobSeekerSummary is what the seeker dashboard renders.
type JobSeekerSummary struct {
	Jobs         []models.Job
	Applications []models.Application
	Total        int
	Pending      int
	Shortlisted  int
	Accepted     int
}

// RecruiterSummary is what the recruiter dashboard renders.
type RecruiterSummary struct {
	Jobs          []models.Job
	Applications  []models.Application
	TotalJobs     int
	TotalApplied  int
	PerJobApplied map[int64]int
}

// Dashboard aggregates the resource calls a role dashboard needs.
// Each fetch runs under a view-scoped context so a superseded view's
// in-flight requests are cancelled and their results discarded
// instead of updating dead state.
type Dashboard struct {
	jobs *api.Jobs
	apps *api.Applications

	mu      sync.Mutex
	cancel  context.CancelFunc
	loading bool
}

func NewDashboard(jobs *api.Jobs, apps *api.Applications) *Dashboard {
	return &Dashboard{jobs: jobs, apps: apps}
}

// Loading reports whether a fetch is in flight.
func (d *Dashboard) Loading() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.loading
}

// begin opens a fresh view scope, cancelling any previous one, and
// returns a done func that always resets the loading flag.
func (d *Dashboard) begin(parent context.Context) (context.Context, func()) {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	d.cancel = cancel
	d.loading = true
	d.mu.Unlock()

	return ctx, func() {
		d.mu.Lock()
		d.loading = false
		d.mu.Unlock()
	}
}

// Close cancels whatever fetch is still in flight.
func (d *Dashboard) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}

// JobSeeker fetches open jobs and the seeker's applications in
// parallel. The two calls are independent: if one fails the view
// degrades that list to empty rather than failing as a whole.
func (d *Dashboard) JobSeeker(parent context.Context) (*JobSeekerSummary, error) {
	viewCtx, done := d.begin(parent)
	defer done()

	summary := &JobSeekerSummary{}
	g, ctx := errgroup.WithContext(viewCtx)

	g.Go(func() error {
		jobs, err := d.jobs.List(ctx)
		if err != nil {
			log.Printf("⚠️ Failed to load jobs: %v", err)
			return nil
		}
		summary.Jobs = jobs
		return nil
	})

	g.Go(func() error {
		apps, err := d.apps.Mine(ctx)
		if err != nil {
			log.Printf("⚠️ Failed to load applications: %v", err)
			return nil
		}
		summary.Applications = apps
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := viewCtx.Err(); err != nil {
		// View was replaced mid-fetch; drop the stale result.
		return nil, err
	}

	counts := CountByStatus(summary.Applications)
	summary.Total = len(summary.Applications)
	summary.Pending = counts[models.StatusPending]
	summary.Shortlisted = counts[models.StatusShortlisted]
	summary.Accepted = counts[models.StatusAccepted]
	return summary, nil
}

// Recruiter fetches the recruiter's postings and all applications on
// them in parallel, with the same per-resource degradation.
func (d *Dashboard) Recruiter(parent context.Context) (*RecruiterSummary, error) {
	viewCtx, done := d.begin(parent)
	defer done()

	summary := &RecruiterSummary{PerJobApplied: make(map[int64]int)}
	g, ctx := errgroup.WithContext(viewCtx)

	g.Go(func() error {
		jobs, err := d.jobs.Mine(ctx)
		if err != nil {
			log.Printf("⚠️ Failed to load recruiter jobs: %v", err)
			return nil
		}
		summary.Jobs = jobs
		return nil
	})

	g.Go(func() error {
		apps, err := d.apps.RecruiterAll(ctx)
		if err != nil {
			log.Printf("⚠️ Failed to load recruiter applications: %v", err)
			return nil
		}
		summary.Applications = apps
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := viewCtx.Err(); err != nil {
		return nil, err
	}

	summary.TotalJobs = len(summary.Jobs)
	summary.TotalApplied = len(summary.Applications)
	for _, app := range summary.Applications {
		summary.PerJobApplied[app.JobID]++
	}
	return summary, nil
}
