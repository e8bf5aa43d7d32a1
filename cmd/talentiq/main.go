package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"go-talentiq-client/internal/api"
	"go-talentiq-client/internal/config"
	"go-talentiq-client/internal/gateway"
	"go-talentiq-client/internal/guard"
	"go-talentiq-client/internal/models"
	"go-talentiq-client/internal/nav"
	"go-talentiq-client/internal/session"
	"go-talentiq-client/internal/views"
)

func main() {
	//load config
	cfg := config.Load()
	log.Printf("🔧 Config loaded. API: %s", cfg.APIBaseURL)

	//open session store (rehydrates any persisted session)
	store, err := session.Open(cfg.StatePath)
	if err != nil {
		log.Fatalf("❌ Failed to open session store: %v", err)
	}

	navigator := nav.NewMemory(nav.RouteLanding)
	gw := gateway.New(cfg.APIBaseURL, cfg.HTTPTimeout, store, navigator)

	authClient := api.NewAuth(gw)
	jobsClient := api.NewJobs(gw)
	appsClient := api.NewApplications(gw)
	adminClient := api.NewAdmin(gw)

	//guard follows the session store
	routeGuard := guard.New(store, navigator)
	store.Subscribe(func(*models.Identity) {
		routeGuard.Invalidate()
		routeGuard.ResolveSession()
	})
	routeGuard.ResolveSession()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	flow := views.NewAuthFlow(authClient, store, navigator)

	//sign in from env when no session survived rehydration
	if !store.Authenticated() {
		email := os.Getenv("TALENTIQ_EMAIL")
		password := os.Getenv("TALENTIQ_PASSWORD")
		if email == "" || password == "" {
			log.Fatal("❌ Not signed in. Set TALENTIQ_EMAIL and TALENTIQ_PASSWORD to log in.")
		}
		if _, err := flow.Login(ctx, email, password); err != nil {
			var unverified *views.ErrUnverified
			if errors.As(err, &unverified) {
				log.Fatalf("❌ Email %s is not verified yet. Verify the OTP code first.", unverified.Email)
			}
			log.Fatalf("❌ Login failed: %v", err)
		}
	}

	user := store.Current()
	log.Printf("👤 Session: %s <%s> role=%s", user.Name, user.Email, user.Role.Display())

	//resolve the role dashboard
	switch user.Role {
	case models.RoleJobSeeker:
		if d := routeGuard.Resolve(models.RoleJobSeeker); d != guard.DecisionAllow {
			log.Fatalf("❌ Access to the job seeker dashboard was refused (redirected to %s)", navigator.Current())
		}
		dash := views.NewDashboard(jobsClient, appsClient)
		defer dash.Close()
		summary, err := dash.JobSeeker(ctx)
		if err != nil {
			log.Fatalf("❌ Failed to load dashboard: %v", err)
		}
		log.Printf("📋 Open jobs: %d", len(summary.Jobs))
		log.Printf("📦 My applications: %d (pending %d, shortlisted %d, accepted %d)",
			summary.Total, summary.Pending, summary.Shortlisted, summary.Accepted)

	case models.RoleRecruiter:
		if d := routeGuard.Resolve(models.RoleRecruiter); d != guard.DecisionAllow {
			log.Fatalf("❌ Access to the recruiter dashboard was refused (redirected to %s)", navigator.Current())
		}
		dash := views.NewDashboard(jobsClient, appsClient)
		defer dash.Close()
		summary, err := dash.Recruiter(ctx)
		if err != nil {
			log.Fatalf("❌ Failed to load dashboard: %v", err)
		}
		log.Printf("📋 My postings: %d", summary.TotalJobs)
		log.Printf("📦 Applications received: %d", summary.TotalApplied)
		for _, job := range summary.Jobs {
			log.Printf("   • %s @ %s: %d applicants", job.Title, job.Company, summary.PerJobApplied[job.ID])
		}

	case models.RoleAdmin:
		if d := routeGuard.Resolve(models.RoleAdmin); d != guard.DecisionAllow {
			log.Fatalf("❌ Access to the admin dashboard was refused (redirected to %s)", navigator.Current())
		}
		stats, err := adminClient.Stats(ctx)
		if err != nil {
			log.Fatalf("❌ Failed to load platform stats: %v", err)
		}
		log.Printf("📊 Users: %d (seekers %d, recruiters %d) | Jobs: %d | Applications: %d",
			stats.TotalUsers, stats.TotalJobSeekers, stats.TotalRecruiters, stats.TotalJobs, stats.TotalApplications)
	}

	log.Printf("✅ Done. Current view: %s", navigator.Current())
}
