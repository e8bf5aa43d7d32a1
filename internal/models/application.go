package models

import "time"

type ApplicationStatus string

const (
	StatusPending     ApplicationStatus = "PENDING"
	StatusReviewing   ApplicationStatus = "REVIEWING"
	StatusShortlisted ApplicationStatus = "SHORTLISTED"
	StatusInterviewed ApplicationStatus = "INTERVIEWED"
	StatusAccepted    ApplicationStatus = "ACCEPTED"
	StatusRejected    ApplicationStatus = "REJECTED"
	StatusWithdrawn   ApplicationStatus = "WITHDRAWN"
)

// StatusFilterAll is the sentinel filter value that keeps every
// application regardless of status.
const StatusFilterAll = "ALL"

// Application reflects the backend's application response. Status
// transitions are requested by the client but applied server-side;
// the client only mirrors the accepted result.
type Application struct {
	ID             int64             `json:"id"`
	JobID          int64             `json:"jobId"`
	JobTitle       string            `json:"jobTitle,omitempty"`
	JobCompany     string            `json:"jobCompany,omitempty"`
	UserID         int64             `json:"userId"`
	UserName       string            `json:"userName,omitempty"`
	UserEmail      string            `json:"userEmail,omitempty"`
	ResumeID       int64             `json:"resumeId,omitempty"`
	ResumeFilename string            `json:"resumeFilename,omitempty"`
	CoverLetter    string            `json:"coverLetter,omitempty"`
	Status         ApplicationStatus `json:"status"`
	AppliedAt      time.Time         `json:"appliedAt"`
	ReviewedAt     *time.Time        `json:"reviewedAt,omitempty"`
	RecruiterNotes string            `json:"recruiterNotes,omitempty"`
}

// ApplicationRequest is the apply payload.
type ApplicationRequest struct {
	JobID       int64  `json:"jobId"`
	ResumeID    int64  `json:"resumeId,omitempty"`
	CoverLetter string `json:"coverLetter,omitempty"`
}

// JobStats is the recruiter-facing per-job application breakdown.
type JobStats struct {
	JobID                   int64          `json:"jobId"`
	JobTitle                string         `json:"jobTitle"`
	TotalApplications       int            `json:"totalApplications"`
	PendingApplications     int            `json:"pendingApplications"`
	ReviewingApplications   int            `json:"reviewingApplications"`
	ShortlistedApplications int            `json:"shortlistedApplications"`
	InterviewedApplications int            `json:"interviewedApplications"`
	AcceptedApplications    int            `json:"acceptedApplications"`
	RejectedApplications    int            `json:"rejectedApplications"`
	ApplicationsByStatus    map[string]int `json:"applicationsByStatus,omitempty"`
	TotalViews              int            `json:"totalViews"`
}

// AdminStats is the platform-wide counters the admin dashboard shows.
type AdminStats struct {
	TotalUsers        int64 `json:"totalUsers"`
	TotalJobSeekers   int64 `json:"totalJobSeekers"`
	TotalRecruiters   int64 `json:"totalRecruiters"`
	TotalJobs         int64 `json:"totalJobs"`
	TotalApplications int64 `json:"totalApplications"`
}
