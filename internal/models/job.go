package models

import "time"

// Job is a posting as the backend serves it. Read-mostly on the
// client; mutations only happen through create/update/delete calls.
type Job struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Company          string    `json:"company"`
	Location         string    `json:"location"`
	SkillsRequired   string    `json:"skillsRequired"`
	ExperienceLevel  string    `json:"experienceLevel"`
	RecruiterID      int64     `json:"recruiterId"`
	RecruiterName    string    `json:"recruiterName,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt,omitempty"`
	ApplicationCount int64     `json:"applicationCount"`
}

// JobRequest is the create/update payload for a posting.
type JobRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Company         string `json:"company"`
	Location        string `json:"location"`
	SkillsRequired  string `json:"skillsRequired"`
	ExperienceLevel string `json:"experienceLevel"`
}

// Page is the backend's pagination envelope.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// Match is a saved job bookmark.
type Match struct {
	ID        int64     `json:"id"`
	JobID     int64     `json:"jobId"`
	JobTitle  string    `json:"jobTitle,omitempty"`
	Company   string    `json:"company,omitempty"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}
