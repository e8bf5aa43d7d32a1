package models

import "time"

// CV is a structured, template-backed CV document built in the CV
// builder. Section payloads vary by section type, so they stay raw
// and are passed through to the backend unchanged.
type CV struct {
	ID             int64        `json:"id,omitempty"`
	UserID         int64        `json:"userId,omitempty"`
	Title          string       `json:"title"`
	TemplateID     string       `json:"templateId"`
	SourceType     string       `json:"sourceType,omitempty"` // manual | ai-generated | imported | optimizer
	SourceResumeID int64        `json:"sourceResumeId,omitempty"`
	PersonalInfo   PersonalInfo `json:"personalInfo"`
	Summary        string       `json:"summary,omitempty"`
	Sections       []CVSection  `json:"sections,omitempty"`
	CreatedAt      time.Time    `json:"createdAt,omitempty"`
	UpdatedAt      time.Time    `json:"updatedAt,omitempty"`
}

type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
}

type CVSection struct {
	ID      string         `json:"id,omitempty"`
	Type    string         `json:"type"` // experience | education | skills | projects | certifications
	Title   string         `json:"title"`
	Order   int            `json:"order"`
	Visible bool           `json:"visible"`
	Data    map[string]any `json:"data,omitempty"`
}

// CVGenerateRequest feeds the backend's AI CV generation endpoint.
type CVGenerateRequest struct {
	JobDescription string `json:"jobDescription"`
	ResumeText     string `json:"resumeText,omitempty"`
	TemplateID     string `json:"templateId,omitempty"`
	Title          string `json:"title,omitempty"`
}

// TailoredCVRequest creates a CV from an optimizer-tailored resume.
type TailoredCVRequest struct {
	SourceResumeID int64  `json:"sourceResumeId"`
	TailoredText   string `json:"tailoredText"`
	TemplateID     string `json:"templateId,omitempty"`
	Title          string `json:"title,omitempty"`
}

// Resume is an uploaded resume file record. Parsing happens
// backend-side; the client only sees metadata and extracted text.
type Resume struct {
	ID         int64     `json:"id"`
	Filename   string    `json:"filename"`
	FileSize   int64     `json:"fileSize,omitempty"`
	MimeType   string    `json:"mimeType,omitempty"`
	UploadedAt time.Time `json:"uploadedAt"`
	UserID     int64     `json:"userId,omitempty"`
}
