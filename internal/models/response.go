package models

import "time"

type SessionResponse struct {
	ID              string    `json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	HasResume       bool      `json:"has_resume_summary"`
	HasRequirements bool      `json:"has_requirements_summary"`
}

type UploadResponse struct {
	SessionID string `json:"session_id"`
	Summary   string `json:"summary"`
}

type AlignmentRequest struct {
	Instructions string `json:"instructions"`
}

type AlignmentResponse struct {
	Report        string `json:"report"`
	FitPercentage *int   `json:"fit_percentage,omitempty"`
}

type ATSResponse struct {
	Report string `json:"report"`
}

type CoverLetterRequest struct {
	JobDescription string `json:"job_description"`
	Instructions   string `json:"instructions"`
}

type CoverLetterResponse struct {
	Letter string `json:"letter"`
}

type JobSearchResponse struct {
	URL string `json:"url"`
}

type SummarizeRequest struct {
	Text string `json:"text"`
}

type SummarizeResponse struct {
	Summary string `json:"summary"`
}
