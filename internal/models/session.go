package models

import (
	"time"

	"github.com/google/uuid"
)

// Session holds the cross-request state for one user's interaction.
// Everything here is in-memory only and is discarded when the session
// expires; nothing survives the process.
type Session struct {
	ID                  uuid.UUID `json:"id"`
	ResumeSummary       *string   `json:"resume_summary,omitempty"`
	RequirementsSummary *string   `json:"requirements_summary,omitempty"`
	RequirementsText    *string   `json:"requirements_text,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	LastActiveAt        time.Time `json:"last_active_at"`
}

func (s *Session) HasResumeSummary() bool {
	return s.ResumeSummary != nil && *s.ResumeSummary != ""
}

func (s *Session) HasRequirementsSummary() bool {
	return s.RequirementsSummary != nil && *s.RequirementsSummary != ""
}
