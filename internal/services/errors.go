package services

import "errors"

var (
	// ErrResumeSummaryMissing is returned by tasks that need a resume
	// summary before one has been produced for the session.
	ErrResumeSummaryMissing = errors.New("no resume summary in session; upload a resume first")

	// ErrRequirementsMissing is returned by the alignment task when no job
	// requirements have been summarized for the session.
	ErrRequirementsMissing = errors.New("no requirements summary in session; upload job requirements first")

	// ErrJobDescriptionMissing is returned by the cover-letter task when
	// neither an inline job description nor stored requirements exist.
	ErrJobDescriptionMissing = errors.New("no job description provided and none stored in session")

	// ErrUnsupportedDocument is returned when an upload cannot be turned
	// into text.
	ErrUnsupportedDocument = errors.New("unsupported document type")

	// ErrEmptyDocument is returned when extraction produces no text.
	ErrEmptyDocument = errors.New("no text content found in document")
)
