package repositories

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"jobfit-assistant/internal/models"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionRepository is the in-memory store for per-session state. Sessions
// are never persisted; an expired session is gone for good.
type SessionRepository interface {
	Create() *models.Session
	FindByID(id uuid.UUID) (*models.Session, error)
	SetResumeSummary(id uuid.UUID, summary string) error
	SetRequirements(id uuid.UUID, summary, rawText string) error
	Touch(id uuid.UUID) error
	Delete(id uuid.UUID)
	IdleSince(cutoff time.Time) []uuid.UUID
}

type sessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*models.Session
}

func NewSessionRepository() SessionRepository {
	return &sessionRepository{
		sessions: make(map[uuid.UUID]*models.Session),
	}
}

func (r *sessionRepository) Create() *models.Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	session := &models.Session{
		ID:           uuid.New(),
		CreatedAt:    now,
		LastActiveAt: now,
	}
	r.sessions[session.ID] = session

	return cloneSession(session)
}

// FindByID returns a copy so callers can read session state without racing
// concurrent writers.
func (r *sessionRepository) FindByID(id uuid.UUID) (*models.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	return cloneSession(session), nil
}

func cloneSession(s *models.Session) *models.Session {
	copied := *s
	if s.ResumeSummary != nil {
		v := *s.ResumeSummary
		copied.ResumeSummary = &v
	}
	if s.RequirementsSummary != nil {
		v := *s.RequirementsSummary
		copied.RequirementsSummary = &v
	}
	if s.RequirementsText != nil {
		v := *s.RequirementsText
		copied.RequirementsText = &v
	}
	return &copied
}

// SetResumeSummary overwrites any previous summary; uploading a new resume
// replaces the old one for the rest of the session.
func (r *sessionRepository) SetResumeSummary(id uuid.UUID, summary string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}

	session.ResumeSummary = &summary
	session.LastActiveAt = time.Now()
	return nil
}

func (r *sessionRepository) SetRequirements(id uuid.UUID, summary, rawText string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}

	session.RequirementsSummary = &summary
	session.RequirementsText = &rawText
	session.LastActiveAt = time.Now()
	return nil
}

func (r *sessionRepository) Touch(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}

	session.LastActiveAt = time.Now()
	return nil
}

func (r *sessionRepository) Delete(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
}

func (r *sessionRepository) IdleSince(cutoff time.Time) []uuid.UUID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []uuid.UUID
	for id, session := range r.sessions {
		if session.LastActiveAt.Before(cutoff) {
			ids = append(ids, id)
		}
	}
	return ids
}
