package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobfit-assistant/internal/models"
	"jobfit-assistant/internal/repositories"
)

type SessionHandler struct {
	sessions repositories.SessionRepository
}

func NewSessionHandler(sessions repositories.SessionRepository) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
	}
}

// HandleCreateSession handles POST /sessions
func (h *SessionHandler) HandleCreateSession(c *fiber.Ctx) error {
	session := h.sessions.Create()

	return c.Status(fiber.StatusCreated).JSON(models.SessionResponse{
		ID:        session.ID.String(),
		CreatedAt: session.CreatedAt,
	})
}

// HandleGetSession handles GET /sessions/:id
func (h *SessionHandler) HandleGetSession(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session ID format",
		})
	}

	session, err := h.sessions.FindByID(sessionID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	}

	return c.JSON(models.SessionResponse{
		ID:              session.ID.String(),
		CreatedAt:       session.CreatedAt,
		HasResume:       session.HasResumeSummary(),
		HasRequirements: session.HasRequirementsSummary(),
	})
}
