package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobfit-assistant/internal/models"
	"jobfit-assistant/internal/repositories"
	"jobfit-assistant/internal/services"
)

type UploadHandler struct {
	sessions       repositories.SessionRepository
	storageService services.StorageService
	extractor      services.ExtractorService
	analyzer       services.AnalyzerService
	maxFileSize    int64
}

func NewUploadHandler(
	sessions repositories.SessionRepository,
	storageService services.StorageService,
	extractor services.ExtractorService,
	analyzer services.AnalyzerService,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		sessions:       sessions,
		storageService: storageService,
		extractor:      extractor,
		analyzer:       analyzer,
		maxFileSize:    maxFileSize,
	}
}

// HandleUploadResume handles POST /sessions/:id/resume. The uploaded
// document is staged, extracted, and summarized in one synchronous
// pipeline; the summary replaces any previous one for the session.
func (h *UploadHandler) HandleUploadResume(c *fiber.Ctx) error {
	return h.handleUpload(c, "resume", models.TaskSummarizeResume)
}

// HandleUploadRequirements handles POST /sessions/:id/requirements.
func (h *UploadHandler) HandleUploadRequirements(c *fiber.Ctx) error {
	return h.handleUpload(c, "requirements", models.TaskSummarizeRequirements)
}

func (h *UploadHandler) handleUpload(c *fiber.Ctx, fileType string, task models.Task) error {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session ID format",
		})
	}

	if _, err := h.sessions.FindByID(sessionID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	}

	file, err := c.FormFile(fileType)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Missing '%s' file in multipart form", fileType),
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filePath, err := h.storageService.SaveFile(sessionID, file, fileType)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save file: %v", err),
		})
	}

	text, err := h.extractor.ExtractText(filePath, file.Header.Get("Content-Type"))
	if err != nil {
		// Reject this upload only; the session and its state stay intact.
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to extract text from document: %v", err),
		})
	}

	result, err := h.analyzer.Run(c.UserContext(), sessionID, task, models.TaskInput{Text: text})
	if err != nil {
		return respondTaskError(c, err)
	}

	return c.JSON(models.UploadResponse{
		SessionID: sessionID.String(),
		Summary:   result.Report,
	})
}
