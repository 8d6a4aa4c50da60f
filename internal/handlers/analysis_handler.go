package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobfit-assistant/internal/models"
	"jobfit-assistant/internal/repositories"
	"jobfit-assistant/internal/services"
)

type AnalysisHandler struct {
	analyzer services.AnalyzerService
}

func NewAnalysisHandler(analyzer services.AnalyzerService) *AnalysisHandler {
	return &AnalysisHandler{
		analyzer: analyzer,
	}
}

// HandleAlignment handles POST /sessions/:id/alignment. The report is
// always returned; the fit percentage is included only when the
// interpreter recovered one.
func (h *AnalysisHandler) HandleAlignment(c *fiber.Ctx) error {
	sessionID, ok := parseSessionID(c)
	if !ok {
		return nil
	}

	var req models.AlignmentRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request payload",
			})
		}
	}

	result, err := h.analyzer.Run(c.UserContext(), sessionID, models.TaskAnalyzeAlignment, models.TaskInput{
		Instructions: req.Instructions,
	})
	if err != nil {
		return respondTaskError(c, err)
	}

	return c.JSON(models.AlignmentResponse{
		Report:        result.Report,
		FitPercentage: result.FitPercentage,
	})
}

// HandleATS handles POST /sessions/:id/ats. The report is opaque text; no
// score is parsed out of it.
func (h *AnalysisHandler) HandleATS(c *fiber.Ctx) error {
	sessionID, ok := parseSessionID(c)
	if !ok {
		return nil
	}

	result, err := h.analyzer.Run(c.UserContext(), sessionID, models.TaskScoreATS, models.TaskInput{})
	if err != nil {
		return respondTaskError(c, err)
	}

	return c.JSON(models.ATSResponse{
		Report: result.Report,
	})
}

// HandleCoverLetter handles POST /sessions/:id/cover-letter.
func (h *AnalysisHandler) HandleCoverLetter(c *fiber.Ctx) error {
	sessionID, ok := parseSessionID(c)
	if !ok {
		return nil
	}

	var req models.CoverLetterRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request payload",
			})
		}
	}

	result, err := h.analyzer.Run(c.UserContext(), sessionID, models.TaskGenerateCoverLetter, models.TaskInput{
		JobDescription: req.JobDescription,
		Instructions:   req.Instructions,
	})
	if err != nil {
		return respondTaskError(c, err)
	}

	return c.JSON(models.CoverLetterResponse{
		Letter: result.Report,
	})
}

// HandleJobSearch handles POST /sessions/:id/job-search. The URL comes
// straight from the model and is returned as-is.
func (h *AnalysisHandler) HandleJobSearch(c *fiber.Ctx) error {
	sessionID, ok := parseSessionID(c)
	if !ok {
		return nil
	}

	result, err := h.analyzer.Run(c.UserContext(), sessionID, models.TaskGenerateJobSearchQuery, models.TaskInput{})
	if err != nil {
		return respondTaskError(c, err)
	}

	return c.JSON(models.JobSearchResponse{
		URL: result.URL,
	})
}

// HandleSummarize handles POST /summarize, a sessionless plain summary.
func (h *AnalysisHandler) HandleSummarize(c *fiber.Ctx) error {
	var req models.SummarizeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if strings.TrimSpace(req.Text) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "text is required",
		})
	}

	result, err := h.analyzer.Run(c.UserContext(), uuid.Nil, models.TaskSummarize, models.TaskInput{
		Text: req.Text,
	})
	if err != nil {
		return respondTaskError(c, err)
	}

	return c.JSON(models.SummarizeResponse{
		Summary: result.Report,
	})
}

func parseSessionID(c *fiber.Ctx) (uuid.UUID, bool) {
	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid session ID format",
		})
		return uuid.Nil, false
	}
	return sessionID, true
}

// respondTaskError maps task failures onto HTTP statuses: a missing
// session is 404, a missing prerequisite is 400, and everything else is an
// upstream completion failure. Failed actions never destroy session state,
// so a retry is always possible.
func respondTaskError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repositories.ErrSessionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Session not found",
		})
	case errors.Is(err, services.ErrResumeSummaryMissing),
		errors.Is(err, services.ErrRequirementsMissing),
		errors.Is(err, services.ErrJobDescriptionMissing):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
