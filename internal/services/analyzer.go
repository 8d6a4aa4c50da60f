package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"jobfit-assistant/internal/models"
	"jobfit-assistant/internal/repositories"
)

// Generation temperatures per task family.
const (
	summaryTemperature     float32 = 0.4
	analysisTemperature    float32 = 0.3
	coverLetterTemperature float32 = 0.6
	searchTemperature      float32 = 0.2
)

// AnalyzerService routes every analysis task through one dispatch. Once a
// resume summary exists in a session, all downstream tasks consume the
// summary; the raw resume text is never sent to the model again.
type AnalyzerService interface {
	Run(ctx context.Context, sessionID uuid.UUID, task models.Task, input models.TaskInput) (*models.TaskResult, error)
}

type analyzerService struct {
	sessions      repositories.SessionRepository
	gemini        GeminiService
	promptBuilder *PromptBuilder
}

func NewAnalyzerService(
	sessions repositories.SessionRepository,
	gemini GeminiService,
) AnalyzerService {
	return &analyzerService{
		sessions:      sessions,
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
	}
}

func (a *analyzerService) Run(ctx context.Context, sessionID uuid.UUID, task models.Task, input models.TaskInput) (*models.TaskResult, error) {
	switch task {
	case models.TaskSummarize:
		return a.summarize(ctx, input.Text)
	case models.TaskSummarizeResume:
		return a.summarizeResume(ctx, sessionID, input.Text)
	case models.TaskSummarizeRequirements:
		return a.summarizeRequirements(ctx, sessionID, input.Text)
	case models.TaskAnalyzeAlignment:
		return a.analyzeAlignment(ctx, sessionID, input.Instructions)
	case models.TaskScoreATS:
		return a.scoreATS(ctx, sessionID)
	case models.TaskGenerateCoverLetter:
		return a.generateCoverLetter(ctx, sessionID, input.JobDescription, input.Instructions)
	case models.TaskGenerateJobSearchQuery:
		return a.generateJobSearchQuery(ctx, sessionID)
	default:
		return nil, fmt.Errorf("unknown task: %s", task)
	}
}

func (a *analyzerService) summarize(ctx context.Context, text string) (*models.TaskResult, error) {
	prompt := a.promptBuilder.BuildSummarizePrompt(text)

	summary, err := a.gemini.GenerateTextWithRetry(ctx, prompt, summaryTemperature)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize text: %w", err)
	}

	return &models.TaskResult{Report: summary}, nil
}

func (a *analyzerService) summarizeResume(ctx context.Context, sessionID uuid.UUID, resumeText string) (*models.TaskResult, error) {
	if _, err := a.sessions.FindByID(sessionID); err != nil {
		return nil, err
	}

	prompt := a.promptBuilder.BuildResumeSummaryPrompt(resumeText)

	summary, err := a.gemini.GenerateTextWithRetry(ctx, prompt, summaryTemperature)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize resume: %w", err)
	}

	if err := a.sessions.SetResumeSummary(sessionID, summary); err != nil {
		return nil, err
	}

	log.Printf("📄 Resume summarized for session %s\n", sessionID)
	return &models.TaskResult{Report: summary}, nil
}

func (a *analyzerService) summarizeRequirements(ctx context.Context, sessionID uuid.UUID, requirementsText string) (*models.TaskResult, error) {
	if _, err := a.sessions.FindByID(sessionID); err != nil {
		return nil, err
	}

	prompt := a.promptBuilder.BuildRequirementsSummaryPrompt(requirementsText)

	summary, err := a.gemini.GenerateTextWithRetry(ctx, prompt, summaryTemperature)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize requirements: %w", err)
	}

	if err := a.sessions.SetRequirements(sessionID, summary, requirementsText); err != nil {
		return nil, err
	}

	log.Printf("📋 Requirements summarized for session %s\n", sessionID)
	return &models.TaskResult{Report: summary}, nil
}

func (a *analyzerService) analyzeAlignment(ctx context.Context, sessionID uuid.UUID, instructions string) (*models.TaskResult, error) {
	session, err := a.sessions.FindByID(sessionID)
	if err != nil {
		return nil, err
	}
	if !session.HasResumeSummary() {
		return nil, ErrResumeSummaryMissing
	}
	if !session.HasRequirementsSummary() {
		return nil, ErrRequirementsMissing
	}

	prompt := a.promptBuilder.BuildAlignmentPrompt(*session.ResumeSummary, *session.RequirementsSummary, instructions)

	report, err := a.gemini.GenerateTextWithRetry(ctx, prompt, analysisTemperature)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze alignment: %w", err)
	}

	// A missed extraction is a valid outcome; the report still renders.
	fit := ExtractFitPercentage(report)
	if fit == nil {
		log.Printf("⚠️  No fit percentage found in alignment report for session %s\n", sessionID)
	}

	a.sessions.Touch(sessionID)
	return &models.TaskResult{Report: report, FitPercentage: fit}, nil
}

func (a *analyzerService) scoreATS(ctx context.Context, sessionID uuid.UUID) (*models.TaskResult, error) {
	session, err := a.sessions.FindByID(sessionID)
	if err != nil {
		return nil, err
	}
	if !session.HasResumeSummary() {
		return nil, ErrResumeSummaryMissing
	}

	prompt := a.promptBuilder.BuildATSScorePrompt(*session.ResumeSummary)

	report, err := a.gemini.GenerateTextWithRetry(ctx, prompt, analysisTemperature)
	if err != nil {
		return nil, fmt.Errorf("failed to score ATS compatibility: %w", err)
	}

	a.sessions.Touch(sessionID)
	return &models.TaskResult{Report: report}, nil
}

func (a *analyzerService) generateCoverLetter(ctx context.Context, sessionID uuid.UUID, jobDescription, instructions string) (*models.TaskResult, error) {
	session, err := a.sessions.FindByID(sessionID)
	if err != nil {
		return nil, err
	}
	if !session.HasResumeSummary() {
		return nil, ErrResumeSummaryMissing
	}

	if strings.TrimSpace(jobDescription) == "" && session.RequirementsText != nil {
		jobDescription = *session.RequirementsText
	}
	if strings.TrimSpace(jobDescription) == "" {
		return nil, ErrJobDescriptionMissing
	}

	prompt := a.promptBuilder.BuildCoverLetterPrompt(*session.ResumeSummary, jobDescription, instructions)

	letter, err := a.gemini.GenerateTextWithRetry(ctx, prompt, coverLetterTemperature)
	if err != nil {
		return nil, fmt.Errorf("failed to generate cover letter: %w", err)
	}

	a.sessions.Touch(sessionID)
	return &models.TaskResult{Report: letter}, nil
}

// generateJobSearchQuery runs the two-stage search flow: keyword extraction
// first, then URL construction from the raw stage-one output. The final
// string is returned as-is; no validation or re-encoding happens here.
func (a *analyzerService) generateJobSearchQuery(ctx context.Context, sessionID uuid.UUID) (*models.TaskResult, error) {
	session, err := a.sessions.FindByID(sessionID)
	if err != nil {
		return nil, err
	}
	if !session.HasResumeSummary() {
		return nil, ErrResumeSummaryMissing
	}

	keywordsPrompt := a.promptBuilder.BuildJobKeywordsPrompt(*session.ResumeSummary)
	keywords, err := a.gemini.GenerateTextWithRetry(ctx, keywordsPrompt, searchTemperature)
	if err != nil {
		return nil, fmt.Errorf("failed to extract job keywords: %w", err)
	}

	urlPrompt := a.promptBuilder.BuildJobSearchURLPrompt(keywords)
	rawURL, err := a.gemini.GenerateTextWithRetry(ctx, urlPrompt, searchTemperature)
	if err != nil {
		return nil, fmt.Errorf("failed to build job search URL: %w", err)
	}

	a.sessions.Touch(sessionID)
	return &models.TaskResult{URL: strings.TrimSpace(rawURL)}, nil
}
