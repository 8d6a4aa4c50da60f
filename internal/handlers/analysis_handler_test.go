package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobfit-assistant/internal/models"
	"jobfit-assistant/internal/repositories"
	"jobfit-assistant/internal/services"
)

// fakeAnalyzer returns a canned result or error for any task.
type fakeAnalyzer struct {
	result   *models.TaskResult
	err      error
	lastTask models.Task
}

func (f *fakeAnalyzer) Run(ctx context.Context, sessionID uuid.UUID, task models.Task, input models.TaskInput) (*models.TaskResult, error) {
	f.lastTask = task
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func newTestApp(analyzer services.AnalyzerService) *fiber.App {
	app := fiber.New()
	h := NewAnalysisHandler(analyzer)

	api := app.Group("/api/v1")
	api.Post("/sessions/:id/alignment", h.HandleAlignment)
	api.Post("/sessions/:id/ats", h.HandleATS)
	api.Post("/sessions/:id/cover-letter", h.HandleCoverLetter)
	api.Post("/sessions/:id/job-search", h.HandleJobSearch)
	api.Post("/summarize", h.HandleSummarize)
	return app
}

func decodeBody(t *testing.T, resp *http.Response, target any) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, target))
}

func TestHandleAlignmentReturnsFitPercentage(t *testing.T) {
	fit := 72
	analyzer := &fakeAnalyzer{result: &models.TaskResult{
		Report:        "alignment report",
		FitPercentage: &fit,
	}}
	app := newTestApp(analyzer)

	payload := strings.NewReader(`{"instructions":"be strict"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+uuid.NewString()+"/alignment", payload)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, models.TaskAnalyzeAlignment, analyzer.lastTask)

	var out models.AlignmentResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "alignment report", out.Report)
	require.NotNil(t, out.FitPercentage)
	assert.Equal(t, 72, *out.FitPercentage)
}

func TestHandleAlignmentWithoutBody(t *testing.T) {
	analyzer := &fakeAnalyzer{result: &models.TaskResult{Report: "report"}}
	app := newTestApp(analyzer)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+uuid.NewString()+"/alignment", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out models.AlignmentResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "report", out.Report)
	assert.Nil(t, out.FitPercentage)
}

func TestHandleAlignmentInvalidSessionID(t *testing.T) {
	app := newTestApp(&fakeAnalyzer{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/not-a-uuid/alignment", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleATSSessionNotFound(t *testing.T) {
	analyzer := &fakeAnalyzer{err: repositories.ErrSessionNotFound}
	app := newTestApp(analyzer)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+uuid.NewString()+"/ats", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandleATSMissingResume(t *testing.T) {
	analyzer := &fakeAnalyzer{err: services.ErrResumeSummaryMissing}
	app := newTestApp(analyzer)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+uuid.NewString()+"/ats", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleATSUpstreamFailure(t *testing.T) {
	analyzer := &fakeAnalyzer{err: errors.New("gemini: quota exceeded")}
	app := newTestApp(analyzer)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+uuid.NewString()+"/ats", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestHandleJobSearchReturnsURL(t *testing.T) {
	analyzer := &fakeAnalyzer{result: &models.TaskResult{
		URL: "https://www.google.com/search?q=%22Backend%22",
	}}
	app := newTestApp(analyzer)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+uuid.NewString()+"/job-search", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out models.JobSearchResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "https://www.google.com/search?q=%22Backend%22", out.URL)
}

func TestHandleSummarizeRequiresText(t *testing.T) {
	app := newTestApp(&fakeAnalyzer{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/summarize", strings.NewReader(`{"text":"  "}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadRequirementsPlainText(t *testing.T) {
	// Full upload path with a real store, extractor, and staging dir; only
	// the analyzer is faked.
	repo := repositories.NewSessionRepository()
	session := repo.Create()
	storage := services.NewStorageService(t.TempDir())
	extractor := services.NewExtractorService()
	analyzer := &fakeAnalyzer{result: &models.TaskResult{Report: "REQUIREMENTS SUMMARY"}}

	app := fiber.New()
	h := NewUploadHandler(repo, storage, extractor, analyzer, 10*1024*1024)
	app.Post("/api/v1/sessions/:id/requirements", h.HandleUploadRequirements)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("requirements", "jd.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("Looking for a backend engineer"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+session.ID.String()+"/requirements", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, models.TaskSummarizeRequirements, analyzer.lastTask)

	var out models.UploadResponse
	decodeBody(t, resp, &out)
	assert.Equal(t, "REQUIREMENTS SUMMARY", out.Summary)
}

func TestUploadResumeRejectsOversizedFile(t *testing.T) {
	repo := repositories.NewSessionRepository()
	session := repo.Create()
	storage := services.NewStorageService(t.TempDir())
	extractor := services.NewExtractorService()

	app := fiber.New()
	h := NewUploadHandler(repo, storage, extractor, &fakeAnalyzer{}, 8)
	app.Post("/api/v1/sessions/:id/resume", h.HandleUploadResume)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("resume", "cv.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("definitely more than eight bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+session.ID.String()+"/resume", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUploadResumeUnknownSession(t *testing.T) {
	repo := repositories.NewSessionRepository()
	storage := services.NewStorageService(t.TempDir())
	extractor := services.NewExtractorService()

	app := fiber.New()
	h := NewUploadHandler(repo, storage, extractor, &fakeAnalyzer{}, 1024)
	app.Post("/api/v1/sessions/:id/resume", h.HandleUploadResume)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("resume", "cv.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("text"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/"+uuid.NewString()+"/resume", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
