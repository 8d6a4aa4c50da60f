package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"google.golang.org/genai"
)

// GeminiService issues one completion call per prompt. Identical prompts
// are always re-sent; the model's output is non-deterministic, so there is
// nothing to cache.
type GeminiService interface {
	GenerateText(ctx context.Context, prompt string, temperature float32) (string, error)
	GenerateTextWithRetry(ctx context.Context, prompt string, temperature float32) (string, error)
}

type geminiService struct {
	client       *genai.Client
	modelName    string
	maxAttempts  int
	initialDelay time.Duration
}

func NewGeminiService(apiKey, modelName string, maxAttempts int, initialDelay time.Duration) (GeminiService, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiService{
		client:       client,
		modelName:    modelName,
		maxAttempts:  maxAttempts,
		initialDelay: initialDelay,
	}, nil
}

// GenerateText implements GeminiService.
func (g *geminiService) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 4096,
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		return "", fmt.Errorf("no response generated (nil response)")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("no text content in response")
	}

	return text, nil
}

// GenerateTextWithRetry implements GeminiService. Transient failures are
// retried with a growing delay; credential failures are never retried.
func (g *geminiService) GenerateTextWithRetry(ctx context.Context, prompt string, temperature float32) (string, error) {
	var lastErr error

	delay := g.initialDelay
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		result, err := g.GenerateText(ctx, prompt, temperature)
		if err == nil {
			return result, nil
		}
		if IsAuthError(err) {
			return "", err
		}

		lastErr = err

		if attempt < g.maxAttempts {
			log.Printf("⚠️ Gemini attempt %d failed: %v. Retrying in %s...\n", attempt, err, delay)
			select {
			case <-ctx.Done():
				return "", fmt.Errorf("context cancelled: %w", ctx.Err())
			case <-time.After(delay):
			}
			delay *= 2
		}
	}

	return "", fmt.Errorf("failed after %d attempts: %w", g.maxAttempts, lastErr)
}

// IsAuthError reports whether the provider rejected our credential.
func IsAuthError(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden
	}
	return false
}
