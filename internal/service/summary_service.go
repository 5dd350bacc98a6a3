// Package service implements the request pipelines behind the API.
package service

import (
	"context"
	"errors"
	"strings"

	"contract-summarizer/internal/domain"
	"contract-summarizer/internal/summarizer"
	apperrors "contract-summarizer/pkg/errors"
)

// SummaryService runs the upload-to-summary pipeline: validate the upload,
// extract text, guard against empty input, truncate, compose the prompt and
// call the summarization service. Steps are strictly sequential and every
// failure is terminal for the request; there are no retries.
type SummaryService struct {
	config    domain.Config
	extractor domain.TextExtractor
	upstream  domain.Summarizer
	logger    domain.Logger
}

// NewSummaryService creates a new summary pipeline
func NewSummaryService(
	config domain.Config,
	extractor domain.TextExtractor,
	upstream domain.Summarizer,
	logger domain.Logger,
) *SummaryService {
	return &SummaryService{
		config:    config,
		extractor: extractor,
		upstream:  upstream,
		logger:    logger,
	}
}

// Summarize takes one Upload through the pipeline and returns the markdown
// summary. Errors carry the taxonomy type and HTTP status for the handler.
func (s *SummaryService) Summarize(ctx context.Context, upload *domain.Upload) (string, error) {
	if upload == nil || len(upload.Data) == 0 {
		return "", apperrors.NewValidationError("No PDF file uploaded.")
	}
	if upload.ContentType != domain.PDFContentType {
		return "", apperrors.NewValidationError("Uploaded file is not a PDF.", "content type "+upload.ContentType)
	}

	if s.config.GetAnthropicAPIKey() == "" {
		s.logger.Error("Summarization credential missing", nil)
		return "", apperrors.NewConfigError("Server config error.")
	}

	text, err := s.extractor.ExtractText(ctx, upload.Data)
	if err != nil {
		return "", apperrors.NewPDFParseError("Failed to parse the PDF file: "+err.Error(), err)
	}
	s.logger.Info("PDF extraction successful", "chars", len(text), "filename", upload.Filename)

	if strings.TrimSpace(text) == "" {
		return "", apperrors.NewEmptyContentError("Could not extract text from PDF.")
	}

	trimmed := Truncate(text, MaxPromptChars)
	userMessage := BuildUserMessage(trimmed)

	summary, err := s.upstream.Summarize(ctx, SystemPrompt(), userMessage, MaxOutputTokens)
	if err != nil {
		var apiErr *summarizer.APIError
		if errors.As(err, &apiErr) {
			return "", apperrors.NewUpstreamError("Anthropic API Error: "+apiErr.Message, err)
		}
		return "", apperrors.NewUpstreamError(err.Error(), err)
	}

	if strings.TrimSpace(summary) == "" {
		return "", apperrors.NewUpstreamEmptyError("Failed to get summary from AI.")
	}
	return summary, nil
}
