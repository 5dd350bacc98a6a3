package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"contract-summarizer/internal/domain"
	"contract-summarizer/internal/summarizer"
	apperrors "contract-summarizer/pkg/errors"
)

// Mock logger used by service tests.
type mockLogger struct{}

func (l *mockLogger) Info(msg string, fields ...interface{})             {}
func (l *mockLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *mockLogger) Debug(msg string, fields ...interface{})            {}
func (l *mockLogger) Warn(msg string, fields ...interface{})             {}

type mockConfig struct {
	apiKey string
}

func (c *mockConfig) GetServerPort() string             { return "8080" }
func (c *mockConfig) GetMaxFileSize() int64             { return 50 * 1024 * 1024 }
func (c *mockConfig) GetLogLevel() string               { return "info" }
func (c *mockConfig) GetAnthropicAPIKey() string        { return c.apiKey }
func (c *mockConfig) GetAnthropicModel() string         { return "claude-3-7-sonnet-latest" }
func (c *mockConfig) GetUpstreamTimeout() time.Duration { return time.Minute }

type mockExtractor struct {
	text   string
	err    error
	called bool
}

func (m *mockExtractor) ExtractText(ctx context.Context, data []byte) (string, error) {
	m.called = true
	return m.text, m.err
}

type mockSummarizer struct {
	summary    string
	err        error
	called     bool
	lastSystem string
	lastUser   string
	lastTokens int
}

func (m *mockSummarizer) Summarize(ctx context.Context, system, user string, maxTokens int) (string, error) {
	m.called = true
	m.lastSystem = system
	m.lastUser = user
	m.lastTokens = maxTokens
	return m.summary, m.err
}

func pdfUpload() *domain.Upload {
	return &domain.Upload{
		Data:        []byte("%PDF-1.7 fake"),
		ContentType: domain.PDFContentType,
		Filename:    "contract.pdf",
	}
}

func newPipeline(cfg *mockConfig, ext *mockExtractor, up *mockSummarizer) *SummaryService {
	return NewSummaryService(cfg, ext, up, &mockLogger{})
}

func TestSummarizeMissingUpload(t *testing.T) {
	ext := &mockExtractor{}
	up := &mockSummarizer{}
	svc := newPipeline(&mockConfig{apiKey: "key"}, ext, up)

	_, err := svc.Summarize(context.Background(), nil)
	if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if ext.called || up.called {
		t.Fatalf("neither extraction nor upstream may run for a missing upload")
	}
}

func TestSummarizeWrongMediaType(t *testing.T) {
	ext := &mockExtractor{}
	up := &mockSummarizer{}
	svc := newPipeline(&mockConfig{apiKey: "key"}, ext, up)

	upload := &domain.Upload{Data: []byte("hello"), ContentType: "text/plain", Filename: "notes.txt"}
	_, err := svc.Summarize(context.Background(), upload)
	if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if ext.called || up.called {
		t.Fatalf("wrong media type must be rejected before extraction")
	}
}

func TestSummarizeMissingCredential(t *testing.T) {
	ext := &mockExtractor{text: "valid text"}
	up := &mockSummarizer{}
	svc := newPipeline(&mockConfig{apiKey: ""}, ext, up)

	_, err := svc.Summarize(context.Background(), pdfUpload())
	if !apperrors.IsType(err, apperrors.ErrorTypeConfig) {
		t.Fatalf("expected config error, got %v", err)
	}
	if ext.called {
		t.Fatalf("a missing credential must fail before extraction, even for a valid PDF")
	}
}

func TestSummarizeParseFailure(t *testing.T) {
	ext := &mockExtractor{err: errors.New("bad xref table")}
	up := &mockSummarizer{}
	svc := newPipeline(&mockConfig{apiKey: "key"}, ext, up)

	_, err := svc.Summarize(context.Background(), pdfUpload())
	if !apperrors.IsType(err, apperrors.ErrorTypePDFParse) {
		t.Fatalf("expected pdf_parse error, got %v", err)
	}
	if !strings.Contains(err.(*apperrors.AppError).Message, "Failed to parse the PDF file: bad xref table") {
		t.Fatalf("expected parse message to carry the cause, got %q", err.(*apperrors.AppError).Message)
	}
	if up.called {
		t.Fatalf("upstream must not be called after a parse failure")
	}
}

func TestSummarizeEmptyExtractedText(t *testing.T) {
	ext := &mockExtractor{text: " \n \n "}
	up := &mockSummarizer{}
	svc := newPipeline(&mockConfig{apiKey: "key"}, ext, up)

	_, err := svc.Summarize(context.Background(), pdfUpload())
	if !apperrors.IsType(err, apperrors.ErrorTypeEmptyContent) {
		t.Fatalf("expected empty_content error, got %v", err)
	}
	if up.called {
		t.Fatalf("upstream must not be called for empty extracted text")
	}
}

func TestSummarizeSuccess(t *testing.T) {
	ext := &mockExtractor{text: "Page 1 \nPage 2 \nPage 3 \n"}
	up := &mockSummarizer{summary: "## **Contract Overview**\nLooks fine."}
	svc := newPipeline(&mockConfig{apiKey: "key"}, ext, up)

	summary, err := svc.Summarize(context.Background(), pdfUpload())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary != "## **Contract Overview**\nLooks fine." {
		t.Fatalf("unexpected summary: %q", summary)
	}

	if up.lastSystem != SystemPrompt() {
		t.Fatalf("expected the fixed system prompt to be sent")
	}
	if up.lastTokens != MaxOutputTokens {
		t.Fatalf("expected max tokens %d, got %d", MaxOutputTokens, up.lastTokens)
	}
	if !strings.Contains(up.lastUser, contractBeginMarker) || !strings.Contains(up.lastUser, contractEndMarker) {
		t.Fatalf("user message missing delimiters: %q", up.lastUser)
	}
	if !strings.Contains(up.lastUser, "Page 1 \nPage 2 \nPage 3 \n") {
		t.Fatalf("user message missing extracted text: %q", up.lastUser)
	}
}

func TestSummarizeTruncatesLongText(t *testing.T) {
	long := strings.Repeat("a", 150000)
	ext := &mockExtractor{text: long}
	up := &mockSummarizer{summary: "summary"}
	svc := newPipeline(&mockConfig{apiKey: "key"}, ext, up)

	if _, err := svc.Summarize(context.Background(), pdfUpload()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	begin := strings.Index(up.lastUser, contractBeginMarker) + len(contractBeginMarker)
	end := strings.Index(up.lastUser, contractEndMarker)
	between := strings.TrimSpace(up.lastUser[begin:end])
	if len(between) != MaxPromptChars {
		t.Fatalf("expected exactly %d chars between delimiters, got %d", MaxPromptChars, len(between))
	}
	if between != long[:MaxPromptChars] {
		t.Fatalf("truncated prompt must be the exact prefix")
	}
}

func TestSummarizeUpstreamAPIError(t *testing.T) {
	ext := &mockExtractor{text: "contract text"}
	up := &mockSummarizer{err: &summarizer.APIError{StatusCode: 429, Type: "rate_limit_error", Message: "slow down"}}
	svc := newPipeline(&mockConfig{apiKey: "key"}, ext, up)

	_, err := svc.Summarize(context.Background(), pdfUpload())
	if !apperrors.IsType(err, apperrors.ErrorTypeUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if err.(*apperrors.AppError).Message != "Anthropic API Error: slow down" {
		t.Fatalf("expected upstream message pass-through, got %q", err.(*apperrors.AppError).Message)
	}
}

func TestSummarizeUpstreamTransportError(t *testing.T) {
	ext := &mockExtractor{text: "contract text"}
	up := &mockSummarizer{err: errors.New("connection refused")}
	svc := newPipeline(&mockConfig{apiKey: "key"}, ext, up)

	_, err := svc.Summarize(context.Background(), pdfUpload())
	if !apperrors.IsType(err, apperrors.ErrorTypeUpstream) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestSummarizeUpstreamEmptyResponse(t *testing.T) {
	ext := &mockExtractor{text: "contract text"}
	up := &mockSummarizer{summary: "   "}
	svc := newPipeline(&mockConfig{apiKey: "key"}, ext, up)

	_, err := svc.Summarize(context.Background(), pdfUpload())
	if !apperrors.IsType(err, apperrors.ErrorTypeUpstreamEmpty) {
		t.Fatalf("expected upstream_empty error, got %v", err)
	}
}
