package domain

import (
	"context"
	"time"
)

// TextExtractor converts raw PDF bytes into one document-level text string.
// Page order is preserved and exactly one newline follows each page. The
// extraction either yields the full document text or an error, never a
// partial result.
type TextExtractor interface {
	ExtractText(ctx context.Context, data []byte) (string, error)
}

// Summarizer is the upstream summarization service: a synchronous call taking
// a system instruction, a user message and an output token budget, returning
// a markdown text block. An empty block with a nil error means the service
// answered but produced no usable content.
type Summarizer interface {
	Summarize(ctx context.Context, system, user string, maxTokens int) (string, error)
}

// SummaryService runs the full upload-to-summary pipeline for one request.
type SummaryService interface {
	Summarize(ctx context.Context, upload *Upload) (string, error)
}

// DocumentExporter converts already-rendered HTML into a binary DOCX document.
type DocumentExporter interface {
	Convert(html string) ([]byte, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetAnthropicAPIKey() string
	GetAnthropicModel() string
	GetUpstreamTimeout() time.Duration
}
