package service

import (
	_ "embed"
	"strings"
)

const (
	// MaxPromptChars is the truncation budget: at most this many characters
	// of extracted text are forwarded to the summarization service.
	MaxPromptChars = 100000

	// MaxOutputTokens bounds the length of the upstream response.
	MaxOutputTokens = 4096

	contractBeginMarker = "--- BEGIN CONTRACT TEXT ---"
	contractEndMarker   = "--- END CONTRACT TEXT ---"
)

// The prompt text is a content asset, not logic; it lives in its own file so
// it can be revised without touching the pipeline.
//
//go:embed prompts/system_prompt.md
var systemPrompt string

// SystemPrompt returns the fixed instructional template sent in the system role.
func SystemPrompt() string {
	return systemPrompt
}

// BuildUserMessage wraps the (possibly truncated) contract text between the
// literal delimiter markers.
func BuildUserMessage(contractText string) string {
	var sb strings.Builder
	sb.WriteString("Please summarize the following contract text according to the detailed instructions I provided in the system prompt:\n\n")
	sb.WriteString(contractBeginMarker)
	sb.WriteByte('\n')
	sb.WriteString(contractText)
	sb.WriteByte('\n')
	sb.WriteString(contractEndMarker)
	return sb.String()
}

// Truncate caps text at budget characters, always keeping the prefix. It is
// idempotent: truncating an already-truncated text is a no-op.
func Truncate(text string, budget int) string {
	if budget <= 0 {
		return ""
	}
	if len(text) <= budget {
		// Byte length bounds rune length, no need to decode.
		return text
	}
	runes := []rune(text)
	if len(runes) <= budget {
		return text
	}
	return string(runes[:budget])
}
