package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "contract-summarizer/pkg/errors"
)

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, http.StatusBadRequest, "No PDF file uploaded.")

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("unexpected content type: %q", got)
	}
	if !strings.Contains(rr.Body.String(), `"error":"No PDF file uploaded."`) {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

func TestRespondErrorAppError(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{apperrors.NewValidationError("Uploaded file is not a PDF."), http.StatusBadRequest},
		{apperrors.NewConfigError("Server config error."), http.StatusInternalServerError},
		{apperrors.NewEmptyContentError("Could not extract text from PDF."), http.StatusBadRequest},
		{apperrors.NewUpstreamEmptyError("Failed to get summary from AI."), http.StatusInternalServerError},
	}

	for _, c := range cases {
		rr := httptest.NewRecorder()
		respondError(rr, c.err)
		if rr.Code != c.status {
			t.Fatalf("error %v: expected status %d, got %d", c.err, c.status, rr.Code)
		}
	}
}

func TestRespondErrorPlainError(t *testing.T) {
	rr := httptest.NewRecorder()
	respondError(rr, errors.New("boom"))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "boom") {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}
