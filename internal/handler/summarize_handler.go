// Package handler provides HTTP handlers for the API.
package handler

import (
	"io"
	"net/http"

	"contract-summarizer/internal/domain"

	"github.com/google/uuid"
)

// multipartMemoryLimit caps how much of an upload is buffered in memory
// during multipart parsing; anything beyond spills to temp files. The
// request size itself is bounded separately by MaxBytesReader.
const multipartMemoryLimit = 10 << 20 // 10MB

// SummarizeHandler handles contract upload and summarization requests
type SummarizeHandler struct {
	summaryService domain.SummaryService
	config         domain.Config
	logger         domain.Logger
}

// NewSummarizeHandler creates a new summarize handler
func NewSummarizeHandler(summaryService domain.SummaryService, config domain.Config, logger domain.Logger) *SummarizeHandler {
	return &SummarizeHandler{
		summaryService: summaryService,
		config:         config,
		logger:         logger,
	}
}

// Summarize handles PDF upload and returns a markdown summary
func (h *SummarizeHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.NewString()

	r.Body = http.MaxBytesReader(w, r.Body, h.config.GetMaxFileSize())

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		h.logger.Warn("Rejected multipart body", "req_id", reqID, "error", err.Error())
		writeError(w, http.StatusBadRequest, "No PDF file uploaded.")
		return
	}

	file, header, err := r.FormFile("pdfFile")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No PDF file uploaded.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("Failed to read uploaded file", err, "req_id", reqID)
		writeError(w, http.StatusBadRequest, "No PDF file uploaded.")
		return
	}

	upload := &domain.Upload{
		Data:        data,
		ContentType: header.Header.Get("Content-Type"),
		Filename:    header.Filename,
	}

	h.logger.Info("Summarize request", "req_id", reqID, "filename", upload.Filename, "size_bytes", len(data))

	summary, err := h.summaryService.Summarize(r.Context(), upload)
	if err != nil {
		h.logger.Error("Summarize failed", err, "req_id", reqID, "filename", upload.Filename)
		respondError(w, err)
		return
	}

	h.logger.Info("Summarize succeeded", "req_id", reqID, "summary_chars", len(summary))
	writeJSON(w, http.StatusOK, domain.SummaryResponse{Summary: summary})
}
