package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"contract-summarizer/internal/domain"

	"github.com/google/uuid"
)

// ExportHandler handles HTML to DOCX conversion requests
type ExportHandler struct {
	exporter domain.DocumentExporter
	logger   domain.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(exporter domain.DocumentExporter, logger domain.Logger) *ExportHandler {
	return &ExportHandler{
		exporter: exporter,
		logger:   logger,
	}
}

// ConvertToDocx converts an HTML fragment into a downloadable DOCX file
func (h *ExportHandler) ConvertToDocx(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.NewString()

	var req domain.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "HTML content is required")
		return
	}

	data, err := h.exporter.Convert(req.HTML)
	if err != nil {
		h.logger.Error("DOCX conversion failed", err, "req_id", reqID, "html_chars", len(req.HTML))
		respondError(w, err)
		return
	}

	h.logger.Info("DOCX conversion succeeded", "req_id", reqID, "docx_bytes", len(data))

	w.Header().Set("Content-Type", domain.DocxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+domain.ExportFilename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
