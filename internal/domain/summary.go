package domain

// Media types accepted or produced by the API.
const (
	PDFContentType  = "application/pdf"
	DocxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ExportFilename is the fixed attachment name for DOCX downloads.
const ExportFilename = "contract-summary.docx"

// Upload is the binary PDF submitted by a client for one request. It lives
// for the duration of the request and is discarded after extraction.
type Upload struct {
	Data        []byte
	ContentType string
	Filename    string
}

// SummaryResponse is the success body of POST /summarize.
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// ExportRequest is the body of POST /convert-to-docx.
type ExportRequest struct {
	HTML string `json:"html"`
}
