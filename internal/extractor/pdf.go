// Package extractor converts raw PDF bytes into one document-level text
// string, page order preserved.
package extractor

import (
	"bytes"
	"context"
	"fmt"
	"runtime"
	"strings"

	"contract-summarizer/internal/domain"
	"contract-summarizer/internal/shim"

	"github.com/ledongthuc/pdf"
)

const (
	// gcHintInterval is how often the page loop hints the garbage collector
	// on large documents. An optimization, not a correctness requirement.
	gcHintInterval = 10
	largeDocPages  = 50
)

// Document is a parsed PDF exposing page-by-page access.
type Document interface {
	PageCount() int
	Page(number int) (Page, error)
}

// Page is one parsed page. Release must be called before advancing to the
// next page; each page holds its parsed content tree until released.
type Page interface {
	// TextItems returns the page's text content items in document order.
	TextItems() ([]string, error)
	Release()
}

// openFunc parses raw bytes into a Document.
type openFunc func(data []byte) (Document, error)

// PDFExtractor implements domain.TextExtractor.
type PDFExtractor struct {
	open   openFunc
	logger domain.Logger
}

// NewPDFExtractor creates a new PDF text extractor
func NewPDFExtractor(logger domain.Logger) *PDFExtractor {
	return &PDFExtractor{
		open:   openPDF,
		logger: logger,
	}
}

// ExtractText parses data and concatenates the text of all pages in source
// order. Each page's items are joined with a single space and every page is
// followed by exactly one newline. A page failure aborts the whole
// extraction: partial document text is never returned as if complete. A
// zero-page document yields an empty string with no error; the caller
// decides what that means.
func (e *PDFExtractor) ExtractText(ctx context.Context, data []byte) (text string, err error) {
	// The underlying library panics when the container opens but a referenced
	// object is corrupt (xref entries pointing at broken objects), which can
	// surface from opening, counting pages or walking the page tree. Convert
	// any such panic into a parse error instead of killing the request.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("malformed PDF document: %v", r)
		}
	}()

	if err := shim.Require(shim.SymbolMatrix, shim.SymbolPoint, shim.SymbolURL); err != nil {
		return "", fmt.Errorf("pdf runtime not initialized: %w", err)
	}

	doc, err := e.open(data)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	numPages := doc.PageCount()
	e.logger.Debug("PDF opened", "pages", numPages, "bytes", len(data))

	var sb strings.Builder
	for pageNum := 1; pageNum <= numPages; pageNum++ {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("extraction aborted at page %d: %w", pageNum, err)
		}

		page, err := doc.Page(pageNum)
		if err != nil {
			return "", fmt.Errorf("failed to load page %d: %w", pageNum, err)
		}

		items, err := page.TextItems()
		if err != nil {
			page.Release()
			return "", fmt.Errorf("failed to extract text from page %d: %w", pageNum, err)
		}

		sb.WriteString(strings.Join(items, " "))
		sb.WriteByte('\n')
		page.Release()

		if numPages > largeDocPages && pageNum%gcHintInterval == 0 {
			runtime.GC()
		}
	}

	return sb.String(), nil
}

// openPDF is the production openFunc backed by github.com/ledongthuc/pdf.
func openPDF(data []byte) (Document, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}
	return &pdfDocument{reader: reader}, nil
}

type pdfDocument struct {
	reader *pdf.Reader
}

func (d *pdfDocument) PageCount() int {
	return d.reader.NumPage()
}

func (d *pdfDocument) Page(number int) (Page, error) {
	page := d.reader.Page(number)
	if page.V.IsNull() {
		return nil, fmt.Errorf("page %d is missing from the page tree", number)
	}
	return &pdfPage{page: page}, nil
}

type pdfPage struct {
	page pdf.Page
}

// TextItems walks the page content stream. The underlying library panics on
// some malformed content streams, so the panic is converted into an error
// and propagated like any other page failure.
func (p *pdfPage) TextItems() (items []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			items = nil
			err = fmt.Errorf("malformed page content: %v", r)
		}
	}()

	content := p.page.Content()
	items = make([]string, 0, len(content.Text))
	for _, item := range content.Text {
		items = append(items, item.S)
	}
	return items, nil
}

// Release drops the parsed content tree so it can be collected before the
// next page is loaded.
func (p *pdfPage) Release() {
	p.page = pdf.Page{}
}
