package service

import (
	"fmt"
	"strings"
	"unicode"

	"contract-summarizer/internal/docx"
	"contract-summarizer/internal/domain"
	apperrors "contract-summarizer/pkg/errors"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Heading run sizes in half-points.
var headingSizes = map[string]int{
	"h1": 32,
	"h2": 28,
	"h3": 26,
	"h4": 24,
	"h5": 22,
	"h6": 22,
}

// ExportService converts already-rendered summary HTML into a binary DOCX
// document. Table rows are kept on a single page and no header or footer
// sections are produced.
type ExportService struct {
	logger domain.Logger
}

// NewExportService creates a new DOCX export bridge
func NewExportService(logger domain.Logger) *ExportService {
	return &ExportService{logger: logger}
}

// Convert rejects empty input before any conversion work, then maps the
// HTML block structure onto WordprocessingML.
func (s *ExportService) Convert(htmlContent string) ([]byte, error) {
	if strings.TrimSpace(htmlContent) == "" {
		return nil, apperrors.NewValidationError("HTML content is required")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, apperrors.NewExportError("Failed to convert HTML to DOCX", err)
	}

	out := docx.NewDocument()
	for _, node := range doc.Find("body").Nodes {
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			s.convertBlock(child, out)
		}
	}

	data, err := out.Bytes()
	if err != nil {
		s.logger.Error("DOCX serialization failed", err)
		return nil, apperrors.NewExportError("Failed to convert HTML to DOCX", err)
	}
	s.logger.Info("DOCX conversion complete", "bytes", len(data))
	return data, nil
}

type runState struct {
	bold   bool
	italic bool
	size   int
}

func (s *ExportService) convertBlock(n *html.Node, out *docx.Document) {
	switch n.Type {
	case html.TextNode:
		if text := collapseSpace(n.Data); strings.TrimSpace(text) != "" {
			out.AddParagraph(docx.Paragraph{Runs: []docx.Run{{Text: strings.TrimSpace(text)}}})
		}
	case html.ElementNode:
		switch n.Data {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			if runs := collectRuns(n, runState{bold: true, size: headingSizes[n.Data]}); len(runs) > 0 {
				out.AddParagraph(docx.Paragraph{Runs: runs})
			}
		case "p", "blockquote", "pre":
			if runs := collectRuns(n, runState{}); len(runs) > 0 {
				out.AddParagraph(docx.Paragraph{Runs: runs})
			}
		case "ul":
			s.convertList(n, out, false)
		case "ol":
			s.convertList(n, out, true)
		case "table":
			out.AddTable(convertTable(n))
		case "br", "hr":
			out.AddParagraph(docx.Paragraph{})
		case "script", "style", "head":
			// Non-content markup is dropped.
		default:
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				s.convertBlock(c, out)
			}
		}
	}
}

func (s *ExportService) convertList(n *html.Node, out *docx.Document, ordered bool) {
	index := 1
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "li" {
			continue
		}
		runs := collectRuns(c, runState{})
		if len(runs) == 0 {
			continue
		}
		prefix := "• "
		if ordered {
			prefix = fmt.Sprintf("%d. ", index)
		}
		out.AddParagraph(docx.Paragraph{Runs: append([]docx.Run{{Text: prefix}}, runs...)})
		index++
	}
}

func convertTable(n *html.Node) docx.Table {
	var table docx.Table
	var walkRows func(*html.Node)
	walkRows = func(node *html.Node) {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "tr":
				table.Rows = append(table.Rows, convertRow(c))
			case "thead", "tbody", "tfoot":
				walkRows(c)
			}
		}
	}
	walkRows(n)
	return table
}

func convertRow(tr *html.Node) docx.Row {
	// Rows never split across pages.
	row := docx.Row{CantSplit: true}
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || (c.Data != "td" && c.Data != "th") {
			continue
		}
		state := runState{bold: c.Data == "th"}
		cell := docx.Cell{}
		if runs := collectRuns(c, state); len(runs) > 0 {
			cell.Paragraphs = append(cell.Paragraphs, docx.Paragraph{Runs: runs})
		}
		row.Cells = append(row.Cells, cell)
	}
	return row
}

// collectRuns flattens the inline content of n into formatted runs.
func collectRuns(n *html.Node, state runState) []docx.Run {
	var runs []docx.Run
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if text := collapseSpace(c.Data); text != "" {
				runs = append(runs, docx.Run{Text: text, Bold: state.bold, Italic: state.italic, Size: state.size})
			}
		case html.ElementNode:
			child := state
			switch c.Data {
			case "strong", "b":
				child.bold = true
			case "em", "i":
				child.italic = true
			case "br":
				runs = append(runs, docx.Run{Text: " "})
				continue
			}
			runs = append(runs, collectRuns(c, child)...)
		}
	}
	return trimEdges(runs)
}

// collapseSpace folds runs of whitespace into single spaces while keeping
// one leading/trailing space so adjacent inline runs stay separated.
func collapseSpace(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	out := strings.Join(fields, " ")
	if r := []rune(s); unicode.IsSpace(r[0]) {
		out = " " + out
	}
	if r := []rune(s); unicode.IsSpace(r[len(r)-1]) {
		out = out + " "
	}
	return out
}

func trimEdges(runs []docx.Run) []docx.Run {
	if len(runs) == 0 {
		return runs
	}
	runs[0].Text = strings.TrimLeft(runs[0].Text, " ")
	last := len(runs) - 1
	runs[last].Text = strings.TrimRight(runs[last].Text, " ")
	return runs
}
