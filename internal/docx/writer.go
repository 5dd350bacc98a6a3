// Package docx writes minimal WordprocessingML documents: a zip container
// with the content-types part, the package relationships and a single
// word/document.xml. No header or footer parts are emitted.
package docx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
)

// Run is a span of text with uniform formatting. Size is in half-points;
// zero means the document default.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	Size   int
}

// Paragraph is a block of runs.
type Paragraph struct {
	Runs []Run
}

// Cell holds the paragraphs of one table cell.
type Cell struct {
	Paragraphs []Paragraph
}

// Row is one table row. CantSplit keeps the row on a single page.
type Row struct {
	Cells     []Cell
	CantSplit bool
}

// Table is a grid of rows.
type Table struct {
	Rows []Row
}

type block interface {
	writeXML(sb *strings.Builder)
}

// Document accumulates blocks in order and serializes them into a DOCX
// container.
type Document struct {
	blocks []block
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{}
}

// AddParagraph appends a paragraph block.
func (d *Document) AddParagraph(p Paragraph) {
	d.blocks = append(d.blocks, p)
}

// AddTable appends a table block.
func (d *Document) AddTable(t Table) {
	d.blocks = append(d.blocks, t)
}

// Empty reports whether no blocks have been added.
func (d *Document) Empty() bool {
	return len(d.blocks) == 0
}

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

// Bytes serializes the document into its binary DOCX form.
func (d *Document) Bytes() ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	sb.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, b := range d.blocks {
		b.writeXML(&sb)
	}
	sb.WriteString(`<w:sectPr><w:pgSz w:w="11906" w:h="16838"/></w:sectPr>`)
	sb.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	parts := []struct {
		name    string
		content string
	}{
		{"[Content_Types].xml", contentTypesXML},
		{"_rels/.rels", relsXML},
		{"word/document.xml", sb.String()},
	}
	for _, part := range parts {
		f, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("failed to create part %s: %w", part.name, err)
		}
		if _, err := f.Write([]byte(part.content)); err != nil {
			return nil, fmt.Errorf("failed to write part %s: %w", part.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize container: %w", err)
	}
	return buf.Bytes(), nil
}

func (p Paragraph) writeXML(sb *strings.Builder) {
	sb.WriteString("<w:p>")
	for _, r := range p.Runs {
		r.writeXML(sb)
	}
	sb.WriteString("</w:p>")
}

func (r Run) writeXML(sb *strings.Builder) {
	sb.WriteString("<w:r>")
	if r.Bold || r.Italic || r.Size > 0 {
		sb.WriteString("<w:rPr>")
		if r.Bold {
			sb.WriteString("<w:b/>")
		}
		if r.Italic {
			sb.WriteString("<w:i/>")
		}
		if r.Size > 0 {
			fmt.Fprintf(sb, `<w:sz w:val="%d"/>`, r.Size)
		}
		sb.WriteString("</w:rPr>")
	}
	sb.WriteString(`<w:t xml:space="preserve">`)
	sb.WriteString(escapeXML(r.Text))
	sb.WriteString("</w:t></w:r>")
}

func (t Table) writeXML(sb *strings.Builder) {
	sb.WriteString(`<w:tbl><w:tblPr><w:tblBorders>` +
		`<w:top w:val="single" w:sz="4"/>` +
		`<w:bottom w:val="single" w:sz="4"/>` +
		`<w:left w:val="single" w:sz="4"/>` +
		`<w:right w:val="single" w:sz="4"/>` +
		`<w:insideH w:val="single" w:sz="4"/>` +
		`<w:insideV w:val="single" w:sz="4"/>` +
		`</w:tblBorders></w:tblPr>`)
	for _, row := range t.Rows {
		sb.WriteString("<w:tr>")
		if row.CantSplit {
			sb.WriteString("<w:trPr><w:cantSplit/></w:trPr>")
		}
		for _, cell := range row.Cells {
			sb.WriteString("<w:tc>")
			if len(cell.Paragraphs) == 0 {
				// A cell must contain at least one paragraph.
				sb.WriteString("<w:p/>")
			}
			for _, p := range cell.Paragraphs {
				p.writeXML(sb)
			}
			sb.WriteString("</w:tc>")
		}
		sb.WriteString("</w:tr>")
	}
	sb.WriteString("</w:tbl>")
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escapeXML(s string) string {
	return xmlReplacer.Replace(s)
}
