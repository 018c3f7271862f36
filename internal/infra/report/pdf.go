package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"

	domain "github.com/bryanwahyu/automaton-legal/internal/domain/report"
)

// PDF lays reports out on A4 pages with the core Arial font.
type PDF struct {
	FontSize float64
	// LineHeight of wrapped body lines, in mm.
	LineHeight float64
	// Compress the page streams. Off makes the text greppable.
	Compress bool
}

// NewPDF returns a renderer with the default layout.
func NewPDF(compress bool) *PDF {
	return &PDF{FontSize: 12, LineHeight: 10, Compress: compress}
}

func (p *PDF) ContentType() string { return "application/pdf" }
func (p *PDF) Extension() string   { return ".pdf" }

// Render writes r as a PDF to w. Title first, then per section a wrapped bold
// label and one wrapped paragraph per text line.
func (p *PDF) Render(w io.Writer, r domain.Report) error {
	size, lh := p.FontSize, p.LineHeight
	if size <= 0 {
		size = 12
	}
	if lh <= 0 {
		lh = 10
	}

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCompression(p.Compress)
	doc.SetAutoPageBreak(true, 15)
	doc.AddPage()

	title, err := Latin1(r.Title)
	if err != nil {
		return fmt.Errorf("%w: title: %v", domain.ErrRender, err)
	}
	doc.SetFont("Arial", "", size)
	doc.CellFormat(0, lh, title, "", 1, "C", false, 0, "")
	doc.Ln(lh)

	for i, sec := range r.Sections {
		if sec.Label != "" {
			label, err := Latin1(sec.Label)
			if err != nil {
				return fmt.Errorf("%w: section %d label: %v", domain.ErrRender, i, err)
			}
			doc.SetFont("Arial", "B", size)
			doc.MultiCell(0, lh, label, "", "L", false)
			doc.SetFont("Arial", "", size)
		}
		body, err := Latin1(sec.Text)
		if err != nil {
			return fmt.Errorf("%w: section %d: %v", domain.ErrRender, i, err)
		}
		for _, line := range splitLines(body) {
			doc.MultiCell(0, lh, line, "", "L", false)
		}
		doc.Ln(lh / 2)
	}

	if doc.Err() {
		return fmt.Errorf("%w: %v", domain.ErrRender, doc.Error())
	}
	if err := doc.Output(w); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRender, err)
	}
	return nil
}

func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}
