// Package report turns a form document into the printable emergency report.
package report

import (
	"io"
	"strings"

	"fireReport/pkg/e"

	"github.com/go-pdf/fpdf"
)

// Page geometry in millimetres, A4 portrait.
const (
	MarginTop    = 20.0
	MarginBottom = 20.0
	MarginLeft   = 15.0
	MarginRight  = 15.0

	TitleFontSize        = 16.0
	OrganizationFontSize = 14.0
	SectionFontSize      = 12.0
	TableFontSize        = 10.0

	LineWidth        = 0.2
	DefaultRowHeight = 8.0
	TableGap         = 5.0

	sectionHeight = 8.0
	noteLineH     = 6.0
	textBaseline  = 5.5
	fontFamily    = "Helvetica"
)

// Renderer draws onto an A4 document with a manual vertical cursor.
type Renderer struct {
	pdf *fpdf.Fpdf
	tr  func(string) string

	y          float64
	pageWidth  float64
	pageHeight float64
}

func NewRenderer() *Renderer {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(MarginLeft, MarginTop, MarginRight)
	pdf.SetAutoPageBreak(false, MarginBottom)
	pdf.SetTitle(Title, true)
	pdf.SetCreator(Organization, true)
	pdf.SetFont(fontFamily, "", TableFontSize)
	pdf.AddPage()

	w, h := pdf.GetPageSize()
	return &Renderer{
		pdf:        pdf,
		tr:         pdf.UnicodeTranslatorFromDescriptor(""),
		y:          MarginTop,
		pageWidth:  w,
		pageHeight: h,
	}
}

// Cursor returns the current vertical position.
func (r *Renderer) Cursor() float64 { return r.y }

func (r *Renderer) PageCount() int { return r.pdf.PageCount() }

// PageBreakIfNeeded starts a new page when a block of height would cross the
// bottom margin.
func (r *Renderer) PageBreakIfNeeded(height float64) bool {
	if r.y+height > r.pageHeight-MarginBottom {
		r.pdf.AddPage()
		r.y = MarginTop
		return true
	}
	return false
}

func (r *Renderer) centered(text string, size float64) {
	r.pdf.SetFontSize(size)
	s := r.tr(text)
	r.pdf.Text((r.pageWidth-r.pdf.GetStringWidth(s))/2, r.y, s)
}

func (r *Renderer) RenderHeader() {
	r.centered(Title, TitleFontSize)
	r.y += 10

	r.centered(Organization, OrganizationFontSize)
	r.y += 15

	r.pdf.SetFontSize(TableFontSize)
}

func (r *Renderer) RenderSectionTitle(title string) {
	r.PageBreakIfNeeded(sectionHeight)

	r.pdf.SetFont(fontFamily, "B", SectionFontSize)
	r.pdf.Text(MarginLeft, r.y+textBaseline, r.tr(title))
	r.pdf.SetFont(fontFamily, "", TableFontSize)
	r.y += sectionHeight
}

// RenderTable draws a ruled grid with centred cells. The page break check
// covers the whole table once: a table taller than the free space starts on
// a new page, and one taller than a page runs past the bottom margin.
func (r *Renderer) RenderTable(rows [][]string, widths []float64, rowHeight float64) {
	if rowHeight <= 0 {
		rowHeight = DefaultRowHeight
	}

	r.pdf.SetFontSize(TableFontSize)
	r.pdf.SetLineWidth(LineWidth)

	startX := MarginLeft
	var totalWidth float64
	for _, w := range widths {
		totalWidth += w
	}

	r.PageBreakIfNeeded(float64(len(rows)) * rowHeight)

	for _, row := range rows {
		x := startX
		r.pdf.Line(startX, r.y, startX+totalWidth, r.y)

		for i, w := range widths {
			r.pdf.Line(x, r.y, x, r.y+rowHeight)

			cell := Placeholder
			if i < len(row) && strings.TrimSpace(row[i]) != "" {
				cell = row[i]
			}
			s := r.tr(cell)
			r.pdf.Text(x+(w-r.pdf.GetStringWidth(s))/2, r.y+textBaseline, s)
			x += w
		}

		r.pdf.Line(x, r.y, x, r.y+rowHeight)
		r.y += rowHeight
	}

	r.pdf.Line(startX, r.y, startX+totalWidth, r.y)
	r.y += TableGap
}

// RenderNotes wraps free text to the content width, breaking pages per line.
func (r *Renderer) RenderNotes(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	r.pdf.SetFontSize(TableFontSize)
	width := r.pageWidth - MarginLeft - MarginRight
	for _, line := range r.pdf.SplitText(r.tr(text), width) {
		r.PageBreakIfNeeded(noteLineH)
		r.pdf.Text(MarginLeft, r.y+textBaseline-1, line)
		r.y += noteLineH
	}
	r.y += TableGap
}

func (r *Renderer) RenderReport(rep Report) {
	r.RenderHeader()
	for _, t := range rep.Tables {
		r.RenderSectionTitle(t.Title)
		r.RenderTable(t.Grid(), t.Widths, DefaultRowHeight)
	}
	if strings.TrimSpace(rep.Notes) != "" {
		r.RenderSectionTitle("Observaciones")
		r.RenderNotes(rep.Notes)
	}
}

// Output writes the finished PDF.
func (r *Renderer) Output(w io.Writer) error {
	if err := r.pdf.Output(w); err != nil {
		return e.Wrap("report.Output", err)
	}
	return nil
}
