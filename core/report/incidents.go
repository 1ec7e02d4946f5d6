package report

import (
	"fmt"
	"io"
	"strconv"

	"inventory-control/core/inventory"

	"github.com/go-pdf/fpdf"
)

const (
	// PDFFileName is the suggested download name for the incident report.
	PDFFileName = "reporte_incidentes.pdf"
	// Title is printed at the top of the first page.
	Title = "Reporte de Incidencias - Inventario"
)

// Page geometry, in millimetres on A4 portrait.
const (
	MarginX    = 14.0
	TitleY     = 20.0
	FirstLineY = 30.0
	LineStep   = 8.0
	BreakY     = 270.0
	PageTopY   = 20.0
	FontSize   = 14.0
)

// IncidentLine formats one numbered report line. idx is zero based.
func IncidentLine(idx int, inc inventory.Incident) string {
	return fmt.Sprintf("%d. [%s] %s — esperado: %s — actual: %s",
		idx+1, inc.Type, inc.Code, qtyOrDash(inc.Expected), qtyOrDash(inc.Actual))
}

func qtyOrDash(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

// Placement is a line of text positioned on a page. Page is one based; Y is the
// text baseline.
type Placement struct {
	Page int
	Y    float64
	Text string
}

// Layout is the paginated incident report.
type Layout struct {
	Pages int
	Lines []Placement
}

// Paginate positions every incident line. Lines advance by LineStep from FirstLineY;
// once the cursor passes BreakY the next line starts a new page at PageTopY.
// A page is only opened when a line needs it.
func Paginate(incidents []inventory.Incident) Layout {
	layout := Layout{Pages: 1, Lines: make([]Placement, 0, len(incidents))}
	y := FirstLineY
	for i, inc := range incidents {
		if y > BreakY {
			layout.Pages++
			y = PageTopY
		}
		layout.Lines = append(layout.Lines, Placement{Page: layout.Pages, Y: y, Text: IncidentLine(i, inc)})
		y += LineStep
	}
	return layout
}

// WriteIncidentsPDF renders the incident report as a PDF document.
func WriteIncidentsPDF(w io.Writer, incidents []inventory.Incident) error {
	layout := Paginate(incidents)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(Title, true)
	pdf.SetFont("Helvetica", "", FontSize)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.Text(MarginX, TitleY, tr(Title))

	page := 1
	for _, line := range layout.Lines {
		for page < line.Page {
			pdf.AddPage()
			page++
		}
		pdf.Text(MarginX, line.Y, tr(line.Text))
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("pdf: render incident report: %w", err)
	}
	return nil
}
