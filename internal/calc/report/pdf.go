package report

import (
	"fmt"
	"io"
	"time"

	"github.com/phpdave11/gofpdf"
)

// WritePDF renders the sheet as a one page A4 cut list.
func WritePDF(w io.Writer, s Sheet, now time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(s.Title, true)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, s.Title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	if s.Project != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Project: %s", s.Project))
		pdf.Ln(6)
	}
	if s.Author != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Author: %s", s.Author))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", now.Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Opening: %s", s.Opening()))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(70, 8, "Piece", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(90, 8, "Size (in, whole.eighths)", "1", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, p := range s.Pieces {
		pdf.CellFormat(70, 7, p.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", p.Qty), "1", 0, "C", false, 0, "")
		pdf.CellFormat(90, 7, p.Size, "1", 1, "L", false, 0, "")
	}

	if s.Notes != "" {
		pdf.Ln(6)
		pdf.MultiCell(0, 6, s.Notes, "", "L", false)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}
