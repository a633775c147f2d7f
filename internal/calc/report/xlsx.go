package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const cutListSheet = "Cut List"

// WriteXLSX writes the cut list followed by the unrounded decimal inches.
func WriteXLSX(w io.Writer, s Sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), cutListSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}

	rows := [][]interface{}{
		{s.Title},
		{"Project", s.Project},
		{"Opening", s.Opening()},
		{},
		{"Piece", "Qty", "Size (in, whole.eighths)"},
	}
	for _, p := range s.Pieces {
		rows = append(rows, []interface{}{p.Name, p.Qty, p.Size})
	}
	m := s.Result.Inches
	rows = append(rows,
		[]interface{}{},
		[]interface{}{"Measurement", "Inches"},
		[]interface{}{"Top/Bottom Track", m.TopBottomTrack},
		[]interface{}{"Side Track", m.SideTrack},
		[]interface{}{"Handle/Interlock", m.HandleInterlock},
		[]interface{}{"Top/Bearing Bottom", m.TopBearingBottom},
		[]interface{}{"Glass Width", m.GlassWidth},
		[]interface{}{"Glass Height", m.GlassHeight},
	)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(cutListSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	for _, c := range []string{"A1", "A5", fmt.Sprintf("A%d", 7+len(s.Pieces))} {
		if err := f.SetCellStyle(cutListSheet, c, c, bold); err != nil {
			return fmt.Errorf("style %s: %w", c, err)
		}
	}
	if err := f.SetColWidth(cutListSheet, "A", "A", 22); err != nil {
		return err
	}
	if err := f.SetColWidth(cutListSheet, "C", "C", 32); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return nil
}
