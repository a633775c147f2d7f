package report

import (
	window "Alucut/internal/calc/window"
)

type Input struct {
	window.Input
	Project string `json:"project"`
	Author  string `json:"author"`
	Title   string `json:"title"`
	Notes   string `json:"notes"`
}

// Piece is one line of the cut sheet. Quantities are for the two-shutter,
// two-pane window.
type Piece struct {
	Name string
	Qty  int
	Size string
}

type Sheet struct {
	Input
	Result window.Result
	Pieces []Piece
}

func NewSheet(in Input) (Sheet, error) {
	res, err := window.Calculate(in.Input)
	if err != nil {
		return Sheet{}, err
	}
	if in.Title == "" {
		in.Title = "Window Cut List"
	}
	return Sheet{
		Input:  in,
		Result: res,
		Pieces: []Piece{
			{"Top/Bottom Track", 2, res.TopBottomTrack},
			{"Side Track", 2, res.SideTrack},
			{"Handle/Interlock", 4, res.HandleInterlock},
			{"Top/Bearing Bottom", 4, res.TopBearingBottom},
			{"Glass", 2, res.GlassDimensions},
		},
	}, nil
}

func (s Sheet) Opening() string {
	return window.FormatEighths(s.Result.Inches.TotalWidth) + " (Width) x " +
		window.FormatEighths(s.Result.Inches.TotalHeight) + " (Height)"
}
