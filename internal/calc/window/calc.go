package window

import (
	"encoding/json"
	"errors"
	"math"
)

// Allowances for the 2-shutter sliding window, in inches.
const (
	InterlockClearance = 1.5
	ShutterAllowance   = 6.25
	GlassReveal        = 3.0
	GlassOverlap       = 0.5
)

var ErrInvalidInput = errors.New("Please enter valid, positive numbers for both width and height.")

type Input struct {
	Width  string `json:"width"`
	Height string `json:"height"`
}

// Measurements are the unformatted cut lengths in inches.
type Measurements struct {
	TotalWidth       float64 `json:"total_width"`
	TotalHeight      float64 `json:"total_height"`
	TopBottomTrack   float64 `json:"top_bottom_track"`
	SideTrack        float64 `json:"side_track"`
	HandleInterlock  float64 `json:"handle_interlock"`
	TopBearingBottom float64 `json:"top_bearing_bottom"`
	GlassWidth       float64 `json:"glass_width"`
	GlassHeight      float64 `json:"glass_height"`
}

// MarshalJSON writes non-finite lengths as null.
func (m Measurements) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		TotalWidth       *float64 `json:"total_width"`
		TotalHeight      *float64 `json:"total_height"`
		TopBottomTrack   *float64 `json:"top_bottom_track"`
		SideTrack        *float64 `json:"side_track"`
		HandleInterlock  *float64 `json:"handle_interlock"`
		TopBearingBottom *float64 `json:"top_bearing_bottom"`
		GlassWidth       *float64 `json:"glass_width"`
		GlassHeight      *float64 `json:"glass_height"`
	}{
		finite(m.TotalWidth),
		finite(m.TotalHeight),
		finite(m.TopBottomTrack),
		finite(m.SideTrack),
		finite(m.HandleInterlock),
		finite(m.TopBearingBottom),
		finite(m.GlassWidth),
		finite(m.GlassHeight),
	})
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

type Result struct {
	TopBottomTrack   string       `json:"top_bottom_track"`
	SideTrack        string       `json:"side_track"`
	HandleInterlock  string       `json:"handle_interlock"`
	TopBearingBottom string       `json:"top_bearing_bottom"`
	GlassWidth       string       `json:"glass_width"`
	GlassHeight      string       `json:"glass_height"`
	GlassDimensions  string       `json:"glass_dimensions"`
	Inches           Measurements `json:"inches"`
}

func Calculate(in Input) (Result, error) {
	width := ParseLeadingFloat(in.Width)
	height := ParseLeadingFloat(in.Height)
	if math.IsNaN(width) || math.IsNaN(height) || width <= 0 || height <= 0 {
		return Result{}, ErrInvalidInput
	}
	m := Measure(width, height)

	glassWidth := FormatEighths(m.GlassWidth)
	glassHeight := FormatEighths(m.GlassHeight)
	return Result{
		TopBottomTrack:   FormatEighths(m.TopBottomTrack),
		SideTrack:        FormatEighths(m.SideTrack),
		HandleInterlock:  FormatEighths(m.HandleInterlock),
		TopBearingBottom: FormatEighths(m.TopBearingBottom),
		GlassWidth:       glassWidth,
		GlassHeight:      glassHeight,
		GlassDimensions:  glassWidth + " (Width) x " + glassHeight + " (Height)",
		Inches:           m,
	}, nil
}

// Measure derives the cut lengths from an opening. It does not validate:
// small openings give negative pipe and glass lengths.
func Measure(totalWidth, totalHeight float64) Measurements {
	handleInterlock := totalHeight - InterlockClearance
	topBearingBottom := (totalWidth - ShutterAllowance) / 2
	return Measurements{
		TotalWidth:       totalWidth,
		TotalHeight:      totalHeight,
		TopBottomTrack:   totalWidth,
		SideTrack:        totalHeight,
		HandleInterlock:  handleInterlock,
		TopBearingBottom: topBearingBottom,
		GlassWidth:       topBearingBottom + GlassOverlap,
		GlassHeight:      handleInterlock - GlassReveal,
	}
}
