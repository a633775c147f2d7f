package window

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	res, err := Calculate(Input{Width: "72.5", Height: "48.25"})
	require.NoError(t, err)

	assert.Equal(t, "72.4", res.TopBottomTrack)
	assert.Equal(t, "48.2", res.SideTrack)
	assert.Equal(t, "46.6", res.HandleInterlock)
	assert.Equal(t, "33.1", res.TopBearingBottom)
	assert.Equal(t, "33.5", res.GlassWidth)
	assert.Equal(t, "43.6", res.GlassHeight)
	assert.Equal(t, "33.5 (Width) x 43.6 (Height)", res.GlassDimensions)

	assert.Equal(t, 46.75, res.Inches.HandleInterlock)
	assert.Equal(t, 33.125, res.Inches.TopBearingBottom)
	assert.Equal(t, 43.75, res.Inches.GlassHeight)
	assert.Equal(t, 33.625, res.Inches.GlassWidth)
}

func TestCalculateSmallOpening(t *testing.T) {
	res, err := Calculate(Input{Width: "10", Height: "1"})
	require.NoError(t, err)

	assert.Equal(t, "1.7", res.TopBearingBottom)
	assert.Equal(t, "-1.4", res.HandleInterlock)
	assert.Equal(t, "-4.4", res.GlassHeight)
	assert.Equal(t, "2.3", res.GlassWidth)
	assert.Equal(t, "2.3 (Width) x -4.4 (Height)", res.GlassDimensions)
}

func TestCalculateTrailingText(t *testing.T) {
	res, err := Calculate(Input{Width: "36in", Height: " 60 inches"})
	require.NoError(t, err)
	assert.Equal(t, "36.0", res.TopBottomTrack)
	assert.Equal(t, "60.0", res.SideTrack)
}

func TestCalculateInfinityHasNoValue(t *testing.T) {
	res, err := Calculate(Input{Width: "Infinity", Height: "10"})
	require.NoError(t, err)
	assert.Equal(t, "", res.TopBottomTrack)
	assert.Equal(t, "10.0", res.SideTrack)
	assert.Equal(t, " (Width) x 5.4 (Height)", res.GlassDimensions)
}

func TestCalculateInvalid(t *testing.T) {
	tests := []struct {
		name          string
		width, height string
	}{
		{"non numeric width", "abc", "10"},
		{"non numeric height", "10", "abc"},
		{"empty", "", ""},
		{"zero width", "0", "10"},
		{"zero height", "10", "0"},
		{"negative width", "-5", "10"},
		{"negative height", "10", "-0.1"},
		{"sign only", "-", "10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Calculate(Input{Width: tt.width, Height: tt.height})
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.EqualError(t, err, "Please enter valid, positive numbers for both width and height.")
			assert.Equal(t, Result{}, res)
		})
	}
}

func TestMeasure(t *testing.T) {
	m := Measure(100, 80)
	assert.Equal(t, Measurements{
		TotalWidth:       100,
		TotalHeight:      80,
		TopBottomTrack:   100,
		SideTrack:        80,
		HandleInterlock:  78.5,
		TopBearingBottom: 46.875,
		GlassWidth:       47.375,
		GlassHeight:      75.5,
	}, m)
}

func TestMeasurementsJSONNonFinite(t *testing.T) {
	b, err := json.Marshal(Measure(math.Inf(1), 10))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"total_width": null,
		"total_height": 10,
		"top_bottom_track": null,
		"side_track": 10,
		"handle_interlock": 8.5,
		"top_bearing_bottom": null,
		"glass_width": null,
		"glass_height": 5.5
	}`, string(b))
}
