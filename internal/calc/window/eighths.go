package window

import (
	"math"
	"strconv"
)

// FormatEighths renders inches in whole.eighths notation: 33.125 becomes
// "33.1" and 46.75 becomes "46.6". The whole part is floored, so -0.5 is
// "-1.4". A fraction that rounds up to a full inch is not carried and prints
// as ".8". Non-finite values format as "".
func FormatEighths(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return ""
	}
	whole := math.Floor(value)
	numerator := math.Round((value - whole) * 8)
	if whole == 0 {
		whole = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(whole, 'f', 0, 64) + "." + strconv.Itoa(int(numerator))
}
