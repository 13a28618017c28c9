package gradientbuilder

import (
	"math"
	"strconv"
	"strings"
)

// Stop pairs a color with its position along the gradient axis, in
// percent of the gradient line.
type Stop struct {
	Color    RGB     `json:"color"`
	Position float64 `json:"position"`
}

// Gradient describes a CSS linear gradient: an angle in degrees
// (typically [0,360), 0 pointing up and 90 pointing right) and an
// ordered stop list.
type Gradient struct {
	Angle float64 `json:"angle"`
	Stops []Stop  `json:"stops"`
}

// CSS renders the declaration, e.g.
// "linear-gradient(90deg, #ff0000 0%, #0000ff 100%)". Stops appear
// verbatim in list order; nothing is sorted or deduplicated. At least
// one stop is required: an empty list is a caller error and yields a
// declaration no CSS engine accepts.
func (g Gradient) CSS() string {
	var sb strings.Builder
	sb.WriteString("linear-gradient(")
	sb.WriteString(formatNumber(g.Angle))
	sb.WriteString("deg")
	for _, s := range g.Stops {
		sb.WriteString(", ")
		sb.WriteString(s.Color.Hex())
		sb.WriteByte(' ')
		sb.WriteString(formatNumber(s.Position))
		sb.WriteByte('%')
	}
	sb.WriteByte(')')
	return sb.String()
}

// formatNumber renders degrees and percentages the shortest way that
// round-trips: integers bare, fractions with only the digits needed.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// EvenStops spreads colors evenly from 0% to 100% in list order,
// rounded to whole percent. This is the default stop assignment applied
// when palette colors are picked; callers wanting fractional positions
// build the stop list themselves.
func EvenStops(colors []RGB) []Stop {
	if len(colors) == 0 {
		return nil
	}
	stops := make([]Stop, len(colors))
	if len(colors) == 1 {
		stops[0] = Stop{Color: colors[0]}
		return stops
	}
	span := 100.0 / float64(len(colors)-1)
	for i, c := range colors {
		stops[i] = Stop{Color: c, Position: math.Round(float64(i) * span)}
	}
	return stops
}
