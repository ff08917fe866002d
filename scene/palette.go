package scene

import (
	"fmt"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// reds is the nine-class ColorBrewer Reds scheme, light to dark.
var reds = mustParseScheme(
	"#fff5f0", "#fee0d2", "#fcbba1", "#fc9272", "#fb6a4a",
	"#ef3b2c", "#cb181d", "#a50f15", "#67000d",
)

func mustParseScheme(hexes ...string) []colorful.Color {
	out := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(fmt.Sprintf("scene: bad scheme colour %q: %v", h, err))
		}
		out[i] = c
	}

	return out
}

// Reds maps t in [0, 1] onto a sequential white-to-dark-red ramp and returns
// a CSS colour such as "rgb(252, 146, 114)". Values outside [0, 1] are
// clamped; NaN is treated as 0.
//
// The ramp is a uniform B-spline through the scheme colours, so it is smooth
// and hits the first and last colour exactly at 0 and 1.
func Reds(t float64) string {
	return rgbString(basisSpline(reds, t))
}

// basisSpline evaluates a uniform cubic B-spline through the colours at t.
func basisSpline(values []colorful.Color, t float64) colorful.Color {
	n := len(values) - 1

	var i int
	switch {
	case math.IsNaN(t) || t <= 0:
		t = 0
	case t >= 1:
		t, i = 1, n-1
	default:
		i = int(math.Floor(t * float64(n)))
	}

	v1, v2 := values[i], values[i+1]
	v0 := extrapolate(v1, v2)
	if i > 0 {
		v0 = values[i-1]
	}
	v3 := extrapolate(v2, v1)
	if i < n-1 {
		v3 = values[i+2]
	}

	t1 := (t - float64(i)/float64(n)) * float64(n)

	return colorful.Color{
		R: basis(t1, v0.R, v1.R, v2.R, v3.R),
		G: basis(t1, v0.G, v1.G, v2.G, v3.G),
		B: basis(t1, v0.B, v1.B, v2.B, v3.B),
	}
}

// extrapolate mirrors b through a.
func extrapolate(a, b colorful.Color) colorful.Color {
	return colorful.Color{R: 2*a.R - b.R, G: 2*a.G - b.G, B: 2*a.B - b.B}
}

func basis(t1, v0, v1, v2, v3 float64) float64 {
	t2 := t1 * t1
	t3 := t2 * t1

	return ((1-3*t1+3*t2-t3)*v0 + (4-6*t2+3*t3)*v1 + (1+3*t1+3*t2-3*t3)*v2 + t3*v3) / 6
}

func rgbString(c colorful.Color) string {
	r, g, b := c.Clamped().RGB255()
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

// FormatDistance formats a distance with two decimals. Values that round to
// zero print as "0.00", never "-0.00".
func FormatDistance(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	if s == "-0.00" {
		return "0.00"
	}

	return s
}

// midpoint returns the point halfway between a and b.
func midpoint(a, b float64) float64 {
	lo, hi := math.Min(a, b), math.Max(a, b)
	return lo + (hi-lo)/2
}
