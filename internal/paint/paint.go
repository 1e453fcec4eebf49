// Package paint builds the fill and stroke styles used to draw the field.
package paint

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/particle-field/internal/config"
)

var (
	White     = colorful.Color{R: 1, G: 1, B: 1}
	Gold      = colorful.Color{R: 1, G: 215.0 / 255, B: 0}
	OrangeRed = colorful.Color{R: 1, G: 69.0 / 255, B: 0}
)

// Stop is a color at an offset in [0,1] along a gradient.
type Stop struct {
	Offset float64
	Color  colorful.Color
}

// Gradient is a linear gradient from (X0,Y0) to (X1,Y1). Stops are sorted by
// offset.
type Gradient struct {
	X0, Y0, X1, Y1 float64
	Stops          []Stop
}

// At returns the gradient color at (x, y). Points are projected onto the
// gradient axis; before the first and after the last stop the end colors
// are used.
func (g Gradient) At(x, y float64) colorful.Color {
	if len(g.Stops) == 0 {
		return colorful.Color{}
	}

	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	var t float64
	if lenSq := dx*dx + dy*dy; lenSq > 0 {
		t = clamp01(((x-g.X0)*dx + (y-g.Y0)*dy) / lenSq)
	}

	first, last := g.Stops[0], g.Stops[len(g.Stops)-1]
	if t <= first.Offset {
		return first.Color
	}
	if t >= last.Offset {
		return last.Color
	}
	for i := 1; i < len(g.Stops); i++ {
		lo, hi := g.Stops[i-1], g.Stops[i]
		if t > hi.Offset {
			continue
		}
		w := hi.Offset - lo.Offset
		if w <= 0 {
			return hi.Color
		}
		return lo.Color.BlendRgb(hi.Color, (t-lo.Offset)/w)
	}
	return last.Color
}

// Style is the paint state of a surface.
type Style struct {
	Fill      Gradient
	Stroke    colorful.Color
	LineWidth float64
}

// NewStyle builds the style for a surface of the given size: a white to gold
// to orangered gradient across the diagonal and a white stroke.
func NewStyle(width, height float64) Style {
	return Style{
		Fill: Gradient{
			X1: width,
			Y1: height,
			Stops: []Stop{
				{Offset: config.StopNear, Color: White},
				{Offset: config.StopMiddle, Color: Gold},
				{Offset: config.StopFar, Color: OrangeRed},
			},
		},
		Stroke:    White,
		LineWidth: config.LineWidth,
	}
}

// RGBA converts c to a color with the given alpha in [0,1], premultiplied
// as image/color expects.
func RGBA(c colorful.Color, alpha float64) color.RGBA {
	alpha = clamp01(alpha)
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{
		R: uint8(math.Round(float64(r) * alpha)),
		G: uint8(math.Round(float64(g) * alpha)),
		B: uint8(math.Round(float64(b) * alpha)),
		A: uint8(math.Round(255 * alpha)),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
