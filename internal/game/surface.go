package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/particle-field/internal/paint"
)

// surface draws the field onto an ebiten image with the current paint style.
type surface struct {
	screen *ebiten.Image
	style  paint.Style

	// whiteSub is the 1x1 source for DrawTriangles; vertex colors do the rest.
	white    *ebiten.Image
	whiteSub *ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
}

func newSurface(width, height float64) *surface {
	return &surface{style: paint.NewStyle(width, height)}
}

func (s *surface) setStyle(style paint.Style) { s.style = style }

func (s *surface) Clear() {
	s.screen.Fill(color.Black)
}

// FillCircle fills a circle with the gradient. Every vertex of the circle
// outline takes the gradient color at its own position.
func (s *surface) FillCircle(x, y, r float64) {
	if s.whiteSub == nil {
		s.white = ebiten.NewImage(3, 3)
		s.white.Fill(color.White)
		s.whiteSub = s.white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	var path vector.Path
	path.Arc(float32(x), float32(y), float32(r), 0, 2*math.Pi, vector.Clockwise)
	path.Close()

	s.vertices, s.indices = path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	for i := range s.vertices {
		v := &s.vertices[i]
		c := s.style.Fill.At(float64(v.DstX), float64(v.DstY)).Clamped()
		v.SrcX, v.SrcY = 1, 1
		v.ColorR = float32(c.R)
		v.ColorG = float32(c.G)
		v.ColorB = float32(c.B)
		v.ColorA = 1
	}
	s.screen.DrawTriangles(s.vertices, s.indices, s.whiteSub, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (s *surface) StrokeLine(x0, y0, x1, y1, alpha float64) {
	stroke := paint.RGBA(s.style.Stroke, alpha)
	vector.StrokeLine(s.screen, float32(x0), float32(y0), float32(x1), float32(y1), float32(s.style.LineWidth), stroke, true)
}
