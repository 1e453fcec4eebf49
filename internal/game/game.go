// Package game runs the particle field inside an ebiten window: it turns
// mouse, touch and window size changes into field events and draws one
// field frame per rendered frame.
package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/exp/rand"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/field"
	"github.com/iburimskiy/particle-field/internal/paint"
)

const (
	haloBaseAlpha = 0.08
	haloGain      = 3.0
	haloWidth     = 1
)

type Game struct {
	field   *field.Field
	surface *surface

	// audio, nil when the speaker is unavailable
	cue   *cue
	level float64

	// size the field currently has, and the size ebiten last laid out
	width, height    int
	layoutW, layoutH int

	// input
	cursorX, cursorY int
	touchID          ebiten.TouchID
	touching         bool
}

// NewGame creates a game with a field of the given size. Audio is optional:
// if the speaker cannot start the game runs silently.
func NewGame(width, height int) *Game {
	g := newGame(width, height, nil)

	c, err := newCue()
	if err != nil {
		log.Printf("audio disabled: %v", err)
	} else {
		g.cue = c
	}
	return g
}

func newGame(width, height int, rnd *rand.Rand) *Game {
	return &Game{
		field:   field.New(float64(width), float64(height), rnd),
		surface: newSurface(float64(width), float64(height)),
		width:   width,
		height:  height,
		layoutW: width,
		layoutH: height,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if g.layoutW != g.width || g.layoutH != g.height {
		g.resize(g.layoutW, g.layoutH)
	}

	if applyPointer(g.field, g.pollPointer()) && g.cue != nil {
		g.cue.play()
	}

	g.updateLevel()
	return nil
}

// resize applies a new surface size to the field and rebuilds the paint
// style for it.
func (g *Game) resize(width, height int) {
	g.width, g.height = width, height
	g.field.Resize(float64(width), float64(height))
	g.surface.setStyle(paint.NewStyle(float64(width), float64(height)))
}

func (g *Game) updateLevel() {
	if g.cue == nil {
		return
	}
	g.level = config.SmoothingFactor*g.level + (1-config.SmoothingFactor)*g.cue.tap.level(config.LevelRingSize)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.screen = screen
	g.field.Frame(g.surface)

	g.drawPointerHalo(screen)

	ebitenutil.DebugPrintAt(screen, statusLine(ebiten.ActualFPS(), g.field.Len(), g.field.Pointer.Pressed), 12, 12)
}

// drawPointerHalo outlines the push radius while the pointer is pressed. The
// outline brightens with the audio cue.
func (g *Game) drawPointerHalo(screen *ebiten.Image) {
	p := g.field.Pointer
	if !p.Pressed {
		return
	}
	c := paint.RGBA(g.surface.style.Stroke, haloBaseAlpha+haloGain*g.level)
	vector.StrokeCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Radius), haloWidth, c, true)
}

// Layout sizes the surface to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.width, g.height
	}
	g.layoutW, g.layoutH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Close stops any audio still playing.
func (g *Game) Close() {
	if g.cue != nil {
		g.cue.close()
	}
}
