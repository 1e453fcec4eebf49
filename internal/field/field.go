// Package field simulates a population of drifting particles that bounce off
// the edges of a surface, get pushed away by a pressed pointer and are joined
// by fading lines when close to each other.
package field

import (
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/iburimskiy/particle-field/internal/config"
)

// Surface is the drawing target of a frame. Paint styles (fill gradient,
// stroke color, line width) belong to the surface; alpha is per stroke so it
// never carries over to later draws.
type Surface interface {
	Clear()
	FillCircle(x, y, r float64)
	StrokeLine(x0, y0, x1, y1, alpha float64)
}

// Pointer is the shared pointer state. Only the pointer handlers below write
// it; only Particle.Update reads it.
type Pointer struct {
	Pos     r2.Vec
	Pressed bool
	Radius  float64
}

// Field owns the particles and the pointer.
type Field struct {
	Width, Height float64
	Particles     []*Particle
	Pointer       Pointer

	rnd *rand.Rand
}

// New creates a field of the given size populated with config.NumParticles
// particles. A nil rnd seeds a source from the clock.
func New(width, height float64, rnd *rand.Rand) *Field {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	f := &Field{
		Width:   width,
		Height:  height,
		Pointer: Pointer{Radius: config.PointerRadius},
		rnd:     rnd,
	}
	f.Particles = make([]*Particle, 0, config.NumParticles)
	for i := 0; i < config.NumParticles; i++ {
		f.Particles = append(f.Particles, newParticle(f))
	}
	return f
}

func (f *Field) Len() int { return len(f.Particles) }

// Frame runs one animation frame on s.
func (f *Field) Frame(s Surface) {
	s.Clear()
	f.ConnectParticles(s)
	f.HandleParticles(s)
}

// HandleParticles draws every particle and then updates it, so each frame
// shows the positions computed on the previous one.
func (f *Field) HandleParticles(s Surface) {
	for _, p := range f.Particles {
		p.Draw(s)
		p.Update()
	}
}

// ConnectParticles strokes a line between every pair closer than
// config.MaxConnectDistance, fading linearly with distance. The inner loop
// starts at i, so every particle is also paired with itself.
func (f *Field) ConnectParticles(s Surface) {
	const maxDistance = config.MaxConnectDistance
	for i := 0; i < len(f.Particles); i++ {
		a := f.Particles[i]
		for j := i; j < len(f.Particles); j++ {
			b := f.Particles[j]
			distance := r2.Norm(r2.Sub(a.Pos, b.Pos))
			if distance < maxDistance {
				s.StrokeLine(a.Pos.X, a.Pos.Y, b.Pos.X, b.Pos.Y, 1-distance/maxDistance)
			}
		}
	}
}

// Resize sets new dimensions and scatters every particle inside them.
func (f *Field) Resize(width, height float64) {
	f.Width = width
	f.Height = height
	for _, p := range f.Particles {
		p.Reset()
	}
}

func (f *Field) PressPointer(x, y float64) {
	f.Pointer.Pressed = true
	f.Pointer.Pos = r2.Vec{X: x, Y: y}
}

// MovePointer tracks the pointer only while it is pressed.
func (f *Field) MovePointer(x, y float64) {
	if f.Pointer.Pressed {
		f.Pointer.Pos = r2.Vec{X: x, Y: y}
	}
}

func (f *Field) ReleasePointer() {
	f.Pointer.Pressed = false
}
