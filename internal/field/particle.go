package field

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/iburimskiy/particle-field/internal/config"
)

// Particle is a single drifting circle. Its position stays inside the owning
// field's bounds shrunk by Radius on every side.
type Particle struct {
	Radius   float64
	Pos      r2.Vec
	Vel      r2.Vec
	Push     r2.Vec
	Friction float64

	field *Field
}

func newParticle(f *Field) *Particle {
	p := &Particle{
		Radius:   math.Floor(f.rnd.Float64()*config.MaxParticleRadius + 1),
		Friction: config.Friction,
		field:    f,
	}
	p.Reset()
	p.Vel = r2.Vec{
		X: f.rnd.Float64()*2*config.MaxParticleSpeed - config.MaxParticleSpeed,
		Y: f.rnd.Float64()*2*config.MaxParticleSpeed - config.MaxParticleSpeed,
	}
	return p
}

// Update advances the particle by one frame: pointer repulsion, push decay,
// integration and boundary reflection.
func (p *Particle) Update() {
	ptr := &p.field.Pointer
	if ptr.Pressed {
		d := r2.Sub(p.Pos, ptr.Pos)
		distance := r2.Norm(d)
		if distance < ptr.Radius {
			force := ptr.Radius / math.Max(distance, config.MinPushDistance)
			angle := math.Atan2(d.Y, d.X)
			p.Push = r2.Add(p.Push, r2.Vec{X: math.Cos(angle) * force, Y: math.Sin(angle) * force})
		}
	}

	p.Push = r2.Scale(p.Friction, p.Push)
	p.Pos = r2.Add(p.Pos, r2.Add(p.Push, p.Vel))

	p.Pos.X, p.Vel.X = reflectAxis(p.Pos.X, p.Vel.X, p.Radius, p.field.Width)
	p.Pos.Y, p.Vel.Y = reflectAxis(p.Pos.Y, p.Vel.Y, p.Radius, p.field.Height)
}

// reflectAxis clamps pos to [r, extent-r] and flips vel when a clamp happened.
func reflectAxis(pos, vel, r, extent float64) (float64, float64) {
	if pos < r {
		return r, -vel
	}
	if pos > extent-r {
		return extent - r, -vel
	}
	return pos, vel
}

func (p *Particle) Draw(s Surface) {
	s.FillCircle(p.Pos.X, p.Pos.Y, p.Radius)
}

// Reset places the particle at a random spot inside the owning field's
// current bounds. Velocity, push and radius are kept.
func (p *Particle) Reset() {
	p.Pos = r2.Vec{
		X: p.Radius + p.field.rnd.Float64()*span(p.field.Width, p.Radius),
		Y: p.Radius + p.field.rnd.Float64()*span(p.field.Height, p.Radius),
	}
}

func span(extent, r float64) float64 {
	return math.Max(0, extent-2*r)
}
