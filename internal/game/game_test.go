package game

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/faiface/beep"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/iburimskiy/particle-field/internal/config"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	return newGame(800, 600, rand.New(rand.NewSource(1)))
}

func TestApplyPointer(t *testing.T) {
	tests := []struct {
		name        string
		events      []pointerEvent
		wantPressed bool
		wantPos     r2.Vec
		wantPress   bool
	}{
		{
			name:   "Move without press is ignored",
			events: []pointerEvent{{kind: pointerMove, x: 10, y: 10}},
		},
		{
			name:        "Press sets position",
			events:      []pointerEvent{{kind: pointerPress, x: 20, y: 30}},
			wantPressed: true,
			wantPos:     r2.Vec{X: 20, Y: 30},
			wantPress:   true,
		},
		{
			name: "Drag follows pointer",
			events: []pointerEvent{
				{kind: pointerPress, x: 20, y: 30},
				{kind: pointerMove, x: 40, y: 50},
			},
			wantPressed: true,
			wantPos:     r2.Vec{X: 40, Y: 50},
			wantPress:   true,
		},
		{
			name: "Release keeps last position",
			events: []pointerEvent{
				{kind: pointerPress, x: 20, y: 30},
				{kind: pointerRelease},
				{kind: pointerMove, x: 90, y: 90},
			},
			wantPos:   r2.Vec{X: 20, Y: 30},
			wantPress: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t)
			pressed := applyPointer(g.field, tt.events)

			if pressed != tt.wantPress {
				t.Errorf("Expected press reported %v, got %v", tt.wantPress, pressed)
			}
			if g.field.Pointer.Pressed != tt.wantPressed {
				t.Errorf("Expected pointer pressed %v, got %v", tt.wantPressed, g.field.Pointer.Pressed)
			}
			if g.field.Pointer.Pos != tt.wantPos {
				t.Errorf("Expected pointer at %+v, got %+v", tt.wantPos, g.field.Pointer.Pos)
			}
		})
	}
}

func TestLayoutTriggersResize(t *testing.T) {
	g := newTestGame(t)

	w, h := g.Layout(320, 240)
	if w != 320 || h != 240 {
		t.Fatalf("Layout returned %dx%d, want 320x240", w, h)
	}
	if g.field.Width != 800 {
		t.Fatal("Field should not resize before the next update")
	}

	g.resize(g.layoutW, g.layoutH)

	if g.field.Width != 320 || g.field.Height != 240 {
		t.Errorf("Expected field 320x240, got %fx%f", g.field.Width, g.field.Height)
	}
	if g.surface.style.Fill.X1 != 320 || g.surface.style.Fill.Y1 != 240 {
		t.Errorf("Gradient not rebuilt for new size: %+v", g.surface.style.Fill)
	}
	if g.field.Len() != config.NumParticles {
		t.Errorf("Particle count changed to %d", g.field.Len())
	}
	for i, p := range g.field.Particles {
		if p.Pos.X < p.Radius || p.Pos.X > 320-p.Radius || p.Pos.Y < p.Radius || p.Pos.Y > 240-p.Radius {
			t.Errorf("particle %d outside new bounds: %+v", i, p.Pos)
		}
	}
}

func TestLayoutIgnoresEmptyWindow(t *testing.T) {
	g := newTestGame(t)
	w, h := g.Layout(0, 0)
	if w != 800 || h != 600 {
		t.Errorf("Expected previous size 800x600, got %dx%d", w, h)
	}
	if g.layoutW != 800 || g.layoutH != 600 {
		t.Errorf("Pending size should be unchanged, got %dx%d", g.layoutW, g.layoutH)
	}
}

func TestLevelTapSnapshot(t *testing.T) {
	next := 0.0
	src := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			next++
			samples[i][0], samples[i][1] = next, next
		}
		return len(samples), true
	})
	tap := newLevelTap(src, 4)

	buf := make([][2]float64, 6)
	if n, ok := tap.Stream(buf); n != 6 || !ok {
		t.Fatalf("Stream returned %d, %v", n, ok)
	}

	got := tap.snapshot(3)
	want := []float64{4, 5, 6}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("snapshot = %v, want %v", got, want)
		}
	}

	if got := tap.snapshot(10); len(got) != 4 || got[0] != 3 || got[3] != 6 {
		t.Errorf("snapshot past ring size = %v, want [3 4 5 6]", got)
	}
}

func TestLevelTapRMS(t *testing.T) {
	src := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i][0], samples[i][1] = 0.5, -0.5
			if i%2 == 1 {
				samples[i][0], samples[i][1] = 0.3, 0.3
			}
		}
		return len(samples), true
	})
	tap := newLevelTap(src, 8)
	if lvl := tap.level(8); lvl != 0 {
		t.Errorf("Expected silence before streaming, got %f", lvl)
	}

	tap.Stream(make([][2]float64, 8))
	// mono samples alternate 0 and 0.3
	want := math.Sqrt(0.09 / 2)
	if lvl := tap.level(8); math.Abs(lvl-want) > 1e-9 {
		t.Errorf("Expected level %f, got %f", want, lvl)
	}
}

func TestPushToneDecays(t *testing.T) {
	sr := beep.SampleRate(1000)
	tone := pushTone(sr, 50, 100*time.Millisecond, 0.5)

	buf := make([][2]float64, 64)
	total := 0
	peakFirst, peakLast := 0.0, 0.0
	for {
		n, ok := tone.Stream(buf)
		if !ok {
			break
		}
		for i := 0; i < n; i++ {
			v := math.Abs(buf[i][0])
			if v > 0.5 {
				t.Fatalf("sample %d exceeds volume: %f", total+i, v)
			}
			if total+i < 20 {
				peakFirst = math.Max(peakFirst, v)
			}
			if total+i >= 80 {
				peakLast = math.Max(peakLast, v)
			}
		}
		total += n
	}

	if total != 100 {
		t.Errorf("Expected 100 samples, got %d", total)
	}
	if peakLast >= peakFirst {
		t.Errorf("Expected tone to decay, first peak %f, last peak %f", peakFirst, peakLast)
	}
}

func TestStatusLine(t *testing.T) {
	idle := statusLine(59.6, 200, false)
	if !strings.Contains(idle, "Press and drag") || !strings.Contains(idle, "200 particles") || !strings.Contains(idle, "60 FPS") {
		t.Errorf("Unexpected idle status %q", idle)
	}
	if busy := statusLine(60, 200, true); !strings.HasPrefix(busy, "Pushing") {
		t.Errorf("Unexpected pushing status %q", busy)
	}
}
