package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/particle-field/internal/field"
)

type pointerKind int

const (
	pointerPress pointerKind = iota
	pointerMove
	pointerRelease
)

type pointerEvent struct {
	kind pointerKind
	x, y float64
}

// pollPointer turns this tick's mouse and touch state into pointer events.
// The left mouse button and the first active touch both drive the pointer.
func (g *Game) pollPointer() []pointerEvent {
	var events []pointerEvent

	mx, my := ebiten.CursorPosition()
	if mx != g.cursorX || my != g.cursorY {
		g.cursorX, g.cursorY = mx, my
		events = append(events, pointerEvent{kind: pointerMove, x: float64(mx), y: float64(my)})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		events = append(events, pointerEvent{kind: pointerPress, x: float64(mx), y: float64(my)})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		events = append(events, pointerEvent{kind: pointerRelease})
	}

	if g.touching {
		if inpututil.IsTouchJustReleased(g.touchID) {
			g.touching = false
			events = append(events, pointerEvent{kind: pointerRelease})
		} else {
			tx, ty := ebiten.TouchPosition(g.touchID)
			events = append(events, pointerEvent{kind: pointerMove, x: float64(tx), y: float64(ty)})
		}
	} else if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		g.touchID, g.touching = ids[0], true
		tx, ty := ebiten.TouchPosition(g.touchID)
		events = append(events, pointerEvent{kind: pointerPress, x: float64(tx), y: float64(ty)})
	}

	return events
}

// applyPointer feeds events to the field in order and reports whether any of
// them was a press.
func applyPointer(f *field.Field, events []pointerEvent) (pressed bool) {
	for _, e := range events {
		switch e.kind {
		case pointerPress:
			f.PressPointer(e.x, e.y)
			pressed = true
		case pointerMove:
			f.MovePointer(e.x, e.y)
		case pointerRelease:
			f.ReleasePointer()
		}
	}
	return pressed
}
