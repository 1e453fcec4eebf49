package game

import "fmt"

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// statusLine is the HUD text shown in the top left corner.
func statusLine(fps float64, particles int, pressed bool) string {
	action := "Press and drag to push"
	if pressed {
		action = "Pushing"
	}
	return fmt.Sprintf("%s | %d particles | %.0f FPS | Esc/Q: Quit", action, particles, fps)
}
