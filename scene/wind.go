package scene

import "math"

const windRate = 0.02

// Wind is the slowly varying breeze that pushes valley leaves and drives
// the ambience gain.
type Wind struct {
	Strength  float64 // 0..1
	Direction float64 // radians on the x/z plane
	Gust      float64
}

// Step advances the gust clock by rate.
func (w *Wind) Step(rate float64) {
	w.Gust += rate
	w.Strength = 0.5 * (1 + math.Sin(0.7*w.Gust)) * (0.6 + 0.4*math.Sin(0.23*w.Gust))
	w.Direction += rate * 0.05
}

// Offset returns the horizontal leaf displacement for the current wind.
func (w Wind) Offset() (dx, dz float64) {
	return 30 * w.Strength * math.Cos(w.Direction), 30 * w.Strength * math.Sin(w.Direction)
}
