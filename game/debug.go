package game

// DebugState holds the overlay toggles
type DebugState struct {
	ShowOverlay bool // F1: TPS/FPS, triangle count, figure and camera
	ShowGrid    bool // F2: prop grid cells around the figure
}

// Toggle flips the overlay and reports the new state
func (d *DebugState) Toggle() bool {
	d.ShowOverlay = !d.ShowOverlay
	return d.ShowOverlay
}
