package scene

import "strings"

// Controls returns the control summary printed at startup.
func Controls(v Variant) string {
	var b strings.Builder
	switch v {
	case VariantAthlete:
		b.WriteString("=== REALISTIC MAN - CROUCH & SPRINT ===\n")
		b.WriteString("Movement: hold WASD\n")
		b.WriteString("Crouch: hold Shift\n")
		b.WriteString("Sprint: hold Ctrl\n")
		b.WriteString("Zoom: Up/Down arrows or right click + drag\n")
		b.WriteString("Rotate camera: Left/Right arrows or left click + drag\n")
	case VariantClassic:
		b.WriteString("=== AUTUMN SCENE ===\n")
		b.WriteString("Movement: WASD or Left/Right arrows\n")
		b.WriteString("Zoom: Up/Down arrows or right click + drag\n")
		b.WriteString("Rotate camera: left click + drag\n")
	default:
		b.WriteString("=== AUTUMN VALLEY ===\n")
		b.WriteString("Movement: WASD or Left/Right arrows\n")
		b.WriteString("Zoom: Up/Down arrows or right click + drag\n")
		b.WriteString("Rotate camera: left click + drag (vertical drag tilts)\n")
		b.WriteString("Toggle top-down view: V\n")
	}
	b.WriteString("Debug overlay: F1, grid info: F2\n")
	b.WriteString("ESC: exit")
	return b.String()
}
