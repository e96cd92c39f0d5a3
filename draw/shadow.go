package draw

import "github.com/go-gl/mathgl/mgl32"

// ShadowMatrix projects geometry onto plane (a, b, c, d) away from light.
// A light with w == 0 is directional.
func ShadowMatrix(plane, light mgl32.Vec4) mgl32.Mat4 {
	dot := plane.Dot(light)
	var m mgl32.Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			v := -light[row] * plane[col]
			if row == col {
				v += dot
			}
			m[col*4+row] = v
		}
	}
	return m
}
