package raster

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Clear paints every pixel of dst with c.
func Clear(dst *image.RGBA, c colorful.Color) {
	r, g, b := c.RGB255()
	pix := dst.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = r, g, b, 0xff
	}
}

// Fill paints tris into dst in order, interpolating vertex colours.
func Fill(tris []Tri, dst *image.RGBA) {
	for i := range tris {
		fillTri(&tris[i], dst)
	}
}

func fillTri(t *Tri, dst *image.RGBA) {
	bounds := dst.Bounds()
	x0 := max(bounds.Min.X, int(math.Floor(float64(min(t.X[0], t.X[1], t.X[2])))))
	x1 := min(bounds.Max.X-1, int(math.Ceil(float64(max(t.X[0], t.X[1], t.X[2])))))
	y0 := max(bounds.Min.Y, int(math.Floor(float64(min(t.Y[0], t.Y[1], t.Y[2])))))
	y1 := min(bounds.Max.Y-1, int(math.Ceil(float64(max(t.Y[0], t.Y[1], t.Y[2])))))
	if x0 > x1 || y0 > y1 {
		return
	}
	area := edge(t.X[0], t.Y[0], t.X[1], t.Y[1], t.X[2], t.Y[2])
	if area == 0 {
		return
	}
	alpha := float64(t.Alpha)

	for y := y0; y <= y1; y++ {
		py := float32(y) + 0.5
		for x := x0; x <= x1; x++ {
			px := float32(x) + 0.5
			w0, w1, w2, ok := barycentric(t, area, px, py)
			if !ok {
				continue
			}
			src := interpolate(t.Colors, w0, w1, w2)
			off := dst.PixOffset(x, y)
			blend(dst.Pix[off:off+4], src, alpha, t.Additive)
		}
	}
}

func edge(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// barycentric returns the weights of (px, py) in t, and false when the point
// falls outside. Either winding is accepted.
func barycentric(t *Tri, area, px, py float32) (w0, w1, w2 float64, ok bool) {
	e0 := edge(t.X[1], t.Y[1], t.X[2], t.Y[2], px, py) / area
	e1 := edge(t.X[2], t.Y[2], t.X[0], t.Y[0], px, py) / area
	e2 := edge(t.X[0], t.Y[0], t.X[1], t.Y[1], px, py) / area
	if e0 < 0 || e1 < 0 || e2 < 0 {
		return 0, 0, 0, false
	}
	return float64(e0), float64(e1), float64(e2), true
}

func interpolate(c [3]colorful.Color, w0, w1, w2 float64) colorful.Color {
	return colorful.Color{
		R: c[0].R*w0 + c[1].R*w1 + c[2].R*w2,
		G: c[0].G*w0 + c[1].G*w1 + c[2].G*w2,
		B: c[0].B*w0 + c[1].B*w1 + c[2].B*w2,
	}
}

func blend(px []uint8, src colorful.Color, alpha float64, additive bool) {
	dst := [3]float64{float64(px[0]) / 255, float64(px[1]) / 255, float64(px[2]) / 255}
	in := [3]float64{src.R, src.G, src.B}
	for i := range dst {
		if additive {
			dst[i] += in[i] * alpha
		} else {
			dst[i] = dst[i]*(1-alpha) + in[i]*alpha
		}
	}
	out := colorful.Color{R: dst[0], G: dst[1], B: dst[2]}.Clamped()
	px[0], px[1], px[2] = out.RGB255()
	px[3] = 0xff
}
