// Package raster turns a draw.Frame into sorted screen-space triangles and
// fills them into images for backends without a GPU path.
package raster

import (
	"cmp"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"

	"autumnscene/draw"
)

// Tri is one shaded triangle in pixel coordinates.
type Tri struct {
	X, Y     [3]float32
	Colors   [3]colorful.Color
	Alpha    float32
	Depth    float32 // mean distance from the eye
	Layer    draw.Layer
	Additive bool
}

// vertex is a clip-space position with its shaded colour.
type vertex struct {
	clip mgl32.Vec4
	col  colorful.Color
}

// Project transforms, clips, shades and sorts every command in f. The result
// is ready to paint in order.
func Project(f *draw.Frame) []Tri {
	p := projector{
		frame: f,
		vp:    f.Projection.Mul4(f.View),
		w:     float32(f.Width),
		h:     float32(f.Height),
	}
	out := make([]Tri, 0, f.TriangleCount()/2)
	if f.Sky != nil {
		out = appendSky(out, f)
	}
	for i := range f.Commands {
		out = p.command(out, &f.Commands[i])
	}
	slices.SortStableFunc(out, func(a, b Tri) int {
		if a.Layer != b.Layer {
			return cmp.Compare(a.Layer, b.Layer)
		}
		return cmp.Compare(b.Depth, a.Depth)
	})
	return out
}

type projector struct {
	frame *draw.Frame
	vp    mgl32.Mat4
	w, h  float32

	world []mgl32.Vec3
	clip  []mgl32.Vec4
	poly  []vertex
	next  []vertex
}

func (p *projector) command(out []Tri, c *draw.Command) []Tri {
	m := c.Mesh
	mvp := p.vp.Mul4(c.Model)

	p.world = p.world[:0]
	p.clip = p.clip[:0]
	for _, v := range m.Verts {
		h := v.Vec4(1)
		wp := c.Model.Mul4x1(h)
		if wp.W() != 0 && wp.W() != 1 {
			wp = wp.Mul(1 / wp.W())
		}
		p.world = append(p.world, wp.Vec3())
		p.clip = append(p.clip, mvp.Mul4x1(h))
	}

	for fi, face := range m.Faces {
		a, b, cc := face[0], face[1], face[2]
		ca, cb, cc4 := p.clip[a], p.clip[b], p.clip[cc]
		if ca.Z() < -ca.W() && cb.Z() < -cb.W() && cc4.Z() < -cc4.W() {
			continue
		}
		if ca.Z() > ca.W() && cb.Z() > cb.W() && cc4.Z() > cc4.W() {
			continue
		}

		base := p.shade(c.Mat, m.Tone(fi), p.world[a], p.world[b], p.world[cc])
		p.poly = append(p.poly[:0],
			vertex{ca, p.fog(c.Mat, base, p.world[a])},
			vertex{cb, p.fog(c.Mat, base, p.world[b])},
			vertex{cc4, p.fog(c.Mat, base, p.world[cc])},
		)
		p.poly = p.clipNear()
		if len(p.poly) < 3 {
			continue
		}
		for k := 1; k+1 < len(p.poly); k++ {
			if t, ok := p.screen(p.poly[0], p.poly[k], p.poly[k+1]); ok {
				t.Alpha = c.Mat.Alpha
				t.Layer = c.Layer
				t.Additive = c.Mat.Additive
				out = append(out, t)
			}
		}
	}
	return out
}

// shade returns the flat colour of a face. Both sides are lit alike.
func (p *projector) shade(mat draw.Material, tone float32, a, b, c mgl32.Vec3) colorful.Color {
	k := float64(tone)
	if mat.Unlit {
		return colorful.Color{R: mat.Color.R * k, G: mat.Color.G * k, B: mat.Color.B * k}.Clamped()
	}
	light := p.frame.Light
	n := b.Sub(a).Cross(c.Sub(a))
	if n.Len() == 0 {
		return scale(mat.Color, k*float64(light.Ambient), light.Color)
	}
	n = n.Normalize()
	centre := a.Add(b).Add(c).Mul(1.0 / 3)
	if n.Dot(p.frame.Eye.Sub(centre)) < 0 {
		n = n.Mul(-1)
	}
	var l mgl32.Vec3
	if light.Position.W() == 0 {
		l = light.Position.Vec3()
	} else {
		l = light.Position.Vec3().Sub(centre)
	}
	if l.Len() > 0 {
		l = l.Normalize()
	}
	diffuse := float32(math.Max(0, float64(n.Dot(l))))
	return scale(mat.Color, k*float64(light.Ambient+light.Diffuse*diffuse), light.Color)
}

// fog blends col toward the fog colour by exp² of the eye distance.
func (p *projector) fog(mat draw.Material, col colorful.Color, at mgl32.Vec3) colorful.Color {
	fog := p.frame.Fog
	if mat.NoFog || fog.Density <= 0 {
		return col
	}
	d := float64(fog.Density * at.Sub(p.frame.Eye).Len())
	keep := math.Exp(-d * d)
	return col.BlendRgb(fog.Color, 1-keep)
}

// clipNear clips p.poly against z >= -w.
func (p *projector) clipNear() []vertex {
	p.next = p.next[:0]
	n := len(p.poly)
	for i := 0; i < n; i++ {
		cur, nxt := p.poly[i], p.poly[(i+1)%n]
		dc := cur.clip.Z() + cur.clip.W()
		dn := nxt.clip.Z() + nxt.clip.W()
		if dc >= 0 {
			p.next = append(p.next, cur)
		}
		if (dc >= 0) != (dn >= 0) {
			t := dc / (dc - dn)
			p.next = append(p.next, vertex{
				clip: cur.clip.Add(nxt.clip.Sub(cur.clip).Mul(t)),
				col:  cur.col.BlendRgb(nxt.col, float64(t)),
			})
		}
	}
	p.poly, p.next = p.next, p.poly
	return p.poly
}

// screen maps three clipped vertices to pixels. It reports false when the
// triangle lies entirely outside the viewport.
func (p *projector) screen(a, b, c vertex) (Tri, bool) {
	var t Tri
	var ndc [3]mgl32.Vec3
	for i, v := range [3]vertex{a, b, c} {
		w := v.clip.W()
		if w <= 0 {
			w = 1e-6
		}
		ndc[i] = v.clip.Vec3().Mul(1 / w)
		t.X[i] = (ndc[i].X() + 1) * 0.5 * p.w
		t.Y[i] = (1 - ndc[i].Y()) * 0.5 * p.h
		t.Colors[i] = v.col
		t.Depth += w / 3
	}
	for axis := 0; axis < 2; axis++ {
		if ndc[0][axis] < -1 && ndc[1][axis] < -1 && ndc[2][axis] < -1 {
			return t, false
		}
		if ndc[0][axis] > 1 && ndc[1][axis] > 1 && ndc[2][axis] > 1 {
			return t, false
		}
	}
	return t, true
}

// appendSky adds the gradient backdrop as two screen-space quads: the
// gradient above the horizon line and solid horizon colour below it.
func appendSky(out []Tri, f *draw.Frame) []Tri {
	w, h := float32(f.Width), float32(f.Height)
	horizon := (1 - f.Sky.HorizonY) * 0.5 * h
	quad := func(y0, y1 float32, top, bottom colorful.Color) {
		out = append(out,
			Tri{X: [3]float32{0, w, w}, Y: [3]float32{y0, y0, y1}, Colors: [3]colorful.Color{top, top, bottom}},
			Tri{X: [3]float32{0, w, 0}, Y: [3]float32{y0, y1, y1}, Colors: [3]colorful.Color{top, bottom, bottom}},
		)
	}
	quad(0, horizon, f.Sky.Top, f.Sky.Horizon)
	quad(horizon, h, f.Sky.Horizon, f.Sky.Horizon)
	for i := len(out) - 4; i < len(out); i++ {
		out[i].Alpha = 1
		out[i].Layer = draw.LayerSky
		out[i].Depth = f.Far
	}
	return out
}

func scale(c colorful.Color, k float64, light colorful.Color) colorful.Color {
	return colorful.Color{R: c.R * k * light.R, G: c.G * k * light.G, B: c.B * k * light.B}.Clamped()
}
