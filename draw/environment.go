package draw

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"autumnscene/scene"
)

const groundExtent = 2000

var (
	grass       = RGB(0.25, 0.55, 0.15)
	dirt        = RGB(0.25, 0.15, 0.07)
	darkSoil    = RGB(0.25, 0.20, 0.15)
	sunBody     = Material{Color: colorful.Color{R: 1, G: 0.85, B: 0.5}, Alpha: 1, Unlit: true, NoFog: true}
	distantBark = RGB(0.3, 0.2, 0.1)
)

// sunGlow lists the additive shells around the sun as radius and colour.
var sunGlow = []struct {
	radius float32
	color  colorful.Color
}{
	{75, colorful.Color{R: 1, G: 0.9, B: 0.7}},
	{95, colorful.Color{R: 1, G: 0.85, B: 0.6}},
	{120, colorful.Color{R: 1, G: 0.8, B: 0.5}},
}

// cloudPuffs are the six spheres of a cloud: cumulative offset and radius,
// both in units of the cloud size.
var cloudPuffs = []struct {
	dx, dy, dz float32
	radius     float32
}{
	{0, 0, 0, 1},
	{0.6, 0.15, 0.1, 0.85},
	{-1.3, 0.1, -0.2, 0.75},
	{0.7, -0.35, 0.35, 0.65},
	{0, 0.25, -0.7, 0.55},
	{-0.3, -0.2, 0.4, 0.4},
}

// treeStyle is the shape of a foreground tree in one variant.
type treeStyle struct {
	trunkHeight float32
	trunk       Material
	lower       cone
	upper       cone
	upperLift   float32
}

type cone struct {
	radius, height float32
	mat            Material
}

var treeStyles = map[scene.Variant]treeStyle{
	scene.VariantClassic: {
		trunkHeight: 120,
		trunk:       RGB(0.3, 0.15, 0.05),
		lower:       cone{60, 70, RGB(0.8, 0.4, 0)},
		upper:       cone{70, 70, RGB(0.9, 0.6, 0.1)},
		upperLift:   35,
	},
	scene.VariantAthlete: {
		trunkHeight: 100,
		trunk:       RGB(0.3, 0.15, 0.05),
		lower:       cone{50, 60, RGB(0.8, 0.4, 0)},
		upper:       cone{50, 60, RGB(0.9, 0.6, 0.1)},
		upperLift:   30,
	},
	scene.VariantValley: {
		trunkHeight: 120,
		trunk:       RGB(0.35, 0.25, 0.15),
		lower:       cone{60, 70, RGB(0.75, 0.35, 0.05)},
		upper:       cone{50, 70, RGB(0.85, 0.55, 0.1)},
		upperLift:   35,
	},
}

func drawGround(b *Builder, s *scene.Scene) {
	prev := b.SetLayer(LayerGround)
	defer b.SetLayer(prev)

	switch s.Config.Variant {
	case scene.VariantValley:
		b.Draw(Terrain, grass)
	case scene.VariantAthlete:
		b.Push()
		b.Scale(groundExtent, 1, groundExtent)
		b.Draw(GroundGrid, darkSoil)
		b.Pop()
	default:
		b.Push()
		b.Scale(groundExtent, 1, groundExtent)
		b.Draw(GroundGrid, dirt)
		b.Pop()
	}
}

func drawSun(b *Builder, pos mgl64.Vec3) {
	b.Push()
	b.Translate(float32(pos.X()), float32(pos.Y()), float32(pos.Z()))
	b.Push()
	b.Scale(60, 60, 60)
	b.Draw(FineSphere, sunBody)
	b.Pop()
	for _, g := range sunGlow {
		b.Push()
		b.Scale(g.radius, g.radius, g.radius)
		b.Draw(UnitSphere, Glow(g.color, 0.25))
		b.Pop()
	}
	b.Pop()
}

func drawClouds(b *Builder, clouds []scene.Cloud) {
	for _, c := range clouds {
		thin := 1 - c.Density
		mat := RGB(0.95-thin*0.15, 0.93-thin*0.15, 0.90-thin*0.10)
		size := float32(c.Size)
		density := float32(c.Density)

		b.Push()
		b.Translate(float32(c.X), float32(c.Y), float32(c.Z))
		for _, p := range cloudPuffs {
			b.Translate(p.dx*size, p.dy*size, p.dz*size)
			r := p.radius * size * density
			b.Push()
			b.Scale(r, r, r)
			b.Draw(UnitSphere, mat)
			b.Pop()
		}
		b.Pop()
	}
}

func drawHills(b *Builder, hills []scene.Hill) {
	for _, h := range hills {
		b.Push()
		b.Translate(float32(h.X), 0, float32(h.Z))
		b.Scale(float32(h.Radius), float32(h.Height), float32(h.Radius))
		b.Draw(UnitDome, Solid(h.Color))
		b.Pop()
	}
}

func drawDistantTrees(b *Builder, trees []scene.DistantTree) {
	for _, t := range trees {
		w, h := float32(t.Width), float32(t.Height)
		b.Push()
		b.Translate(float32(t.X), 0, float32(t.Z))

		b.Push()
		b.Scale(w*0.15, h*0.4, w*0.15)
		b.Draw(UnitCylinder, distantBark)
		b.Pop()

		b.Translate(0, h*0.5, 0)
		b.Scale(w, h*0.6, w)
		b.Draw(UnitSphere, Solid(t.Foliage))
		b.Pop()
	}
}

func drawTree(b *Builder, style treeStyle, x, z float64) {
	b.Push()
	b.Translate(float32(x), 0, float32(z))

	b.Push()
	b.Scale(15, style.trunkHeight, 15)
	b.Draw(BarkCylinder, style.trunk)
	b.Pop()

	b.Translate(0, style.trunkHeight, 0)
	for i, c := range []cone{style.lower, style.upper} {
		if i == 1 {
			b.Translate(0, style.upperLift, 0)
		}
		b.Push()
		b.Scale(c.radius, c.height, c.radius)
		b.Draw(UnitCone, c.mat)
		b.Pop()
	}
	b.Pop()
}
