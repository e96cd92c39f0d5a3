package draw

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"autumnscene/scene"
)

var (
	StemCylinder = NewCylinder(8, 0.75)

	pumpkinEven   = RGB(1.0, 0.5, 0.05)
	pumpkinOdd    = RGB(0.95, 0.45, 0.02)
	pumpkinBottom = RGB(0.85, 0.38, 0.0)
	pumpkinTop    = RGB(0.88, 0.42, 0.01)
	stemRing      = RGB(0.32, 0.42, 0.09)
	stemGreen     = RGB(0.3, 0.5, 0.12)
	stemLeaf      = RGB(0.25, 0.55, 0.15)

	flowerStem   = RGB(0.2, 0.6, 0.2)
	flowerCentre = RGB(1.0, 0.9, 0.0)
)

// stemSegments bend the pumpkin stem upward: tilt about z and x in degrees,
// then radius and length in units of the pumpkin size.
var stemSegments = []struct {
	tiltZ, tiltX   float32
	radius, length float32
}{
	{0, 0, 0.16, 0.18},
	{10, 3, 0.13, 0.25},
	{12, 5, 0.10, 0.22},
	{0, 8, 0.07, 0.15},
}

// drawProps emits the trees, pumpkins, flowers and piles near the focus.
func drawProps(b *Builder, s *scene.Scene) {
	style := treeStyles[s.Config.Variant]
	focus := s.Focus()
	near := s.PropsNear(nil, focus.X(), focus.Z(), s.Config.PropDrawRadius)

	for _, p := range near {
		switch p.Kind {
		case scene.PropTree:
			t := s.Trees[p.Index]
			drawTree(b, style, t.X, t.Z)
		case scene.PropPumpkin:
			drawPumpkin(b, s.Pumpkins[p.Index])
		case scene.PropFlower:
			drawFlower(b, s.Flowers[p.Index])
		case scene.PropPile:
			drawPile(b, s.Piles[p.Index])
		}
	}
}

func drawPumpkin(b *Builder, p scene.Pumpkin) {
	size := float32(p.Size)
	b.Push()
	b.Translate(float32(p.X), size*0.9, float32(p.Z))
	b.RotateY(float32(p.Rotation))
	b.Scale(size, size, size)

	b.Draw(PumpkinRidges[0], pumpkinEven)
	b.Draw(PumpkinRidges[1], pumpkinOdd)

	b.Push()
	b.Translate(0, -0.85, 0)
	b.Scale(0.35, 1, 0.35)
	b.Draw(UnitDisk, pumpkinBottom)
	b.Pop()

	b.Translate(0, 0.85, 0)
	b.Push()
	b.Scale(0.28, 1, 0.28)
	b.Draw(UnitDisk, pumpkinTop)
	b.Pop()

	b.Push()
	b.Scale(0.18, 0.18, 0.18)
	b.Draw(StemTorus, stemRing)
	b.Pop()

	b.Push()
	for _, seg := range stemSegments {
		b.RotateZ(seg.tiltZ)
		b.RotateX(seg.tiltX)
		b.Push()
		b.Scale(seg.radius, seg.length, seg.radius)
		b.Draw(StemCylinder, stemGreen)
		b.Pop()
		b.Translate(0, seg.length, 0)
	}
	b.Pop()

	for i := 0; i < 2; i++ {
		b.Push()
		b.Translate(0, 0.3+float32(i)*0.25, 0)
		b.RotateY(float32(i) * 120)
		b.Translate(0.12, 0, 0)
		b.RotateZ(-45)
		b.Scale(0.08, 0.1, 1)
		b.Draw(LeafBlade, stemLeaf)
		b.Pop()
	}
	b.Pop()
}

func drawFlower(b *Builder, f scene.Flower) {
	b.Push()
	b.Translate(float32(f.X), 0, float32(f.Z))

	b.Push()
	b.Scale(0.5, 8, 0.5)
	b.Draw(StemCylinder, flowerStem)
	b.Pop()

	b.Translate(0, 8.5, 0)
	b.Push()
	b.Scale(2.5, 2.5, 2.5)
	b.Draw(UnitSphere, flowerCentre)
	b.Pop()

	petal := Solid(f.Color)
	for i := 0; i < 8; i++ {
		deg := float64(i)*45 + f.PetalRotation
		rad := deg * math.Pi / 180
		b.Push()
		b.Translate(float32(4*math.Cos(rad)), 0, float32(4*math.Sin(rad)))
		b.RotateY(float32(-deg))
		b.Scale(3, 0.6, 1.8)
		b.Draw(UnitSphere, petal)
		b.Pop()
	}
	b.Pop()
}

func drawPile(b *Builder, p scene.LeafPile) {
	size, height := float32(p.Size), float32(p.Height)
	b.Push()
	b.Translate(float32(p.X), 0.1, float32(p.Z))
	for _, blob := range p.Blobs {
		b.Push()
		b.Translate(float32(blob.DX), float32(blob.DY), float32(blob.DZ))
		b.Scale(size*0.3, height*0.3, size*0.3)
		b.Draw(UnitDome, Solid(blob.Color))
		b.Pop()
	}
	b.Pop()
}

// LeafOffset is where drift, bob and wind carry a leaf this tick.
func LeafOffset(s *scene.Scene, l scene.Leaf) mgl32.Vec3 {
	x := l.X + 20*math.Sin(s.LeafDrift+l.Z*0.1)
	y := l.Y
	z := l.Z
	if s.Config.LeafBob {
		y += 5 * math.Cos(s.LeafDrift*2+l.X*0.1)
	}
	if s.Config.LeafWind {
		dx, dz := s.Wind.Offset()
		x += dx
		z += dz
	}
	return mgl32.Vec3{float32(x), float32(y), float32(z)}
}

func drawLeaves(b *Builder, s *scene.Scene) {
	blade := s.Config.LeafShape == scene.LeafBlade
	for _, l := range s.Leaves {
		pos := LeafOffset(s, l)
		size := float32(l.Size)
		b.Push()
		b.Translate(pos.X(), pos.Y(), pos.Z())
		if blade {
			rot := float32(l.Rotation)
			b.RotateY(rot)
			b.RotateX(float32(math.Sin(l.Rotation*0.1) * 30))
			b.Scale(size, size, size)
			b.Draw(LeafBlade, Solid(l.Color))
		} else {
			b.Scale(size, size, 1)
			b.Draw(UnitQuad, Solid(l.Color))
		}
		b.Pop()
	}
}
