package draw

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is an indexed triangle mesh in model space.
type Mesh struct {
	Verts []mgl32.Vec3
	Faces [][3]int
	// Tones optionally scales the colour of each face. Nil means 1.
	Tones []float32
}

// Tone returns the colour scale of face i.
func (m *Mesh) Tone(i int) float32 {
	if m.Tones == nil {
		return 1
	}
	return m.Tones[i]
}

func (m *Mesh) addVert(x, y, z float32) int {
	m.Verts = append(m.Verts, mgl32.Vec3{x, y, z})
	return len(m.Verts) - 1
}

func (m *Mesh) addFace(a, b, c int) {
	m.Faces = append(m.Faces, [3]int{a, b, c})
}

// Shared unit meshes. Builders scale them into place.
var (
	UnitSphere   = NewSphere(10, 6)
	FineSphere   = NewSphere(16, 10)
	UnitDome     = NewDome(14, 5)
	UnitCylinder = NewCylinder(12, 1)
	UnitCone     = NewCylinder(12, 0)
	UnitCube     = NewCube()
	UnitDisk     = NewDisk(16)
	UnitQuad     = NewQuad()
	GroundQuad   = NewGroundQuad()
	LeafBlade    = NewLeafBlade()
	StemTorus    = NewTorus(0.22, 12, 6)
	BandTorus    = NewTorus(0.08, 24, 6)
)

// NewSphere tessellates a unit sphere centred on the origin.
func NewSphere(slices, stacks int) *Mesh {
	return lathe(slices, stacks, math.Pi)
}

// NewDome tessellates the upper half of a unit sphere, base on y=0.
func NewDome(slices, stacks int) *Mesh {
	return lathe(slices, stacks, math.Pi/2)
}

func lathe(slices, stacks int, sweep float64) *Mesh {
	m := &Mesh{}
	for i := 0; i <= stacks; i++ {
		phi := sweep * float64(i) / float64(stacks)
		y := float32(math.Cos(phi))
		r := math.Sin(phi)
		for j := 0; j <= slices; j++ {
			theta := 2 * math.Pi * float64(j) / float64(slices)
			m.addVert(float32(r*math.Cos(theta)), y, float32(r*math.Sin(theta)))
		}
	}
	row := slices + 1
	closed := sweep >= math.Pi
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := i*row + j
			b := a + row
			c := b + 1
			d := a + 1
			// Skip the slivers that collapse onto a pole.
			if i > 0 {
				m.addFace(a, c, d)
			}
			if i < stacks-1 || !closed {
				m.addFace(a, b, c)
			}
		}
	}
	if !closed {
		base := stacks * row
		centre := m.addVert(0, float32(math.Cos(sweep)), 0)
		for j := 0; j < slices; j++ {
			m.addFace(centre, base+j+1, base+j)
		}
	}
	return m
}

// NewCylinder tessellates a capped cylinder of radius 1 running from y=0 to
// y=1. The top radius is topRatio; 0 makes a cone.
func NewCylinder(slices int, topRatio float32) *Mesh {
	m := &Mesh{}
	for j := 0; j <= slices; j++ {
		theta := 2 * math.Pi * float64(j) / float64(slices)
		c, s := float32(math.Cos(theta)), float32(math.Sin(theta))
		m.addVert(c, 0, s)
		m.addVert(c*topRatio, 1, s*topRatio)
	}
	for j := 0; j < slices; j++ {
		b0, t0 := 2*j, 2*j+1
		b1, t1 := 2*j+2, 2*j+3
		if topRatio > 0 {
			m.addFace(b0, t0, t1)
		}
		m.addFace(b0, t1, b1)
	}

	bottom := m.addVert(0, 0, 0)
	for j := 0; j < slices; j++ {
		m.addFace(bottom, 2*j, 2*j+2)
	}
	if topRatio > 0 {
		top := m.addVert(0, 1, 0)
		for j := 0; j < slices; j++ {
			m.addFace(top, 2*j+3, 2*j+1)
		}
	}
	return m
}

// NewCube tessellates a unit cube centred on the origin.
func NewCube() *Mesh {
	m := &Mesh{}
	for i := 0; i < 8; i++ {
		x := float32(i&1) - 0.5
		y := float32(i>>1&1) - 0.5
		z := float32(i>>2&1) - 0.5
		m.addVert(x, y, z)
	}
	quads := [6][4]int{
		{0, 2, 3, 1}, // -z
		{4, 5, 7, 6}, // +z
		{0, 1, 5, 4}, // -y
		{2, 6, 7, 3}, // +y
		{0, 4, 6, 2}, // -x
		{1, 3, 7, 5}, // +x
	}
	for _, q := range quads {
		m.addFace(q[0], q[1], q[2])
		m.addFace(q[0], q[2], q[3])
	}
	return m
}

// NewDisk tessellates a unit disk in the y=0 plane.
func NewDisk(slices int) *Mesh {
	m := &Mesh{}
	centre := m.addVert(0, 0, 0)
	for j := 0; j <= slices; j++ {
		theta := 2 * math.Pi * float64(j) / float64(slices)
		m.addVert(float32(math.Cos(theta)), 0, float32(math.Sin(theta)))
	}
	for j := 0; j < slices; j++ {
		m.addFace(centre, j+2, j+1)
	}
	return m
}

// NewTorus tessellates a torus of major radius 1 lying in the y=0 plane.
func NewTorus(minor float64, rings, sides int) *Mesh {
	m := &Mesh{}
	for i := 0; i <= rings; i++ {
		u := 2 * math.Pi * float64(i) / float64(rings)
		for j := 0; j <= sides; j++ {
			v := 2 * math.Pi * float64(j) / float64(sides)
			r := 1 + minor*math.Cos(v)
			m.addVert(float32(r*math.Cos(u)), float32(minor*math.Sin(v)), float32(r*math.Sin(u)))
		}
	}
	row := sides + 1
	for i := 0; i < rings; i++ {
		for j := 0; j < sides; j++ {
			a := i*row + j
			b := a + row
			m.addFace(a, b, b+1)
			m.addFace(a, b+1, a+1)
		}
	}
	return m
}

// NewQuad is a unit square in the z=0 plane with its corner at the origin.
func NewQuad() *Mesh {
	m := &Mesh{}
	m.addVert(0, 0, 0)
	m.addVert(1, 0, 0)
	m.addVert(1, 1, 0)
	m.addVert(0, 1, 0)
	m.addFace(0, 1, 2)
	m.addFace(0, 2, 3)
	return m
}

// NewGroundQuad is a unit square in the y=0 plane centred on the origin.
func NewGroundQuad() *Mesh {
	m := &Mesh{}
	m.addVert(-0.5, 0, -0.5)
	m.addVert(0.5, 0, -0.5)
	m.addVert(0.5, 0, 0.5)
	m.addVert(-0.5, 0, 0.5)
	m.addFace(0, 2, 1)
	m.addFace(0, 3, 2)
	return m
}

// NewLeafBlade is a two-triangle leaf of unit size with its stalk at the
// origin, in the z=0 plane.
func NewLeafBlade() *Mesh {
	m := &Mesh{}
	m.addVert(0, 0, 0)
	m.addVert(-1, 0.5, 0)
	m.addVert(0, 1.2, 0)
	m.addVert(1, 0.5, 0)
	m.addFace(0, 1, 2)
	m.addFace(0, 2, 3)
	return m
}
