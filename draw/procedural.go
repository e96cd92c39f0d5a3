package draw

import (
	"math"
)

const (
	pumpkinRidges   = 14
	pumpkinSegments = 12

	terrainCells    = 60
	terrainCellSize = 80
)

var (
	// PumpkinRidges holds the even and odd ridges of a unit pumpkin so they
	// can take alternating colours.
	PumpkinRidges = newPumpkinRidges()
	// BarkCylinder is a cylinder with alternating darker slices.
	BarkCylinder = newBarkCylinder(12, 2.0/3)
	// GroundGrid is a subdivided GroundQuad for flat ground.
	GroundGrid = NewGroundGrid(16)
	// Terrain is the valley floor, already in world units.
	Terrain = NewTerrain(terrainCells, terrainCellSize)
)

// TerrainHeight returns the valley floor height at (x, z).
func TerrainHeight(x, z float64) float64 {
	return 3*math.Sin(x*0.008+z*0.008) + 1.5*math.Cos(x*0.02)*math.Sin(z*0.015)
}

// NewTerrain builds an undulating square of cells×cells quads centred on
// the origin, tinted with a speckled grass pattern.
func NewTerrain(cells int, cellSize float64) *Mesh {
	m := &Mesh{}
	half := cells / 2
	for i := 0; i <= cells; i++ {
		for j := 0; j <= cells; j++ {
			x := float64(i-half) * cellSize
			z := float64(j-half) * cellSize
			m.addVert(float32(x), float32(TerrainHeight(x, z)), float32(z))
		}
	}
	row := cells + 1
	for i := 0; i < cells; i++ {
		for j := 0; j < cells; j++ {
			a := i*row + j
			b := a + row
			m.addFace(a, b, b+1)
			m.addFace(a, b+1, a+1)
			t := speckle(i, j)
			m.Tones = append(m.Tones, t, t*0.97)
		}
	}
	return m
}

// NewGroundGrid is a flat unit square in the y=0 plane split into n×n cells.
func NewGroundGrid(n int) *Mesh {
	m := &Mesh{}
	for i := 0; i <= n; i++ {
		for j := 0; j <= n; j++ {
			m.addVert(float32(i)/float32(n)-0.5, 0, float32(j)/float32(n)-0.5)
		}
	}
	row := n + 1
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a := i*row + j
			b := a + row
			m.addFace(a, b, b+1)
			m.addFace(a, b+1, a+1)
		}
	}
	return m
}

// speckle is a deterministic value in [0.85, 1.1) for grid cell (i, j).
func speckle(i, j int) float32 {
	v := math.Sin(float64(i)*12.9898+float64(j)*78.233) * 43758.5453
	v -= math.Floor(v)
	return float32(0.85 + 0.25*v)
}

func newBarkCylinder(slices int, topRatio float32) *Mesh {
	m := NewCylinder(slices, topRatio)
	m.Tones = make([]float32, len(m.Faces))
	for i := range m.Tones {
		m.Tones[i] = 1
	}
	// Side faces come first, two per slice.
	for j := 0; j < slices; j++ {
		if j%2 == 1 {
			m.Tones[2*j] = 0.8
			m.Tones[2*j+1] = 0.8
		}
	}
	return m
}

func pumpkinRadius(v float64) float64 {
	yn := v*2 - 1
	h := math.Pow(math.Max(0, 1-yn*yn), 0.55)
	return h*0.85 + 0.08*math.Sin(v*math.Pi) + 0.02*math.Sin(v*math.Pi*4)
}

func newPumpkinRidges() [2]*Mesh {
	var out [2]*Mesh
	out[0], out[1] = &Mesh{}, &Mesh{}

	for r := 0; r < pumpkinRidges; r++ {
		m := out[r%2]
		a0 := 2 * math.Pi * float64(r) / pumpkinRidges
		a1 := 2 * math.Pi * float64(r+1) / pumpkinRidges
		mid := (a0 + a1) / 2
		tone := float32(1 + 0.1*math.Sin(float64(r)*0.5))

		start := len(m.Verts)
		for s := 0; s <= pumpkinSegments; s++ {
			v := float64(s) / pumpkinSegments
			y := float32((v*2 - 1) * 0.85)
			rad := pumpkinRadius(v)
			bulge := rad * 1.06
			m.addVert(float32(rad*math.Cos(a0)), y, float32(rad*math.Sin(a0)))
			m.addVert(float32(bulge*math.Cos(mid)), y, float32(bulge*math.Sin(mid)))
			m.addVert(float32(rad*math.Cos(a1)), y, float32(rad*math.Sin(a1)))
		}
		for s := 0; s < pumpkinSegments; s++ {
			base := start + s*3
			next := base + 3
			for k := 0; k < 2; k++ {
				m.addFace(base+k, next+k, next+k+1)
				m.addFace(base+k, next+k+1, base+k+1)
				m.Tones = append(m.Tones, tone, tone)
			}
		}
	}
	return out
}
