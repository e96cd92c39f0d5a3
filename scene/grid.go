package scene

import "math"

// PropKind identifies which collection a PropRef points into.
type PropKind int

const (
	PropTree PropKind = iota
	PropPumpkin
	PropFlower
	PropPile
)

// PropRef is a ground prop registered in the grid.
type PropRef struct {
	Kind  PropKind
	Index int
	X, Z  float64
}

// PropCell is one partition of the prop grid.
type PropCell struct {
	Props []PropRef
}

// Add appends a prop unless it is already present.
func (c *PropCell) Add(p PropRef) {
	for _, q := range c.Props {
		if q.Kind == p.Kind && q.Index == p.Index {
			return
		}
	}
	c.Props = append(c.Props, p)
}

// Clear empties the cell but keeps its capacity.
func (c *PropCell) Clear() {
	c.Props = c.Props[:0]
}

// PropGrid partitions the static ground props on the x/z plane so the
// renderer only visits props near the figure.
type PropGrid struct {
	Cells    [][]*PropCell
	CellSize float64

	originX, originZ float64
	countX, countZ   int
}

// NewPropGrid preallocates a grid covering [-extent, extent] on both axes.
func NewPropGrid(cellSize, extent float64) *PropGrid {
	if cellSize <= 0 {
		cellSize = 200
	}
	n := int(math.Ceil(2*extent/cellSize)) + 1
	if n < 1 {
		n = 1
	}
	cells := make([][]*PropCell, n)
	for x := range cells {
		cells[x] = make([]*PropCell, n)
		for z := range cells[x] {
			cells[x][z] = &PropCell{Props: make([]PropRef, 0, 8)}
		}
	}
	return &PropGrid{
		Cells:    cells,
		CellSize: cellSize,
		originX:  -extent,
		originZ:  -extent,
		countX:   n,
		countZ:   n,
	}
}

// WorldToCell converts world coordinates to clamped cell coordinates.
func (g *PropGrid) WorldToCell(x, z float64) (int, int) {
	cx := int(math.Floor((x - g.originX) / g.CellSize))
	cz := int(math.Floor((z - g.originZ) / g.CellSize))
	cx = max(0, min(cx, g.countX-1))
	cz = max(0, min(cz, g.countZ-1))
	return cx, cz
}

// Cell returns the cell at the given coordinates, or nil outside the grid.
func (g *PropGrid) Cell(cx, cz int) *PropCell {
	if cx < 0 || cx >= g.countX || cz < 0 || cz >= g.countZ {
		return nil
	}
	return g.Cells[cx][cz]
}

// Register places a prop into the cell covering its position.
func (g *PropGrid) Register(p PropRef) {
	if c := g.Cell(g.WorldToCell(p.X, p.Z)); c != nil {
		c.Add(p)
	}
}

// Clear removes every prop.
func (g *PropGrid) Clear() {
	for _, col := range g.Cells {
		for _, c := range col {
			c.Clear()
		}
	}
}

// InRadius appends to dst every prop whose position lies within radius of
// (x, z) and returns the extended slice.
func (g *PropGrid) InRadius(dst []PropRef, x, z, radius float64) []PropRef {
	minX, minZ := g.WorldToCell(x-radius, z-radius)
	maxX, maxZ := g.WorldToCell(x+radius, z+radius)
	r2 := radius * radius

	for cx := minX; cx <= maxX; cx++ {
		for cz := minZ; cz <= maxZ; cz++ {
			c := g.Cell(cx, cz)
			if c == nil {
				continue
			}
			for _, p := range c.Props {
				dx := p.X - x
				dz := p.Z - z
				if dx*dx+dz*dz <= r2 {
					dst = append(dst, p)
				}
			}
		}
	}
	return dst
}
