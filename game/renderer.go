package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"autumnscene/draw"
	"autumnscene/raster"
)

// maxBatchVertices keeps indices within uint16
const maxBatchVertices = 65535 / 3 * 3

// Renderer paints projected triangles with ebiten
type Renderer struct {
	white     *ebiten.Image
	vertices  []ebiten.Vertex
	indices   []uint16
	antiAlias bool

	// Drawn is the number of triangles painted by the last Render
	Drawn int
}

// NewRenderer creates a renderer. The white source image is made on first
// use, inside the game loop.
func NewRenderer(antiAlias bool) *Renderer {
	return &Renderer{
		vertices:  make([]ebiten.Vertex, 0, 4096),
		indices:   make([]uint16, 0, 4096),
		antiAlias: antiAlias,
	}
}

// Render clears screen to the frame's colour and paints tris in order
func (r *Renderer) Render(screen *ebiten.Image, f *draw.Frame, tris []raster.Tri) {
	if r.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		r.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	cr, cg, cb := f.Clear.RGB255()
	screen.Fill(color.RGBA{cr, cg, cb, 0xff})

	r.Drawn = len(tris)
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
	additive := false
	for i := range tris {
		t := &tris[i]
		if t.Additive != additive || len(r.vertices)+3 > maxBatchVertices {
			r.flush(screen, additive)
			additive = t.Additive
		}
		base := uint16(len(r.vertices))
		for k := 0; k < 3; k++ {
			c := t.Colors[k]
			r.vertices = append(r.vertices, ebiten.Vertex{
				DstX:   t.X[k],
				DstY:   t.Y[k],
				SrcX:   1,
				SrcY:   1,
				ColorR: float32(c.R),
				ColorG: float32(c.G),
				ColorB: float32(c.B),
				ColorA: t.Alpha,
			})
		}
		r.indices = append(r.indices, base, base+1, base+2)
	}
	r.flush(screen, additive)
}

func (r *Renderer) flush(screen *ebiten.Image, additive bool) {
	if len(r.indices) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: r.antiAlias}
	if additive {
		op.Blend = ebiten.BlendLighter
	}
	screen.DrawTriangles(r.vertices, r.indices, r.white, op)
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
}
