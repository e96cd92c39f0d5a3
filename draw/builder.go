package draw

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"
)

// Layer orders commands for the painter's sort. Lower layers are drawn
// first regardless of depth.
type Layer uint8

const (
	LayerSky Layer = iota
	LayerGround
	LayerShadow
	LayerWorld
)

// Material describes how a mesh is coloured.
type Material struct {
	Color    colorful.Color
	Alpha    float32
	Unlit    bool // skip lighting
	Additive bool // add onto what is underneath
	NoFog    bool
}

// Solid returns an opaque lit material.
func Solid(c colorful.Color) Material {
	return Material{Color: c, Alpha: 1}
}

// RGB returns an opaque lit material from components.
func RGB(r, g, b float64) Material {
	return Solid(colorful.Color{R: r, G: g, B: b})
}

// Glow returns an unlit additive material.
func Glow(c colorful.Color, alpha float32) Material {
	return Material{Color: c, Alpha: alpha, Unlit: true, Additive: true, NoFog: true}
}

// Command draws Mesh transformed by Model.
type Command struct {
	Model mgl32.Mat4
	Mesh  *Mesh
	Mat   Material
	Layer Layer
}

// Builder accumulates draw commands under a transform stack.
type Builder struct {
	cur      mgl32.Mat4
	stack    []mgl32.Mat4
	layer    Layer
	override *Material
	cmds     []Command
}

// NewBuilder starts with the identity transform on the world layer.
func NewBuilder() *Builder {
	return &Builder{
		cur:   mgl32.Ident4(),
		stack: make([]mgl32.Mat4, 0, 16),
		layer: LayerWorld,
		cmds:  make([]Command, 0, 1024),
	}
}

// Push saves the current transform.
func (b *Builder) Push() {
	b.stack = append(b.stack, b.cur)
}

// Pop restores the last saved transform. Popping an empty stack resets to
// identity.
func (b *Builder) Pop() {
	if len(b.stack) == 0 {
		b.cur = mgl32.Ident4()
		return
	}
	b.cur = b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
}

// Depth returns the number of saved transforms.
func (b *Builder) Depth() int {
	return len(b.stack)
}

func (b *Builder) Translate(x, y, z float32) {
	b.cur = b.cur.Mul4(mgl32.Translate3D(x, y, z))
}

func (b *Builder) Scale(x, y, z float32) {
	b.cur = b.cur.Mul4(mgl32.Scale3D(x, y, z))
}

// Rotate turns by deg degrees around axis.
func (b *Builder) Rotate(deg float32, axis mgl32.Vec3) {
	b.cur = b.cur.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(deg), axis.Normalize()))
}

func (b *Builder) RotateX(deg float32) {
	b.cur = b.cur.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(deg)))
}

func (b *Builder) RotateY(deg float32) {
	b.cur = b.cur.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(deg)))
}

func (b *Builder) RotateZ(deg float32) {
	b.cur = b.cur.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(deg)))
}

// Mult post-multiplies the current transform by m.
func (b *Builder) Mult(m mgl32.Mat4) {
	b.cur = b.cur.Mul4(m)
}

// Transform returns the current transform.
func (b *Builder) Transform() mgl32.Mat4 {
	return b.cur
}

// SetLayer selects the layer for subsequent commands and returns the
// previous one.
func (b *Builder) SetLayer(l Layer) Layer {
	prev := b.layer
	b.layer = l
	return prev
}

// Override forces every subsequent command to use mat. Nil clears it.
func (b *Builder) Override(mat *Material) {
	b.override = mat
}

// Draw emits mesh with the current transform.
func (b *Builder) Draw(mesh *Mesh, mat Material) {
	if b.override != nil {
		mat = *b.override
	}
	b.cmds = append(b.cmds, Command{Model: b.cur, Mesh: mesh, Mat: mat, Layer: b.layer})
}

// Commands returns everything drawn so far.
func (b *Builder) Commands() []Command {
	return b.cmds
}
