package draw

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"autumnscene/scene"
)

const (
	fieldOfView = 60
	nearPlane   = 1
)

// Fog is exponential-squared distance fog. Zero density disables it.
type Fog struct {
	Density float32
	Color   colorful.Color
}

// Light is the single scene light in world space. W == 0 is directional.
type Light struct {
	Position mgl32.Vec4
	Ambient  float32
	Diffuse  float32
	Color    colorful.Color
}

// Sky is a screen-space gradient from the top edge down to HorizonY, in
// normalized device coordinates.
type Sky struct {
	Top      colorful.Color
	Horizon  colorful.Color
	HorizonY float32
}

// Frame is everything a backend needs to draw one image.
type Frame struct {
	Width, Height int
	View          mgl32.Mat4
	Projection    mgl32.Mat4
	Eye           mgl32.Vec3
	Near, Far     float32

	Clear colorful.Color
	Sky   *Sky
	Fog   Fog
	Light Light

	Commands []Command
}

// BuildFrame turns the scene into a list of draw commands. It does not
// modify the scene.
func BuildFrame(s *scene.Scene, width, height int) Frame {
	cfg := &s.Config
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	eye, center, up := s.Camera.View(s.Focus())
	f := Frame{
		Width:      width,
		Height:     height,
		View:       mgl32.LookAtV(vec3(eye), vec3(center), vec3(up)),
		Projection: mgl32.Perspective(mgl32.DegToRad(fieldOfView), float32(width)/float32(height), nearPlane, float32(cfg.FarPlane)),
		Eye:        vec3(eye),
		Near:       nearPlane,
		Far:        float32(cfg.FarPlane),
		Clear:      cfg.ClearColor,
		Fog:        Fog{Density: float32(cfg.FogDensity), Color: cfg.FogColor},
		Light: Light{
			Position: mgl32.Vec4{
				float32(cfg.Light.Position[0]),
				float32(cfg.Light.Position[1]),
				float32(cfg.Light.Position[2]),
				float32(cfg.Light.Position[3]),
			},
			Ambient: float32(cfg.Light.Ambient),
			Diffuse: float32(cfg.Light.Diffuse),
			Color:   cfg.Light.Color,
		},
	}

	if cfg.DynamicSky {
		t := math.Sin(s.TimeOfDay * 0.5)
		haze := colorful.Color{R: 0.75 + 0.15*t, G: 0.65 + 0.1*t, B: 0.55 + 0.05*t}.Clamped()
		f.Clear = haze
		f.Fog.Color = haze
		f.Sky = &Sky{
			Top:      colorful.Color{R: 0.6 + 0.15*t, G: 0.7 + 0.1*t, B: 0.85 + 0.1*t}.Clamped(),
			Horizon:  colorful.Color{R: 0.95 + 0.05*t, G: 0.85 + 0.05*t, B: 0.7}.Clamped(),
			HorizonY: -0.3,
		}
		sun := s.SunPosition()
		f.Light.Position = mgl32.Vec4{float32(sun.X()), float32(sun.Y()), float32(sun.Z()), 0}
	}

	b := NewBuilder()
	drawGround(b, s)
	if cfg.DynamicSky {
		drawSun(b, s.SunPosition())
		drawClouds(b, s.Clouds)
	}
	drawHills(b, s.Hills)
	drawDistantTrees(b, s.DistantTrees)
	drawProps(b, s)
	drawFigure(b, s)
	drawLeaves(b, s)

	f.Commands = b.Commands()
	return f
}

// TriangleCount is the number of model triangles in the frame before
// clipping.
func (f *Frame) TriangleCount() int {
	n := 0
	for _, c := range f.Commands {
		n += len(c.Mesh.Faces)
	}
	return n
}

func vec3(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X()), float32(v.Y()), float32(v.Z())}
}

func scaled(c colorful.Color, k float64) colorful.Color {
	return colorful.Color{R: c.R * k, G: c.G * k, B: c.B * k}.Clamped()
}
