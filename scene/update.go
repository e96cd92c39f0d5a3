package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// Clouds drift along x inside this span and wrap at its ends.
var cloudSpan = Range{-1500, 1500}

const (
	driftRate     = 0.02
	sunRate       = 0.003
	timeOfDayRate = 0.005
	hueRate       = 0.002
	startSun      = 0.3
)

// Tick advances the simulation by one fixed step.
func (s *Scene) Tick() {
	s.Camera.Step()

	if s.Config.Movement == MoveHeldKeys {
		s.stepHeld()
	}

	for i := range s.Leaves {
		l := &s.Leaves[i]
		l.Y -= l.FallSpeed
		l.Rotation += l.RotationSpeed
		if l.Y < 0 {
			s.respawnLeaf(l)
		}
	}

	for i := range s.Clouds {
		c := &s.Clouds[i]
		c.X += c.Speed
		if c.X > cloudSpan.Max {
			c.X = cloudSpan.Min
			c.Z = cloudSpan.Lerp(s.rng.Float64())
		}
	}

	s.LeafDrift += driftRate
	if s.Config.DynamicSky {
		s.SunAngle = math.Mod(s.SunAngle+sunRate, 2*math.Pi)
		s.TimeOfDay += timeOfDayRate
		s.Wind.Step(windRate)
	}

	if s.Config.Movement == MoveOnKeyEvent {
		s.Man.settleStride()
	}

	s.Hue = math.Mod(s.Hue+hueRate, 1)
	s.Jacket = JacketColor(s.Hue)
	s.Ticks++
}

func (s *Scene) stepHeld() {
	m := &s.Man
	m.Crouching = s.held[KeyShift]
	m.Sprinting = s.held[KeyCtrl]

	speed := m.speed(s.Config.MoveStep)
	var dx, dz float64
	if s.held[KeyW] {
		dz -= speed
	}
	if s.held[KeyS] {
		dz += speed
	}
	if s.held[KeyA] {
		dx -= speed
	}
	if s.held[KeyD] {
		dx += speed
	}
	m.walk(dx, dz)
	m.clamp(s.Config.Bounds)
}

// JacketColor maps a hue in [0, 1) onto a fully saturated colour.
func JacketColor(hue float64) colorful.Color {
	return colorful.Hsv(hue*360, 1, 1).Clamped()
}

func sunPosition(angle float64) mgl64.Vec3 {
	return mgl64.Vec3{
		1200 * math.Cos(angle),
		600 + 400*math.Sin(angle),
		1200 * math.Sin(angle),
	}
}
