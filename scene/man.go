package scene

import (
	"math"
)

// Gait constants for the event-stepped walk.
const (
	phaseStep  = 0.3
	phaseDecay = 0.8
	phaseSnap  = 0.1
)

// Man is the walking figure.
type Man struct {
	X, Z      float64
	RotationY float64 // heading in degrees
	Moving    bool
	Sprinting bool
	Crouching bool

	// WalkPhase drives the joint swing. It only grows while the figure
	// walks and falls back to zero once it stops.
	WalkPhase float64
}

// Position returns the figure's ground position.
func (m *Man) Position() (x, z float64) {
	return m.X, m.Z
}

func (m *Man) clamp(bounds float64) {
	b := Range{-bounds, bounds}
	m.X = b.Clamp(m.X)
	m.Z = b.Clamp(m.Z)
}

// settleStride advances or decays the phase after an event-stepped tick.
func (m *Man) settleStride() {
	if m.Moving {
		m.WalkPhase += phaseStep
	} else {
		m.WalkPhase = math.Mod(m.WalkPhase, 2*math.Pi)
		if m.WalkPhase > phaseSnap {
			m.WalkPhase *= phaseDecay
		} else {
			m.WalkPhase = 0
		}
	}
	m.Moving = false
}

// speed returns the per-tick ground speed for held-key movement.
func (m *Man) speed(base float64) float64 {
	switch {
	case m.Crouching:
		return base / 2
	case m.Sprinting:
		return base * 2
	}
	return base
}

// cadence returns the phase increment for held-key movement.
func (m *Man) cadence() float64 {
	switch {
	case m.Crouching:
		return 0.1
	case m.Sprinting:
		return 0.4
	}
	return 0.2
}

// walk applies one held-key tick with the requested direction.
func (m *Man) walk(dx, dz float64) {
	if dx == 0 && dz == 0 {
		m.Moving = false
		m.WalkPhase = 0
		return
	}
	m.Moving = true
	m.X += dx
	m.Z += dz
	m.RotationY = math.Atan2(dx, dz) * 180 / math.Pi
	m.WalkPhase += m.cadence()
}

// SimplePose returns the arm and leg swing of the simple figure in degrees.
func (m *Man) SimplePose() (arm, leg float64) {
	s := math.Sin(m.WalkPhase)
	return 20 * s, 30 * s
}

// Pose holds the joint angles of the articulated figure, in degrees.
type Pose struct {
	Bob   float64 // vertical bounce while walking
	Lower float64 // crouch drop

	LeftHip, RightHip   float64
	LeftKnee, RightKnee float64
	ArmSwing            float64

	WaistTilt    float64
	ShoulderTilt float64
	HeadTilt     float64
}

// ArticulatedPose computes the joint angles from the walk phase and the
// sprint and crouch modifiers.
func (m *Man) ArticulatedPose() Pose {
	var p Pose

	if m.Moving {
		bounce := 2.0
		if m.Sprinting {
			bounce = 2.5
		}
		p.Bob = 2 * math.Abs(math.Sin(m.WalkPhase*bounce))

		swing := 30.0
		if m.Sprinting {
			swing = 50
		}
		if m.Crouching {
			swing = 15
		}
		p.LeftHip = swing * math.Sin(m.WalkPhase)
		p.RightHip = swing * math.Sin(m.WalkPhase+math.Pi)
		if p.LeftHip > 0 {
			p.LeftKnee = p.LeftHip * 2
		}
		if p.RightHip > 0 {
			p.RightKnee = p.RightHip * 2
		}

		arm := 25.0
		if m.Sprinting {
			arm = 40
		}
		p.ArmSwing = -arm * math.Sin(m.WalkPhase)
	}

	if m.Crouching {
		const bend = 45.0
		p.Lower = 12
		p.LeftHip -= bend
		p.RightHip -= bend
		p.LeftKnee += bend * 2
		p.RightKnee += bend * 2
		p.WaistTilt = 15
		p.ShoulderTilt = 20
		p.HeadTilt = -20
		p.ArmSwing *= 0.5
	}
	return p
}
