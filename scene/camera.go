package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Smoothed is a value that eases toward its target.
type Smoothed struct {
	Current float64
	Target  float64
}

// Step moves Current by the fraction k of the remaining distance, so the
// gap shrinks by a factor (1-k) per call.
func (v *Smoothed) Step(k float64) {
	v.Current += (v.Target - v.Current) * k
}

// Set snaps both values.
func (v *Smoothed) Set(x float64) {
	v.Current = x
	v.Target = x
}

// OrbitCamera circles a focus point. Angle and Pitch are in degrees.
type OrbitCamera struct {
	Angle    Smoothed
	Pitch    Smoothed
	Distance Smoothed
	TopDown  bool

	cfg CameraConfig
}

// NewOrbitCamera places the camera at the configured starting pose.
func NewOrbitCamera(cfg CameraConfig) OrbitCamera {
	c := OrbitCamera{cfg: cfg}
	c.Angle.Set(cfg.Angle)
	c.Pitch.Set(cfg.Pitch)
	c.Distance.Set(cfg.Zoom.Clamp(cfg.Distance))
	return c
}

// Step eases every axis toward its target.
func (c *OrbitCamera) Step() {
	k := c.cfg.Smoothing
	c.Angle.Step(k)
	c.Pitch.Step(k)
	c.Distance.Step(k)
}

// Zoom changes the target distance by delta, clamped to the zoom range.
func (c *OrbitCamera) Zoom(delta float64) {
	c.Distance.Target = c.cfg.Zoom.Clamp(c.Distance.Target + delta)
	c.settle()
}

// Rotate changes the target orbit angle by delta degrees.
func (c *OrbitCamera) Rotate(delta float64) {
	c.Angle.Target += delta
	c.settle()
}

// Tilt changes the target pitch by delta degrees, clamped.
func (c *OrbitCamera) Tilt(delta float64) {
	c.Pitch.Target = c.cfg.PitchLimit.Clamp(c.Pitch.Target + delta)
	c.settle()
}

// settle snaps instant cameras and keeps the zoom in range.
func (c *OrbitCamera) settle() {
	if c.cfg.Smoothing >= 1 {
		c.Angle.Current = c.Angle.Target
		c.Pitch.Current = c.Pitch.Target
		c.Distance.Current = c.Distance.Target
	}
	c.Distance.Current = c.cfg.Zoom.Clamp(c.Distance.Current)
	c.Distance.Target = c.cfg.Zoom.Clamp(c.Distance.Target)
}

// View returns the eye position, look-at point and up vector for a camera
// orbiting focus. The eye never drops below MinEyeHeight.
func (c *OrbitCamera) View(focus mgl64.Vec3) (eye, center, up mgl64.Vec3) {
	if c.TopDown {
		return mgl64.Vec3{focus.X(), 400, focus.Z()},
			mgl64.Vec3{focus.X(), 0, focus.Z()},
			mgl64.Vec3{0, 0, -1}
	}

	a := mgl64.DegToRad(c.Angle.Current)
	p := mgl64.DegToRad(c.Pitch.Current)
	d := c.Distance.Current

	origin := mgl64.Vec3{}
	if c.cfg.Follow {
		origin = mgl64.Vec3{focus.X(), 0, focus.Z()}
	}
	eye = mgl64.Vec3{
		origin.X() + d*math.Sin(a)*math.Cos(p),
		math.Max(c.cfg.Height-d*math.Sin(p), c.cfg.MinEyeHeight),
		origin.Z() + d*math.Cos(a)*math.Cos(p) + c.cfg.ZOffset,
	}
	center = mgl64.Vec3{origin.X(), c.cfg.LookHeight, origin.Z()}
	return eye, center, mgl64.Vec3{0, 1, 0}
}
