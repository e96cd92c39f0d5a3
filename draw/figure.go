package draw

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"

	"autumnscene/scene"
)

// Simple figure proportions.
const (
	manHeight   = 100
	torsoHeight = manHeight * 0.45
	legLength   = manHeight * 0.45
	armLength   = manHeight * 0.40
	bodyRadius  = 12
	limbRadius  = 5
)

// Articulated figure proportions.
const (
	thighLen      = 22
	calfLen       = 23
	torsoLen      = 55
	neckLen       = 8
	headSize      = 11
	shoulderWidth = 18
	hipWidth      = 7
)

var (
	TaperCylinder = NewCylinder(12, 0.8)
	TorsoCylinder = NewCylinder(12, 15.0/13)

	skin      = RGB(1.0, 0.8, 0.7)
	paleSkin  = RGB(1.0, 0.85, 0.75)
	denim     = RGB(0.1, 0.1, 0.5)
	lightJean = RGB(0.4, 0.6, 0.9)
	black     = RGB(0.1, 0.1, 0.1)
	teal      = RGB(0.0, 0.8, 0.9)
	collar    = RGB(0.0, 0.5, 0.6)
	buckle    = RGB(0.8, 0.8, 0.8)
	stripe    = RGB(1.0, 1.0, 1.0)
	badge     = RGB(1.0, 0.8, 0.0)
	hair      = RGB(0.2, 0.1, 0.0)
	headset   = RGB(0.2, 0.2, 0.2)
	eyeWhite  = RGB(1.0, 1.0, 1.0)
	pupil     = RGB(0.0, 0.0, 0.0)
	lips      = RGB(0.7, 0.3, 0.3)

	shadowMat   = Material{Color: colorful.Color{}, Alpha: 0.5, Unlit: true, NoFog: true}
	groundPlane = mgl32.Vec4{0, 1, 0, 0}
)

func drawFigure(b *Builder, s *scene.Scene) {
	if !s.Config.Articulated {
		drawSimpleMan(b, s)
		return
	}
	drawArticulatedMan(b, &s.Man, 0, true)

	if s.Config.Shadow {
		lp := s.Config.Light.Position
		light := mgl32.Vec4{float32(lp[0]), float32(lp[1]), float32(lp[2]), float32(lp[3])}
		prev := b.SetLayer(LayerShadow)
		b.Override(&shadowMat)
		b.Push()
		b.Mult(ShadowMatrix(groundPlane, light))
		drawArticulatedMan(b, &s.Man, 0.1, false)
		b.Pop()
		b.Override(nil)
		b.SetLayer(prev)
	}
}

func drawSimpleMan(b *Builder, s *scene.Scene) {
	m := &s.Man
	arm, leg := m.SimplePose()
	jacket := Solid(s.Jacket)
	sleeve := Solid(scaled(s.Jacket, 0.8))

	b.Push()
	b.Translate(float32(m.X), 0, float32(m.Z))
	b.RotateY(90)

	b.Push()
	b.Translate(0, torsoHeight+legLength+10, 0)
	b.Scale(10, 10, 10)
	b.Draw(UnitSphere, skin)
	b.Pop()

	b.Push()
	b.Translate(0, legLength, 0)
	b.Scale(bodyRadius, torsoHeight, bodyRadius)
	b.Draw(TaperCylinder, jacket)
	b.Pop()

	for _, side := range []float32{-1, 1} {
		b.Push()
		b.Translate(side*bodyRadius, legLength+torsoHeight*0.8, 0)
		b.RotateX(side * float32(arm))
		b.RotateX(180)
		b.Push()
		b.Scale(limbRadius, armLength, limbRadius)
		b.Draw(TaperCylinder, sleeve)
		b.Pop()
		b.Translate(0, armLength, 0)
		b.Scale(limbRadius*0.8, limbRadius*0.8, limbRadius*0.8)
		b.Draw(UnitSphere, skin)
		b.Pop()
	}

	for _, side := range []float32{-1, 1} {
		b.Push()
		b.Translate(side*(limbRadius+1), legLength, 0)
		b.RotateX(side * float32(leg))
		b.RotateX(180)
		b.Scale(limbRadius+2, legLength, limbRadius+2)
		b.Draw(TaperCylinder, denim)
		b.Pop()
	}
	b.Pop()
}

// drawArticulatedMan emits the jointed figure standing at lift above the
// ground. Small details are skipped when detail is false.
func drawArticulatedMan(b *Builder, m *scene.Man, lift float32, detail bool) {
	p := m.ArticulatedPose()

	b.Push()
	b.Translate(float32(m.X), lift+float32(p.Bob-p.Lower), float32(m.Z))
	b.RotateY(float32(m.RotationY))

	drawLeg(b, hipWidth, float32(p.LeftHip), float32(p.LeftKnee))
	drawLeg(b, -hipWidth, float32(p.RightHip), float32(p.RightKnee))

	// Waist
	b.Translate(0, thighLen+calfLen, 0)
	b.RotateX(float32(p.WaistTilt))

	b.Push()
	b.Translate(0, 2, 0)
	b.Scale(14, 4, 14)
	b.Draw(UnitCylinder, black)
	b.Pop()
	if detail {
		b.Push()
		b.Translate(0, 4, 13.5)
		b.Scale(5, 4, 1.5)
		b.Draw(UnitCube, buckle)
		b.Pop()
	}

	b.Push()
	b.Scale(13*1.3, torsoLen, 13*0.9)
	b.Draw(TorsoCylinder, teal)
	b.Pop()
	if detail {
		b.Push()
		b.Translate(0, torsoLen*0.6, 12.5)
		b.Scale(22, 4, 1)
		b.Draw(UnitCube, stripe)
		b.Pop()

		b.Push()
		b.Translate(0, torsoLen*0.6, 13.5)
		b.Scale(4, 4, 1)
		b.RotateZ(45)
		b.Draw(UnitCube, badge)
		b.Pop()
	}

	// Shoulders
	b.Translate(0, torsoLen, 0)
	b.RotateX(float32(p.ShoulderTilt))
	drawArm(b, shoulderWidth, float32(p.ArmSwing))
	drawArm(b, -shoulderWidth, -float32(p.ArmSwing))

	b.Push()
	b.Scale(6, 3, 6)
	b.Draw(UnitCylinder, collar)
	b.Pop()
	b.Push()
	b.Translate(0, 3, 0)
	b.Scale(5, neckLen, 5)
	b.Draw(UnitCylinder, paleSkin)
	b.Pop()

	b.Translate(0, neckLen+3+headSize/2.0, 0)
	b.RotateX(float32(p.HeadTilt))
	b.Push()
	b.Scale(headSize, headSize, headSize)
	b.Draw(FineSphere, paleSkin)
	b.Pop()

	if detail {
		drawFace(b)
	}
	b.Pop()
}

func drawLeg(b *Builder, side, hip, knee float32) {
	b.Push()
	b.Translate(side, thighLen+calfLen, 0)
	b.RotateX(hip)

	b.Push()
	b.RotateX(180)
	b.Scale(6, thighLen, 6)
	b.Draw(UnitCylinder, lightJean)
	b.Pop()

	b.Translate(0, -thighLen, 0)
	b.RotateX(knee)
	b.Push()
	b.RotateX(180)
	b.Scale(5.5, calfLen, 5.5)
	b.Draw(UnitCylinder, lightJean)
	b.Pop()

	b.Translate(0, -calfLen, 3)
	b.Scale(5.5, 3, 10)
	b.Draw(UnitCube, black)
	b.Pop()
}

func drawArm(b *Builder, side, swing float32) {
	b.Push()
	b.Translate(side, -2, 0)
	b.RotateX(swing)
	b.Push()
	b.RotateX(180)
	b.Scale(4, 40, 4)
	b.Draw(TaperCylinder, teal)
	b.Pop()
	b.Translate(0, -40, 0)
	b.Scale(4, 4, 4)
	b.Draw(UnitSphere, paleSkin)
	b.Pop()
}

func drawFace(b *Builder) {
	b.Push()
	b.Translate(0, 4, -1)
	b.Scale(headSize*1.05, headSize*0.8, headSize*1.05)
	b.Draw(FineSphere, hair)
	b.Pop()

	// Headphone band over the top, ear to ear.
	b.Push()
	b.Translate(0, 1, 0)
	b.Scale(1, 0.9, 1)
	b.RotateX(90)
	b.Scale(12, 12, 12)
	b.Draw(BandTorus, headset)
	b.Pop()

	for _, side := range []float32{-1, 1} {
		b.Push()
		b.Translate(side*11, 0, 0)
		b.Scale(2.5, 7.5, 6.25)
		b.Draw(UnitSphere, black)
		b.Pop()

		b.Push()
		b.Translate(side*3.5, 0, 9)
		b.Push()
		b.Scale(2.5, 2.5, 2.5)
		b.Draw(UnitSphere, eyeWhite)
		b.Pop()
		b.Translate(0, 0, 2.1)
		b.Draw(UnitSphere, pupil)
		b.Pop()
	}

	b.Push()
	b.Translate(0, -2, 10)
	b.RotateX(90)
	b.Scale(2, 4, 2)
	b.Draw(UnitCone, skin)
	b.Pop()

	b.Push()
	b.Translate(0, -6, 9.5)
	b.RotateZ(10)
	b.Scale(3, 0.8, 1)
	b.Draw(UnitSphere, lips)
	b.Pop()
}
