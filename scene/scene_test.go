package scene

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func newTestScene(v Variant) *Scene {
	return New(DefaultConfig(v), rand.New(rand.NewSource(1)))
}

var allVariants = []Variant{VariantClassic, VariantAthlete, VariantValley}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		name    string
		want    Variant
		wantErr bool
	}{
		{"valley", VariantValley, false},
		{"Classic", VariantClassic, false},
		{" ATHLETE ", VariantAthlete, false},
		{"winter", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseVariant(tt.name)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownVariant) {
					t.Fatalf("ParseVariant(%q) err = %v, want ErrUnknownVariant", tt.name, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseVariant(%q) unexpected error: %v", tt.name, err)
			}
			if got != tt.want {
				t.Fatalf("ParseVariant(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestNewPopulatesCollections(t *testing.T) {
	s := newTestScene(VariantValley)
	cfg := s.Config
	if len(s.Leaves) != cfg.LeafCount {
		t.Errorf("leaves = %d, want %d", len(s.Leaves), cfg.LeafCount)
	}
	if len(s.Pumpkins) != 25 || len(s.Flowers) != 40 || len(s.Piles) != 35 {
		t.Errorf("props = %d/%d/%d, want 25/40/35", len(s.Pumpkins), len(s.Flowers), len(s.Piles))
	}
	if len(s.Clouds) != 35 || len(s.DistantTrees) != 60 {
		t.Errorf("clouds/distant trees = %d/%d, want 35/60", len(s.Clouds), len(s.DistantTrees))
	}
	if len(s.Hills) != 36 {
		t.Errorf("hills = %d, want 36", len(s.Hills))
	}
	if len(s.Trees) != 48 {
		t.Errorf("trees = %d, want 48", len(s.Trees))
	}
	for i, l := range s.Leaves {
		box := cfg.LeafSpawn
		if !box.X.Contains(l.X) || !box.Y.Contains(l.Y) || !box.Z.Contains(l.Z) {
			t.Fatalf("leaf %d spawned outside box: %+v", i, l)
		}
	}
}

func TestLeafRespawnStaysInBounds(t *testing.T) {
	for _, v := range allVariants {
		t.Run(v.String(), func(t *testing.T) {
			s := newTestScene(v)
			for i := range s.Leaves {
				s.Leaves[i].Y = 0.5
				s.Leaves[i].FallSpeed = 1
			}
			s.Tick()

			cfg := s.Config
			for i, l := range s.Leaves {
				if !cfg.LeafSpawn.X.Contains(l.X) || !cfg.LeafSpawn.Z.Contains(l.Z) {
					t.Fatalf("leaf %d respawned at x=%f z=%f outside the spawn box", i, l.X, l.Z)
				}
				if !cfg.LeafRespawnY.Contains(l.Y) {
					t.Fatalf("leaf %d respawned at y=%f, want within %v", i, l.Y, cfg.LeafRespawnY)
				}
				if !cfg.LeafFall.Contains(l.FallSpeed) {
					t.Fatalf("leaf %d fall speed %f outside %v", i, l.FallSpeed, cfg.LeafFall)
				}
			}
		})
	}
}

func TestLeavesStayAboveGround(t *testing.T) {
	s := newTestScene(VariantClassic)
	if len(s.Leaves) != 150 {
		t.Fatalf("leaves = %d, want 150", len(s.Leaves))
	}
	for i := range s.Leaves {
		s.Leaves[i].FallSpeed = 1
	}
	for tick := 0; tick < 100; tick++ {
		s.Tick()
		for i, l := range s.Leaves {
			if l.Y < 0 || l.Y > 600 {
				t.Fatalf("tick %d: leaf %d y=%f outside [0, 600]", tick, i, l.Y)
			}
		}
	}
}

func TestCloudsWrap(t *testing.T) {
	s := newTestScene(VariantValley)
	c := &s.Clouds[0]
	c.X = 1499.9
	c.Speed = 0.5
	s.Tick()
	if c.X != cloudSpan.Min {
		t.Fatalf("cloud x = %f, want %f after wrap", c.X, cloudSpan.Min)
	}
	if !cloudSpan.Contains(c.Z) {
		t.Fatalf("cloud z = %f outside %v", c.Z, cloudSpan)
	}
}

func TestCameraSmoothing(t *testing.T) {
	s := newTestScene(VariantValley)
	k := s.Config.Camera.Smoothing
	s.Apply(Event{Kind: KeyDown, Key: KeyArrowDown})
	s.Apply(Event{Kind: KeyDown, Key: KeyArrowDown})

	for i := 0; i < 30; i++ {
		before := math.Abs(s.Camera.Distance.Target - s.Camera.Distance.Current)
		s.Camera.Step()
		after := math.Abs(s.Camera.Distance.Target - s.Camera.Distance.Current)
		if math.Abs(after-before*(1-k)) > 1e-9 {
			t.Fatalf("step %d: gap %f, want %f", i, after, before*(1-k))
		}
	}
}

func TestInstantCameraSnaps(t *testing.T) {
	s := newTestScene(VariantClassic)
	s.Apply(Event{Kind: KeyDown, Key: KeyArrowUp})
	if got := s.Camera.Distance.Current; got != 240 {
		t.Fatalf("distance = %f, want 240", got)
	}
}

func TestZoomStaysClamped(t *testing.T) {
	for _, v := range allVariants {
		t.Run(v.String(), func(t *testing.T) {
			s := newTestScene(v)
			zoom := s.Config.Camera.Zoom
			check := func(step string) {
				t.Helper()
				d := s.Camera.Distance
				if !zoom.Contains(d.Target) || !zoom.Contains(d.Current) {
					t.Fatalf("%s: distance %+v outside %v", step, d, zoom)
				}
			}

			for i := 0; i < 100; i++ {
				s.Apply(Event{Kind: KeyDown, Key: KeyArrowUp})
				check("zoom in")
				s.Tick()
			}
			for i := 0; i < 100; i++ {
				s.Apply(Event{Kind: KeyDown, Key: KeyArrowDown})
				check("zoom out")
				s.Tick()
			}

			s.Apply(Event{Kind: MouseDown, Button: ButtonRight, X: 0, Y: 0})
			s.Apply(Event{Kind: MouseMove, X: 0, Y: 5000})
			check("drag out")
			s.Apply(Event{Kind: MouseMove, X: 0, Y: -5000})
			check("drag in")
			s.Apply(Event{Kind: MouseUp, Button: ButtonRight})
		})
	}
}

func TestPitchClamped(t *testing.T) {
	s := newTestScene(VariantValley)
	s.Apply(Event{Kind: MouseDown, Button: ButtonLeft})
	s.Apply(Event{Kind: MouseMove, Y: 1000})
	if got := s.Camera.Pitch.Target; got != -80 {
		t.Fatalf("pitch target = %f, want -80", got)
	}
	s.Apply(Event{Kind: MouseMove, Y: -1000})
	if got := s.Camera.Pitch.Target; got != 60 {
		t.Fatalf("pitch target = %f, want 60", got)
	}
}

func TestWalkPhaseEventStep(t *testing.T) {
	s := newTestScene(VariantClassic)
	prev := s.Man.WalkPhase
	for i := 0; i < 40; i++ {
		s.Apply(Event{Kind: KeyDown, Key: KeyD})
		s.Tick()
		if s.Man.WalkPhase <= prev {
			t.Fatalf("tick %d: phase %f did not increase from %f", i, s.Man.WalkPhase, prev)
		}
		prev = s.Man.WalkPhase
	}
	if s.Man.Moving {
		t.Fatal("moving flag should be cleared after a tick")
	}

	for i := 0; i < 200; i++ {
		s.Tick()
		if s.Man.WalkPhase < 0 {
			t.Fatalf("phase went negative: %f", s.Man.WalkPhase)
		}
	}
	if s.Man.WalkPhase != 0 {
		t.Fatalf("phase = %f after stopping, want 0", s.Man.WalkPhase)
	}
}

func TestWalkPhaseHeldKeys(t *testing.T) {
	s := newTestScene(VariantAthlete)
	s.Apply(Event{Kind: KeyDown, Key: KeyW})
	for i := 0; i < 10; i++ {
		s.Tick()
	}
	if math.Abs(s.Man.WalkPhase-2.0) > 1e-9 {
		t.Fatalf("phase = %f, want 2.0", s.Man.WalkPhase)
	}
	if s.Man.Z != -40 {
		t.Fatalf("z = %f, want -40", s.Man.Z)
	}
	if math.Abs(s.Man.RotationY-180) > 1e-9 {
		t.Fatalf("heading = %f, want 180", s.Man.RotationY)
	}

	s.Apply(Event{Kind: KeyDown, Key: KeyCtrl})
	s.Tick()
	if s.Man.Z != -48 {
		t.Fatalf("sprint z = %f, want -48", s.Man.Z)
	}

	s.Apply(Event{Kind: KeyUp, Key: KeyW})
	s.Tick()
	if s.Man.WalkPhase != 0 || s.Man.Moving {
		t.Fatalf("after release phase=%f moving=%v, want 0/false", s.Man.WalkPhase, s.Man.Moving)
	}
}

func TestMovementClampedToBounds(t *testing.T) {
	s := newTestScene(VariantClassic)
	for i := 0; i < 200; i++ {
		s.Apply(Event{Kind: KeyDown, Key: KeyD})
		s.Apply(Event{Kind: KeyDown, Key: KeyW})
	}
	if s.Man.X != 300 || s.Man.Z != -300 {
		t.Fatalf("position = (%f, %f), want (300, -300)", s.Man.X, s.Man.Z)
	}
}

func TestJacketHueContinuous(t *testing.T) {
	s := newTestScene(VariantClassic)
	prev := JacketColor(s.Hue)
	wrapped := false
	last := s.Hue
	for i := 0; i < 1200; i++ {
		s.Tick()
		if s.Hue < 0 || s.Hue >= 1 {
			t.Fatalf("hue %f outside [0, 1)", s.Hue)
		}
		if s.Hue < last {
			wrapped = true
		}
		last = s.Hue

		c := s.Jacket
		if math.Abs(c.R-prev.R) > 0.05 || math.Abs(c.G-prev.G) > 0.05 || math.Abs(c.B-prev.B) > 0.05 {
			t.Fatalf("tick %d: jacket jumped from %v to %v", i, prev, c)
		}
		prev = c
	}
	if !wrapped {
		t.Fatal("hue never wrapped")
	}
}

func TestSunAngleWraps(t *testing.T) {
	s := newTestScene(VariantValley)
	s.SunAngle = 2*math.Pi - 0.001
	s.Tick()
	if s.SunAngle < 0 || s.SunAngle >= 2*math.Pi {
		t.Fatalf("sun angle %f outside [0, 2π)", s.SunAngle)
	}
}

func TestEscapeQuits(t *testing.T) {
	s := newTestScene(VariantAthlete)
	s.HandleEvents([]Event{{Kind: KeyDown, Key: KeyEscape}})
	if !s.Quit {
		t.Fatal("escape did not set Quit")
	}
}

func TestTopDownToggle(t *testing.T) {
	valley := newTestScene(VariantValley)
	valley.Apply(Event{Kind: KeyDown, Key: KeyV})
	if !valley.Camera.TopDown {
		t.Fatal("V did not enable the top-down camera")
	}
	eye, center, _ := valley.Camera.View(valley.Focus())
	if eye.Y() != 400 || center.Y() != 0 {
		t.Fatalf("top-down view eye=%v center=%v", eye, center)
	}

	classic := newTestScene(VariantClassic)
	classic.Apply(Event{Kind: KeyDown, Key: KeyV})
	if classic.Camera.TopDown {
		t.Fatal("classic should ignore V")
	}
}

func TestValleyCameraAboveGround(t *testing.T) {
	s := newTestScene(VariantValley)
	eye, _, _ := s.Camera.View(s.Focus())
	if eye.Y() <= s.Config.Camera.Height {
		t.Fatalf("eye y = %f, want above %f when looking down", eye.Y(), s.Config.Camera.Height)
	}

	cfg := s.Config.Camera
	for p := cfg.PitchLimit.Min; p <= cfg.PitchLimit.Max; p += 5 {
		for d := cfg.Zoom.Min; d <= cfg.Zoom.Max; d += 25 {
			s.Camera.Pitch.Set(p)
			s.Camera.Distance.Set(d)
			eye, _, _ := s.Camera.View(s.Focus())
			if eye.Y() < cfg.MinEyeHeight {
				t.Fatalf("pitch %.0f distance %.0f: eye y = %f, want >= %f", p, d, eye.Y(), cfg.MinEyeHeight)
			}
		}
	}
}

func TestValleyCameraDragStaysAboveGround(t *testing.T) {
	s := newTestScene(VariantValley)

	// Right-drag down to the widest zoom.
	s.Apply(Event{Kind: MouseDown, Button: ButtonRight, X: 100, Y: 100})
	s.Apply(Event{Kind: MouseMove, X: 100, Y: 1000})
	s.Apply(Event{Kind: MouseUp, Button: ButtonRight, X: 100, Y: 1000})

	// Left-drag up to the steepest upward pitch.
	s.Apply(Event{Kind: MouseDown, Button: ButtonLeft, X: 100, Y: 1000})
	s.Apply(Event{Kind: MouseMove, X: 100, Y: 0})
	s.Apply(Event{Kind: MouseUp, Button: ButtonLeft, X: 100, Y: 0})

	for i := 0; i < 200; i++ {
		s.Tick()
	}
	if got, want := s.Camera.Pitch.Current, s.Config.Camera.PitchLimit.Max; math.Abs(got-want) > 0.01 {
		t.Fatalf("pitch = %f, want %f", got, want)
	}
	if got, want := s.Camera.Distance.Current, s.Config.Camera.Zoom.Max; math.Abs(got-want) > 0.01 {
		t.Fatalf("distance = %f, want %f", got, want)
	}
	eye, _, _ := s.Camera.View(s.Focus())
	if eye.Y() < s.Config.Camera.MinEyeHeight {
		t.Fatalf("eye y = %f, below %f", eye.Y(), s.Config.Camera.MinEyeHeight)
	}
}

func TestWindStrengthRange(t *testing.T) {
	var w Wind
	for i := 0; i < 5000; i++ {
		w.Step(windRate)
		if w.Strength < 0 || w.Strength > 1 {
			t.Fatalf("step %d: strength %f outside [0, 1]", i, w.Strength)
		}
	}
}

func TestArticulatedPose(t *testing.T) {
	tests := []struct {
		name      string
		man       Man
		wantHip   float64
		wantLower float64
	}{
		{"standing", Man{}, 0, 0},
		{"walking", Man{Moving: true, WalkPhase: math.Pi / 2}, 30, 0},
		{"sprinting", Man{Moving: true, Sprinting: true, WalkPhase: math.Pi / 2}, 50, 0},
		{"crouch walking", Man{Moving: true, Crouching: true, WalkPhase: math.Pi / 2}, 15 - 45, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.man.ArticulatedPose()
			if math.Abs(p.LeftHip-tt.wantHip) > 1e-9 {
				t.Errorf("left hip = %f, want %f", p.LeftHip, tt.wantHip)
			}
			if p.Lower != tt.wantLower {
				t.Errorf("lower = %f, want %f", p.Lower, tt.wantLower)
			}
			if p.Bob < 0 || p.Bob > 2 {
				t.Errorf("bob = %f outside [0, 2]", p.Bob)
			}
		})
	}
}
