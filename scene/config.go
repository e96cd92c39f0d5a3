package scene

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Variant selects one of the scene presets.
type Variant int

const (
	// VariantValley is the full scene: terrain, sky, props and mountains.
	VariantValley Variant = iota
	// VariantClassic is the small orbit scene with three trees and fog.
	VariantClassic
	// VariantAthlete is the articulated figure with crouch, sprint and shadow.
	VariantAthlete
)

// ErrUnknownVariant is returned by ParseVariant for names it does not know.
var ErrUnknownVariant = errors.New("unknown variant")

var variantNames = map[Variant]string{
	VariantValley:  "valley",
	VariantClassic: "classic",
	VariantAthlete: "athlete",
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant maps a case-insensitive name to a Variant.
func ParseVariant(name string) (Variant, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for v, n := range variantNames {
		if n == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// MovementModel decides how keyboard input moves the figure.
type MovementModel int

const (
	// MoveOnKeyEvent steps the figure once per key-down event (auto-repeat
	// keeps it walking).
	MoveOnKeyEvent MovementModel = iota
	// MoveHeldKeys moves the figure every tick while keys are held.
	MoveHeldKeys
)

// LeafShape is how falling leaves are drawn.
type LeafShape int

const (
	LeafQuad LeafShape = iota
	LeafBlade
)

// Range is a closed numeric interval.
type Range struct {
	Min, Max float64
}

// Lerp maps t in [0,1) onto the range.
func (r Range) Lerp(t float64) float64 {
	return r.Min + (r.Max-r.Min)*t
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Clamp limits v to the range.
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Box is an axis-aligned spawn volume.
type Box struct {
	X, Y, Z Range
}

// Spot is a fixed ground position.
type Spot struct {
	X, Z float64
}

// CameraConfig holds the orbit camera parameters of a variant.
type CameraConfig struct {
	Angle    float64 // initial orbit angle in degrees
	Pitch    float64 // initial pitch in degrees, negative looks down
	Distance float64 // initial distance from the focus

	Zoom       Range // allowed distance
	PitchLimit Range

	// Smoothing is the fraction of the remaining distance to the target
	// covered each tick. 1 snaps immediately.
	Smoothing float64

	ZoomStep   float64 // arrow-key zoom
	RotateStep float64 // arrow-key rotation in degrees, 0 disables

	Follow     bool    // orbit the figure instead of the origin
	UsePitch   bool    // vertical mouse drag changes pitch
	Height     float64 // eye height
	LookHeight float64 // height of the look-at point
	ZOffset    float64 // extra eye offset along z

	// MinEyeHeight is the lowest the orbiting eye may go. It must clear
	// the highest point of the ground.
	MinEyeHeight float64
}

// Light is a single light source. W == 0 means directional.
type Light struct {
	Position [4]float64
	Ambient  float64
	Diffuse  float64
	Color    colorful.Color
}

// Config holds everything that differs between variants.
type Config struct {
	Variant      Variant
	Title        string
	ScreenWidth  int
	ScreenHeight int
	Multisample  bool
	FarPlane     float64

	// Falling leaves
	LeafCount        int
	LeafSpawn        Box
	LeafRespawnY     Range
	LeafRespawnSpeed bool // roll a new fall speed on respawn
	LeafSize         Range
	LeafFall         Range
	LeafSpin         Range // zero range disables spin
	LeafPalette      []colorful.Color
	LeafShape        LeafShape
	LeafBob          bool
	LeafWind         bool

	// Ground props and background
	Trees            []Spot
	PropSpan         float64 // props spawn within ±PropSpan on x and z
	PumpkinCount     int
	FlowerCount      int
	PileCount        int
	CloudCount       int
	HillCount        int
	MountainCount    int
	MountainRing     float64
	DistantTreeCount int
	PropCellSize     float64
	PropDrawRadius   float64

	// Figure
	Movement      MovementModel
	MoveStep      float64
	Bounds        float64
	Articulated   bool
	Shadow        bool
	TopDownToggle bool

	Camera CameraConfig

	// Atmosphere
	DynamicSky bool
	ClearColor colorful.Color
	FogDensity float64 // 0 disables fog
	FogColor   colorful.Color
	Light      Light
}

var (
	leafRed    = colorful.Color{R: 0.8, G: 0.2, B: 0.0}
	leafOrange = colorful.Color{R: 1.0, G: 0.5, B: 0.0}
	leafYellow = colorful.Color{R: 1.0, G: 1.0, B: 0.0}
	leafGold   = colorful.Color{R: 1.0, G: 0.8, B: 0.0}
	leafBrown  = colorful.Color{R: 0.5, G: 0.3, B: 0.1}
	leafUmber  = colorful.Color{R: 0.6, G: 0.3, B: 0.1}
)

// DefaultConfig returns the preset for a variant. Unknown variants fall
// back to the valley preset.
func DefaultConfig(v Variant) Config {
	switch v {
	case VariantClassic:
		return classicConfig()
	case VariantAthlete:
		return athleteConfig()
	default:
		return valleyConfig()
	}
}

func classicConfig() Config {
	sky := colorful.Color{R: 0.8, G: 0.9, B: 0.95}
	return Config{
		Variant:      VariantClassic,
		Title:        "Enhanced 3D Autumn Scene - Realistic Walk & Zoom",
		ScreenWidth:  800,
		ScreenHeight: 600,
		FarPlane:     1000,

		LeafCount:        150,
		LeafSpawn:        Box{X: Range{-200, 200}, Y: Range{200, 500}, Z: Range{-200, 200}},
		LeafRespawnY:     Range{500, 600},
		LeafRespawnSpeed: true,
		LeafSize:         Range{1.5, 3},
		LeafFall:         Range{0.5, 2},
		LeafPalette:      []colorful.Color{leafRed, leafOrange, leafYellow, leafBrown},
		LeafShape:        LeafQuad,
		LeafBob:          true,

		Trees:          []Spot{{150, -100}, {-150, 50}, {50, 200}},
		PropCellSize:   200,
		PropDrawRadius: 1000,

		Movement: MoveOnKeyEvent,
		MoveStep: 5,
		Bounds:   300,

		Camera: CameraConfig{
			Angle:      45,
			Distance:   250,
			Zoom:       Range{50, 500},
			Smoothing:  1,
			ZoomStep:   10,
			Height:     150,
			LookHeight: 50,
			ZOffset:    30,
		},

		ClearColor: sky,
		FogDensity: 0.005,
		FogColor:   sky,
		Light: Light{
			Position: [4]float64{200, 400, 100, 0},
			Ambient:  0.3,
			Diffuse:  0.7,
			Color:    colorful.Color{R: 1, G: 1, B: 1},
		},
	}
}

func athleteConfig() Config {
	return Config{
		Variant:      VariantAthlete,
		Title:        "Realistic Man - Crouch & Sprint",
		ScreenWidth:  800,
		ScreenHeight: 600,
		FarPlane:     2000,

		LeafCount:    150,
		LeafSpawn:    Box{X: Range{-300, 300}, Y: Range{100, 500}, Z: Range{-300, 300}},
		LeafRespawnY: Range{500, 500},
		LeafSize:     Range{2, 3},
		LeafFall:     Range{0.5, 1.5},
		LeafPalette:  []colorful.Color{leafRed, leafOrange, leafYellow, leafBrown},
		LeafShape:    LeafQuad,

		Trees:          []Spot{{150, -100}, {-150, 50}},
		PropCellSize:   200,
		PropDrawRadius: 1500,

		Movement:    MoveHeldKeys,
		MoveStep:    4,
		Bounds:      800,
		Articulated: true,
		Shadow:      true,

		Camera: CameraConfig{
			Angle:      45,
			Distance:   350,
			Zoom:       Range{100, 800},
			Smoothing:  1,
			ZoomStep:   10,
			RotateStep: 5,
			Height:     150,
			LookHeight: 60,
		},

		ClearColor: colorful.Color{R: 0.7, G: 0.85, B: 1.0},
		Light: Light{
			Position: [4]float64{300, 500, 200, 1},
			Ambient:  0.4,
			Diffuse:  0.8,
			Color:    colorful.Color{R: 1, G: 1, B: 1},
		},
	}
}

func valleyConfig() Config {
	cfg := Config{
		Variant:      VariantValley,
		Title:        "Enhanced Realistic 3D Autumn Scene - with Mountains",
		ScreenWidth:  1200,
		ScreenHeight: 800,
		Multisample:  true,
		FarPlane:     6000,

		LeafCount:        500,
		LeafSpawn:        Box{X: Range{-500, 500}, Y: Range{100, 500}, Z: Range{-500, 500}},
		LeafRespawnY:     Range{500, 600},
		LeafRespawnSpeed: true,
		LeafSize:         Range{1.5, 3},
		LeafFall:         Range{0.3, 1.3},
		LeafSpin:         Range{-1, 1},
		LeafPalette:      []colorful.Color{leafRed, leafOrange, leafGold, leafUmber},
		LeafShape:        LeafBlade,
		LeafBob:          true,
		LeafWind:         true,

		PropSpan:         400,
		PumpkinCount:     25,
		FlowerCount:      40,
		PileCount:        35,
		CloudCount:       35,
		HillCount:        12,
		MountainCount:    24,
		MountainRing:     1800,
		DistantTreeCount: 60,
		PropCellSize:     180,
		PropDrawRadius:   1400,

		Movement:      MoveOnKeyEvent,
		MoveStep:      5,
		Bounds:        800,
		TopDownToggle: true,

		Camera: CameraConfig{
			Angle:      45,
			Pitch:      -20,
			Distance:   300,
			Zoom:       Range{50, 500},
			PitchLimit: Range{-80, 60},
			Smoothing:  0.15,
			ZoomStep:   10,
			Follow:     true,
			UsePitch:   true,
			Height:     100,
			LookHeight: 30,

			MinEyeHeight: 15,
		},

		DynamicSky: true,
		ClearColor: colorful.Color{R: 0.8, G: 0.7, B: 0.6},
		FogDensity: 0.00015,
		FogColor:   colorful.Color{R: 0.8, G: 0.7, B: 0.6},
		Light: Light{
			Ambient: 0.45,
			Diffuse: 1.0,
			Color:   colorful.Color{R: 1.0, G: 0.88, B: 0.65},
		},
	}

	const spacing = 180.0
	for i := -3; i <= 3; i++ {
		for j := -3; j <= 3; j++ {
			if i == 0 && j == 0 {
				continue
			}
			cfg.Trees = append(cfg.Trees, Spot{X: float64(i) * spacing, Z: float64(j) * spacing})
		}
	}
	return cfg
}
