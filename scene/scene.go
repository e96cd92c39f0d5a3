package scene

import (
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

// Scene holds the entire simulation state. It is created once and owned by
// the main loop; nothing in it is safe for concurrent use.
type Scene struct {
	Config Config

	Man    Man
	Camera OrbitCamera

	Leaves       []Leaf
	Clouds       []Cloud
	Pumpkins     []Pumpkin
	Flowers      []Flower
	Piles        []LeafPile
	DistantTrees []DistantTree
	Hills        []Hill
	Trees        []Spot

	LeafDrift float64
	SunAngle  float64 // radians, kept in [0, 2π)
	TimeOfDay float64
	Wind      Wind

	Hue    float64 // [0, 1)
	Jacket colorful.Color
	Ticks  uint64
	Quit   bool

	held     map[Key]bool
	dragging [2]bool
	lastX    int
	lastY    int

	props *PropGrid
	rng   *rand.Rand
}

// New builds a scene from cfg, drawing every random value from rng.
func New(cfg Config, rng *rand.Rand) *Scene {
	s := &Scene{
		Config: cfg,
		Camera: NewOrbitCamera(cfg.Camera),
		Jacket: colorful.Color{R: 0.8, G: 0.2, B: 0.0},
		held:   make(map[Key]bool),
		rng:    rng,
	}
	s.Trees = append(s.Trees, cfg.Trees...)
	if cfg.DynamicSky {
		s.SunAngle = startSun
	}

	s.Leaves = make([]Leaf, cfg.LeafCount)
	for i := range s.Leaves {
		s.spawnLeaf(&s.Leaves[i])
	}
	s.spawnGround()
	s.spawnBackground()
	s.indexProps()
	return s
}

// NewSeeded builds a scene with a generator seeded from the wall clock.
func NewSeeded(cfg Config) *Scene {
	return New(cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
}

func (s *Scene) indexProps() {
	extent := s.Config.PropSpan
	for _, t := range s.Trees {
		extent = max(extent, abs(t.X), abs(t.Z))
	}
	s.props = NewPropGrid(s.Config.PropCellSize, extent)

	for i, t := range s.Trees {
		s.props.Register(PropRef{Kind: PropTree, Index: i, X: t.X, Z: t.Z})
	}
	for i, p := range s.Pumpkins {
		s.props.Register(PropRef{Kind: PropPumpkin, Index: i, X: p.X, Z: p.Z})
	}
	for i, f := range s.Flowers {
		s.props.Register(PropRef{Kind: PropFlower, Index: i, X: f.X, Z: f.Z})
	}
	for i, p := range s.Piles {
		s.props.Register(PropRef{Kind: PropPile, Index: i, X: p.X, Z: p.Z})
	}
}

// PropsNear returns the ground props within radius of (x, z), appended to dst.
func (s *Scene) PropsNear(dst []PropRef, x, z, radius float64) []PropRef {
	return s.props.InRadius(dst, x, z, radius)
}

// FocusCell returns the prop grid cell under the figure and how many props
// it holds.
func (s *Scene) FocusCell() (cx, cz, count int) {
	cx, cz = s.props.WorldToCell(s.Man.X, s.Man.Z)
	if c := s.props.Cell(cx, cz); c != nil {
		count = len(c.Props)
	}
	return cx, cz, count
}

// Focus is the point the camera orbits and the renderer culls around.
func (s *Scene) Focus() mgl64.Vec3 {
	return mgl64.Vec3{s.Man.X, 0, s.Man.Z}
}

// SunPosition returns the sun's world position for the current angle.
func (s *Scene) SunPosition() mgl64.Vec3 {
	return sunPosition(s.SunAngle)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
