package scene

import (
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// Leaf is a single falling leaf.
type Leaf struct {
	X, Y, Z       float64
	Color         colorful.Color
	Size          float64
	FallSpeed     float64
	Rotation      float64 // degrees
	RotationSpeed float64 // degrees per tick
}

// Cloud drifts along +x and wraps around.
type Cloud struct {
	X, Y, Z float64
	Size    float64
	Speed   float64
	Density float64
}

// Pumpkin sits on the ground.
type Pumpkin struct {
	X, Z     float64
	Size     float64
	Rotation float64 // degrees
}

// Flower is a chrysanthemum.
type Flower struct {
	X, Z          float64
	Color         colorful.Color
	PetalRotation float64 // degrees
}

// PileBlob is one flattened leaf clump inside a pile, relative to the pile.
type PileBlob struct {
	DX, DY, DZ float64
	Color      colorful.Color
}

// LeafPile is a heap of blobs on the ground.
type LeafPile struct {
	X, Z   float64
	Size   float64
	Height float64
	Blobs  [8]PileBlob
}

// DistantTree is a low-detail background tree.
type DistantTree struct {
	X, Z    float64
	Height  float64
	Width   float64
	Foliage colorful.Color
}

// Hill is a scaled hemisphere in the background. Mountains form the ring
// around the valley.
type Hill struct {
	X, Z     float64
	Radius   float64
	Height   float64
	Mountain bool
	Color    colorful.Color
}

var (
	flowerPalette = []struct {
		threshold float64
		color     colorful.Color
	}{
		{0.3, colorful.Color{R: 1.0, G: 0.8, B: 0.0}},
		{0.5, colorful.Color{R: 1.0, G: 0.5, B: 0.0}},
		{0.7, colorful.Color{R: 0.9, G: 0.3, B: 0.2}},
		{1.0, colorful.Color{R: 0.8, G: 0.6, B: 0.9}},
	}
	pilePalette = []colorful.Color{
		{R: 0.8, G: 0.3, B: 0.0},
		{R: 1.0, G: 0.6, B: 0.0},
		{R: 0.6, G: 0.4, B: 0.1},
	}
)

// pick chooses a palette entry with equal probability.
func pick(rng *rand.Rand, palette []colorful.Color) colorful.Color {
	if len(palette) == 0 {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return palette[rng.Intn(len(palette))]
}

func (s *Scene) spawnLeaf(l *Leaf) {
	cfg := &s.Config
	l.X = cfg.LeafSpawn.X.Lerp(s.rng.Float64())
	l.Y = cfg.LeafSpawn.Y.Lerp(s.rng.Float64())
	l.Z = cfg.LeafSpawn.Z.Lerp(s.rng.Float64())
	l.Color = pick(s.rng, cfg.LeafPalette)
	l.Size = cfg.LeafSize.Lerp(s.rng.Float64())
	l.FallSpeed = cfg.LeafFall.Lerp(s.rng.Float64())
	if cfg.LeafSpin != (Range{}) {
		l.RotationSpeed = cfg.LeafSpin.Lerp(s.rng.Float64())
		l.Rotation = s.rng.Float64() * 360
	}
}

// respawnLeaf recycles a leaf that reached the ground.
func (s *Scene) respawnLeaf(l *Leaf) {
	cfg := &s.Config
	l.Y = cfg.LeafRespawnY.Lerp(s.rng.Float64())
	l.X = cfg.LeafSpawn.X.Lerp(s.rng.Float64())
	l.Z = cfg.LeafSpawn.Z.Lerp(s.rng.Float64())
	if cfg.LeafRespawnSpeed {
		l.FallSpeed = cfg.LeafFall.Lerp(s.rng.Float64())
	}
	if cfg.LeafSpin != (Range{}) {
		l.Rotation = s.rng.Float64() * 360
	}
}

func (s *Scene) spawnGround() {
	cfg := &s.Config
	span := Range{-cfg.PropSpan, cfg.PropSpan}

	s.Pumpkins = make([]Pumpkin, cfg.PumpkinCount)
	for i := range s.Pumpkins {
		s.Pumpkins[i] = Pumpkin{
			X:        span.Lerp(s.rng.Float64()),
			Z:        span.Lerp(s.rng.Float64()),
			Size:     12 + s.rng.Float64()*12,
			Rotation: s.rng.Float64() * 360,
		}
	}

	s.Flowers = make([]Flower, cfg.FlowerCount)
	for i := range s.Flowers {
		f := Flower{
			X:             span.Lerp(s.rng.Float64()),
			Z:             span.Lerp(s.rng.Float64()),
			PetalRotation: s.rng.Float64() * 360,
		}
		choice := s.rng.Float64()
		for _, p := range flowerPalette {
			if choice < p.threshold {
				f.Color = p.color
				break
			}
		}
		s.Flowers[i] = f
	}

	s.Piles = make([]LeafPile, cfg.PileCount)
	for i := range s.Piles {
		p := LeafPile{
			X:      span.Lerp(s.rng.Float64()),
			Z:      span.Lerp(s.rng.Float64()),
			Size:   20 + s.rng.Float64()*25,
			Height: 4 + s.rng.Float64()*6,
		}
		for j := range p.Blobs {
			p.Blobs[j] = PileBlob{
				DX:    (s.rng.Float64()*2 - 1) * p.Size * 0.3,
				DY:    s.rng.Float64() * p.Height * 0.5,
				DZ:    (s.rng.Float64()*2 - 1) * p.Size * 0.3,
				Color: pick(s.rng, pilePalette),
			}
		}
		s.Piles[i] = p
	}
}

func (s *Scene) spawnBackground() {
	cfg := &s.Config

	s.Clouds = make([]Cloud, cfg.CloudCount)
	for i := range s.Clouds {
		s.Clouds[i] = Cloud{
			X:       cloudSpan.Lerp(s.rng.Float64()),
			Y:       250 + s.rng.Float64()*250,
			Z:       cloudSpan.Lerp(s.rng.Float64()),
			Size:    35 + s.rng.Float64()*70,
			Speed:   0.2 + s.rng.Float64()*0.5,
			Density: 0.7 + s.rng.Float64()/3,
		}
	}

	s.Hills = make([]Hill, 0, cfg.HillCount+cfg.MountainCount)
	for i := 0; i < cfg.HillCount; i++ {
		s.Hills = append(s.Hills, Hill{
			X:      -1500 + s.rng.Float64()*3000,
			Z:      -800 - s.rng.Float64()*1000,
			Radius: 200 + s.rng.Float64()*300,
			Height: 80 + s.rng.Float64()*120,
			Color: colorful.Color{
				R: 0.4 + s.rng.Float64()*0.2,
				G: 0.5 + s.rng.Float64()*0.2,
				B: 0.2,
			},
		})
	}
	for i := 0; i < cfg.MountainCount; i++ {
		angle := float64(i) * 2 * math.Pi / float64(cfg.MountainCount)
		s.Hills = append(s.Hills, Hill{
			X:        cfg.MountainRing * math.Cos(angle),
			Z:        cfg.MountainRing * math.Sin(angle),
			Radius:   250 + s.rng.Float64()*200,
			Height:   300 + s.rng.Float64()*250,
			Mountain: true,
			Color: colorful.Color{
				R: 0.35 + s.rng.Float64()*0.15,
				G: 0.4 + s.rng.Float64()*0.15,
				B: 0.25,
			},
		})
	}

	s.DistantTrees = make([]DistantTree, cfg.DistantTreeCount)
	for i := range s.DistantTrees {
		s.DistantTrees[i] = DistantTree{
			X:      -1000 + s.rng.Float64()*2000,
			Z:      -600 - s.rng.Float64()*800,
			Height: 60 + s.rng.Float64()*80,
			Width:  30 + s.rng.Float64()*40,
			Foliage: colorful.Color{
				R: 0.7 + s.rng.Float64()*0.2,
				G: 0.4 + s.rng.Float64()*0.2,
				B: 0.1,
			},
		}
	}
}
