package game

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"autumnscene/scene"
)

// ErrInvalidVolume is returned for an ambience volume outside [0, 1]
var ErrInvalidVolume = errors.New("volume must be a number in [0, 1]")

// ParseVolume parses an ambience volume
func ParseVolume(s string) (float64, error) {
	vol, err := strconv.ParseFloat(s, 64)
	if err != nil || vol < 0 || vol > 1 {
		return 0, fmt.Errorf("invalid volume %q: %w", s, ErrInvalidVolume)
	}
	return vol, nil
}

// Config holds the settings a program starts with
type Config struct {
	// Variant selects the scene preset
	Variant scene.Variant

	// Seed for the scene RNG; zero means seed from the clock
	Seed int64

	// ScreenWidth and ScreenHeight override the variant's window size when non-zero
	ScreenWidth  int
	ScreenHeight int

	// Audio enables the wind ambience
	Audio bool

	// Volume is the ambience gain at full wind strength
	Volume float64

	// Profile enables FPS-drop profiling into ProfileDir
	Profile    bool
	ProfileDir string
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Variant:    scene.VariantValley,
		Audio:      true,
		Volume:     0.3,
		ProfileDir: "profiles",
	}
}

// LoadConfig starts from DefaultConfig and applies AUTUMN_* variables from
// the .env file at path and then from the process environment. A missing
// file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	file := map[string]string{}
	if path != "" {
		values, err := godotenv.Read(path)
		switch {
		case err == nil:
			file = values
		case errors.Is(err, fs.ErrNotExist):
		default:
			return cfg, fmt.Errorf("failed to read %s: %w", path, err)
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := file[key]
		return v, ok
	}

	if v, ok := lookup("AUTUMN_VARIANT"); ok {
		variant, err := scene.ParseVariant(v)
		if err != nil {
			return cfg, fmt.Errorf("AUTUMN_VARIANT: %w", err)
		}
		cfg.Variant = variant
	}
	if v, ok := lookup("AUTUMN_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("AUTUMN_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	for key, dst := range map[string]*int{
		"AUTUMN_WIDTH":  &cfg.ScreenWidth,
		"AUTUMN_HEIGHT": &cfg.ScreenHeight,
	} {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return cfg, fmt.Errorf("%s: invalid size %q", key, v)
		}
		*dst = n
	}
	for key, dst := range map[string]*bool{
		"AUTUMN_AUDIO":   &cfg.Audio,
		"AUTUMN_PROFILE": &cfg.Profile,
	} {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", key, err)
		}
		*dst = b
	}
	if v, ok := lookup("AUTUMN_VOLUME"); ok {
		vol, err := ParseVolume(v)
		if err != nil {
			return cfg, fmt.Errorf("AUTUMN_VOLUME: %w", err)
		}
		cfg.Volume = vol
	}
	if v, ok := lookup("AUTUMN_PROFILE_DIR"); ok && v != "" {
		cfg.ProfileDir = v
	}
	return cfg, nil
}

// SceneConfig returns the scene preset for the variant with window
// overrides applied.
func (c Config) SceneConfig() scene.Config {
	sc := scene.DefaultConfig(c.Variant)
	if c.ScreenWidth > 0 {
		sc.ScreenWidth = c.ScreenWidth
	}
	if c.ScreenHeight > 0 {
		sc.ScreenHeight = c.ScreenHeight
	}
	return sc
}
