package game

import (
	"flag"
	"log"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"

	"autumnscene/scene"
)

// variantFlag lets -variant parse straight into Config.Variant
type variantFlag struct{ v *scene.Variant }

func (f variantFlag) String() string {
	if f.v == nil {
		return ""
	}
	return f.v.String()
}

func (f variantFlag) Set(s string) error {
	v, err := scene.ParseVariant(s)
	if err != nil {
		return err
	}
	*f.v = v
	return nil
}

// volumeFlag rejects volumes outside [0, 1]
type volumeFlag struct{ v *float64 }

func (f volumeFlag) String() string {
	if f.v == nil {
		return ""
	}
	return strconv.FormatFloat(*f.v, 'g', -1, 64)
}

func (f volumeFlag) Set(s string) error {
	vol, err := ParseVolume(s)
	if err != nil {
		return err
	}
	*f.v = vol
	return nil
}

// BindFlags registers command-line overrides for cfg on fs. Values already
// in cfg become the defaults. withVariant adds -variant.
func BindFlags(fs *flag.FlagSet, cfg *Config, withVariant bool) {
	if withVariant {
		fs.Var(variantFlag{&cfg.Variant}, "variant", "scene variant: valley, classic or athlete")
	}
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "scene seed (0 seeds from the clock)")
	fs.IntVar(&cfg.ScreenWidth, "width", cfg.ScreenWidth, "window width (0 keeps the variant default)")
	fs.IntVar(&cfg.ScreenHeight, "height", cfg.ScreenHeight, "window height (0 keeps the variant default)")
	fs.BoolVar(&cfg.Audio, "audio", cfg.Audio, "play wind ambience")
	fs.Var(volumeFlag{&cfg.Volume}, "volume", "ambience volume in [0, 1]")
	fs.BoolVar(&cfg.Profile, "profile", cfg.Profile, "capture CPU profiles on frame-rate drops")
	fs.StringVar(&cfg.ProfileDir, "profile-dir", cfg.ProfileDir, "directory for captured profiles")
}

// ParseArgs builds the configuration for a program: defaults, then the
// .env file named by -env, then AUTUMN_* variables, then the flags that
// were given explicitly.
func ParseArgs(name string, args []string, variant scene.Variant, withVariant bool) (Config, error) {
	given := DefaultConfig()
	given.Variant = variant
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	envFile := fs.String("env", ".env", "file with AUTUMN_* settings")
	BindFlags(fs, &given, withVariant)
	if err := fs.Parse(args); err != nil {
		return given, err
	}

	cfg, err := LoadConfig(*envFile)
	if err != nil {
		return cfg, err
	}
	if !withVariant {
		cfg.Variant = variant
	}

	apply := flag.NewFlagSet(name, flag.ContinueOnError)
	BindFlags(apply, &cfg, withVariant)
	var setErr error
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "env" || setErr != nil {
			return
		}
		setErr = apply.Set(f.Name, f.Value.String())
	})
	return cfg, setErr
}

// Run opens the window and blocks until it is closed or Escape is pressed
func Run(config Config) error {
	g := NewGame(config)
	defer g.Close()

	sc := g.Scene().Config
	ebiten.SetWindowSize(sc.ScreenWidth, sc.ScreenHeight)
	ebiten.SetWindowTitle(sc.Title)
	ebiten.SetWindowResizable(true)

	log.Printf("Starting %s scene (%dx%d)", sc.Variant, sc.ScreenWidth, sc.ScreenHeight)
	return ebiten.RunGame(g)
}
