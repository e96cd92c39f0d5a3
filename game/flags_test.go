package game

import (
	"flag"
	"io"
	"strings"
	"testing"

	"autumnscene/scene"
)

func TestBindFlagsOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 9
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	BindFlags(fs, &cfg, true)

	if err := fs.Parse([]string{"-variant", "Classic", "-audio=false", "-width", "640"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Variant != scene.VariantClassic {
		t.Errorf("variant = %v, want classic", cfg.Variant)
	}
	if cfg.Audio {
		t.Error("audio should be off")
	}
	if cfg.ScreenWidth != 640 {
		t.Errorf("width = %d, want 640", cfg.ScreenWidth)
	}
	if cfg.Seed != 9 {
		t.Errorf("seed = %d, want the loaded value 9", cfg.Seed)
	}
}

func TestBindFlagsRejectsUnknownVariant(t *testing.T) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	BindFlags(fs, &cfg, true)

	err := fs.Parse([]string{"-variant", "winter"})
	if err == nil || !strings.Contains(err.Error(), "winter") {
		t.Fatalf("err = %v, want a rejection naming the variant", err)
	}
}

func TestVolumeFlagRange(t *testing.T) {
	tests := []struct {
		arg     string
		want    float64
		wantErr bool
	}{
		{"0", 0, false},
		{"0.75", 0.75, false},
		{"1", 1, false},
		{"5", 0, true},
		{"-0.1", 0, true},
		{"loud", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			cfg := DefaultConfig()
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			fs.SetOutput(io.Discard)
			BindFlags(fs, &cfg, true)

			err := fs.Parse([]string{"-volume", tt.arg})
			if tt.wantErr {
				if err == nil {
					t.Fatalf("-volume %s accepted, volume = %f", tt.arg, cfg.Volume)
				}
				if cfg.Volume != DefaultConfig().Volume {
					t.Fatalf("volume changed to %f on error", cfg.Volume)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if cfg.Volume != tt.want {
				t.Fatalf("volume = %f, want %f", cfg.Volume, tt.want)
			}
		})
	}
}

func TestParseArgsRejectsLoudVolume(t *testing.T) {
	path := writeEnv(t, "")
	_, err := ParseArgs("autumn", []string{"-env", path, "-volume", "5"}, scene.VariantValley, true)
	if err == nil {
		t.Fatal("-volume 5 accepted")
	}
}

func TestBindFlagsWithoutVariant(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Variant = scene.VariantAthlete
	fs := flag.NewFlagSet("athlete", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	BindFlags(fs, &cfg, false)

	if err := fs.Parse([]string{"-variant", "valley"}); err == nil {
		t.Fatal("-variant should not be defined")
	}
	if cfg.Variant != scene.VariantAthlete {
		t.Fatalf("variant changed to %v", cfg.Variant)
	}
}

func TestParseArgsPrecedence(t *testing.T) {
	path := writeEnv(t, "AUTUMN_VARIANT=athlete\nAUTUMN_SEED=5\nAUTUMN_VOLUME=0.5\n")

	cfg, err := ParseArgs("autumn", []string{"-env", path, "-seed", "11"}, scene.VariantValley, true)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Variant != scene.VariantAthlete {
		t.Errorf("variant = %v, want athlete from .env", cfg.Variant)
	}
	if cfg.Seed != 11 {
		t.Errorf("seed = %d, want 11 from the flag", cfg.Seed)
	}
	if cfg.Volume != 0.5 {
		t.Errorf("volume = %f, want 0.5 from .env", cfg.Volume)
	}
}

func TestParseArgsFixedVariant(t *testing.T) {
	path := writeEnv(t, "AUTUMN_VARIANT=athlete\n")
	cfg, err := ParseArgs("classic", []string{"-env", path}, scene.VariantClassic, false)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Variant != scene.VariantClassic {
		t.Fatalf("variant = %v, want classic regardless of the environment", cfg.Variant)
	}
}
