package game

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"autumnscene/scene"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("missing .env should not fail: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatalf("got %+v, want defaults %+v", cfg, DefaultConfig())
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeEnv(t, strings.Join([]string{
		"AUTUMN_VARIANT=athlete",
		"AUTUMN_SEED=42",
		"AUTUMN_WIDTH=640",
		"AUTUMN_HEIGHT=480",
		"AUTUMN_AUDIO=false",
		"AUTUMN_VOLUME=0.8",
		"AUTUMN_PROFILE=true",
		"AUTUMN_PROFILE_DIR=/tmp/autumn",
	}, "\n"))

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	want := Config{
		Variant:      scene.VariantAthlete,
		Seed:         42,
		ScreenWidth:  640,
		ScreenHeight: 480,
		Audio:        false,
		Volume:       0.8,
		Profile:      true,
		ProfileDir:   "/tmp/autumn",
	}
	if cfg != want {
		t.Fatalf("got %+v, want %+v", cfg, want)
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := writeEnv(t, "AUTUMN_VARIANT=athlete\nAUTUMN_SEED=1\n")
	t.Setenv("AUTUMN_VARIANT", "classic")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Variant != scene.VariantClassic {
		t.Errorf("variant = %v, want classic", cfg.Variant)
	}
	if cfg.Seed != 1 {
		t.Errorf("seed = %d, want 1 from file", cfg.Seed)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		key, value string
		wantIs     error
	}{
		{"AUTUMN_VARIANT", "winter", scene.ErrUnknownVariant},
		{"AUTUMN_SEED", "abc", nil},
		{"AUTUMN_WIDTH", "-5", nil},
		{"AUTUMN_HEIGHT", "tall", nil},
		{"AUTUMN_AUDIO", "maybe", nil},
		{"AUTUMN_VOLUME", "2", ErrInvalidVolume},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadConfig("")
			if err == nil {
				t.Fatalf("%s=%s accepted", tt.key, tt.value)
			}
			if !strings.Contains(err.Error(), tt.key) {
				t.Errorf("error %q does not name %s", err, tt.key)
			}
			if tt.wantIs != nil && !errors.Is(err, tt.wantIs) {
				t.Errorf("error %v is not %v", err, tt.wantIs)
			}
		})
	}
}

func TestLoadConfigBadFile(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadConfig(dir); err == nil {
		t.Fatal("reading a directory as .env should fail")
	}
}

func TestSceneConfigOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Variant = scene.VariantClassic
	sc := cfg.SceneConfig()
	if sc.ScreenWidth != 800 || sc.ScreenHeight != 600 {
		t.Fatalf("classic window = %dx%d, want 800x600", sc.ScreenWidth, sc.ScreenHeight)
	}

	cfg.ScreenWidth, cfg.ScreenHeight = 320, 200
	sc = cfg.SceneConfig()
	if sc.ScreenWidth != 320 || sc.ScreenHeight != 200 {
		t.Fatalf("override window = %dx%d, want 320x200", sc.ScreenWidth, sc.ScreenHeight)
	}
}
