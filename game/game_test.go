package game

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"autumnscene/scene"
)

func TestRepeatFires(t *testing.T) {
	tests := []struct {
		duration int
		want     bool
	}{
		{0, false},
		{1, false},
		{2, false},
		{20, false},
		{21, false},
		{22, true},
		{23, false},
		{40, true},
	}
	for _, tt := range tests {
		if got := repeatFires(tt.duration); got != tt.want {
			t.Errorf("repeatFires(%d) = %v, want %v", tt.duration, got, tt.want)
		}
	}
}

func TestDebugToggle(t *testing.T) {
	var d DebugState
	if !d.Toggle() || !d.ShowOverlay {
		t.Fatal("first toggle should show the overlay")
	}
	if d.Toggle() || d.ShowOverlay {
		t.Fatal("second toggle should hide the overlay")
	}
}

func TestNewGameUsesSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Audio = false
	cfg.Seed = 7
	a := NewGame(cfg).Scene()
	b := NewGame(cfg).Scene()
	if len(a.Leaves) == 0 || a.Leaves[0] != b.Leaves[0] {
		t.Fatal("same seed should build the same scene")
	}
	if a.Config.Variant != scene.VariantValley {
		t.Fatalf("variant = %v, want valley", a.Config.Variant)
	}
}

func TestLayoutFollowsWindow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Audio = false
	g := NewGame(cfg)
	w, h := g.Layout(1024, 700)
	if w != 1024 || h != 700 || g.width != 1024 || g.height != 700 {
		t.Fatalf("Layout = %dx%d, stored %dx%d", w, h, g.width, g.height)
	}
}

func TestOverlayLines(t *testing.T) {
	s := scene.New(scene.DefaultConfig(scene.VariantValley), rand.New(rand.NewSource(1)))
	s.Camera.TopDown = true
	lines := overlayLines(s, 60, 59.5, 100, 2000)
	if len(lines) != 5 {
		t.Fatalf("lines = %d, want 5", len(lines))
	}
	if !strings.Contains(lines[0], "valley") || !strings.Contains(lines[1], "100 / 2000") {
		t.Fatalf("unexpected header %q", lines[:2])
	}
	if !strings.Contains(lines[3], "top-down") {
		t.Fatalf("camera line %q does not report top-down", lines[3])
	}
}

func TestProfilerCooldown(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "profiles")
	p, err := NewProfiler(dir, 10*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("profile dir not created: %v", err)
	}

	if err := p.Capture("first"); err != nil {
		t.Fatalf("first capture: %v", err)
	}
	if err := p.Capture("second"); !errors.Is(err, ErrCaptureCooldown) {
		t.Fatalf("second capture = %v, want ErrCaptureCooldown", err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for p.IsProfiling() {
		if time.Now().After(deadline) {
			t.Fatal("capture did not finish")
		}
		time.Sleep(5 * time.Millisecond)
	}
	matches, _ := filepath.Glob(filepath.Join(dir, "*-first.cpu.prof"))
	if len(matches) != 1 {
		t.Fatalf("cpu profiles = %v, want one", matches)
	}
}

func TestProfilerRejectsConcurrentCapture(t *testing.T) {
	p, err := NewProfiler(t.TempDir(), time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	p.isProfiling = true
	if err := p.Capture("busy"); !errors.Is(err, ErrCaptureRunning) {
		t.Fatalf("capture while running = %v, want ErrCaptureRunning", err)
	}
}
