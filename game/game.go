package game

import (
	"fmt"
	"log"
	"math/rand"
	"runtime"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"autumnscene/ambience"
	"autumnscene/draw"
	"autumnscene/raster"
	"autumnscene/scene"
)

// calmWind is the ambience strength for variants without simulated wind
const calmWind = 0.25

// Game adapts a scene to ebiten's Update/Draw/Layout loop
type Game struct {
	config   Config
	scene    *scene.Scene
	renderer *Renderer
	input    *InputPoller
	debug    DebugState
	wind     *ambience.Player

	width, height int
	topDown       bool
	totalTris     int

	// FPS tracking
	tps            float64
	tpsUpdateCount int
	tpsUpdateTimer float64

	// Performance profiling
	profiler        *Profiler
	lastFPSDropTime time.Time
	fpsDropCooldown time.Duration

	// Game start time to ignore FPS drops during startup
	gameStartTime time.Time

	// Last update time for delta time calculation
	lastUpdateTime time.Time
}

// NewGame creates the scene described by config. Audio and profiling
// failures are logged and the game runs without them.
func NewGame(config Config) *Game {
	sc := config.SceneConfig()
	var s *scene.Scene
	if config.Seed != 0 {
		s = scene.New(sc, rand.New(rand.NewSource(config.Seed)))
	} else {
		s = scene.NewSeeded(sc)
	}

	g := &Game{
		config:          config,
		scene:           s,
		renderer:        NewRenderer(sc.Multisample),
		input:           NewInputPoller(sc.Movement == scene.MoveOnKeyEvent),
		width:           sc.ScreenWidth,
		height:          sc.ScreenHeight,
		tps:             60.0,
		fpsDropCooldown: 10 * time.Second,
		gameStartTime:   time.Now(),
		lastUpdateTime:  time.Now(),
	}

	if config.Audio {
		w, err := ambience.Start(config.Volume)
		if err != nil {
			log.Printf("Audio disabled: %v", err)
		} else {
			g.wind = w
		}
	}
	if config.Profile {
		p, err := NewProfiler(config.ProfileDir, 5*time.Second)
		if err != nil {
			log.Printf("Profiling disabled: %v", err)
		} else {
			g.profiler = p
		}
	}
	return g
}

// Scene returns the simulated scene
func (g *Game) Scene() *scene.Scene {
	return g.scene
}

// Close releases audio
func (g *Game) Close() {
	g.wind.Close()
}

// Update runs one fixed tick: input, simulation, diagnostics
func (g *Game) Update() error {
	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now
	if deltaTime > 0.1 {
		deltaTime = 0.1
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		g.debug.ShowGrid = !g.debug.ShowGrid
	}

	s := g.scene
	s.HandleEvents(g.input.Poll())
	s.Tick()

	if s.Camera.TopDown != g.topDown {
		g.topDown = s.Camera.TopDown
		if g.topDown {
			log.Println("Top-down view")
		} else {
			log.Println("Orbit view")
		}
	}

	if s.Config.LeafWind {
		g.wind.SetStrength(s.Wind.Strength)
	} else {
		g.wind.SetStrength(calmWind)
	}

	g.monitor(deltaTime)

	if s.Quit {
		return ebiten.Termination
	}
	return nil
}

// monitor updates the tick rate every 0.5 seconds and captures a profile
// on a sustained drop
func (g *Game) monitor(deltaTime float64) {
	g.tpsUpdateTimer += deltaTime
	g.tpsUpdateCount++
	if g.tpsUpdateTimer < 0.5 {
		return
	}
	g.tps = float64(g.tpsUpdateCount) / g.tpsUpdateTimer
	g.tpsUpdateCount = 0
	g.tpsUpdateTimer = 0

	// Skip detection in the first 3 seconds after launch
	if g.profiler == nil || g.tps >= 55.0 || time.Since(g.gameStartTime) < 3*time.Second ||
		time.Since(g.lastFPSDropTime) < g.fpsDropCooldown {
		return
	}
	g.lastFPSDropTime = time.Now()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("FPS drop detected (%.0f TPS). GC stats: NumGC=%d, PauseTotal=%v, HeapAlloc=%d KB",
		g.tps, m.NumGC, time.Duration(m.PauseTotalNs), m.HeapAlloc/1024)

	reason := fmt.Sprintf("tps%.0f-tris%d", g.tps, g.totalTris)
	if err := g.profiler.Capture(reason); err != nil {
		log.Printf("Failed to capture profile: %v", err)
	}
}

// Draw renders the scene
func (g *Game) Draw(screen *ebiten.Image) {
	frame := draw.BuildFrame(g.scene, g.width, g.height)
	g.totalTris = frame.TriangleCount()
	tris := raster.Project(&frame)
	g.renderer.Render(screen, &frame, tris)

	if g.debug.ShowOverlay {
		drawOverlay(screen, overlayLines(g.scene, g.tps, ebiten.ActualFPS(), g.renderer.Drawn, g.totalTris))
	}
	if g.debug.ShowGrid {
		drawGridInfo(screen, g.scene)
	}
}

// Layout follows the window size; the projection is rebuilt on the next Draw
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
