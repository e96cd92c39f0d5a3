package game

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

var (
	// ErrCaptureCooldown is returned when a capture was started too recently
	ErrCaptureCooldown = errors.New("capture on cooldown")
	// ErrCaptureRunning is returned while a capture is still in progress
	ErrCaptureRunning = errors.New("already profiling")
)

// Profiler captures a CPU profile and an execution trace when the frame
// rate drops
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	profilesDir     string
	captureDuration time.Duration
}

// NewProfiler creates a profiler writing into dir
func NewProfiler(dir string, duration time.Duration) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create profile dir: %w", err)
	}
	return &Profiler{
		captureCooldown: 10 * time.Second,
		profilesDir:     dir,
		captureDuration: duration,
	}, nil
}

// Capture starts a CPU profile and trace in the background
func (p *Profiler) Capture(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if since := time.Since(p.lastCaptureTime); since < p.captureCooldown {
		return fmt.Errorf("%w (last capture was %v ago)", ErrCaptureCooldown, since.Round(time.Millisecond))
	}
	if p.isProfiling {
		return ErrCaptureRunning
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()
	baseName := fmt.Sprintf("fps-drop-%s-%s", time.Now().Format("20060102-150405"), reason)

	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := p.captureCPUProfile(baseName); err != nil {
				log.Printf("Error capturing CPU profile: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := p.captureTrace(baseName); err != nil {
				log.Printf("Error capturing trace: %v", err)
			}
		}()
		wg.Wait()

		p.analyzeProfile(baseName)
	}()

	return nil
}

// IsProfiling reports whether a capture is in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

func (p *Profiler) captureCPUProfile(baseName string) error {
	path := filepath.Join(p.profilesDir, baseName+".cpu.prof")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(p.captureDuration)
	pprof.StopCPUProfile()

	log.Printf("CPU profile saved to: %s", path)
	return nil
}

func (p *Profiler) captureTrace(baseName string) error {
	path := filepath.Join(p.profilesDir, baseName+".trace")
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return fmt.Errorf("failed to start trace: %w", err)
	}
	time.Sleep(p.captureDuration)
	trace.Stop()

	log.Printf("Trace saved to: %s", path)
	return nil
}

// analyzeProfile logs where the capture went and the heap at that moment
func (p *Profiler) analyzeProfile(baseName string) {
	path := filepath.Join(p.profilesDir, baseName+".cpu.prof")
	info, err := os.Stat(path)
	if err != nil {
		log.Printf("Could not analyze profile: %v", err)
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("Profile %s (%.2f KB); view with: go tool pprof -http=:8080 %s", baseName, float64(info.Size())/1024, path)
	log.Printf("Memory at capture: Alloc=%d KB Sys=%d KB NumGC=%d HeapObjects=%d",
		m.Alloc/1024, m.Sys/1024, m.NumGC, m.HeapObjects)
}
