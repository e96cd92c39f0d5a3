package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"autumnscene/scene"
)

// keyMap translates ebiten keys to scene keys, in polling order
var keyMap = []struct {
	key ebiten.Key
	to  scene.Key
}{
	{ebiten.KeyW, scene.KeyW},
	{ebiten.KeyA, scene.KeyA},
	{ebiten.KeyS, scene.KeyS},
	{ebiten.KeyD, scene.KeyD},
	{ebiten.KeyArrowUp, scene.KeyArrowUp},
	{ebiten.KeyArrowDown, scene.KeyArrowDown},
	{ebiten.KeyArrowLeft, scene.KeyArrowLeft},
	{ebiten.KeyArrowRight, scene.KeyArrowRight},
	{ebiten.KeyShiftLeft, scene.KeyShift},
	{ebiten.KeyShiftRight, scene.KeyShift},
	{ebiten.KeyControlLeft, scene.KeyCtrl},
	{ebiten.KeyControlRight, scene.KeyCtrl},
	{ebiten.KeyV, scene.KeyV},
	{ebiten.KeyEscape, scene.KeyEscape},
}

// buttonMap translates ebiten mouse buttons to scene buttons
var buttonMap = []struct {
	button ebiten.MouseButton
	to     scene.MouseButton
}{
	{ebiten.MouseButtonLeft, scene.ButtonLeft},
	{ebiten.MouseButtonRight, scene.ButtonRight},
}

// InputPoller turns ebiten's polled input state into scene events
type InputPoller struct {
	// repeat emulates keyboard auto-repeat for held keys
	repeat bool

	events       []scene.Event
	lastX, lastY int
}

// NewInputPoller creates a poller; repeat should be set for the
// event-stepped movement model
func NewInputPoller(repeat bool) *InputPoller {
	return &InputPoller{
		repeat: repeat,
		events: make([]scene.Event, 0, 16),
	}
}

// Poll returns the events since the previous call. The slice is reused.
func (p *InputPoller) Poll() []scene.Event {
	p.events = p.events[:0]

	for _, m := range keyMap {
		k, sk := m.key, m.to
		switch {
		case inpututil.IsKeyJustPressed(k):
			p.events = append(p.events, scene.Event{Kind: scene.KeyDown, Key: sk})
		case inpututil.IsKeyJustReleased(k):
			p.events = append(p.events, scene.Event{Kind: scene.KeyUp, Key: sk})
		case p.repeat && repeatFires(inpututil.KeyPressDuration(k)):
			p.events = append(p.events, scene.Event{Kind: scene.KeyDown, Key: sk})
		}
	}

	x, y := ebiten.CursorPosition()
	if x != p.lastX || y != p.lastY {
		p.events = append(p.events, scene.Event{Kind: scene.MouseMove, X: x, Y: y})
		p.lastX, p.lastY = x, y
	}
	for _, m := range buttonMap {
		b, sb := m.button, m.to
		switch {
		case inpututil.IsMouseButtonJustPressed(b):
			p.events = append(p.events, scene.Event{Kind: scene.MouseDown, Button: sb, X: x, Y: y})
		case inpututil.IsMouseButtonJustReleased(b):
			p.events = append(p.events, scene.Event{Kind: scene.MouseUp, Button: sb, X: x, Y: y})
		}
	}
	return p.events
}

// repeatFires reports whether a key held for d ticks sends a repeated press.
// The first press is reported separately; repeats start after a delay.
func repeatFires(d int) bool {
	return d > 20 && d%2 == 0
}
