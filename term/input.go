// Package term renders a scene into a terminal with tcell, two pixels per
// cell, and translates terminal input into scene events.
package term

import (
	"github.com/gdamore/tcell/v2"

	"autumnscene/scene"
)

// releaseAfter is how many ticks a key stays held without a repeat.
// Terminals report presses only.
const releaseAfter = 30

// Cells are scaled to roughly pixel units so drags feel like the window.
const (
	cellWidth  = 8
	cellHeight = 16
)

// Translator turns tcell events into scene events. It synthesizes key
// releases and mouse button transitions that terminals do not report.
type Translator struct {
	lastSeen map[scene.Key]uint64
	buttons  tcell.ButtonMask
	tick     uint64
	events   []scene.Event
}

// NewTranslator creates a translator with no keys held
func NewTranslator() *Translator {
	return &Translator{
		lastSeen: make(map[scene.Key]uint64),
		events:   make([]scene.Event, 0, 8),
	}
}

// Translate returns the scene events for one terminal event. The slice is
// reused by the next call.
func (t *Translator) Translate(ev tcell.Event) []scene.Event {
	t.events = t.events[:0]
	switch ev := ev.(type) {
	case *tcell.EventKey:
		key, mods := keyOf(ev)
		if mods&tcell.ModShift != 0 {
			t.press(scene.KeyShift)
		}
		if mods&tcell.ModCtrl != 0 && key != scene.KeyEscape {
			t.press(scene.KeyCtrl)
		}
		if key != scene.KeyNone {
			t.press(key)
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		x *= cellWidth
		y *= cellHeight
		t.events = append(t.events, scene.Event{Kind: scene.MouseMove, X: x, Y: y})
		for _, b := range []struct {
			mask   tcell.ButtonMask
			button scene.MouseButton
		}{
			{tcell.Button1, scene.ButtonLeft},
			{tcell.Button2, scene.ButtonRight},
		} {
			now := ev.Buttons()&b.mask != 0
			was := t.buttons&b.mask != 0
			switch {
			case now && !was:
				t.events = append(t.events, scene.Event{Kind: scene.MouseDown, Button: b.button, X: x, Y: y})
			case !now && was:
				t.events = append(t.events, scene.Event{Kind: scene.MouseUp, Button: b.button, X: x, Y: y})
			}
		}
		t.buttons = ev.Buttons()
	}
	return t.events
}

// Expire advances one tick and releases keys that have not repeated
func (t *Translator) Expire() []scene.Event {
	t.events = t.events[:0]
	t.tick++
	for k, seen := range t.lastSeen {
		if t.tick-seen >= releaseAfter {
			delete(t.lastSeen, k)
			t.events = append(t.events, scene.Event{Kind: scene.KeyUp, Key: k})
		}
	}
	return t.events
}

func (t *Translator) press(k scene.Key) {
	t.lastSeen[k] = t.tick
	t.events = append(t.events, scene.Event{Kind: scene.KeyDown, Key: k})
}

// keyOf maps a key event to a scene key. Upper-case letters imply Shift and
// control codes for the movement letters imply Ctrl.
func keyOf(ev *tcell.EventKey) (scene.Key, tcell.ModMask) {
	mods := ev.Modifiers()
	switch ev.Key() {
	case tcell.KeyUp:
		return scene.KeyArrowUp, mods
	case tcell.KeyDown:
		return scene.KeyArrowDown, mods
	case tcell.KeyLeft:
		return scene.KeyArrowLeft, mods
	case tcell.KeyRight:
		return scene.KeyArrowRight, mods
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return scene.KeyEscape, mods
	case tcell.KeyCtrlW:
		return scene.KeyW, mods | tcell.ModCtrl
	case tcell.KeyCtrlA:
		return scene.KeyA, mods | tcell.ModCtrl
	case tcell.KeyCtrlS:
		return scene.KeyS, mods | tcell.ModCtrl
	case tcell.KeyCtrlD:
		return scene.KeyD, mods | tcell.ModCtrl
	case tcell.KeyRune:
	default:
		return scene.KeyNone, mods
	}

	r := ev.Rune()
	if r >= 'A' && r <= 'Z' {
		mods |= tcell.ModShift
		r += 'a' - 'A'
	}
	switch r {
	case 'w':
		return scene.KeyW, mods
	case 'a':
		return scene.KeyA, mods
	case 's':
		return scene.KeyS, mods
	case 'd':
		return scene.KeyD, mods
	case 'v':
		return scene.KeyV, mods
	}
	return scene.KeyNone, mods
}
