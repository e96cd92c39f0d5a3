package scene

// EventKind is the type of an input event.
type EventKind int

const (
	KeyDown EventKind = iota
	KeyUp
	MouseDown
	MouseUp
	MouseMove
)

// Key is a keyboard key the scene reacts to.
type Key int

const (
	KeyNone Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyShift
	KeyCtrl
	KeyV
	KeyEscape
)

// MouseButton is a mouse button the scene reacts to.
type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonRight
)

// Event is one toolkit-independent input event. X and Y are cursor
// coordinates in pixels for mouse events.
type Event struct {
	Kind   EventKind
	Key    Key
	Button MouseButton
	X, Y   int
}

const (
	dragRotate = 0.5
	dragPitch  = 0.5
	dragZoom   = 2.0
)

// HandleEvents applies events in order.
func (s *Scene) HandleEvents(events []Event) {
	for _, e := range events {
		s.Apply(e)
	}
}

// Apply updates the scene for a single input event.
func (s *Scene) Apply(e Event) {
	switch e.Kind {
	case KeyDown:
		s.keyDown(e.Key)
	case KeyUp:
		s.held[e.Key] = false
	case MouseDown:
		if e.Button == ButtonLeft || e.Button == ButtonRight {
			s.dragging[e.Button] = true
			s.lastX, s.lastY = e.X, e.Y
		}
	case MouseUp:
		if e.Button == ButtonLeft || e.Button == ButtonRight {
			s.dragging[e.Button] = false
		}
	case MouseMove:
		s.drag(e.X, e.Y)
	}
}

// Held reports whether a key is currently down.
func (s *Scene) Held(k Key) bool {
	return s.held[k]
}

func (s *Scene) keyDown(k Key) {
	if k == KeyEscape {
		s.Quit = true
		return
	}
	s.held[k] = true

	cam := s.Config.Camera
	switch k {
	case KeyArrowUp:
		s.Camera.Zoom(-cam.ZoomStep)
		return
	case KeyArrowDown:
		s.Camera.Zoom(cam.ZoomStep)
		return
	}

	if s.Config.Movement == MoveHeldKeys {
		switch k {
		case KeyArrowLeft:
			s.Camera.Rotate(-cam.RotateStep)
		case KeyArrowRight:
			s.Camera.Rotate(cam.RotateStep)
		}
		return
	}

	step := s.Config.MoveStep
	m := &s.Man
	switch k {
	case KeyA, KeyArrowLeft:
		m.X -= step
	case KeyD, KeyArrowRight:
		m.X += step
	case KeyW:
		m.Z -= step
	case KeyS:
		m.Z += step
	case KeyV:
		if s.Config.TopDownToggle {
			s.Camera.TopDown = !s.Camera.TopDown
		}
		return
	default:
		return
	}
	m.Moving = true
	m.clamp(s.Config.Bounds)
}

func (s *Scene) drag(x, y int) {
	dx := float64(x - s.lastX)
	dy := float64(y - s.lastY)
	switch {
	case s.dragging[ButtonLeft]:
		s.Camera.Rotate(-dx * dragRotate)
		if s.Config.Camera.UsePitch {
			s.Camera.Tilt(-dy * dragPitch)
		}
	case s.dragging[ButtonRight]:
		s.Camera.Zoom(dy * dragZoom)
	}
	s.lastX, s.lastY = x, y
}
