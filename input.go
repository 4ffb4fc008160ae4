package guikit

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

// Key represents a keyboard key the widgets react to.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyCount
)

// Key repeat timing (seconds).
const (
	KeyRepeatDelay    float32 = 0.4
	KeyRepeatInterval float32 = 0.03
)

// InputState holds input state for the current frame.
// It is populated by a backend (see backend/opengl) or directly by tests.
type InputState struct {
	MouseX, MouseY float32

	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool // pressed this frame
	mouseUp      [MouseButtonCount]bool // released this frame

	MouseWheelX float32
	MouseWheelY float32

	keyDown     [KeyCount]bool
	keyPressed  [KeyCount]bool
	keyHoldTime [KeyCount]float32
	prevHold    [KeyCount]float32

	// InputChars holds the characters typed this frame.
	InputChars []rune

	ModCtrl  bool
	ModShift bool
	ModAlt   bool
}

// NewInputState creates a new InputState.
func NewInputState() *InputState {
	return &InputState{
		InputChars: make([]rune, 0, 16),
	}
}

// Reset clears per-frame events. Held buttons and keys stay held.
// Call this at the start of each frame before collecting input.
func (s *InputState) Reset() {
	clear(s.mouseClicked[:])
	clear(s.mouseUp[:])
	clear(s.keyPressed[:])
	s.InputChars = s.InputChars[:0]
	s.MouseWheelX = 0
	s.MouseWheelY = 0
}

// SetMousePos sets the mouse position.
func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

// SetMouseButton sets mouse button state and derives click/release edges.
func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}
	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down
	if down && !wasDown {
		s.mouseClicked[button] = true
	}
	if !down && wasDown {
		s.mouseUp[button] = true
	}
}

// SetKey sets key state and derives the pressed edge.
func (s *InputState) SetKey(key Key, down bool) {
	if key <= KeyNone || key >= KeyCount {
		return
	}
	wasDown := s.keyDown[key]
	s.keyDown[key] = down
	if down && !wasDown {
		s.keyPressed[key] = true
	}
	if down != wasDown {
		s.keyHoldTime[key] = 0
		s.prevHold[key] = 0
	}
}

// UpdateKeyRepeat advances hold times for repeat detection.
// Call this once per frame with the frame's delta time.
func (s *InputState) UpdateKeyRepeat(dt float32) {
	for key := range s.keyDown {
		s.prevHold[key] = s.keyHoldTime[key]
		if s.keyDown[key] {
			s.keyHoldTime[key] += dt
		}
	}
}

// SetMouseWheel sets the mouse wheel delta for this frame.
func (s *InputState) SetMouseWheel(x, y float32) {
	s.MouseWheelX = x
	s.MouseWheelY = y
}

// AddInputChar records a typed character.
func (s *InputState) AddInputChar(ch rune) {
	s.InputChars = append(s.InputChars, ch)
}

// MouseDown returns true if a mouse button is currently held.
func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked returns true if a mouse button was pressed this frame.
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

// MouseReleased returns true if a mouse button was released this frame.
func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseUp[button]
}

// KeyDown returns true if a key is currently held.
func (s *InputState) KeyDown(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed returns true if a key was pressed this frame.
func (s *InputState) KeyPressed(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

// KeyRepeated returns true on the initial press, then after KeyRepeatDelay
// every KeyRepeatInterval while the key stays held.
func (s *InputState) KeyRepeated(key Key) bool {
	if key <= KeyNone || key >= KeyCount {
		return false
	}
	if s.keyPressed[key] {
		return true
	}
	if !s.keyDown[key] || s.keyHoldTime[key] < KeyRepeatDelay {
		return false
	}
	now := int((s.keyHoldTime[key] - KeyRepeatDelay) / KeyRepeatInterval)
	prev := int((s.prevHold[key] - KeyRepeatDelay) / KeyRepeatInterval)
	return s.prevHold[key] < KeyRepeatDelay || now > prev
}

// MousePos returns the mouse position as a vector.
func (s *InputState) MousePos() Vec2 {
	return Vec2{X: s.MouseX, Y: s.MouseY}
}
