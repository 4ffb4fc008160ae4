package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/guikit"
)

// GLFWInputAdapter feeds GLFW window events into a guikit.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *guikit.InputState
}

// NewGLFWInputAdapter installs input callbacks on window.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  guikit.NewInputState(),
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetCharCallback(adapter.charCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Update starts a new frame: it clears last frame's events, polls GLFW so
// the callbacks record this frame's events, and advances key repeat.
func (a *GLFWInputAdapter) Update(dt float32) *guikit.InputState {
	a.input.Reset()
	glfw.PollEvents()

	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	a.input.ModCtrl = a.window.GetKey(glfw.KeyLeftControl) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightControl) == glfw.Press
	a.input.ModShift = a.window.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightShift) == glfw.Press
	a.input.ModAlt = a.window.GetKey(glfw.KeyLeftAlt) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightAlt) == glfw.Press

	a.input.UpdateKeyRepeat(dt)
	return a.input
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *guikit.InputState {
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	k := glfwKeyToKey(key)
	if k == guikit.KeyNone {
		return
	}
	// Repeat events are ignored; InputState times its own repeats.
	switch action {
	case glfw.Press:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) charCallback(_ *glfw.Window, char rune) {
	a.input.AddInputChar(char)
}

func (a *GLFWInputAdapter) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	b := glfwMouseButton(button)
	if b < 0 {
		return
	}
	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(_ *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(a.input.MouseWheelX+float32(xoff), a.input.MouseWheelY+float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

func glfwKeyToKey(key glfw.Key) guikit.Key {
	switch key {
	case glfw.KeyTab:
		return guikit.KeyTab
	case glfw.KeyLeft:
		return guikit.KeyLeft
	case glfw.KeyRight:
		return guikit.KeyRight
	case glfw.KeyUp:
		return guikit.KeyUp
	case glfw.KeyDown:
		return guikit.KeyDown
	case glfw.KeyHome:
		return guikit.KeyHome
	case glfw.KeyEnd:
		return guikit.KeyEnd
	case glfw.KeyDelete:
		return guikit.KeyDelete
	case glfw.KeyBackspace:
		return guikit.KeyBackspace
	case glfw.KeySpace:
		return guikit.KeySpace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return guikit.KeyEnter
	case glfw.KeyEscape:
		return guikit.KeyEscape
	default:
		return guikit.KeyNone
	}
}

func glfwMouseButton(button glfw.MouseButton) guikit.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return guikit.MouseButtonLeft
	case glfw.MouseButtonRight:
		return guikit.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return guikit.MouseButtonMiddle
	default:
		return -1
	}
}
