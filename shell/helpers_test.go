package shell_test

import (
	"github.com/go-theft-auto/guikit"
	"github.com/go-theft-auto/guikit/shell"
)

type nopRenderer struct{}

func (nopRenderer) Render(*guikit.DrawList) error { return nil }
func (nopRenderer) FontTextureID() uint32         { return 1 }
func (nopRenderer) Resize(int, int)               {}

// fakePlatform is a window that closes after closeAfter frames (0 = never).
type fakePlatform struct {
	in         *guikit.InputState
	size       guikit.Vec2
	closeAfter int
	presentErr error

	frames    int
	presented int
	closed    bool
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{in: guikit.NewInputState(), size: guikit.Vec2{X: 800, Y: 600}}
}

func (p *fakePlatform) ShouldClose() bool {
	return p.closeAfter > 0 && p.frames >= p.closeAfter
}

func (p *fakePlatform) NewFrame() shell.Frame {
	p.frames++
	return shell.Frame{Input: p.in, DisplaySize: p.size, DeltaTime: 1.0 / 60}
}

func (p *fakePlatform) Present() error {
	p.presented++
	return p.presentErr
}

func (p *fakePlatform) Renderer() guikit.Renderer { return nopRenderer{} }

func (p *fakePlatform) Close() error {
	p.closed = true
	return nil
}

// click sets up a fresh left click at (x, y) for the next frame.
func (p *fakePlatform) click(x, y float32) {
	p.in.SetMouseButton(guikit.MouseButtonLeft, false)
	p.in.Reset()
	p.in.SetMousePos(x, y)
	p.in.SetMouseButton(guikit.MouseButtonLeft, true)
}

// idle sets up a frame with the button up.
func (p *fakePlatform) idle() {
	p.in.Reset()
	p.in.SetMouseButton(guikit.MouseButtonLeft, false)
}

// fakeElement records paints and exposes a settable change flag.
type fakeElement struct {
	pending bool
	painted int
}

func (e *fakeElement) Paint(*guikit.Context) { e.painted++ }

func (e *fakeElement) Handle() bool {
	changed := e.pending
	e.pending = false
	return changed
}
