package opengl

import (
	"errors"
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/guikit"
	"github.com/go-theft-auto/guikit/shell"
)

var logger = guikit.NewLogger("opengl")

// Platform is a GLFW window with an OpenGL 4.1 core context. It must be
// created and used from the main OS thread.
type Platform struct {
	window   *glfw.Window
	renderer *Renderer
	input    *GLFWInputAdapter
	lastTime float64
	clear    [4]float32

	captureNext bool
	lastCapture *image.RGBA
}

// PlatformOption configures NewPlatform.
type PlatformOption func(*platformOptions)

type platformOptions struct {
	hidden bool
}

// WithHiddenWindow creates the window invisible, for offscreen captures.
func WithHiddenWindow() PlatformOption {
	return func(o *platformOptions) { o.hidden = true }
}

var _ shell.Platform = (*Platform)(nil)

// NewPlatform opens a window described by cfg.
func NewPlatform(cfg shell.WindowConfig, opts ...PlatformOption) (*Platform, error) {
	var o platformOptions
	for _, opt := range opts {
		opt(&o)
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("init glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, boolHint(cfg.Resizable))
	glfw.WindowHint(glfw.Visible, boolHint(!o.hidden))

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("init gl: %w", err)
	}

	ww, wh := window.GetSize()
	renderer, err := NewRenderer(ww, wh)
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, err
	}

	logger.Info("window opened",
		"title", cfg.Title,
		"width", cfg.Width,
		"height", cfg.Height,
		"gl", gl.GoStr(gl.GetString(gl.VERSION)))

	return &Platform{
		window:   window,
		renderer: renderer,
		input:    NewGLFWInputAdapter(window),
		lastTime: glfw.GetTime(),
		clear:    cfg.ClearColor,
	}, nil
}

// ShouldClose reports whether the window was asked to close.
func (p *Platform) ShouldClose() bool {
	return p.window.ShouldClose()
}

// NewFrame polls events, resizes the viewport and clears the framebuffer.
func (p *Platform) NewFrame() shell.Frame {
	now := glfw.GetTime()
	dt := float32(now - p.lastTime)
	p.lastTime = now

	in := p.input.Update(dt)

	// Draw lists are in window coordinates; the framebuffer may be larger
	// on high-DPI displays.
	fbw, fbh := p.window.GetFramebufferSize()
	ww, wh := p.window.GetSize()
	p.renderer.Resize(ww, wh)
	if ww > 0 && wh > 0 {
		p.renderer.SetFramebufferScale(float32(fbw)/float32(ww), float32(fbh)/float32(wh))
	}
	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	gl.ClearColor(p.clear[0], p.clear[1], p.clear[2], p.clear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	return shell.Frame{
		Input:       in,
		DisplaySize: guikit.Vec2{X: float32(ww), Y: float32(wh)},
		DeltaTime:   dt,
	}
}

// Present swaps the window's buffers, reading the frame back first when a
// capture was requested.
func (p *Platform) Present() error {
	if p.captureNext {
		p.captureNext = false
		w, h := p.window.GetFramebufferSize()
		p.lastCapture = readFramebuffer(w, h)
		if err := gl.GetError(); err != gl.NO_ERROR {
			return fmt.Errorf("read framebuffer: gl error 0x%x", err)
		}
	}
	p.window.SwapBuffers()
	return nil
}

// Renderer returns the OpenGL renderer.
func (p *Platform) Renderer() guikit.Renderer {
	return p.renderer
}

// Close releases GL resources and the window.
func (p *Platform) Close() error {
	if p.window == nil {
		return errors.New("platform already closed")
	}
	p.renderer.Delete()
	p.window.Destroy()
	p.window = nil
	glfw.Terminate()
	return nil
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
