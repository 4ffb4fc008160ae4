// Package shell hosts element panels in a native window: it runs the frame
// loop, lays panels out in a dock space and dispatches their change events.
package shell

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-theft-auto/guikit"
)

var logger = guikit.NewLogger("shell")

// Frame is what the platform reports at the start of a frame.
type Frame struct {
	Input       *guikit.InputState
	DisplaySize guikit.Vec2
	DeltaTime   float32
}

// Platform is the native window the shell draws into.
type Platform interface {
	// ShouldClose reports whether the user asked to close the window.
	ShouldClose() bool
	// NewFrame polls events and returns this frame's input and size.
	NewFrame() Frame
	// Present shows the rendered frame.
	Present() error
	// Renderer draws the GUI's draw lists.
	Renderer() guikit.Renderer
	// Close releases the window and its GL context.
	Close() error
}

// Option configures an App.
type Option func(*App)

// WithMenuBar shows or hides the menu strip listing the panels.
func WithMenuBar(show bool) Option {
	return func(a *App) { a.menuBar = show }
}

// WithBeforeLoop runs fn once before the first frame. An error aborts Run.
func WithBeforeLoop(fn func() error) Option {
	return func(a *App) { a.beforeLoop = fn }
}

// WithFirstFrame runs fn inside the first frame, after the panels.
func WithFirstFrame(fn func(ctx *guikit.Context)) Option {
	return func(a *App) { a.firstFrame = fn }
}

// WithPaint runs fn inside every frame, after the panels, for drawing that
// does not belong to a panel.
func WithPaint(fn func(ctx *guikit.Context)) Option {
	return func(a *App) { a.paint = fn }
}

// WithBeforeQuit runs fn once when Run returns.
func WithBeforeQuit(fn func()) Option {
	return func(a *App) { a.beforeQuit = fn }
}

// App is the application shell.
//
// Usage:
//
//	app, err := shell.New(platform, cfg)
//	controls := shell.NewPanel("Controls").Add(volume, mute)
//	app.AddPanel(controls, shell.DockLeft)
//	err = app.Run(ctx)
type App struct {
	platform Platform
	cfg      Config
	gui      *guikit.GUI
	dock     *DockSpace
	menuBar  bool

	beforeLoop func() error
	firstFrame func(ctx *guikit.Context)
	paint      func(ctx *guikit.Context)
	beforeQuit func()

	quit      bool
	frames    uint64
	lastFrame time.Time
}

// New creates an App drawing through platform. cfg is validated.
func New(platform Platform, cfg Config, opts ...Option) (*App, error) {
	if platform == nil {
		return nil, errors.New("shell: nil platform")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	style, err := cfg.GUIStyle()
	if err != nil {
		return nil, fmt.Errorf("resolve style: %w", err)
	}

	a := &App{
		platform: platform,
		cfg:      cfg,
		gui:      guikit.New(platform.Renderer(), guikit.WithStyle(style)),
		dock:     NewDockSpace(cfg.Dock),
		menuBar:  true,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Config returns the configuration the app was built with.
func (a *App) Config() Config { return a.cfg }

// GUI returns the host GUI.
func (a *App) GUI() *guikit.GUI { return a.gui }

// Dock returns the dock space holding the panels.
func (a *App) Dock() *DockSpace { return a.dock }

// AddPanel docks p at side.
func (a *App) AddPanel(p *Panel, side DockSide) error {
	return a.dock.Add(p, side)
}

// Frames returns the number of frames run so far.
func (a *App) Frames() uint64 { return a.frames }

// Quit stops Run after the current frame.
func (a *App) Quit() { a.quit = true }

// Run drives frames until the window is closed, Quit is called or ctx is
// done. Stopping for any of those reasons is not an error.
func (a *App) Run(ctx context.Context) error {
	if a.beforeQuit != nil {
		defer a.beforeQuit()
	}
	if a.beforeLoop != nil {
		if err := a.beforeLoop(); err != nil {
			return fmt.Errorf("before loop: %w", err)
		}
	}

	logger.Debug("frame loop started", "max_fps", a.cfg.Frame.MaxFPS)
	for {
		if a.quit || a.platform.ShouldClose() || ctx.Err() != nil {
			logger.Debug("frame loop stopped", "frames", a.frames, "quit", a.quit, "ctx", ctx.Err())
			return nil
		}
		if err := a.RunFrame(); err != nil {
			return err
		}
		a.pace(ctx)
	}
}

// RunFrame runs a single frame: draw every panel, render, present, then
// dispatch change events.
func (a *App) RunFrame() error {
	f := a.platform.NewFrame()
	ctx := a.gui.Begin(f.Input, f.DisplaySize, f.DeltaTime)

	area := guikit.Rect{W: f.DisplaySize.X, H: f.DisplaySize.Y}
	if a.menuBar {
		h, quit := drawMenuBar(ctx, a.dock.Panels())
		if quit {
			a.Quit()
		}
		area.Y += h
		area.H = max(0, area.H-h)
	}
	a.dock.Layout(area)
	a.dock.Draw(ctx)

	if a.frames == 0 && a.firstFrame != nil {
		a.firstFrame(ctx)
	}
	if a.paint != nil {
		a.paint(ctx)
	}

	if err := a.gui.End(); err != nil {
		return fmt.Errorf("render frame %d: %w", a.frames, err)
	}
	if err := a.platform.Present(); err != nil {
		return fmt.Errorf("present frame %d: %w", a.frames, err)
	}

	for _, p := range a.dock.Panels() {
		if n := p.Dispatch(); n > 0 {
			logger.Debug("panel changed", "panel", p.Name(), "elements", n)
		}
	}
	a.frames++
	return nil
}

// pace sleeps off the rest of the frame budget when MaxFPS is set.
func (a *App) pace(ctx context.Context) {
	now := time.Now()
	defer func() { a.lastFrame = time.Now() }()
	if a.cfg.Frame.MaxFPS <= 0 || a.lastFrame.IsZero() {
		return
	}
	budget := time.Second / time.Duration(a.cfg.Frame.MaxFPS)
	wait := budget - now.Sub(a.lastFrame)
	if wait <= 0 {
		return
	}
	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
