package shell_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/guikit"
	"github.com/go-theft-auto/guikit/element"
	"github.com/go-theft-auto/guikit/shell"
)

func newApp(t *testing.T, p *fakePlatform, opts ...shell.Option) *shell.App {
	t.Helper()
	app, err := shell.New(p, shell.DefaultConfig(), opts...)
	require.NoError(t, err)
	return app
}

func TestAppRunLifecycle(t *testing.T) {
	t.Parallel()
	p := newFakePlatform()
	p.closeAfter = 3

	var events []string
	paints := 0
	app := newApp(t, p,
		shell.WithBeforeLoop(func() error { events = append(events, "before"); return nil }),
		shell.WithFirstFrame(func(*guikit.Context) { events = append(events, "first") }),
		shell.WithPaint(func(*guikit.Context) { paints++ }),
		shell.WithBeforeQuit(func() { events = append(events, "quit") }),
	)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, uint64(3), app.Frames())
	assert.Equal(t, 3, p.presented)
	assert.Equal(t, 3, paints)
	assert.Equal(t, []string{"before", "first", "quit"}, events)
}

func TestAppRunStops(t *testing.T) {
	t.Parallel()

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		p := newFakePlatform()
		app := newApp(t, p)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		require.NoError(t, app.Run(ctx))
		require.Zero(t, app.Frames())
	})

	t.Run("quit from a frame", func(t *testing.T) {
		t.Parallel()
		p := newFakePlatform()
		var app *shell.App
		app = newApp(t, p, shell.WithPaint(func(*guikit.Context) {
			if app.Frames() == 1 {
				app.Quit()
			}
		}))

		require.NoError(t, app.Run(context.Background()))
		require.Equal(t, uint64(2), app.Frames())
	})

	t.Run("before loop error aborts", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		p := newFakePlatform()
		app := newApp(t, p, shell.WithBeforeLoop(func() error { return boom }))

		require.ErrorIs(t, app.Run(context.Background()), boom)
		require.Zero(t, p.frames)
	})

	t.Run("present error is returned", func(t *testing.T) {
		t.Parallel()
		p := newFakePlatform()
		p.presentErr = errors.New("lost context")
		app := newApp(t, p)

		err := app.Run(context.Background())
		require.ErrorIs(t, err, p.presentErr)
		require.Zero(t, app.Frames())
	})
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	t.Parallel()
	cfg := shell.DefaultConfig()
	cfg.Style.Theme = "neon"

	_, err := shell.New(newFakePlatform(), cfg)
	require.ErrorIs(t, err, shell.ErrInvalidConfig)

	_, err = shell.New(nil, shell.DefaultConfig())
	require.Error(t, err)
}

// With the menu bar (25px) the left column starts at y=25; its first
// element sits below the 21px header and 8px padding at (8, 54).
func TestAppDispatchesPanelChanges(t *testing.T) {
	t.Parallel()
	p := newFakePlatform()
	app := newApp(t, p)

	mute := element.NewCheckbox("Mute", false)
	controls := shell.NewPanel("Controls").Add(mute)
	fired := 0
	controls.OnChange(mute, func() { fired++ })
	require.NoError(t, app.AddPanel(controls, shell.DockLeft))

	p.click(12, 58)
	require.NoError(t, app.RunFrame())
	require.Equal(t, 1, fired)
	require.True(t, mute.CurrValue())

	p.idle()
	require.NoError(t, app.RunFrame())
	require.Equal(t, 1, fired)

	r, ok := app.Dock().Rect("Controls")
	require.True(t, ok)
	require.Equal(t, guikit.Rect{Y: 25, W: 280, H: 575}, r)
}

// Menu entries start at x=8; "Controls" is 64px wide, then 4px of gap
// before "Quit".
func TestAppMenuBar(t *testing.T) {
	t.Parallel()

	t.Run("entry toggles its panel", func(t *testing.T) {
		t.Parallel()
		p := newFakePlatform()
		app := newApp(t, p)
		controls := shell.NewPanel("Controls")
		require.NoError(t, app.AddPanel(controls, shell.DockLeft))

		p.click(12, 10)
		require.NoError(t, app.RunFrame())
		require.False(t, controls.IsOpen())

		r, _ := app.Dock().Rect("Controls")
		require.Equal(t, guikit.Rect{}, r)

		p.click(12, 10)
		require.NoError(t, app.RunFrame())
		require.True(t, controls.IsOpen())
	})

	t.Run("quit entry stops the loop", func(t *testing.T) {
		t.Parallel()
		p := newFakePlatform()
		app := newApp(t, p)
		require.NoError(t, app.AddPanel(shell.NewPanel("Controls"), shell.DockLeft))

		p.click(80, 10)
		require.NoError(t, app.RunFrame())
		require.NoError(t, app.Run(context.Background()))
		require.Equal(t, uint64(1), app.Frames())
	})

	t.Run("hidden menu bar gives the panels the full height", func(t *testing.T) {
		t.Parallel()
		p := newFakePlatform()
		app := newApp(t, p, shell.WithMenuBar(false))
		require.NoError(t, app.AddPanel(shell.NewPanel("Controls"), shell.DockLeft))

		require.NoError(t, app.RunFrame())
		r, _ := app.Dock().Rect("Controls")
		require.Equal(t, guikit.Rect{W: 280, H: 600}, r)
	})
}
