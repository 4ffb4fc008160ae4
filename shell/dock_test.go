package shell_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/guikit"
	"github.com/go-theft-auto/guikit/element"
	"github.com/go-theft-auto/guikit/shell"
)

var testDock = shell.DockConfig{LeftWidth: 200, RightWidth: 150, TopHeight: 100, BottomHeight: 120}

func dockWith(t *testing.T, sides map[string]shell.DockSide) *shell.DockSpace {
	t.Helper()
	d := shell.NewDockSpace(testDock)
	for _, name := range []string{"top", "bottom", "left", "left2", "right", "center", "float"} {
		side, ok := sides[name]
		if !ok {
			continue
		}
		require.NoError(t, d.Add(shell.NewPanel(name), side))
	}
	return d
}

func rectOf(t *testing.T, d *shell.DockSpace, name string) guikit.Rect {
	t.Helper()
	r, ok := d.Rect(name)
	require.True(t, ok, "panel %q not found", name)
	return r
}

func TestDockLayout(t *testing.T) {
	t.Parallel()
	area := guikit.Rect{X: 0, Y: 20, W: 1000, H: 800}

	t.Run("every side", func(t *testing.T) {
		t.Parallel()
		d := dockWith(t, map[string]shell.DockSide{
			"top": shell.DockTop, "bottom": shell.DockBottom,
			"left": shell.DockLeft, "right": shell.DockRight, "center": shell.DockCenter,
		})
		d.Layout(area)

		assert.Equal(t, guikit.Rect{X: 0, Y: 20, W: 1000, H: 100}, rectOf(t, d, "top"))
		assert.Equal(t, guikit.Rect{X: 0, Y: 700, W: 1000, H: 120}, rectOf(t, d, "bottom"))
		assert.Equal(t, guikit.Rect{X: 0, Y: 120, W: 200, H: 580}, rectOf(t, d, "left"))
		assert.Equal(t, guikit.Rect{X: 850, Y: 120, W: 150, H: 580}, rectOf(t, d, "right"))
		assert.Equal(t, guikit.Rect{X: 200, Y: 120, W: 650, H: 580}, rectOf(t, d, "center"))
	})

	t.Run("empty sides give their space to the center", func(t *testing.T) {
		t.Parallel()
		d := dockWith(t, map[string]shell.DockSide{"center": shell.DockCenter})
		d.Layout(area)
		assert.Equal(t, area, rectOf(t, d, "center"))
	})

	t.Run("panels on one side share it", func(t *testing.T) {
		t.Parallel()
		d := dockWith(t, map[string]shell.DockSide{"left": shell.DockLeft, "left2": shell.DockLeft})
		d.Layout(area)
		assert.Equal(t, guikit.Rect{X: 0, Y: 20, W: 200, H: 400}, rectOf(t, d, "left"))
		assert.Equal(t, guikit.Rect{X: 0, Y: 420, W: 200, H: 400}, rectOf(t, d, "left2"))
	})

	t.Run("closed panels take no space", func(t *testing.T) {
		t.Parallel()
		d := dockWith(t, map[string]shell.DockSide{"left": shell.DockLeft, "left2": shell.DockLeft, "center": shell.DockCenter})
		p, ok := d.Panel("left")
		require.True(t, ok)
		p.Close()

		d.Layout(area)
		assert.Equal(t, guikit.Rect{}, rectOf(t, d, "left"))
		assert.Equal(t, guikit.Rect{X: 0, Y: 20, W: 200, H: 800}, rectOf(t, d, "left2"))
	})

	t.Run("regions shrink to fit a small area", func(t *testing.T) {
		t.Parallel()
		d := dockWith(t, map[string]shell.DockSide{"top": shell.DockTop, "bottom": shell.DockBottom, "left": shell.DockLeft})
		d.Layout(guikit.Rect{W: 150, H: 150})
		assert.Equal(t, guikit.Rect{W: 150, H: 100}, rectOf(t, d, "top"))
		assert.Equal(t, guikit.Rect{Y: 100, W: 150, H: 50}, rectOf(t, d, "bottom"))
		assert.Equal(t, guikit.Rect{Y: 100, W: 150, H: 0}, rectOf(t, d, "left"))
	})

	t.Run("floating panels are kept inside the area", func(t *testing.T) {
		t.Parallel()
		d := shell.NewDockSpace(testDock)
		require.NoError(t, d.AddFloating(shell.NewPanel("float"), guikit.Rect{X: 950, Y: -50, W: 200, H: 100}))
		d.Layout(area)
		assert.Equal(t, guikit.Rect{X: 800, Y: 20, W: 200, H: 100}, rectOf(t, d, "float"))
	})
}

func TestDockErrors(t *testing.T) {
	t.Parallel()
	d := shell.NewDockSpace(testDock)
	require.NoError(t, d.Add(shell.NewPanel("one"), shell.DockLeft))

	err := d.Add(shell.NewPanel("one"), shell.DockRight)
	require.ErrorIs(t, err, shell.ErrDuplicatePanel)

	require.ErrorIs(t, d.Dock("two", shell.DockLeft), shell.ErrUnknownPanel)
	require.ErrorIs(t, d.Remove("two"), shell.ErrUnknownPanel)
	require.ErrorIs(t, d.SetFloatingRect("two", guikit.Rect{}), shell.ErrUnknownPanel)
	require.Error(t, d.Dock("one", shell.DockSide(42)))
}

func TestDockRedock(t *testing.T) {
	t.Parallel()
	d := shell.NewDockSpace(testDock)
	require.NoError(t, d.Add(shell.NewPanel("tools"), shell.DockLeft))

	require.NoError(t, d.Dock("tools", shell.DockRight))
	side, ok := d.Side("tools")
	require.True(t, ok)
	require.Equal(t, shell.DockRight, side)
	require.Equal(t, "right", side.String())

	d.Layout(guikit.Rect{W: 1000, H: 800})
	require.Equal(t, guikit.Rect{X: 850, W: 150, H: 800}, rectOf(t, d, "tools"))

	require.NoError(t, d.Remove("tools"))
	require.Empty(t, d.Panels())
}

func TestDockFloatingDrag(t *testing.T) {
	t.Parallel()
	ui := guikit.New(nopRenderer{})
	in := guikit.NewInputState()
	area := guikit.Rect{W: 1000, H: 800}

	d := shell.NewDockSpace(testDock)
	require.NoError(t, d.AddFloating(shell.NewPanel("float"), guikit.Rect{X: 100, Y: 100, W: 200, H: 150}))

	frame := func() {
		ctx := ui.Begin(in, guikit.Vec2{X: area.W, Y: area.H}, 0.016)
		d.Layout(area)
		d.Draw(ctx)
		require.NoError(t, ui.End())
	}

	// Grab the title bar 10px in from the corner.
	in.SetMousePos(110, 105)
	in.SetMouseButton(guikit.MouseButtonLeft, true)
	frame()
	require.Equal(t, guikit.Rect{X: 100, Y: 100, W: 200, H: 150}, rectOf(t, d, "float"))

	in.Reset()
	in.SetMousePos(310, 305)
	frame()
	require.Equal(t, guikit.Rect{X: 300, Y: 300, W: 200, H: 150}, rectOf(t, d, "float"))

	in.Reset()
	in.SetMousePos(5000, 5000)
	frame()
	require.Equal(t, guikit.Rect{X: 800, Y: 650, W: 200, H: 150}, rectOf(t, d, "float"))

	// Released: moving the mouse leaves the panel where it is.
	in.Reset()
	in.SetMouseButton(guikit.MouseButtonLeft, false)
	frame()
	in.Reset()
	in.SetMousePos(10, 10)
	frame()
	require.Equal(t, guikit.Rect{X: 800, Y: 650, W: 200, H: 150}, rectOf(t, d, "float"))
}

func TestDockBodyClickDoesNotDrag(t *testing.T) {
	t.Parallel()
	ui := guikit.New(nopRenderer{})
	in := guikit.NewInputState()
	area := guikit.Rect{W: 1000, H: 800}

	d := shell.NewDockSpace(testDock)
	require.NoError(t, d.AddFloating(shell.NewPanel("float"), guikit.Rect{X: 100, Y: 100, W: 200, H: 150}))

	in.SetMousePos(150, 200)
	in.SetMouseButton(guikit.MouseButtonLeft, true)
	for _, pos := range []guikit.Vec2{{X: 150, Y: 200}, {X: 400, Y: 400}} {
		in.SetMousePos(pos.X, pos.Y)
		ctx := ui.Begin(in, guikit.Vec2{X: area.W, Y: area.H}, 0.016)
		d.Layout(area)
		d.Draw(ctx)
		require.NoError(t, ui.End())
		in.Reset()
	}
	require.Equal(t, guikit.Rect{X: 100, Y: 100, W: 200, H: 150}, rectOf(t, d, "float"))
}

func TestDockFloatingDragSnaps(t *testing.T) {
	t.Parallel()
	ui := guikit.New(nopRenderer{})
	in := guikit.NewInputState()
	area := guikit.Rect{W: 1000, H: 800}

	cfg := testDock
	cfg.SnapMargin = 8
	d := shell.NewDockSpace(cfg)
	require.NoError(t, d.AddFloating(shell.NewPanel("float"), guikit.Rect{X: 100, Y: 100, W: 200, H: 150}))

	frame := func() {
		ctx := ui.Begin(in, guikit.Vec2{X: area.W, Y: area.H}, 0.016)
		d.Layout(area)
		d.Draw(ctx)
		require.NoError(t, ui.End())
	}

	in.SetMousePos(110, 105)
	in.SetMouseButton(guikit.MouseButtonLeft, true)
	frame()

	// Dropping the left edge 5px from the area edge pulls it flush.
	in.Reset()
	in.SetMousePos(15, 305)
	frame()
	require.Equal(t, guikit.Rect{X: 0, Y: 300, W: 200, H: 150}, rectOf(t, d, "float"))
}

func TestDockFloatingPanelBlocksDockedInput(t *testing.T) {
	t.Parallel()
	ui := guikit.New(nopRenderer{})
	in := guikit.NewInputState()
	area := guikit.Rect{W: 1000, H: 800}

	under := element.NewButton("Under")
	over := element.NewButton("Over")
	d := shell.NewDockSpace(testDock)
	require.NoError(t, d.Add(shell.NewPanel("left").Add(under), shell.DockLeft))
	require.NoError(t, d.AddFloating(shell.NewPanel("float").Add(over), guikit.Rect{W: 200, H: 800}))

	frame := func() {
		ctx := ui.Begin(in, guikit.Vec2{X: area.W, Y: area.H}, 0.016)
		d.Layout(area)
		d.Draw(ctx)
		require.NoError(t, ui.End())
	}

	for _, y := range []float32{30, 40, 50} {
		in.SetMouseButton(guikit.MouseButtonLeft, false)
		in.Reset()
		in.SetMousePos(20, y)
		in.SetMouseButton(guikit.MouseButtonLeft, true)
		frame()
		assert.True(t, over.Handle(), "floating button at y=%v", y)
		assert.False(t, under.Handle(), "docked button under the floating panel at y=%v", y)
	}

	// Closing the floating panel uncovers the docked one.
	fp, ok := d.Panel("float")
	require.True(t, ok)
	fp.Close()
	in.SetMouseButton(guikit.MouseButtonLeft, false)
	in.Reset()
	in.SetMousePos(20, 40)
	in.SetMouseButton(guikit.MouseButtonLeft, true)
	frame()
	assert.True(t, under.Handle())
}

func TestDockPanelClipsOverflowInput(t *testing.T) {
	t.Parallel()
	ui := guikit.New(nopRenderer{})
	in := guikit.NewInputState()
	area := guikit.Rect{W: 1000, H: 800}

	buttons := make([]*element.Button, 20)
	p := shell.NewPanel("top")
	for i := range buttons {
		buttons[i] = element.NewButton(fmt.Sprintf("b%02d", i))
		p.Add(buttons[i])
	}
	d := shell.NewDockSpace(testDock)
	require.NoError(t, d.Add(p, shell.DockTop))
	d.Layout(area)
	require.Equal(t, guikit.Rect{W: 1000, H: 100}, rectOf(t, d, "top"))

	// Buttons sit 29px apart from y=29; only the first three reach into
	// the 100px band.
	tests := []struct {
		name string
		y    float32
		want int
	}{
		{name: "visible", y: 40, want: 0},
		{name: "partly visible", y: 95, want: 2},
		{name: "overflow", y: 150, want: -1},
		{name: "far overflow", y: 395, want: -1},
	}
	for _, tt := range tests {
		in.SetMouseButton(guikit.MouseButtonLeft, false)
		in.Reset()
		in.SetMousePos(20, tt.y)
		in.SetMouseButton(guikit.MouseButtonLeft, true)
		ctx := ui.Begin(in, guikit.Vec2{X: area.W, Y: area.H}, 0.016)
		d.Layout(area)
		d.Draw(ctx)
		require.NoError(t, ui.End())

		for i, b := range buttons {
			assert.Equal(t, i == tt.want, b.Handle(), "%s: button %d", tt.name, i)
		}
	}
}
