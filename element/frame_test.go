package element_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/guikit"
)

type nopRenderer struct{}

func (nopRenderer) Render(*guikit.DrawList) error { return nil }
func (nopRenderer) FontTextureID() uint32         { return 1 }
func (nopRenderer) Resize(int, int)               {}

// textRenderer reads the glyphs back out of each draw list, one line per
// contiguous run.
type textRenderer struct {
	nopRenderer
	text strings.Builder
}

func (r *textRenderer) Render(dl *guikit.DrawList) error {
	const cellU, cellV = 1.0 / guikit.AtlasCols, 1.0 / guikit.AtlasRows
	var lastX, lastY float32 = -1, -1
	for i := 0; i+3 < len(dl.VtxBuffer); i += 4 {
		a, b := dl.VtxBuffer[i], dl.VtxBuffer[i+1]
		if math.Abs(float64(b.TexCoord[0]-a.TexCoord[0]-cellU)) > 1e-4 {
			continue
		}
		if a.Pos[0] != lastX || a.Pos[1] != lastY {
			r.text.WriteByte('\n')
		}
		col := int(math.Round(float64(a.TexCoord[0] / cellU)))
		row := int(math.Round(float64(a.TexCoord[1] / cellV)))
		r.text.WriteRune(rune(guikit.FirstGlyph + row*guikit.AtlasCols + col))
		lastX, lastY = b.Pos[0], b.Pos[1]
	}
	return nil
}

// harness drives frames of a headless GUI.
type harness struct {
	t  *testing.T
	ui *guikit.GUI
	in *guikit.InputState
	r  *textRenderer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	r := &textRenderer{}
	return &harness{t: t, ui: guikit.New(r), in: guikit.NewInputState(), r: r}
}

// drawn returns the text painted during the last frame.
func (h *harness) drawn() string { return h.r.text.String() }

// frame paints elements top to bottom for one frame.
func (h *harness) frame(elems ...interface{ Paint(*guikit.Context) }) {
	h.t.Helper()
	h.r.text.Reset()
	ctx := h.ui.Begin(h.in, guikit.Vec2{X: 800, Y: 600}, 0.016)
	for _, e := range elems {
		e.Paint(ctx)
	}
	require.NoError(h.t, h.ui.End())
}

// click sets up a fresh left click at (x, y) for the next frame.
func (h *harness) click(x, y float32) {
	h.in.SetMouseButton(guikit.MouseButtonLeft, false)
	h.in.Reset()
	h.in.SetMousePos(x, y)
	h.in.SetMouseButton(guikit.MouseButtonLeft, true)
}

// idle sets up a frame with the button up and no new input.
func (h *harness) idle() {
	h.in.Reset()
	h.in.SetMouseButton(guikit.MouseButtonLeft, false)
}
