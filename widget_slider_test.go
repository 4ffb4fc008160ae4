package guikit_test

import (
	"math"
	"testing"

	"github.com/go-theft-auto/guikit"
)

// The default slider track is 160px wide with a 10px grab, so x=5 maps to
// the low end and x=155 to the high end.

func TestSliderIntDrag(t *testing.T) {
	ui := guikit.New(&mockRenderer{})
	in := guikit.NewInputState()
	value := 3

	click(in, 155, 10)
	runFrame(t, ui, in, func(ctx *guikit.Context) {
		if !ctx.SliderInt("Level", &value, 0, 10) {
			t.Error("expected change when clicking the far end")
		}
	})
	if value != 10 {
		t.Errorf("value = %d, want 10", value)
	}

	// Still held: dragging left of the track pins to the minimum.
	in.Reset()
	in.SetMousePos(-50, 300)
	runFrame(t, ui, in, func(ctx *guikit.Context) { ctx.SliderInt("Level", &value, 0, 10) })
	if value != 0 {
		t.Errorf("value = %d, want 0", value)
	}

	// Released: moving no longer drags.
	release(in)
	in.SetMousePos(155, 10)
	runFrame(t, ui, in, func(ctx *guikit.Context) { ctx.SliderInt("Level", &value, 0, 10) })
	in.Reset()
	runFrame(t, ui, in, func(ctx *guikit.Context) { ctx.SliderInt("Level", &value, 0, 10) })
	if value != 0 {
		t.Errorf("value = %d after release, want 0", value)
	}
}

func TestSliderIntWheel(t *testing.T) {
	ui := guikit.New(&mockRenderer{})
	in := guikit.NewInputState()
	value := 10

	in.SetMousePos(80, 10)
	in.SetMouseWheel(0, 1)
	runFrame(t, ui, in, func(ctx *guikit.Context) {
		if ctx.SliderInt("Level", &value, 0, 10) {
			t.Error("already at max; wheel up is not a change")
		}
	})
}

func TestSliderFloatFullRange(t *testing.T) {
	ui := guikit.New(&mockRenderer{})
	in := guikit.NewInputState()
	value := 0.0

	click(in, 80, 10) // middle of the track
	runFrame(t, ui, in, func(ctx *guikit.Context) {
		ctx.SliderFloat("Any", &value, -math.MaxFloat64, math.MaxFloat64)
	})
	if math.IsNaN(value) || math.IsInf(value, 0) {
		t.Fatalf("value = %v, want finite", value)
	}
	if value != 0 {
		t.Errorf("value = %v, want 0 at the midpoint", value)
	}
}

func TestSliderFloatSwappedBounds(t *testing.T) {
	ui := guikit.New(&mockRenderer{})
	in := guikit.NewInputState()
	value := 5.0

	click(in, 155, 10)
	runFrame(t, ui, in, func(ctx *guikit.Context) { ctx.SliderFloat("Gain", &value, 1, 0) })
	if value != 1 {
		t.Errorf("value = %v, want 1", value)
	}
}
