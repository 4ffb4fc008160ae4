package guikit

import (
	"fmt"
	"math"
)

// sliderGrabWidth is the width of the slider handle in pixels.
const sliderGrabWidth float32 = 10

// SliderFloat draws a horizontal slider for a float64 in [minVal, maxVal].
// Drag the handle or scroll over it (1% per notch). Returns true if the
// value was changed.
//
// Usage:
//
//	if ctx.SliderFloat("Volume", &volume, 0, 1) {
//	    updateVolume(volume)
//	}
func (ctx *Context) SliderFloat(label string, value *float64, minVal, maxVal float64, opts ...Option) bool {
	o := applyOptions(opts)
	format := GetOpt(o, OptFormat)
	if format == "" {
		format = "%.3f"
	}
	if minVal > maxVal {
		minVal, maxVal = maxVal, minVal
	}

	ratio, wheel, dragged := ctx.sliderTrack(label, sliderRatio(*value, minVal, maxVal), fmt.Sprintf(format, *value), o)
	nv := *value
	if dragged {
		nv = lerp(minVal, maxVal, ratio)
	}
	if wheel != 0 {
		nv += float64(wheel) * (maxVal/100 - minVal/100)
	}
	nv = math.Max(minVal, math.Min(maxVal, nv))
	if nv == *value {
		return false
	}
	*value = nv
	return true
}

// SliderInt draws a horizontal slider for an int in [minVal, maxVal].
// Scrolling moves one unit per notch.
func (ctx *Context) SliderInt(label string, value *int, minVal, maxVal int, opts ...Option) bool {
	o := applyOptions(opts)
	format := GetOpt(o, OptFormat)
	if format == "" {
		format = "%d"
	}
	if minVal > maxVal {
		minVal, maxVal = maxVal, minVal
	}

	lo, hi := float64(minVal), float64(maxVal)
	ratio, wheel, dragged := ctx.sliderTrack(label, sliderRatio(float64(*value), lo, hi), fmt.Sprintf(format, *value), o)
	nv := *value
	if dragged {
		nv = floatToIntSat(math.Round(lerp(lo, hi, ratio)))
	}
	if wheel != 0 {
		nv = addIntSat(nv, wheel)
	}
	nv = max(minVal, min(maxVal, nv))
	if nv == *value {
		return false
	}
	*value = nv
	return true
}

// sliderTrack draws the track, fill, grab and value text. It returns the
// dragged ratio in [0, 1] when the handle is held, and the wheel notches
// scrolled over the track.
func (ctx *Context) sliderTrack(label string, ratio float64, text string, o options) (newRatio float64, wheel int, dragged bool) {
	pos := ctx.ItemPos()
	id := ctx.widgetID(label, o)
	s := ctx.style

	w := ctx.itemWidth(o)
	h := ctx.lineHeight() + s.InputPadding*2
	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}

	disabled := GetOpt(o, OptDisabled)
	hovered := !disabled && ctx.isHovered(rect)
	newRatio = ratio

	if !disabled && ctx.Input != nil {
		if ctx.isClicked(id, rect) {
			ctx.SetActiveID(id)
		}
		if ctx.activeID == id {
			if ctx.Input.MouseDown(MouseButtonLeft) {
				rel := (ctx.Input.MouseX - rect.X - sliderGrabWidth/2) / maxf(1, w-sliderGrabWidth)
				newRatio = float64(clampf(rel, 0, 1))
				dragged = true
			} else {
				ctx.activeID = 0
			}
		}
		if hovered && ctx.Input.MouseWheelY != 0 {
			if ctx.Input.MouseWheelY > 0 {
				wheel = 1
			} else {
				wheel = -1
			}
		}
	}

	dl := ctx.drawList()
	trackH := h * 0.5
	trackY := pos.Y + (h-trackH)/2
	dl.AddRect(rect.X, trackY, w, trackH, s.SliderTrackColor)

	shown := float32(newRatio)
	if fill := shown * w; fill > 0 {
		dl.AddRect(rect.X, trackY, fill, trackH, s.SliderFillColor)
	}

	grabColor := s.SliderGrabColor
	switch {
	case ctx.activeID == id:
		grabColor = s.SliderGrabActive
	case hovered:
		grabColor = s.SliderGrabHovered
	}
	grabX := rect.X + shown*(w-sliderGrabWidth)
	dl.AddRect(grabX, pos.Y, sliderGrabWidth, h, grabColor)
	dl.AddRectOutline(grabX, pos.Y, sliderGrabWidth, h, s.InputBorderColor, 1)

	textColor := s.TextColor
	if disabled {
		textColor = s.TextDisabledColor
	}
	tw := float32(len(text)) * s.CharWidth * s.FontScale
	ctx.AddText(rect.X+(w-tw)/2, pos.Y+s.InputPadding, text, textColor)

	totalW := w
	if DisplayLabel(label) != "" {
		ctx.addText(rect.X+w+s.ItemSpacing, pos.Y+s.InputPadding, label, s.TextColor)
		totalW += s.ItemSpacing + ctx.MeasureText(label).X
	}
	ctx.AdvanceCursor(Vec2{X: totalW, Y: h})
	return newRatio, wheel, dragged
}

// sliderRatio maps v into [0, 1] over [lo, hi] without overflowing when the
// range spans most of the float64 domain.
func sliderRatio(v, lo, hi float64) float64 {
	span := hi/2 - lo/2
	if span <= 0 || math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, (v/2-lo/2)/span))
}

func lerp(lo, hi, t float64) float64 {
	return lo*(1-t) + hi*t
}
