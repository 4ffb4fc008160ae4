package guikit

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// numberEdit is what the user did to a number box this frame.
type numberEdit struct {
	steps  int    // net step-button, wheel and arrow presses
	text   string // committed text when commit is set
	commit bool
}

// InputInt draws an integer field with -/+ step buttons. Click the field to
// type a value; Enter or clicking elsewhere commits, Escape cancels. The
// mouse wheel and Up/Down while editing step the value.
// WithRange clamps the result. Returns true if *value changed.
func (ctx *Context) InputInt(label string, value *int, step int, opts ...Option) bool {
	o := applyOptions(opts)
	format := GetOpt(o, OptFormat)
	if format == "" {
		format = "%d"
	}
	if step == 0 {
		step = 1
	}

	e := ctx.numberBox(label, fmt.Sprintf(format, *value), o)
	nv := *value
	if e.commit {
		text := strings.TrimSpace(e.text)
		if p, err := strconv.Atoi(text); err == nil {
			nv = p
		} else if f, err := strconv.ParseFloat(text, 64); err == nil {
			nv = floatToIntSat(math.Round(f))
		} else {
			guiLogger.Debug("input int: ignoring unparsable text", "label", label, "text", e.text)
		}
	}
	if e.steps != 0 {
		nv = addIntSat(nv, mulIntSat(step, e.steps))
	}
	nv = clampIntRange(nv, GetOpt(o, OptRange))
	if nv == *value {
		return false
	}
	*value = nv
	return true
}

// InputFloat draws a float field with -/+ step buttons. It behaves like
// InputInt; the default display format is "%.3f".
func (ctx *Context) InputFloat(label string, value *float64, step float64, opts ...Option) bool {
	o := applyOptions(opts)
	format := GetOpt(o, OptFormat)
	if format == "" {
		format = "%.3f"
	}
	if step == 0 {
		step = 1
	}

	e := ctx.numberBox(label, fmt.Sprintf(format, *value), o)
	nv := *value
	if e.commit {
		if f, err := strconv.ParseFloat(strings.TrimSpace(e.text), 64); err == nil && !math.IsNaN(f) {
			nv = f
		} else {
			guiLogger.Debug("input float: ignoring unparsable text", "label", label, "text", e.text)
		}
	}
	if e.steps != 0 {
		nv += step * float64(e.steps)
	}
	nv = GetOpt(o, OptRange).Clamp(nv)
	if nv == *value {
		return false
	}
	*value = nv
	return true
}

// numberBox draws the shared number field and collects edits.
func (ctx *Context) numberBox(label, display string, o options) numberEdit {
	pos := ctx.ItemPos()
	id := ctx.widgetID(label, o)
	state := GetState(ctx, id, NumberInputState{})
	s := ctx.style

	h := ctx.lineHeight() + s.InputPadding*2
	btn := h
	boxW := maxf(ctx.itemWidth(o)-2*(btn+s.ItemSpacing), btn)
	box := Rect{X: pos.X, Y: pos.Y, W: boxW, H: h}
	minus := Rect{X: box.X + boxW + s.ItemSpacing, Y: pos.Y, W: btn, H: h}
	plus := Rect{X: minus.X + btn + s.ItemSpacing, Y: pos.Y, W: btn, H: h}

	var e numberEdit
	disabled := GetOpt(o, OptDisabled)
	hovered := !disabled && ctx.isHovered(box)

	if disabled {
		state.Editing = false
	} else if in := ctx.Input; in != nil {
		if ctx.isClicked(id, minus) {
			e.steps--
		}
		if ctx.isClicked(id, plus) {
			e.steps++
		}
		if hovered && !state.Editing && in.MouseWheelY != 0 {
			if in.MouseWheelY > 0 {
				e.steps++
			} else {
				e.steps--
			}
		}

		justStarted := false
		if !state.Editing && ctx.isClicked(id, box) {
			state.Editing = true
			state.EditText = display
			justStarted = true
		}

		if state.Editing {
			ctx.WantCaptureKeyboard = true
			for _, ch := range in.InputChars {
				if (ch >= '0' && ch <= '9') || strings.ContainsRune(".-+eE", ch) {
					state.EditText += string(ch)
				}
			}
			if in.KeyRepeated(KeyBackspace) && len(state.EditText) > 0 {
				state.EditText = state.EditText[:len(state.EditText)-1]
			}
			if in.KeyRepeated(KeyUp) {
				e.steps++
			}
			if in.KeyRepeated(KeyDown) {
				e.steps--
			}

			switch {
			case in.KeyPressed(KeyEscape):
				state.Editing = false
			case in.KeyPressed(KeyEnter) && !justStarted,
				in.MouseClicked(MouseButtonLeft) && !box.Contains(in.MousePos()):
				e.commit = true
				e.text = state.EditText
				state.Editing = false
			}
			if e.steps != 0 && state.Editing {
				// Stepping while editing drops the typed text.
				state.Editing = false
			}
		}
	}

	dl := ctx.drawList()
	bg := s.InputBgColor
	if state.Editing || hovered {
		bg = s.InputFocusedBgColor
	}
	dl.AddRect(box.X, box.Y, box.W, box.H, bg)
	dl.AddRectOutline(box.X, box.Y, box.W, box.H, s.InputBorderColor, 1)

	textX, textY := box.X+s.InputPadding, box.Y+s.InputPadding
	textColor := s.TextColor
	if disabled {
		textColor = s.TextDisabledColor
	}
	dl.PushClipRect(box.X, box.Y, box.X+box.W, box.Y+box.H)
	if state.Editing {
		ctx.AddText(textX, textY, state.EditText, textColor)
		if (ctx.FrameCount/30)%2 == 0 {
			cx := textX + float32(len(state.EditText))*s.CharWidth*s.FontScale
			dl.AddLine(cx, box.Y+2, cx, box.Y+h-2, textColor, 1)
		}
	} else {
		ctx.AddText(textX, textY, display, textColor)
	}
	dl.PopClipRect()

	ctx.stepButton(minus, "-", disabled)
	ctx.stepButton(plus, "+", disabled)

	totalW := plus.X + plus.W - pos.X
	if DisplayLabel(label) != "" {
		ctx.addText(totalW+pos.X+s.ItemSpacing, textY, label, s.TextColor)
		totalW += s.ItemSpacing + ctx.MeasureText(label).X
	}

	SetState(ctx, id, state)
	ctx.AdvanceCursor(Vec2{X: totalW, Y: h})
	return e
}

func (ctx *Context) stepButton(r Rect, glyph string, disabled bool) {
	bg := ctx.style.ButtonColor
	switch {
	case disabled:
		bg = ctx.style.ButtonDisabledColor
	case ctx.isPressed(r):
		bg = ctx.style.ButtonActiveColor
	case ctx.isHovered(r):
		bg = ctx.style.ButtonHoveredColor
	}
	ctx.drawList().AddRect(r.X, r.Y, r.W, r.H, bg)
	gw := ctx.style.CharWidth * ctx.style.FontScale
	ctx.AddText(r.X+(r.W-gw)/2, r.Y+(r.H-ctx.lineHeight())/2, glyph, ctx.style.TextColor)
}

func addIntSat(a, b int) int {
	c := a + b
	if b > 0 && c < a {
		return math.MaxInt
	}
	if b < 0 && c > a {
		return math.MinInt
	}
	return c
}

func mulIntSat(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	c := a * b
	overflow := c/b != a ||
		(a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt)
	if !overflow {
		return c
	}
	if (a > 0) == (b > 0) {
		return math.MaxInt
	}
	return math.MinInt
}

func floatToIntSat(f float64) int {
	if f >= math.MaxInt {
		return math.MaxInt
	}
	if f <= math.MinInt {
		return math.MinInt
	}
	return int(f)
}

func clampIntRange(v int, r RangeValue) int {
	if !r.HasRange {
		return v
	}
	if float64(v) < r.Min {
		return floatToIntSat(math.Ceil(r.Min))
	}
	if float64(v) > r.Max {
		return floatToIntSat(math.Floor(r.Max))
	}
	return v
}
