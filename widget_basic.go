package guikit

// Text draws text at the current cursor position.
func (ctx *Context) Text(text string) {
	ctx.TextColored(text, ctx.style.TextColor)
}

// TextColored draws text with a specific color.
func (ctx *Context) TextColored(text string, color uint32) {
	pos := ctx.ItemPos()
	ctx.AddText(pos.X, pos.Y, text, color)
	n := 0
	for range text {
		n++
	}
	ctx.AdvanceCursor(Vec2{X: float32(n) * ctx.style.CharWidth * ctx.style.FontScale, Y: ctx.lineHeight()})
}

// TextDisabled draws text with the disabled color.
func (ctx *Context) TextDisabled(text string) {
	ctx.TextColored(text, ctx.style.TextDisabledColor)
}

// Button draws a button and returns true if clicked.
func (ctx *Context) Button(label string, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)

	textSize := ctx.MeasureText(label)
	size := Vec2{
		X: textSize.X + ctx.style.ButtonPadding*2,
		Y: textSize.Y + ctx.style.ButtonPadding*2,
	}
	if w := GetOpt(o, OptWidth); w > 0 {
		size.X = w
	}
	if h := GetOpt(o, OptHeight); h > 0 {
		size.Y = h
	}
	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}

	disabled := GetOpt(o, OptDisabled)
	bgColor := ctx.style.ButtonColor
	textColor := ctx.style.TextColor
	switch {
	case disabled:
		bgColor = ctx.style.ButtonDisabledColor
		textColor = ctx.style.TextDisabledColor
	case ctx.isPressed(rect):
		bgColor = ctx.style.ButtonActiveColor
	case ctx.isHovered(rect):
		bgColor = ctx.style.ButtonHoveredColor
	}

	dl := ctx.drawList()
	dl.AddRect(rect.X, rect.Y, rect.W, rect.H, bgColor)
	ctx.addText(pos.X+(size.X-textSize.X)/2, pos.Y+(size.Y-textSize.Y)/2, label, textColor)

	clicked := !disabled && ctx.isClicked(id, rect)
	ctx.AdvanceCursor(size)
	return clicked
}

// Checkbox draws a box with a label and toggles *value when clicked.
// Returns true if the value was changed.
func (ctx *Context) Checkbox(label string, value *bool, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)

	box := ctx.lineHeight()
	textSize := ctx.MeasureText(label)
	w := box
	if textSize.X > 0 {
		w += ctx.style.ItemSpacing + textSize.X
	}
	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: box}

	disabled := GetOpt(o, OptDisabled)
	changed := false
	if !disabled && ctx.isClicked(id, rect) {
		*value = !*value
		changed = true
	}

	bg := ctx.style.InputBgColor
	if !disabled && ctx.isHovered(rect) {
		bg = ctx.style.InputFocusedBgColor
	}
	dl := ctx.drawList()
	dl.AddRect(pos.X, pos.Y, box, box, bg)
	dl.AddRectOutline(pos.X, pos.Y, box, box, ctx.style.InputBorderColor, 1)
	if *value {
		inset := box / 4
		dl.AddRect(pos.X+inset, pos.Y+inset, box-inset*2, box-inset*2, ctx.style.CheckMarkColor)
	}

	textColor := ctx.style.TextColor
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	ctx.addText(pos.X+box+ctx.style.ItemSpacing, pos.Y, label, textColor)

	ctx.AdvanceCursor(Vec2{X: w, Y: box})
	return changed
}

// Selectable draws a full-width highlightable row and returns true if
// clicked. Inside a combo it is one of the dropdown entries.
func (ctx *Context) Selectable(label string, selected bool, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)

	w := GetOpt(o, OptWidth)
	if w <= 0 {
		if ctx.popup != nil {
			w = ctx.popup.width
		} else {
			w = ctx.MeasureText(label).X + ctx.style.ItemSpacing*2
		}
	}
	h := ctx.lineHeight() + ctx.style.ItemSpacing
	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}

	disabled := GetOpt(o, OptDisabled)
	hovered := !disabled && ctx.isHovered(rect)

	var bg uint32
	textColor := ctx.style.TextColor
	switch {
	case selected:
		bg = ctx.style.SelectedBgColor
		textColor = ctx.style.SelectedTextColor
	case hovered:
		bg = ctx.style.HoveredBgColor
	}
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	if bg != 0 {
		ctx.drawList().AddRect(rect.X, rect.Y, rect.W, rect.H, bg)
	}
	ctx.addText(pos.X+ctx.style.ItemSpacing, pos.Y+ctx.style.ItemSpacing/2, label, textColor)

	clicked := !disabled && ctx.isClicked(id, rect)
	if clicked && ctx.popup != nil {
		ctx.popup.selected = true
	}
	ctx.AdvanceCursor(Vec2{X: w, Y: h})
	return clicked
}
