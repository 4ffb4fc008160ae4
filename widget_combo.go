package guikit

// popupState describes the dropdown being filled between BeginCombo and
// EndCombo.
type popupState struct {
	id       ID
	width    float32
	origin   Vec2
	header   Rect
	selected bool // an entry was clicked; close at EndCombo

	savedCursor Vec2
	savedStack  []*Layout
}

// BeginCombo draws a combo header showing preview and, when the dropdown is
// open, starts laying out its entries. Returns true if open; the caller then
// draws entries (usually Selectable) and must call EndCombo.
//
// An empty preview shows the WithPlaceholder text in the disabled color.
//
// Usage:
//
//	if ctx.BeginCombo("Mode", modes[cur]) {
//	    for i, m := range modes {
//	        if ctx.Selectable(m, i == cur) {
//	            cur = i
//	        }
//	    }
//	    ctx.EndCombo()
//	}
func (ctx *Context) BeginCombo(label, preview string, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)

	w := ctx.itemWidth(o)
	h := ctx.lineHeight() + ctx.style.ButtonPadding*2
	header := Rect{X: pos.X, Y: pos.Y, W: w, H: h}

	disabled := GetOpt(o, OptDisabled)
	open := ctx.IsPopupOpen(id)
	if !disabled && ctx.isClicked(id, header) {
		open = !open
		if open {
			ctx.openPopupID = id
			guiLogger.Debug("combo opened", "id", id, "label", label)
		} else {
			ctx.openPopupID = 0
		}
	}
	if disabled && open {
		ctx.openPopupID = 0
		open = false
	}

	dl := ctx.drawList()
	bg := ctx.style.ButtonColor
	if !disabled && (open || ctx.isHovered(header)) {
		bg = ctx.style.ButtonHoveredColor
	}
	dl.AddRect(header.X, header.Y, header.W, header.H, bg)
	dl.AddRectOutline(header.X, header.Y, header.W, header.H, ctx.style.InputBorderColor, 1)

	textColor := ctx.style.TextColor
	if preview == "" {
		preview = GetOpt(o, OptPlaceholder)
		textColor = ctx.style.TextDisabledColor
	}
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	textY := pos.Y + (h-ctx.lineHeight())/2
	ctx.AddText(pos.X+ctx.style.ButtonPadding, textY, preview, textColor)

	arrow := float32(8)
	ax := pos.X + w - ctx.style.ButtonPadding - arrow
	ay := pos.Y + h/2
	if open {
		dl.AddTriangle(ax+arrow/2, ay-arrow/4, ax, ay+arrow/4, ax+arrow, ay+arrow/4, ctx.style.ComboArrowColor)
	} else {
		dl.AddTriangle(ax+arrow/2, ay+arrow/4, ax, ay-arrow/4, ax+arrow, ay-arrow/4, ctx.style.ComboArrowColor)
	}

	totalW := w
	if text := DisplayLabel(label); text != "" {
		ctx.addText(pos.X+w+ctx.style.ItemSpacing, textY, label, ctx.style.TextColor)
		totalW += ctx.style.ItemSpacing + ctx.MeasureText(label).X
	}
	ctx.AdvanceCursor(Vec2{X: totalW, Y: h})

	if !open {
		return false
	}
	if ctx.popup != nil {
		guiLogger.Warn("nested combo not supported", "id", id)
		return false
	}

	ctx.popup = &popupState{
		id:          id,
		width:       w,
		origin:      Vec2{X: pos.X, Y: pos.Y + h},
		header:      header,
		savedCursor: ctx.cursor,
		savedStack:  ctx.layoutStack,
	}
	ctx.layoutStack = nil
	ctx.cursor = ctx.popup.origin
	ctx.pushLayoutWith(&Layout{Type: LayoutVertical, Gap: 1, Width: w, Height: ctx.DisplaySize.Y})
	ctx.WantCaptureKeyboard = true
	return true
}

// EndCombo finishes a dropdown started by BeginCombo. It draws the
// dropdown background and closes the popup when an entry was picked, the
// user clicked outside, or Escape was pressed.
func (ctx *Context) EndCombo() {
	p := ctx.popup
	if p == nil {
		return
	}
	contentH := float32(0)
	if l := ctx.currentLayout(); l != nil {
		contentH = l.MaxHeight
	}
	ctx.layoutStack = p.savedStack
	ctx.cursor = p.savedCursor
	ctx.popup = nil

	rect := Rect{X: p.origin.X, Y: p.origin.Y, W: p.width, H: contentH + 2}
	fg := ctx.ForegroundDrawList
	if fg == nil {
		fg = ctx.DrawList
	}
	fg.InsertRect(rect.X, rect.Y, rect.W, rect.H, ctx.style.DropdownBgColor)
	fg.AddRectOutline(rect.X, rect.Y, rect.W, rect.H, ctx.style.InputBorderColor, 1)

	closing := p.selected
	if in := ctx.Input; in != nil {
		m := in.MousePos()
		if rect.Contains(m) {
			ctx.WantCaptureMouse = true
		}
		if in.MouseClicked(MouseButtonLeft) && !rect.Contains(m) && !p.header.Contains(m) {
			closing = true
		}
		if in.KeyPressed(KeyEscape) {
			closing = true
		}
	}
	if closing {
		ctx.openPopupID = 0
		return
	}
	ctx.popupNext = rect
}

// Combo draws a dropdown over items and stores the picked index in
// *current. An out-of-range *current shows the placeholder.
// Returns true if the user picked a different entry.
func (ctx *Context) Combo(label string, current *int, items []string, opts ...Option) bool {
	preview := ""
	if *current >= 0 && *current < len(items) {
		preview = items[*current]
	}
	changed := false
	if ctx.BeginCombo(label, preview, opts...) {
		for i, item := range items {
			ctx.PushIDInt(i)
			if ctx.Selectable(item, i == *current) && i != *current {
				*current = i
				changed = true
			}
			ctx.PopID()
		}
		ctx.EndCombo()
	}
	return changed
}
