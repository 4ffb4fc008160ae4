package guikit

// Context holds all state for UI rendering in a single frame.
// This is NOT context.Context - it's a dedicated GUI context type.
type Context struct {
	// Drawing output
	DrawList           *DrawList
	ForegroundDrawList *DrawList // popups and dropdowns, drawn on top

	style      Style
	styleStack []Style

	cursor         Vec2
	layoutStack    []*Layout
	itemWidthStack []float32

	// Input (read-only during frame)
	Input *InputState

	stateStore StateStore
	idStack    []ID

	DisplaySize Vec2
	FrameCount  uint64
	DeltaTime   float32

	// activeID is the widget holding the mouse (slider drag, pressed button).
	activeID ID

	// Popup tracking. openPopupID persists across frames; popupBlock is the
	// rect the open popup covered last frame, which widgets outside the
	// popup must not react through.
	openPopupID ID
	popup       *popupState
	popupBlock  Rect
	popupNext   Rect

	// inputClip holds the visible body of each open Window; widgets only
	// react inside the innermost one. occluders are rects of layers drawn
	// later in the frame that sit above the widgets being drawn now.
	inputClip []Rect
	occluders []Rect

	// Font texture ID (set by renderer)
	FontTextureID uint32

	// Input capture flags (output from GUI to application)
	WantCaptureMouse    bool
	WantCaptureKeyboard bool

	// Cleared every frame.
	textMeasureCache map[string]Vec2
}

// NewContext creates a new GUI context with default settings.
func NewContext() *Context {
	return &Context{
		style:            DefaultStyle(),
		styleStack:       make([]Style, 0, 8),
		layoutStack:      make([]*Layout, 0, 16),
		itemWidthStack:   make([]float32, 0, 8),
		idStack:          make([]ID, 0, 32),
		stateStore:       make(MapStateStore),
		textMeasureCache: make(map[string]Vec2, 64),
	}
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle sets the base style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// PushStyle temporarily overrides the style.
func (ctx *Context) PushStyle(style Style) {
	ctx.styleStack = append(ctx.styleStack, ctx.style)
	ctx.style = style
}

// PopStyle restores the previous style.
func (ctx *Context) PopStyle() {
	n := len(ctx.styleStack)
	if n > 0 {
		ctx.style = ctx.styleStack[n-1]
		ctx.styleStack = ctx.styleStack[:n-1]
	}
}

// PushItemWidth sets the width used by subsequent inputs, sliders and
// combos until the matching PopItemWidth. An explicit WithWidth still wins.
func (ctx *Context) PushItemWidth(w float32) {
	ctx.itemWidthStack = append(ctx.itemWidthStack, w)
}

// PopItemWidth restores the previous item width.
func (ctx *Context) PopItemWidth() {
	if n := len(ctx.itemWidthStack); n > 0 {
		ctx.itemWidthStack = ctx.itemWidthStack[:n-1]
	}
}

// itemWidth resolves a widget's width: WithWidth, then PushItemWidth,
// then the style default.
func (ctx *Context) itemWidth(o options) float32 {
	if w := GetOpt(o, OptWidth); w > 0 {
		return w
	}
	if n := len(ctx.itemWidthStack); n > 0 && ctx.itemWidthStack[n-1] > 0 {
		return ctx.itemWidthStack[n-1]
	}
	return ctx.style.DefaultItemWidth
}

// ItemWidth returns the width the next input, slider or combo will use.
func (ctx *Context) ItemWidth() float32 {
	return ctx.itemWidth(options{})
}

// reset prepares the context for a new frame.
func (ctx *Context) reset(displaySize Vec2, deltaTime float32) {
	ctx.FrameCount++
	ctx.cursor = Vec2{}
	ctx.layoutStack = ctx.layoutStack[:0]
	ctx.styleStack = ctx.styleStack[:0]
	ctx.itemWidthStack = ctx.itemWidthStack[:0]
	ctx.idStack = ctx.idStack[:0]
	ctx.inputClip = ctx.inputClip[:0]
	ctx.occluders = ctx.occluders[:0]
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime

	ctx.WantCaptureMouse = false
	ctx.WantCaptureKeyboard = false
	clear(ctx.textMeasureCache)

	// A popup whose owner stopped drawing is closed; owners re-record their
	// rect in EndCombo each frame they stay open.
	ctx.popupBlock = ctx.popupNext
	ctx.popupNext = Rect{}
	if ctx.popupBlock.W == 0 && ctx.openPopupID != 0 {
		guiLogger.Debug("closing orphaned popup", "id", ctx.openPopupID)
		ctx.openPopupID = 0
	}
	ctx.popup = nil

	// Release the active widget once the mouse is up and the widget had
	// its chance to see the release this frame.
	if ctx.Input != nil && !ctx.Input.MouseDown(MouseButtonLeft) && !ctx.Input.MouseReleased(MouseButtonLeft) {
		ctx.activeID = 0
	}
}

// isHovered returns true if rect is under the mouse, inside the visible
// body of the enclosing Window, and not covered by an open popup or an
// occluding layer. Popup entries sit above everything and skip the checks.
func (ctx *Context) isHovered(rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	m := ctx.Input.MousePos()
	if !rect.Contains(m) {
		return false
	}
	if ctx.popup != nil {
		return true
	}
	if ctx.popupBlock.W > 0 && ctx.popupBlock.Contains(m) {
		return false
	}
	if n := len(ctx.inputClip); n > 0 && !ctx.inputClip[n-1].Contains(m) {
		return false
	}
	for _, r := range ctx.occluders {
		if r.Contains(m) {
			return false
		}
	}
	return true
}

// SetOccluders declares the rects of layers that will be drawn above the
// widgets that follow, such as floating windows. Until the next call or the
// end of the frame those widgets ignore the mouse inside any of them.
// Calling it with no rects lifts the occlusion.
func (ctx *Context) SetOccluders(rects ...Rect) {
	ctx.occluders = append(ctx.occluders[:0], rects...)
}

// pushInputClip restricts hovering to r intersected with the current clip.
func (ctx *Context) pushInputClip(r Rect) {
	if n := len(ctx.inputClip); n > 0 {
		r = r.Intersect(ctx.inputClip[n-1])
	}
	ctx.inputClip = append(ctx.inputClip, r)
}

func (ctx *Context) popInputClip() {
	if n := len(ctx.inputClip); n > 0 {
		ctx.inputClip = ctx.inputClip[:n-1]
	}
}

// IsHovered reports whether rect is under the mouse (public API).
func (ctx *Context) IsHovered(rect Rect) bool {
	return ctx.isHovered(rect)
}

// isClicked returns true if rect was clicked this frame.
func (ctx *Context) isClicked(id ID, rect Rect) bool {
	if ctx.Input == nil || !ctx.Input.MouseClicked(MouseButtonLeft) {
		return false
	}
	if ctx.isHovered(rect) {
		guiLogger.Debug("click", "id", id, "rect", rect, "mouse", ctx.Input.MousePos())
		return true
	}
	return false
}

// isPressed returns true if rect is held down.
func (ctx *Context) isPressed(rect Rect) bool {
	return ctx.Input != nil && ctx.isHovered(rect) && ctx.Input.MouseDown(MouseButtonLeft)
}

// SetActiveID marks id as holding the mouse until the button is released.
func (ctx *Context) SetActiveID(id ID) {
	ctx.activeID = id
}

// ActiveID returns the widget holding the mouse, or 0.
func (ctx *Context) ActiveID() ID {
	return ctx.activeID
}

// IsPopupOpen returns true if the popup with the given ID is open.
func (ctx *Context) IsPopupOpen(id ID) bool {
	return ctx.openPopupID == id && id != 0
}

// HasOpenPopup returns true if any popup is open.
func (ctx *Context) HasOpenPopup() bool {
	return ctx.openPopupID != 0
}

// SetCursorPos sets the cursor position for the next widget.
func (ctx *Context) SetCursorPos(x, y float32) {
	ctx.cursor = Vec2{X: x, Y: y}
}

// GetCursorPos returns the current cursor position.
func (ctx *Context) GetCursorPos() Vec2 {
	return ctx.cursor
}

func (ctx *Context) lineHeight() float32 {
	return ctx.style.CharHeight * ctx.style.FontScale
}

// LineHeight returns the height of a single line of text.
func (ctx *Context) LineHeight() float32 {
	return ctx.lineHeight()
}

// MeasureText returns the size of rendered text. The "##" suffix of a label
// is not measured.
func (ctx *Context) MeasureText(text string) Vec2 {
	if cached, ok := ctx.textMeasureCache[text]; ok {
		return cached
	}
	n := 0
	for range DisplayLabel(text) {
		n++
	}
	result := Vec2{
		X: float32(n) * ctx.style.CharWidth * ctx.style.FontScale,
		Y: ctx.lineHeight(),
	}
	ctx.textMeasureCache[text] = result
	return result
}

// drawList returns the list widgets draw into: the foreground list while
// inside a popup, the main list otherwise.
func (ctx *Context) drawList() *DrawList {
	if ctx.popup != nil && ctx.ForegroundDrawList != nil {
		return ctx.ForegroundDrawList
	}
	return ctx.DrawList
}

// addText draws a label with the current style, hiding its "##" suffix.
func (ctx *Context) addText(x, y float32, text string, color uint32) {
	ctx.AddTextTo(ctx.drawList(), x, y, DisplayLabel(text), color)
}

// AddTextTo draws text to a specific DrawList.
func (ctx *Context) AddTextTo(dl *DrawList, x, y float32, text string, color uint32) {
	if dl == nil {
		return
	}
	dl.SetTexture(ctx.FontTextureID)
	dl.AddText(x, y, text, color, ctx.style.FontScale, ctx.style.CharWidth, ctx.style.CharHeight)
	dl.SetTexture(0)
}

// AddText draws text with the current style.
func (ctx *Context) AddText(x, y float32, text string, color uint32) {
	ctx.AddTextTo(ctx.drawList(), x, y, text, color)
}

// widgetID returns the ID for a widget: WithID when given, else the label.
func (ctx *Context) widgetID(label string, o options) ID {
	if optID := GetOpt(o, OptID); optID != "" {
		return ctx.GetID(optID)
	}
	return ctx.GetID(label)
}

// currentLayoutWidth returns the available width in the current layout.
func (ctx *Context) currentLayoutWidth() float32 {
	if l := ctx.currentLayout(); l != nil {
		return l.Width - l.Padding*2
	}
	return ctx.DisplaySize.X - ctx.cursor.X
}

// CurrentLayoutWidth returns the available width in the current layout.
func (ctx *Context) CurrentLayoutWidth() float32 {
	return ctx.currentLayoutWidth()
}

func (ctx *Context) currentLayoutHeight() float32 {
	if l := ctx.currentLayout(); l != nil {
		return l.Height - l.Padding*2
	}
	return ctx.DisplaySize.Y - ctx.cursor.Y
}

func (ctx *Context) currentLayout() *Layout {
	if len(ctx.layoutStack) > 0 {
		return ctx.layoutStack[len(ctx.layoutStack)-1]
	}
	return nil
}

// beginItem applies the layout gap before an item.
func (ctx *Context) beginItem() {
	layout := ctx.currentLayout()
	if layout == nil || layout.ItemCount == 0 {
		return
	}
	gap := layout.Gap
	if gap == 0 {
		gap = ctx.style.ItemSpacing
	}
	if layout.Type == LayoutVertical {
		ctx.cursor.Y += gap
	} else {
		ctx.cursor.X += gap
	}
}

// ItemPos returns the position for the next widget with gap applied.
func (ctx *Context) ItemPos() Vec2 {
	ctx.beginItem()
	return ctx.cursor
}

// AdvanceCursor moves the cursor after drawing an item of the given size.
func (ctx *Context) AdvanceCursor(size Vec2) {
	layout := ctx.currentLayout()
	if layout == nil {
		ctx.cursor.Y += size.Y + ctx.style.ItemSpacing
		return
	}
	if layout.Type == LayoutVertical {
		ctx.cursor.Y += size.Y
		layout.MaxWidth = maxf(layout.MaxWidth, ctx.cursor.X+size.X-layout.StartX)
		layout.MaxHeight = ctx.cursor.Y - layout.StartY
	} else {
		ctx.cursor.X += size.X
		layout.MaxWidth = ctx.cursor.X - layout.StartX
		layout.MaxHeight = maxf(layout.MaxHeight, size.Y)
	}
	layout.ItemCount++
}
