package guikit

// LayoutType defines the direction of a layout.
type LayoutType uint8

const (
	LayoutVertical   LayoutType = iota // items stack vertically (default)
	LayoutHorizontal                   // items stack horizontally
)

// Layout tracks the current layout state.
type Layout struct {
	Type LayoutType

	StartX, StartY float32

	// Available size, and the content size accumulated so far.
	Width, Height       float32
	MaxWidth, MaxHeight float32

	Gap     float32 // space between children
	Padding float32 // inner padding

	ItemCount int
}

// LayoutOption configures a layout container.
type LayoutOption func(*Layout)

// Gap sets spacing between children.
func Gap(pixels float32) LayoutOption {
	return func(l *Layout) { l.Gap = pixels }
}

// Padding sets inner padding.
func Padding(pixels float32) LayoutOption {
	return func(l *Layout) { l.Padding = pixels }
}

// Width sets a fixed width for the layout.
func Width(w float32) LayoutOption {
	return func(l *Layout) { l.Width = w }
}

// Height sets a fixed height for the layout.
func Height(h float32) LayoutOption {
	return func(l *Layout) { l.Height = h }
}

func (ctx *Context) pushLayoutWith(layout *Layout) {
	layout.StartX = ctx.cursor.X
	layout.StartY = ctx.cursor.Y
	if layout.Width == 0 {
		layout.Width = ctx.currentLayoutWidth()
	}
	if layout.Height == 0 {
		layout.Height = ctx.currentLayoutHeight()
	}
	ctx.layoutStack = append(ctx.layoutStack, layout)
}

// popLayout removes the current layout, advances the parent past it as a
// single item, and returns the content bounds.
func (ctx *Context) popLayout() Rect {
	n := len(ctx.layoutStack)
	if n == 0 {
		return Rect{}
	}
	layout := ctx.layoutStack[n-1]
	ctx.layoutStack = ctx.layoutStack[:n-1]

	bounds := Rect{X: layout.StartX, Y: layout.StartY, W: layout.MaxWidth, H: layout.MaxHeight}

	// The child's gap was already applied by beginItem when it was pushed
	// through ItemPos, so only reposition and account for it here.
	ctx.cursor = Vec2{X: layout.StartX, Y: layout.StartY}
	ctx.AdvanceCursor(Vec2{X: layout.MaxWidth, Y: layout.MaxHeight})
	return bounds
}

// VStack creates a vertical layout container.
//
// Usage:
//
//	ctx.VStack(Gap(8))(func() {
//	    ctx.Text("Line 1")
//	    ctx.Text("Line 2")
//	})
func (ctx *Context) VStack(opts ...LayoutOption) func(func()) {
	return ctx.stack(LayoutVertical, opts)
}

// HStack creates a horizontal layout container.
//
// Usage:
//
//	ctx.HStack()(func() {
//	    ctx.Text("Label:")
//	    ctx.Button("OK")
//	})
func (ctx *Context) HStack(opts ...LayoutOption) func(func()) {
	return ctx.stack(LayoutHorizontal, opts)
}

func (ctx *Context) stack(typ LayoutType, opts []LayoutOption) func(func()) {
	return func(contents func()) {
		layout := &Layout{Type: typ, Gap: ctx.style.ItemSpacing}
		for _, opt := range opts {
			opt(layout)
		}
		ctx.ItemPos()
		ctx.pushLayoutWith(layout)
		contents()
		ctx.popLayout()
	}
}

// Spacing adds vertical space.
func (ctx *Context) Spacing(pixels float32) {
	ctx.cursor.Y += pixels
}

// Separator draws a horizontal line across the current layout.
func (ctx *Context) Separator() {
	pos := ctx.ItemPos()
	w := ctx.currentLayoutWidth()
	y := pos.Y + 2
	ctx.drawList().AddLine(pos.X, y, pos.X+w, y, ctx.style.SeparatorColor, 1)
	ctx.AdvanceCursor(Vec2{X: w, Y: 4})
}

// WindowHeaderHeight returns the height of a Window title bar.
func (ctx *Context) WindowHeaderHeight() float32 {
	return ctx.lineHeight() + ctx.style.PanelPadding
}

// Window draws a titled container at a fixed rect and lays its contents
// out vertically inside it, clipped to the body. An empty title draws no
// header.
//
// Usage:
//
//	ctx.Window("Controls", guikit.Rect{X: 0, Y: 20, W: 240, H: 400})(func() {
//	    ctx.Checkbox("Enabled", &enabled)
//	})
func (ctx *Context) Window(title string, rect Rect, opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		dl := ctx.DrawList
		s := ctx.style

		dl.AddRect(rect.X, rect.Y, rect.W, rect.H, s.PanelColor)

		headerH := float32(0)
		if title != "" {
			headerH = ctx.WindowHeaderHeight()
			dl.AddRect(rect.X, rect.Y, rect.W, headerH, s.PanelHeaderBgColor)
			textColor := s.PanelHeaderTextColor
			if textColor == 0 {
				textColor = s.TextColor
			}
			ctx.addText(rect.X+s.PanelPadding, rect.Y+(headerH-ctx.lineHeight())/2, title, textColor)
		}
		if s.BorderSize > 0 {
			dl.AddRectOutline(rect.X, rect.Y, rect.W, rect.H, s.PanelBorderColor, s.BorderSize)
		}

		if ctx.isHovered(rect) {
			ctx.WantCaptureMouse = true
		}

		body := Rect{X: rect.X, Y: rect.Y + headerH, W: rect.W, H: maxf(0, rect.H-headerH)}
		layout := &Layout{
			Type:   LayoutVertical,
			Gap:    s.ItemSpacing,
			Width:  maxf(0, body.W-s.PanelPadding*2),
			Height: maxf(0, body.H-s.PanelPadding*2),
		}
		for _, opt := range opts {
			opt(layout)
		}

		savedCursor := ctx.cursor
		savedStack := ctx.layoutStack
		ctx.layoutStack = nil

		dl.PushClipRect(body.X, body.Y, body.X+body.W, body.Y+body.H)
		ctx.pushInputClip(body)
		ctx.cursor = Vec2{X: body.X + s.PanelPadding, Y: body.Y + s.PanelPadding}
		ctx.pushLayoutWith(layout)
		contents()
		ctx.layoutStack = ctx.layoutStack[:0]
		ctx.popInputClip()
		dl.PopClipRect()

		ctx.layoutStack = savedStack
		ctx.cursor = savedCursor
	}
}
