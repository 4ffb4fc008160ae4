package guikit

// Renderer is the interface for rendering GUI draw data.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// GUI manages the immediate mode UI system.
type GUI struct {
	renderer   Renderer
	stateStore StateStore
	style      Style
	ctx        *Context
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithStyle sets the GUI style.
func WithStyle(style Style) GUIOption {
	return func(g *GUI) { g.style = style }
}

// WithStateStore sets a custom state store.
func WithStateStore(store StateStore) GUIOption {
	return func(g *GUI) { g.stateStore = store }
}

// New creates a new GUI instance.
func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer:   renderer,
		stateStore: make(MapStateStore),
		style:      DefaultStyle(),
		ctx:        NewContext(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Begin starts a new frame and returns the GUI context.
// Call this at the start of each frame before drawing any UI.
func (g *GUI) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	ctx := g.ctx

	ctx.DrawList = AcquireDrawList()
	ctx.ForegroundDrawList = AcquireDrawList()

	ctx.Input = input
	ctx.stateStore = g.stateStore
	ctx.SetStyle(g.style)
	ctx.FontTextureID = g.renderer.FontTextureID()
	ctx.reset(displaySize, deltaTime)
	return ctx
}

// End finishes the frame and renders the UI.
// Call this after all UI drawing is complete.
func (g *GUI) End() error {
	ctx := g.ctx
	if ctx.DrawList == nil {
		return nil
	}
	if ctx.popup != nil {
		guiLogger.Warn("BeginCombo without EndCombo", "id", ctx.popup.id)
		ctx.EndCombo()
	}

	ctx.DrawList.Finalize()
	err := g.renderer.Render(ctx.DrawList)
	if err == nil && ctx.ForegroundDrawList != nil {
		ctx.ForegroundDrawList.Finalize()
		if len(ctx.ForegroundDrawList.CmdBuffer) > 0 {
			err = g.renderer.Render(ctx.ForegroundDrawList)
		}
	}

	ReleaseDrawList(ctx.DrawList)
	ctx.DrawList = nil
	ReleaseDrawList(ctx.ForegroundDrawList)
	ctx.ForegroundDrawList = nil
	return err
}

// Context returns the GUI context.
// Only valid for drawing between Begin() and End() calls.
func (g *GUI) Context() *Context {
	return g.ctx
}

// Style returns the current GUI style.
func (g *GUI) Style() Style {
	return g.style
}

// SetStyle sets the GUI style, applied from the next Begin.
func (g *GUI) SetStyle(style Style) {
	g.style = style
}

// Resize notifies the GUI of a display size change.
func (g *GUI) Resize(width, height int) {
	g.renderer.Resize(width, height)
}
