package shell

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/go-theft-auto/guikit"
)

var (
	// ErrDuplicatePanel is returned when a panel name is already docked.
	ErrDuplicatePanel = errors.New("duplicate panel")
	// ErrUnknownPanel is returned for a panel name that is not docked.
	ErrUnknownPanel = errors.New("unknown panel")
)

// DockSide is where a panel sits in the dock space.
type DockSide uint8

const (
	DockLeft DockSide = iota
	DockRight
	DockTop
	DockBottom
	DockCenter
	DockFloating
)

func (s DockSide) String() string {
	switch s {
	case DockLeft:
		return "left"
	case DockRight:
		return "right"
	case DockTop:
		return "top"
	case DockBottom:
		return "bottom"
	case DockCenter:
		return "center"
	case DockFloating:
		return "floating"
	default:
		return fmt.Sprintf("DockSide(%d)", uint8(s))
	}
}

// dragState tracks a floating panel being moved by its title bar.
type dragState struct {
	active           bool
	offsetX, offsetY float32
}

type dockedPanel struct {
	panel    *Panel
	side     DockSide
	floating guikit.Rect // kept while docked so undocking restores it
	rect     guikit.Rect // result of the last Layout
	drag     dragState
	z        uint64 // floating stacking order, higher draws later
}

// DockSpace arranges panels around a center region.
//
// Top and bottom bands span the full width. Left and right columns fill
// the height between them, and the center takes what is left. Several
// panels on one side share it evenly: columns and the center stack their
// panels vertically, bands place them side by side. Floating panels keep
// their own rect and can be dragged by the title bar.
type DockSpace struct {
	cfg    DockConfig
	panels []*dockedPanel
	area   guikit.Rect
	topZ   uint64
}

// NewDockSpace creates an empty dock space with the given region sizes.
func NewDockSpace(cfg DockConfig) *DockSpace {
	return &DockSpace{cfg: cfg}
}

// Config returns the region sizes.
func (d *DockSpace) Config() DockConfig { return d.cfg }

// SetConfig changes the region sizes; the next Layout applies them.
func (d *DockSpace) SetConfig(cfg DockConfig) { d.cfg = cfg }

// Add docks p at side. Floating panels start at a cascade position; use
// AddFloating to choose the rect.
func (d *DockSpace) Add(p *Panel, side DockSide) error {
	n := len(d.panels)
	return d.add(p, side, guikit.Rect{X: 40 + 24*float32(n), Y: 60 + 24*float32(n), W: 320, H: 240})
}

// AddFloating adds p as a floating panel at rect.
func (d *DockSpace) AddFloating(p *Panel, rect guikit.Rect) error {
	return d.add(p, DockFloating, rect)
}

func (d *DockSpace) add(p *Panel, side DockSide, floating guikit.Rect) error {
	if side > DockFloating {
		return fmt.Errorf("add panel %q: invalid side %v", p.Name(), side)
	}
	if d.find(p.Name()) != nil {
		return fmt.Errorf("add panel %q: %w", p.Name(), ErrDuplicatePanel)
	}
	d.panels = append(d.panels, &dockedPanel{panel: p, side: side, floating: floating})
	logger.Debug("panel added", "panel", p.Name(), "side", side)
	return nil
}

// Remove takes the named panel out of the dock space.
func (d *DockSpace) Remove(name string) error {
	for i, dp := range d.panels {
		if dp.panel.Name() == name {
			d.panels = append(d.panels[:i], d.panels[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("remove panel %q: %w", name, ErrUnknownPanel)
}

// Dock moves the named panel to side.
func (d *DockSpace) Dock(name string, side DockSide) error {
	dp := d.find(name)
	if dp == nil {
		return fmt.Errorf("dock panel %q: %w", name, ErrUnknownPanel)
	}
	if side > DockFloating {
		return fmt.Errorf("dock panel %q: invalid side %v", name, side)
	}
	if dp.side == DockFloating && side != DockFloating {
		dp.drag = dragState{}
	}
	dp.side = side
	logger.Debug("panel docked", "panel", name, "side", side)
	return nil
}

// SetFloatingRect sets where the named panel sits while floating.
func (d *DockSpace) SetFloatingRect(name string, rect guikit.Rect) error {
	dp := d.find(name)
	if dp == nil {
		return fmt.Errorf("move panel %q: %w", name, ErrUnknownPanel)
	}
	dp.floating = rect
	return nil
}

// Side returns where the named panel is docked.
func (d *DockSpace) Side(name string) (DockSide, bool) {
	if dp := d.find(name); dp != nil {
		return dp.side, true
	}
	return 0, false
}

// Panel returns the named panel.
func (d *DockSpace) Panel(name string) (*Panel, bool) {
	if dp := d.find(name); dp != nil {
		return dp.panel, true
	}
	return nil, false
}

// Panels returns every panel in the order they were added.
func (d *DockSpace) Panels() []*Panel {
	out := make([]*Panel, len(d.panels))
	for i, dp := range d.panels {
		out[i] = dp.panel
	}
	return out
}

// Rect returns the rect the named panel got from the last Layout. Closed
// panels have an empty rect.
func (d *DockSpace) Rect(name string) (guikit.Rect, bool) {
	if dp := d.find(name); dp != nil {
		return dp.rect, true
	}
	return guikit.Rect{}, false
}

func (d *DockSpace) find(name string) *dockedPanel {
	for _, dp := range d.panels {
		if dp.panel.Name() == name {
			return dp
		}
	}
	return nil
}

// Layout assigns a rect to every open panel inside area.
func (d *DockSpace) Layout(area guikit.Rect) {
	d.area = area
	bySide := make(map[DockSide][]*dockedPanel, 6)
	for _, dp := range d.panels {
		dp.rect = guikit.Rect{}
		if dp.panel.IsOpen() {
			bySide[dp.side] = append(bySide[dp.side], dp)
		}
	}

	rest := area
	if top := bySide[DockTop]; len(top) > 0 {
		h := min(d.cfg.TopHeight, rest.H)
		splitColumns(top, guikit.Rect{X: rest.X, Y: rest.Y, W: rest.W, H: h})
		rest.Y += h
		rest.H -= h
	}
	if bottom := bySide[DockBottom]; len(bottom) > 0 {
		h := min(d.cfg.BottomHeight, rest.H)
		splitColumns(bottom, guikit.Rect{X: rest.X, Y: rest.Y + rest.H - h, W: rest.W, H: h})
		rest.H -= h
	}
	if left := bySide[DockLeft]; len(left) > 0 {
		w := min(d.cfg.LeftWidth, rest.W)
		splitRows(left, guikit.Rect{X: rest.X, Y: rest.Y, W: w, H: rest.H})
		rest.X += w
		rest.W -= w
	}
	if right := bySide[DockRight]; len(right) > 0 {
		w := min(d.cfg.RightWidth, rest.W)
		splitRows(right, guikit.Rect{X: rest.X + rest.W - w, Y: rest.Y, W: w, H: rest.H})
		rest.W -= w
	}
	splitRows(bySide[DockCenter], rest)

	for _, dp := range bySide[DockFloating] {
		dp.floating = clampRect(dp.floating, area)
		dp.rect = dp.floating
	}
}

func splitColumns(panels []*dockedPanel, r guikit.Rect) {
	if len(panels) == 0 {
		return
	}
	w := r.W / float32(len(panels))
	for i, dp := range panels {
		dp.rect = guikit.Rect{X: r.X + w*float32(i), Y: r.Y, W: w, H: r.H}
	}
}

func splitRows(panels []*dockedPanel, r guikit.Rect) {
	if len(panels) == 0 {
		return
	}
	h := r.H / float32(len(panels))
	for i, dp := range panels {
		dp.rect = guikit.Rect{X: r.X, Y: r.Y + h*float32(i), W: r.W, H: h}
	}
}

// clampRect keeps r inside area, shrinking it when it is larger.
func clampRect(r, area guikit.Rect) guikit.Rect {
	r.W = min(r.W, area.W)
	r.H = min(r.H, area.H)
	r.X = max(area.X, min(r.X, area.X+area.W-r.W))
	r.Y = max(area.Y, min(r.Y, area.Y+area.H-r.H))
	return r
}

// Draw paints docked panels, then floating ones on top. A floating panel
// grabbed by its title bar is raised above the others. Widgets under an
// open floating panel ignore the mouse where it covers them.
func (d *DockSpace) Draw(ctx *guikit.Context) {
	var floating []*dockedPanel
	for _, dp := range d.panels {
		if dp.side == DockFloating {
			floating = append(floating, dp)
		}
	}
	byZ := func(a, b *dockedPanel) int { return cmp.Compare(a.z, b.z) }
	slices.SortStableFunc(floating, byZ)

	// The topmost panel gets first pick of a title-bar click.
	for i := len(floating) - 1; i >= 0; i-- {
		ctx.SetOccluders(openRects(floating[i+1:])...)
		if d.handleDrag(ctx, floating[i]) {
			if floating[i].z != d.topZ || d.topZ == 0 {
				d.topZ++
				floating[i].z = d.topZ
			}
			break
		}
	}
	slices.SortStableFunc(floating, byZ)

	ctx.SetOccluders(openRects(floating)...)
	for _, dp := range d.panels {
		if dp.side != DockFloating {
			dp.panel.Draw(ctx, dp.rect)
		}
	}
	for i, dp := range floating {
		ctx.SetOccluders(openRects(floating[i+1:])...)
		dp.panel.Draw(ctx, dp.rect)
	}
	ctx.SetOccluders()
}

// openRects lists the rects of the open panels in dps.
func openRects(dps []*dockedPanel) []guikit.Rect {
	var out []guikit.Rect
	for _, dp := range dps {
		if dp.panel.IsOpen() {
			out = append(out, dp.rect)
		}
	}
	return out
}

// handleDrag moves a floating panel while its title bar is held and
// reports whether it is being dragged.
func (d *DockSpace) handleDrag(ctx *guikit.Context, dp *dockedPanel) bool {
	in := ctx.Input
	if in == nil || !dp.panel.IsOpen() {
		dp.drag.active = false
		return false
	}
	m := in.MousePos()
	if !dp.drag.active && in.MouseClicked(guikit.MouseButtonLeft) {
		title := guikit.Rect{X: dp.rect.X, Y: dp.rect.Y, W: dp.rect.W, H: ctx.WindowHeaderHeight()}
		if ctx.IsHovered(title) {
			dp.drag = dragState{active: true, offsetX: dp.rect.X - m.X, offsetY: dp.rect.Y - m.Y}
			logger.Debug("panel drag started", "panel", dp.panel.Name())
		}
	}
	if !dp.drag.active {
		return false
	}
	if !in.MouseDown(guikit.MouseButtonLeft) {
		dp.drag.active = false
		return false
	}
	dp.floating.X = m.X + dp.drag.offsetX
	dp.floating.Y = m.Y + dp.drag.offsetY
	r, guides := snapRect(clampRect(dp.floating, d.area), d.area, d.floatingRects(dp), d.cfg.SnapMargin)
	dp.floating = clampRect(r, d.area)
	dp.rect = dp.floating
	drawSnapGuides(ctx, guides)
	ctx.WantCaptureMouse = true
	return true
}

// floatingRects lists the rects of open floating panels other than skip.
func (d *DockSpace) floatingRects(skip *dockedPanel) []guikit.Rect {
	var out []guikit.Rect
	for _, dp := range d.panels {
		if dp != skip && dp.side == DockFloating && dp.panel.IsOpen() {
			out = append(out, dp.rect)
		}
	}
	return out
}
