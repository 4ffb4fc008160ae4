package shell

import (
	"slices"

	"github.com/go-theft-auto/guikit"
	"github.com/go-theft-auto/guikit/element"
)

// Panel is a named window that owns an ordered list of elements.
//
// Usage:
//
//	p := shell.NewPanel("Controls")
//	speed := element.NewSlider("Speed", 1.0)
//	p.Add(speed)
//	p.OnChange(speed, func() { sim.SetSpeed(speed.CurrValue()) })
type Panel struct {
	name     string
	elements []element.Element
	bindings []binding
	changed  []element.Element
	open     bool
}

type binding struct {
	elem element.Element
	fn   func()
}

// NewPanel creates an open, empty panel.
func NewPanel(name string) *Panel {
	return &Panel{name: name, open: true}
}

// Name returns the panel's unique name, also used as its title.
func (p *Panel) Name() string { return p.name }

// Add appends elements in drawing order and returns the panel for chaining.
func (p *Panel) Add(elems ...element.Element) *Panel {
	for _, e := range elems {
		if e != nil {
			p.elements = append(p.elements, e)
		}
	}
	return p
}

// Elements returns the elements in drawing order.
func (p *Panel) Elements() []element.Element {
	return slices.Clone(p.elements)
}

// OnChange calls fn from Dispatch whenever elem reports a change. Several
// callbacks may be bound to one element; they run in binding order.
func (p *Panel) OnChange(elem element.Element, fn func()) {
	if elem == nil || fn == nil {
		return
	}
	p.bindings = append(p.bindings, binding{elem: elem, fn: fn})
}

// IsOpen reports whether the panel is drawn.
func (p *Panel) IsOpen() bool { return p.open }

// Open shows the panel.
func (p *Panel) Open() { p.open = true }

// Close hides the panel. Its elements keep their values.
func (p *Panel) Close() { p.open = false }

// Toggle flips the open state and returns the new one.
func (p *Panel) Toggle() bool {
	p.open = !p.open
	return p.open
}

// Draw paints the panel's window into rect and its elements top to bottom.
func (p *Panel) Draw(ctx *guikit.Context, rect guikit.Rect) {
	if !p.open || rect.W <= 0 || rect.H <= 0 {
		return
	}
	ctx.PushID(p.name)
	defer ctx.PopID()
	ctx.Window(p.name, rect)(func() {
		for _, e := range p.elements {
			e.Paint(ctx)
		}
	})
}

// Dispatch reads every element's change flag once, runs the callbacks bound
// to the elements that changed, and returns how many changed.
func (p *Panel) Dispatch() int {
	p.changed = p.changed[:0]
	for _, e := range p.elements {
		if !e.Handle() {
			continue
		}
		p.changed = append(p.changed, e)
		for _, b := range p.bindings {
			if b.elem == e {
				b.fn()
			}
		}
	}
	return len(p.changed)
}

// Changed returns the elements that changed in the last Dispatch.
func (p *Panel) Changed() []element.Element {
	return slices.Clone(p.changed)
}
