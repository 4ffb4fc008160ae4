// Package element wraps guikit widget calls in retained objects.
//
// An element owns its state between frames. Paint draws it through the
// host Context once per frame; Handle reports whether the user changed it
// since the previous Handle call and clears that indicator:
//
//	volume := element.NewSlider("Volume", 0.5)
//	volume.SetRange(0, 1)
//
//	// every frame
//	volume.Paint(ctx)
//
//	// after the frame
//	if volume.Handle() {
//	    player.SetVolume(volume.CurrValue())
//	}
//
// Elements are not safe for concurrent use; paint and handle them from the
// thread that runs the frame loop.
package element

import (
	"sync/atomic"

	"github.com/go-theft-auto/guikit"
)

var logger = guikit.NewLogger("element")

// Element is a paintable unit owned by a panel.
type Element interface {
	// Paint draws the element for this frame.
	Paint(ctx *guikit.Context)
	// Handle reports whether the user changed the element since the last
	// call, then resets that indicator.
	Handle() bool
}

// Labeled is implemented by elements that carry a text label.
type Labeled interface {
	Label() string
}

// Valued is implemented by every element holding a typed current value.
type Valued[T any] interface {
	Element
	CurrValue() T
	SetCurrValue(T)
}

var lastIdentity atomic.Uint64

// Base holds what every element has: a label, an optional width and an
// identity that keeps its host IDs apart from any other element with the
// same label.
type Base struct {
	label    string
	width    float32
	identity uint64
}

func newBase(label string) Base {
	return Base{label: label, identity: lastIdentity.Add(1)}
}

// Label returns the element's label.
func (b *Base) Label() string { return b.label }

// SetLabel changes the label. The element keeps its identity, so host state
// such as an open dropdown survives the rename.
func (b *Base) SetLabel(label string) { b.label = label }

// Width returns the explicit item width, or 0 for the host default.
func (b *Base) Width() float32 { return b.width }

// SetWidth sets the item width used when painting. 0 restores the default.
func (b *Base) SetWidth(w float32) {
	if w < 0 {
		w = 0
	}
	b.width = w
}

// Identity returns the process-unique number scoping this element's host IDs.
func (b *Base) Identity() uint64 { return b.identity }

// scope runs draw inside the element's ID scope and item width.
func (b *Base) scope(ctx *guikit.Context, draw func()) {
	ctx.PushIDInt(int(b.identity))
	defer ctx.PopID()
	if b.width > 0 {
		ctx.PushItemWidth(b.width)
		defer ctx.PopItemWidth()
	}
	draw()
}

// changeFlag is the read-and-clear "changed since last check" indicator.
type changeFlag struct {
	changed bool
}

func (f *changeFlag) markChanged() { f.changed = true }

// Handle reports whether a change is pending and clears it.
func (f *changeFlag) Handle() bool {
	changed := f.changed
	f.changed = false
	return changed
}

// ValueElement is an element that owns a current value of type T.
// Concrete widgets embed it and supply Paint.
type ValueElement[T any] struct {
	Base
	changeFlag
	value T
}

func newValueElement[T any](label string, value T) ValueElement[T] {
	return ValueElement[T]{Base: newBase(label), value: value}
}

// CurrValue returns the current value.
func (v *ValueElement[T]) CurrValue() T { return v.value }

// SetCurrValue replaces the current value. Programmatic sets do not raise
// the change flag; Handle only reports user interaction.
func (v *ValueElement[T]) SetCurrValue(value T) { v.value = value }
