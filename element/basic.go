package element

import "github.com/go-theft-auto/guikit"

// Label displays its value as text. The user cannot change it.
type Label struct {
	ValueElement[string]
}

// NewLabel creates a label showing text.
func NewLabel(text string) *Label {
	return &Label{ValueElement: newValueElement("", text)}
}

// Paint draws the text.
func (l *Label) Paint(ctx *guikit.Context) {
	l.scope(ctx, func() {
		ctx.Text(l.value)
	})
}

// Button raises its change flag when clicked.
type Button struct {
	Base
	changeFlag
	disabled bool
}

// NewButton creates a button with the given label.
func NewButton(label string) *Button {
	return &Button{Base: newBase(label)}
}

// SetDisabled grays the button out and ignores clicks.
func (b *Button) SetDisabled(disabled bool) { b.disabled = disabled }

// Disabled reports whether the button ignores clicks.
func (b *Button) Disabled() bool { return b.disabled }

// Paint draws the button.
func (b *Button) Paint(ctx *guikit.Context) {
	b.scope(ctx, func() {
		var opts []guikit.Option
		if b.width > 0 {
			opts = append(opts, guikit.WithWidth(b.width))
		}
		if ctx.Button(b.label, append(opts, guikit.WithDisabled(b.disabled))...) {
			b.markChanged()
		}
	})
}

// Checkbox holds a bool toggled by clicking.
type Checkbox struct {
	ValueElement[bool]
}

// NewCheckbox creates a checkbox with an initial state.
func NewCheckbox(label string, checked bool) *Checkbox {
	return &Checkbox{ValueElement: newValueElement(label, checked)}
}

// Paint draws the checkbox.
func (c *Checkbox) Paint(ctx *guikit.Context) {
	c.scope(ctx, func() {
		if ctx.Checkbox(c.label, &c.value) {
			c.markChanged()
		}
	})
}
