package element

import (
	"slices"

	"github.com/go-theft-auto/guikit"
)

// NoSelection is the selected index of a combo with no entries.
const NoSelection = -1

// DefaultPlaceholder is shown by a combo with no entries.
const DefaultPlaceholder = "<none>"

// ComboItem is one selectable entry: the value it stands for and the text
// shown for it.
type ComboItem[T comparable] struct {
	Value T
	Text  string
}

// Combo lets the user pick one value out of a list. The selected index is
// always a valid index into the list, or NoSelection when the list is empty.
type Combo[T comparable] struct {
	ValueElement[T]
	items       []ComboItem[T]
	selected    int
	placeholder string
}

// NewCombo creates a combo over items with the first entry selected.
func NewCombo[T comparable](label string, items ...ComboItem[T]) *Combo[T] {
	var zero T
	c := &Combo[T]{
		ValueElement: newValueElement(label, zero),
		selected:     NoSelection,
		placeholder:  DefaultPlaceholder,
	}
	c.SetItems(items)
	return c
}

// SetItems replaces the entries. The current value stays selected if it is
// still in the list; otherwise the first entry is. An empty list leaves
// nothing selected.
func (c *Combo[T]) SetItems(items []ComboItem[T]) {
	prev, hadSelection := c.value, c.selected != NoSelection
	c.items = slices.Clone(items)

	if len(c.items) == 0 {
		var zero T
		c.selected = NoSelection
		c.value = zero
		return
	}
	c.selected = 0
	if hadSelection {
		if i := c.IndexOf(prev); i != NoSelection {
			c.selected = i
		}
	}
	c.value = c.items[c.selected].Value
}

// Items returns a copy of the entries.
func (c *Combo[T]) Items() []ComboItem[T] {
	return slices.Clone(c.items)
}

// Len returns the number of entries.
func (c *Combo[T]) Len() int { return len(c.items) }

// IndexOf returns the index of the first entry holding value, or NoSelection.
func (c *Combo[T]) IndexOf(value T) int {
	return slices.IndexFunc(c.items, func(it ComboItem[T]) bool { return it.Value == value })
}

// Selected returns the selected index, or NoSelection.
func (c *Combo[T]) Selected() int { return c.selected }

// SelectedText returns the text of the selected entry, or "" when nothing
// is selected.
func (c *Combo[T]) SelectedText() string {
	if c.selected == NoSelection {
		return ""
	}
	return c.items[c.selected].Text
}

// SetSelected selects the entry at index. It reports false and changes
// nothing when index is out of range.
func (c *Combo[T]) SetSelected(index int) bool {
	if index < 0 || index >= len(c.items) {
		return false
	}
	c.selected = index
	c.value = c.items[index].Value
	return true
}

// SetCurrValue selects the first entry holding value. A value that is not
// in the list leaves the selection unchanged.
func (c *Combo[T]) SetCurrValue(value T) {
	i := c.IndexOf(value)
	if i == NoSelection {
		logger.Debug("combo: value not in list", "label", c.label, "value", value)
		return
	}
	c.selected = i
	c.value = c.items[i].Value
}

// Placeholder returns the text shown when the combo has no entries.
func (c *Combo[T]) Placeholder() string { return c.placeholder }

// SetPlaceholder changes the text shown when the combo has no entries.
func (c *Combo[T]) SetPlaceholder(text string) { c.placeholder = text }

// Paint draws the combo header and, while open, its entries.
func (c *Combo[T]) Paint(ctx *guikit.Context) {
	c.scope(ctx, func() {
		if !ctx.BeginCombo(c.label, c.SelectedText(), guikit.WithPlaceholder(c.placeholder)) {
			return
		}
		for i, it := range c.items {
			ctx.PushIDInt(i)
			if ctx.Selectable(it.Text, i == c.selected) && i != c.selected {
				c.selected = i
				c.value = it.Value
				c.markChanged()
			}
			ctx.PopID()
		}
		ctx.EndCombo()
	})
}
