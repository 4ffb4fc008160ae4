package element_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/guikit/element"
)

func TestHandleReadAndClear(t *testing.T) {
	t.Parallel()

	t.Run("button click is reported once", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		btn := element.NewButton("Go")

		h.click(5, 5)
		h.frame(btn)
		require.True(t, btn.Handle())
		require.False(t, btn.Handle(), "second read must be false")

		h.idle()
		h.frame(btn)
		require.False(t, btn.Handle(), "no interaction, no change")
	})

	t.Run("pending changes collapse into one", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		cb := element.NewCheckbox("Enabled", false)

		h.click(5, 5)
		h.frame(cb)
		h.click(5, 5)
		h.frame(cb)

		require.False(t, cb.CurrValue(), "toggled twice")
		require.True(t, cb.Handle())
		require.False(t, cb.Handle())
	})

	t.Run("paint does not clear the flag", func(t *testing.T) {
		t.Parallel()
		h := newHarness(t)
		cb := element.NewCheckbox("Enabled", false)

		h.click(5, 5)
		h.frame(cb)
		h.idle()
		h.frame(cb)
		h.frame(cb)

		require.True(t, cb.CurrValue())
		require.True(t, cb.Handle())
	})

	t.Run("programmatic set is not a change", func(t *testing.T) {
		t.Parallel()
		cb := element.NewCheckbox("Enabled", false)
		cb.SetCurrValue(true)

		require.True(t, cb.CurrValue())
		require.False(t, cb.Handle())
	})
}

func TestDisabledButton(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	btn := element.NewButton("Go")
	btn.SetDisabled(true)

	h.click(5, 5)
	h.frame(btn)
	require.True(t, btn.Disabled())
	require.False(t, btn.Handle())
}

func TestLabel(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	l := element.NewLabel("Ready")

	h.click(5, 5)
	h.frame(l)
	require.Equal(t, "Ready", l.CurrValue())
	require.False(t, l.Handle())

	l.SetCurrValue("Busy")
	require.Equal(t, "Busy", l.CurrValue())
}

func TestBaseAttributes(t *testing.T) {
	t.Parallel()

	a := element.NewButton("OK")
	b := element.NewButton("OK")
	assert.NotEqual(t, a.Identity(), b.Identity(), "same label, distinct identity")

	a.SetWidth(-5)
	assert.Zero(t, a.Width())
	a.SetWidth(120)
	assert.Equal(t, float32(120), a.Width())

	id := a.Identity()
	a.SetLabel("Cancel")
	assert.Equal(t, "Cancel", a.Label())
	assert.Equal(t, id, a.Identity())
}

func TestSameLabelsDoNotShareState(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	first := element.NewCheckbox("Flag", false)
	second := element.NewCheckbox("Flag", false)

	// Checkboxes are 13px tall with 4px spacing: the second starts at y=17.
	h.click(5, 20)
	h.frame(first, second)

	require.False(t, first.Handle())
	require.True(t, second.Handle())
	require.True(t, second.CurrValue())
}

func TestElementsSatisfyInterfaces(t *testing.T) {
	t.Parallel()

	elems := []element.Element{
		element.NewLabel("x"),
		element.NewButton("x"),
		element.NewCheckbox("x", false),
		element.NewCombo[string]("x"),
		element.NewSpinBox("x", 0),
		element.NewSpinBoxPair("x", 0.0, 1.0),
		element.NewSlider[uint8]("x", 0),
	}
	for _, e := range elems {
		_, ok := e.(element.Labeled)
		assert.True(t, ok, "%T should carry a label", e)
	}

	var _ element.Valued[bool] = element.NewCheckbox("x", false)
	var _ element.Valued[int] = element.NewSpinBox("x", 0)
	var _ element.Valued[[2]float64] = element.NewSpinBoxPair("x", 0.0, 1.0)
	var _ element.Valued[string] = element.NewCombo[string]("x")
}
