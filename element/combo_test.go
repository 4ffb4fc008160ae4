package element_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/guikit/element"
)

type quality int

const (
	qualityLow quality = iota + 1
	qualityMedium
	qualityHigh
)

func qualityItems() []element.ComboItem[quality] {
	return []element.ComboItem[quality]{
		{Value: qualityLow, Text: "Low"},
		{Value: qualityMedium, Text: "Medium"},
		{Value: qualityHigh, Text: "High"},
	}
}

func TestComboSetCurrValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		start    int
		value    quality
		wantIdx  int
		wantCurr quality
	}{
		{name: "present value selects its entry", start: 0, value: qualityHigh, wantIdx: 2, wantCurr: qualityHigh},
		{name: "absent value leaves selection", start: 1, value: quality(42), wantIdx: 1, wantCurr: qualityMedium},
		{name: "zero value is absent too", start: 2, value: 0, wantIdx: 2, wantCurr: qualityHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := element.NewCombo("Quality", qualityItems()...)
			require.True(t, c.SetSelected(tt.start))

			c.SetCurrValue(tt.value)

			require.Equal(t, tt.wantIdx, c.Selected())
			require.Equal(t, tt.wantCurr, c.CurrValue())
			require.False(t, c.Handle(), "programmatic selection is not a change")
		})
	}
}

func TestComboDuplicateValuesPickFirst(t *testing.T) {
	t.Parallel()
	c := element.NewCombo("Dup",
		element.ComboItem[string]{Value: "a", Text: "first a"},
		element.ComboItem[string]{Value: "b", Text: "b"},
		element.ComboItem[string]{Value: "a", Text: "second a"},
	)
	c.SetCurrValue("b")
	c.SetCurrValue("a")
	require.Equal(t, 0, c.Selected())
	require.Equal(t, "first a", c.SelectedText())
}

func TestComboSetItems(t *testing.T) {
	t.Parallel()

	t.Run("new combo selects the first entry", func(t *testing.T) {
		t.Parallel()
		c := element.NewCombo("Quality", qualityItems()...)
		require.Equal(t, 0, c.Selected())
		require.Equal(t, qualityLow, c.CurrValue())
	})

	t.Run("empty list has no selection", func(t *testing.T) {
		t.Parallel()
		c := element.NewCombo("Quality", qualityItems()...)
		c.SetItems(nil)

		require.Equal(t, element.NoSelection, c.Selected())
		require.Zero(t, c.CurrValue())
		require.Empty(t, c.SelectedText())
		require.Zero(t, c.Len())
		require.False(t, c.SetSelected(0))
	})

	t.Run("current value survives a reload", func(t *testing.T) {
		t.Parallel()
		c := element.NewCombo("Quality", qualityItems()...)
		c.SetCurrValue(qualityMedium)

		c.SetItems([]element.ComboItem[quality]{
			{Value: qualityHigh, Text: "High"},
			{Value: qualityMedium, Text: "Medium"},
		})
		require.Equal(t, 1, c.Selected())
		require.Equal(t, qualityMedium, c.CurrValue())
	})

	t.Run("missing value falls back to the first entry", func(t *testing.T) {
		t.Parallel()
		c := element.NewCombo("Quality", qualityItems()...)
		c.SetCurrValue(qualityLow)

		c.SetItems(qualityItems()[1:])
		require.Equal(t, 0, c.Selected())
		require.Equal(t, qualityMedium, c.CurrValue())
	})

	t.Run("refilling an empty combo selects the first entry", func(t *testing.T) {
		t.Parallel()
		c := element.NewCombo[quality]("Quality")
		require.Equal(t, element.NoSelection, c.Selected())

		c.SetItems(qualityItems())
		require.Equal(t, 0, c.Selected())
	})

	t.Run("caller slice is copied", func(t *testing.T) {
		t.Parallel()
		items := qualityItems()
		c := element.NewCombo("Quality", items...)
		items[0].Text = "changed"

		require.Equal(t, "Low", c.Items()[0].Text)
	})
}

func TestComboPlaceholder(t *testing.T) {
	t.Parallel()
	c := element.NewCombo[string]("Device")
	require.Equal(t, element.DefaultPlaceholder, c.Placeholder())

	h := newHarness(t)
	h.idle()
	h.frame(c)
	require.Contains(t, h.drawn(), element.DefaultPlaceholder)

	c.SetPlaceholder("no devices")
	require.Equal(t, "no devices", c.Placeholder())
	h.frame(c)
	require.Contains(t, h.drawn(), "no devices")
	require.NotContains(t, h.drawn(), element.DefaultPlaceholder)

	h.click(10, 10)
	h.frame(c)
	require.False(t, c.Handle(), "an empty combo cannot change")
	require.Equal(t, element.NoSelection, c.Selected())

	// A selection replaces the placeholder in the header.
	c.SetItems([]element.ComboItem[string]{{Value: "spk", Text: "Speakers"}})
	h.idle()
	h.frame(c)
	require.Contains(t, h.drawn(), "Speakers")
	require.NotContains(t, h.drawn(), "no devices")
}

func TestComboUserPick(t *testing.T) {
	t.Parallel()
	h := newHarness(t)
	c := element.NewCombo("Quality", qualityItems()...)

	// Header is 25px tall; entries are 17px rows with a 1px gap below it.
	h.click(10, 10)
	h.frame(c)
	require.False(t, c.Handle(), "opening is not a change")

	h.idle()
	h.frame(c)

	h.click(10, 48)
	h.frame(c)
	require.True(t, c.Handle())
	require.Equal(t, qualityMedium, c.CurrValue())
	require.Equal(t, 1, c.Selected())
	require.False(t, c.Handle())

	// Re-picking the current entry is not a change.
	h.click(10, 10)
	h.frame(c)
	h.click(10, 48)
	h.frame(c)
	require.False(t, c.Handle())
}
