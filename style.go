package guikit

import (
	"fmt"
	"sort"
	"strings"
)

// Spacing scale used by layouts and the shell.
const (
	SpaceNone float32 = 0
	SpaceXS   float32 = 2
	SpaceSM   float32 = 4 // default item spacing
	SpaceMD   float32 = 8 // default padding
	SpaceLG   float32 = 12
	SpaceXL   float32 = 16
)

// Style defines the visual appearance of widgets.
type Style struct {
	TextColor          uint32
	TextDisabledColor  uint32
	TextHighlightColor uint32

	// Panel colors
	PanelColor           uint32
	PanelBorderColor     uint32
	PanelHeaderBgColor   uint32
	PanelHeaderTextColor uint32 // 0 = use TextColor

	ButtonColor         uint32
	ButtonHoveredColor  uint32
	ButtonActiveColor   uint32
	ButtonDisabledColor uint32

	SelectedBgColor   uint32
	SelectedTextColor uint32
	HoveredBgColor    uint32

	InputBgColor        uint32
	InputFocusedBgColor uint32
	InputBorderColor    uint32

	SeparatorColor uint32
	CheckMarkColor uint32

	// Slider colors
	SliderTrackColor  uint32
	SliderFillColor   uint32
	SliderGrabColor   uint32
	SliderGrabHovered uint32
	SliderGrabActive  uint32

	// Dropdown
	DropdownBgColor uint32
	ComboArrowColor uint32

	MenuBarColor uint32

	// Sizing
	FontScale     float32
	CharWidth     float32 // unscaled glyph cell width of the font atlas
	CharHeight    float32 // unscaled glyph cell height of the font atlas
	ItemSpacing   float32
	PanelPadding  float32
	ButtonPadding float32
	InputPadding  float32
	BorderSize    float32

	// DefaultItemWidth is used by inputs, sliders and combos when neither
	// WithWidth nor PushItemWidth supplies one.
	DefaultItemWidth float32
}

// DefaultStyle returns the default style.
func DefaultStyle() Style {
	return Style{
		TextColor:          ColorWhite,
		TextDisabledColor:  ColorGray,
		TextHighlightColor: ColorYellow,

		PanelColor:         RGBA(20, 20, 20, 200),
		PanelBorderColor:   RGBA(80, 80, 80, 255),
		PanelHeaderBgColor: RGBA(40, 40, 45, 255),

		ButtonColor:         RGBA(50, 50, 50, 255),
		ButtonHoveredColor:  RGBA(70, 70, 70, 255),
		ButtonActiveColor:   RGBA(90, 90, 90, 255),
		ButtonDisabledColor: RGBA(30, 30, 30, 255),

		SelectedBgColor:   RGBA(50, 100, 150, 255),
		SelectedTextColor: ColorWhite,
		HoveredBgColor:    RGBA(60, 60, 60, 255),

		InputBgColor:        RGBA(30, 30, 30, 255),
		InputFocusedBgColor: RGBA(40, 40, 50, 255),
		InputBorderColor:    RGBA(100, 100, 100, 255),

		SeparatorColor: RGBA(80, 80, 80, 255),
		CheckMarkColor: RGBA(90, 160, 230, 255),

		SliderTrackColor:  RGBA(40, 40, 40, 255),
		SliderFillColor:   RGBA(50, 100, 150, 255),
		SliderGrabColor:   RGBA(100, 100, 100, 255),
		SliderGrabHovered: RGBA(120, 120, 120, 255),
		SliderGrabActive:  RGBA(140, 140, 140, 255),

		DropdownBgColor: RGBA(25, 25, 25, 250),
		ComboArrowColor: RGBA(180, 180, 180, 255),

		MenuBarColor: RGBA(35, 35, 38, 255),

		FontScale:        1.0,
		CharWidth:        GlyphWidth,
		CharHeight:       GlyphHeight,
		ItemSpacing:      SpaceSM,
		PanelPadding:     SpaceMD,
		ButtonPadding:    6,
		InputPadding:     SpaceSM,
		BorderSize:       1,
		DefaultItemWidth: 160,
	}
}

// DarkStyle returns a modern dark theme.
func DarkStyle() Style {
	s := DefaultStyle()
	s.PanelColor = RGBA(25, 25, 25, 240)
	s.PanelHeaderBgColor = RGBA(35, 35, 40, 255)
	s.ButtonColor = RGBA(45, 45, 45, 255)
	s.ButtonHoveredColor = RGBA(65, 65, 65, 255)
	s.SelectedBgColor = RGBA(65, 105, 225, 255) // royal blue
	s.MenuBarColor = RGBA(20, 20, 22, 255)
	return s
}

// LightStyle returns a light theme.
func LightStyle() Style {
	s := DefaultStyle()
	s.TextColor = RGBA(20, 20, 20, 255)
	s.TextDisabledColor = RGBA(150, 150, 150, 255)
	s.TextHighlightColor = RGBA(0, 100, 200, 255)

	s.PanelColor = RGBA(245, 245, 245, 250)
	s.PanelBorderColor = RGBA(200, 200, 200, 255)
	s.PanelHeaderBgColor = RGBA(220, 220, 225, 255)
	s.PanelHeaderTextColor = RGBA(40, 40, 40, 255)

	s.ButtonColor = RGBA(220, 220, 220, 255)
	s.ButtonHoveredColor = RGBA(200, 200, 200, 255)
	s.ButtonActiveColor = RGBA(180, 180, 180, 255)
	s.ButtonDisabledColor = RGBA(230, 230, 230, 255)

	s.SelectedBgColor = RGBA(0, 120, 215, 255)
	s.HoveredBgColor = RGBA(230, 230, 230, 255)

	s.InputBgColor = ColorWhite
	s.InputFocusedBgColor = ColorWhite
	s.InputBorderColor = RGBA(150, 150, 150, 255)

	s.SeparatorColor = RGBA(200, 200, 200, 255)
	s.CheckMarkColor = RGBA(0, 120, 215, 255)

	s.SliderTrackColor = RGBA(220, 220, 220, 255)
	s.SliderFillColor = RGBA(0, 120, 215, 255)
	s.SliderGrabColor = RGBA(180, 180, 180, 255)
	s.SliderGrabHovered = RGBA(160, 160, 160, 255)
	s.SliderGrabActive = RGBA(140, 140, 140, 255)

	s.DropdownBgColor = ColorWhite
	s.ComboArrowColor = RGBA(80, 80, 80, 255)
	s.MenuBarColor = RGBA(230, 230, 232, 255)
	return s
}

// GTAStyle returns a dark theme with cyan/yellow accents.
func GTAStyle() Style {
	s := DefaultStyle()
	s.TextHighlightColor = RGBA(255, 200, 0, 255)

	s.PanelColor = RGBA(0, 0, 0, 220)
	s.PanelBorderColor = RGBA(100, 100, 100, 255)
	s.PanelHeaderBgColor = RGBA(0, 60, 90, 255)
	s.PanelHeaderTextColor = RGBA(255, 200, 0, 255)

	s.ButtonColor = RGBA(40, 40, 40, 255)
	s.ButtonHoveredColor = RGBA(60, 80, 100, 255)
	s.ButtonActiveColor = RGBA(0, 150, 200, 255)
	s.ButtonDisabledColor = RGBA(30, 30, 30, 150)

	s.SelectedBgColor = RGBA(0, 120, 180, 255)
	s.HoveredBgColor = RGBA(50, 70, 90, 255)

	s.InputBgColor = RGBA(20, 20, 20, 255)
	s.InputFocusedBgColor = RGBA(30, 40, 50, 255)
	s.InputBorderColor = RGBA(0, 150, 200, 255)

	s.SeparatorColor = RGBA(0, 150, 200, 128)
	s.CheckMarkColor = RGBA(255, 200, 0, 255)

	s.SliderTrackColor = RGBA(30, 30, 30, 255)
	s.SliderFillColor = RGBA(0, 120, 180, 255)
	s.SliderGrabColor = RGBA(0, 150, 200, 255)
	s.SliderGrabHovered = RGBA(0, 180, 230, 255)
	s.SliderGrabActive = RGBA(0, 200, 255, 255)

	s.DropdownBgColor = RGBA(10, 10, 10, 250)
	s.ComboArrowColor = RGBA(0, 180, 230, 255)
	s.MenuBarColor = RGBA(0, 30, 45, 255)

	s.FontScale = 1.5
	s.ItemSpacing = 6
	s.PanelPadding = SpaceLG
	s.ButtonPadding = 8
	s.InputPadding = 6
	return s
}

var styles = map[string]func() Style{
	"default": DefaultStyle,
	"dark":    DarkStyle,
	"light":   LightStyle,
	"gta":     GTAStyle,
}

// StyleNames returns the names accepted by StyleByName, sorted.
func StyleNames() []string {
	names := make([]string, 0, len(styles))
	for name := range styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StyleByName returns a built-in style by case-insensitive name.
func StyleByName(name string) (Style, error) {
	fn, ok := styles[strings.ToLower(name)]
	if !ok {
		return Style{}, fmt.Errorf("unknown style %q (want one of %s)", name, strings.Join(StyleNames(), ", "))
	}
	return fn(), nil
}
