/*
Package guikit provides an immediate-mode GUI inspired by Dear ImGui,
written as idiomatic Go with a dedicated Context type.

# Overview

The UI is rebuilt every frame. Widgets are methods on *Context that draw
into a DrawList and return their interaction result directly: Button
returns true on the frame it is clicked, InputInt returns true on the frame
its value changed. There are no callbacks and no retained widget tree.

Retained wrappers with a read-and-clear change flag live in the element
package; the shell package hosts them in dockable panels.

# Quick Start

	renderer, _ := opengl.NewRenderer(1280, 720)
	ui := guikit.New(renderer, guikit.WithStyle(guikit.DarkStyle()))

	for !window.ShouldClose() {
	    input := adapter.Update(dt)

	    ctx := ui.Begin(input, guikit.Vec2{X: 1280, Y: 720}, dt)
	    ctx.Window("Settings", guikit.Rect{X: 10, Y: 10, W: 260, H: 300})(func() {
	        ctx.Checkbox("Enabled", &enabled)
	        ctx.SliderFloat("Gain", &gain, 0, 2)
	        if ctx.Button("Reset") {
	            gain = 1
	        }
	    })
	    ui.End()
	    window.SwapBuffers()
	}

# IDs

Each widget hashes its label with the top of the ID stack. Widgets with the
same label must be separated with PushID/PopID, or carry a hidden suffix:
"Apply##left" draws "Apply" but hashes the whole string. WithID replaces
the label as the hash source.

# Item width

Inputs, sliders and combos take their width from WithWidth, then from the
innermost PushItemWidth, then from Style.DefaultItemWidth.

# Combos

BeginCombo draws the header and, while open, returns true so the caller can
emit entries with Selectable before EndCombo. Entries draw on the
foreground list. While a dropdown is open, widgets under it do not react to
the mouse. Combo wraps the pattern for a []string.

# Number inputs

	Click field      Start typing a value
	Enter            Commit typed value
	Escape           Cancel typing
	Up / Down        Step while typing
	Mouse Wheel      Step when hovered
	- / +            Step buttons

# Logging

Debug output goes through log/slog to stderr. SetVerbose(true) enables it
for every component created with NewLogger.
*/
package guikit
