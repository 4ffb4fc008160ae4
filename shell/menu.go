package shell

import "github.com/go-theft-auto/guikit"

// quitLabel is the last menu bar entry.
const quitLabel = "Quit"

// MenuBarHeight returns the height of the menu strip for the current style.
func MenuBarHeight(ctx *guikit.Context) float32 {
	s := ctx.Style()
	return ctx.LineHeight() + s.ItemSpacing*3
}

// drawMenuBar draws a strip across the top of the display with one entry
// per panel. Clicking an entry toggles its panel; open panels are shown
// selected. It returns the strip height and whether Quit was clicked.
func drawMenuBar(ctx *guikit.Context, panels []*Panel) (height float32, quit bool) {
	s := ctx.Style()
	height = MenuBarHeight(ctx)
	ctx.DrawList.AddRect(0, 0, ctx.DisplaySize.X, height, s.MenuBarColor)

	saved := ctx.GetCursorPos()
	defer ctx.SetCursorPos(saved.X, saved.Y)

	ctx.PushID("##menubar")
	defer ctx.PopID()

	ctx.SetCursorPos(s.PanelPadding, s.ItemSpacing)
	ctx.HStack(guikit.Gap(s.ItemSpacing))(func() {
		for _, p := range panels {
			if ctx.Selectable(p.Name(), p.IsOpen()) {
				open := p.Toggle()
				logger.Debug("panel toggled from menu", "panel", p.Name(), "open", open)
			}
		}
		if ctx.Selectable(quitLabel, false) {
			quit = true
		}
	})
	return height, quit
}
