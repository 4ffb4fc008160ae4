package shell

import "github.com/go-theft-auto/guikit"

// snapGuide is a line drawn while a dragged panel is held against an edge.
type snapGuide struct {
	x1, y1, x2, y2 float32
}

// snapAxis picks the closest target within margin for one axis. lo and
// size describe the dragged panel along that axis; either of its edges may
// land on a target. It returns the new leading edge and the target used.
func snapAxis(lo, size, margin float32, targets []float32) (pos, target float32, ok bool) {
	best := margin
	pos = lo
	for _, t := range targets {
		if d := abs32(lo - t); d < best {
			best, pos, target, ok = d, t, t, true
		}
		if d := abs32(lo + size - t); d < best {
			best, pos, target, ok = d, t-size, t, true
		}
	}
	return pos, target, ok
}

// snapRect moves r onto nearby edges of area, its center lines and the
// edges of others when they are within margin. The returned guides mark
// the edges r snapped to.
func snapRect(r, area guikit.Rect, others []guikit.Rect, margin float32) (guikit.Rect, []snapGuide) {
	if margin <= 0 {
		return r, nil
	}
	xs := []float32{area.X, area.X + area.W}
	ys := []float32{area.Y, area.Y + area.H}
	for _, o := range others {
		xs = append(xs, o.X, o.X+o.W)
		ys = append(ys, o.Y, o.Y+o.H)
	}

	var guides []snapGuide
	if x, gx, ok := snapAxis(r.X, r.W, margin, xs); ok {
		r.X = x
		guides = append(guides, snapGuide{x1: gx, y1: area.Y, x2: gx, y2: area.Y + area.H})
	} else if cx := area.X + area.W/2; abs32(r.X+r.W/2-cx) < margin {
		r.X = cx - r.W/2
		guides = append(guides, snapGuide{x1: cx, y1: area.Y, x2: cx, y2: area.Y + area.H})
	}
	if y, gy, ok := snapAxis(r.Y, r.H, margin, ys); ok {
		r.Y = y
		guides = append(guides, snapGuide{x1: area.X, y1: gy, x2: area.X + area.W, y2: gy})
	} else if cy := area.Y + area.H/2; abs32(r.Y+r.H/2-cy) < margin {
		r.Y = cy - r.H/2
		guides = append(guides, snapGuide{x1: area.X, y1: cy, x2: area.X + area.W, y2: cy})
	}
	return r, guides
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func drawSnapGuides(ctx *guikit.Context, guides []snapGuide) {
	color := ctx.Style().SelectedBgColor
	for _, g := range guides {
		ctx.ForegroundDrawList.AddLine(g.x1, g.y1, g.x2, g.y2, color, 1)
	}
}
