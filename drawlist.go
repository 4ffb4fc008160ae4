package guikit

import (
	"math"
	"sync"
)

// drawListPool reuses DrawList buffers between frames; the whole UI is
// rebuilt every frame so allocations here would add up quickly.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// AcquireDrawList gets a cleared DrawList from the pool.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates vertices, indices, and commands for one frame.
// Indices are relative to the owning command's VertexOffset.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	clipStack   [][4]float32
	currentClip [4]float32
	textureID   uint32
	vtxStart    uint32 // VertexOffset of the open command
	idxStart    uint32 // IndexOffset of the open command
}

var noClip = [4]float32{-1e9, -1e9, 1e9, 1e9}

// Clear resets the DrawList while keeping allocated capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = noClip
	dl.textureID = 0
	dl.vtxStart = 0
	dl.idxStart = 0
}

// PushClipRect clips subsequent primitives to the given corners.
// The new rect is intersected with the current one.
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	c := dl.currentClip
	dl.currentClip = [4]float32{maxf(x1, c[0]), maxf(y1, c[1]), minf(x2, c[2]), minf(y2, c[3])}
	dl.newCommand()
}

// PopClipRect restores the previous clip rect.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n == 0 {
		return
	}
	dl.currentClip = dl.clipStack[n-1]
	dl.clipStack = dl.clipStack[:n-1]
	dl.newCommand()
}

// ClipRect returns the current clip rectangle corners.
func (dl *DrawList) ClipRect() [4]float32 {
	return dl.currentClip
}

// SetTexture sets the texture for subsequent primitives.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID == textureID {
		return
	}
	dl.textureID = textureID
	dl.newCommand()
}

// newCommand closes the open command and starts another with the current
// texture and clip rect.
func (dl *DrawList) newCommand() {
	dl.closeCommand()
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.vtxStart = uint32(len(dl.VtxBuffer))
	dl.idxStart = uint32(len(dl.IdxBuffer))
}

func (dl *DrawList) closeCommand() {
	if n := len(dl.CmdBuffer); n > 0 {
		dl.CmdBuffer[n-1].ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxStart
	}
}

// addQuad appends four vertices and the two triangles covering them.
func (dl *DrawList) addQuad(a, b, c, d Vertex) {
	if len(dl.CmdBuffer) == 0 || len(dl.VtxBuffer)-int(dl.vtxStart) > math.MaxUint16-4 {
		dl.newCommand()
	}
	idx := uint16(uint32(len(dl.VtxBuffer)) - dl.vtxStart)
	dl.VtxBuffer = append(dl.VtxBuffer, a, b, c, d)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

func visible(color uint32) bool {
	return color&0xFF000000 != 0
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if !visible(color) {
		return
	}
	dl.addQuad(
		Vertex{Pos: [2]float32{x, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, Color: color},
	)
}

// AddRectOutline draws a rectangle border of the given thickness.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	if !visible(color) {
		return
	}
	dl.AddRect(x, y, w, thickness, color)
	dl.AddRect(x, y+h-thickness, w, thickness, color)
	dl.AddRect(x, y+thickness, thickness, h-2*thickness, color)
	dl.AddRect(x+w-thickness, y+thickness, thickness, h-2*thickness, color)
}

// AddLine draws a line as a quad of the given thickness.
func (dl *DrawList) AddLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	if !visible(color) {
		return
	}
	dx, dy := x2-x1, y2-y1
	inv := float32(1)
	if l := math.Hypot(float64(dx), float64(dy)); l > 0 {
		inv = float32(1 / l)
	}
	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5
	dl.addQuad(
		Vertex{Pos: [2]float32{x1 + nx, y1 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 + nx, y2 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 - nx, y2 - ny}, Color: color},
		Vertex{Pos: [2]float32{x1 - nx, y1 - ny}, Color: color},
	)
}

// AddTriangle draws a filled triangle (as a degenerate quad).
func (dl *DrawList) AddTriangle(x1, y1, x2, y2, x3, y3 float32, color uint32) {
	if !visible(color) {
		return
	}
	dl.addQuad(
		Vertex{Pos: [2]float32{x1, y1}, Color: color},
		Vertex{Pos: [2]float32{x2, y2}, Color: color},
		Vertex{Pos: [2]float32{x3, y3}, Color: color},
		Vertex{Pos: [2]float32{x3, y3}, Color: color},
	)
}

// AddText draws text from the built-in font atlas (see BuildFontAtlas).
// charWidth and charHeight are the unscaled cell size.
func (dl *DrawList) AddText(x, y float32, text string, color uint32, scale, charWidth, charHeight float32) {
	if !visible(color) || text == "" {
		return
	}
	cw := charWidth * scale
	ch := charHeight * scale
	i := 0
	for _, r := range text {
		u0, v0, u1, v1 := atlasUV(r)
		px := x + float32(i)*cw
		dl.addQuad(
			Vertex{Pos: [2]float32{px, y}, TexCoord: [2]float32{u0, v0}, Color: color},
			Vertex{Pos: [2]float32{px + cw, y}, TexCoord: [2]float32{u1, v0}, Color: color},
			Vertex{Pos: [2]float32{px + cw, y + ch}, TexCoord: [2]float32{u1, v1}, Color: color},
			Vertex{Pos: [2]float32{px, y + ch}, TexCoord: [2]float32{u0, v1}, Color: color},
		)
		i++
	}
}

// InsertRect inserts a filled rectangle in front of everything already in
// the list, so it renders behind them. Used for backgrounds whose size is
// only known after their content was drawn.
func (dl *DrawList) InsertRect(x, y, w, h float32, color uint32) {
	if !visible(color) {
		return
	}
	dl.closeCommand()

	verts := []Vertex{
		{Pos: [2]float32{x, y}, Color: color},
		{Pos: [2]float32{x + w, y}, Color: color},
		{Pos: [2]float32{x + w, y + h}, Color: color},
		{Pos: [2]float32{x, y + h}, Color: color},
	}
	dl.VtxBuffer = append(verts, dl.VtxBuffer...)
	dl.IdxBuffer = append([]uint16{0, 1, 2, 0, 2, 3}, dl.IdxBuffer...)

	for i := range dl.CmdBuffer {
		dl.CmdBuffer[i].VertexOffset += 4
		dl.CmdBuffer[i].IndexOffset += 6
	}
	dl.vtxStart += 4
	dl.idxStart += 6

	bg := DrawCmd{ElemCount: 6, ClipRect: noClip}
	dl.CmdBuffer = append([]DrawCmd{bg}, dl.CmdBuffer...)
}

// Finalize closes the last command and drops empty ones.
// Renderers call this before uploading buffers.
func (dl *DrawList) Finalize() {
	dl.closeCommand()
	kept := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			kept = append(kept, cmd)
		}
	}
	dl.CmdBuffer = kept
}
