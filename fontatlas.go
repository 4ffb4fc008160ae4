package guikit

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Font atlas geometry. The atlas is a grid of AtlasCols x AtlasRows cells
// holding runes FirstGlyph.. in row-major order.
const (
	GlyphWidth  = 7
	GlyphHeight = 13
	AtlasCols   = 16
	AtlasRows   = 6
	FirstGlyph  = ' '
	LastGlyph   = FirstGlyph + AtlasCols*AtlasRows - 1
)

// BuildFontAtlas rasterizes the built-in 7x13 bitmap font into an alpha
// texture the renderer uploads once. Glyph cells line up with atlasUV.
func BuildFontAtlas() *image.Alpha {
	face := basicfont.Face7x13
	img := image.NewAlpha(image.Rect(0, 0, AtlasCols*GlyphWidth, AtlasRows*GlyphHeight))
	d := &font.Drawer{Dst: img, Src: image.Opaque, Face: face}
	for r := rune(FirstGlyph); r <= LastGlyph; r++ {
		idx := int(r - FirstGlyph)
		col, row := idx%AtlasCols, idx/AtlasCols
		d.Dot = fixed.P(col*GlyphWidth, row*GlyphHeight+face.Ascent)
		d.DrawString(string(r))
	}
	return img
}

// atlasUV returns the texture coordinates of r's cell. Runes outside the
// atlas map to '?'.
func atlasUV(r rune) (u0, v0, u1, v1 float32) {
	if r < FirstGlyph || r > LastGlyph {
		r = '?'
	}
	idx := int(r - FirstGlyph)
	col, row := idx%AtlasCols, idx/AtlasCols
	u0 = float32(col) / AtlasCols
	v0 = float32(row) / AtlasRows
	return u0, v0, u0 + 1.0/AtlasCols, v0 + 1.0/AtlasRows
}
