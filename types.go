package guikit

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Max returns the bottom-right corner.
func (r Rect) Max() Vec2 {
	return Vec2{X: r.X + r.W, Y: r.Y + r.H}
}

// Intersect returns the overlap of r and o, or an empty rect at r's origin
// when they do not overlap.
func (r Rect) Intersect(o Rect) Rect {
	x0, y0 := maxf(r.X, o.X), maxf(r.Y, o.Y)
	x1, y1 := minf(r.X+r.W, o.X+o.W), minf(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: r.X, Y: r.Y}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Inset shrinks the rectangle by d on every side.
func (r Rect) Inset(d float32) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: maxf(0, r.W-2*d), H: maxf(0, r.H-2*d)}
}

// Vertex represents a vertex for UI rendering.
// Memory layout matches the OpenGL vertex attribute setup in backend/opengl.
type Vertex struct {
	Pos      [2]float32
	TexCoord [2]float32
	Color    uint32 // RGBA packed
}

// DrawCmd represents a single draw command.
// Commands are split whenever the texture or clip rect changes.
type DrawCmd struct {
	ElemCount    uint32
	ClipRect     [4]float32 // x1, y1, x2, y2
	TextureID    uint32     // 0 = untextured
	VertexOffset uint32
	IndexOffset  uint32
}

// Colors are packed as 0xAABBGGRR for OpenGL.
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorRed         uint32 = 0xFF0000FF
	ColorGreen       uint32 = 0xFF00FF00
	ColorYellow      uint32 = 0xFF00FFFF
	ColorCyan        uint32 = 0xFFFFFF00
	ColorGray        uint32 = 0xFF808080
	ColorTransparent uint32 = 0x00000000
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// UnpackRGBA extracts RGBA components from a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
