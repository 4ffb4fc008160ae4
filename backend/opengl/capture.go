package opengl

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// RequestCapture asks the next Present to read the finished frame back
// before swapping. The image is available from LastCapture afterwards.
func (p *Platform) RequestCapture() {
	p.captureNext = true
}

// LastCapture returns the most recently captured frame, or nil.
func (p *Platform) LastCapture() *image.RGBA {
	return p.lastCapture
}

// readFramebuffer reads the back buffer into a top-down RGBA image.
func readFramebuffer(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return img
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadBuffer(gl.BACK)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	flipRows(img.Pix, img.Stride, height)
	return img
}

// flipRows swaps rows in place; GL's origin is the bottom-left corner.
func flipRows(pix []byte, stride, height int) {
	tmp := make([]byte, stride)
	for y := 0; y < height/2; y++ {
		top := pix[y*stride : (y+1)*stride]
		bot := pix[(height-1-y)*stride : (height-y)*stride]
		copy(tmp, top)
		copy(top, bot)
		copy(bot, tmp)
	}
}
