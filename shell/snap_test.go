package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/guikit"
)

func TestSnapRect(t *testing.T) {
	t.Parallel()
	area := guikit.Rect{W: 1000, H: 800}
	neighbor := guikit.Rect{X: 400, W: 100, H: 100}

	tests := []struct {
		name   string
		r      guikit.Rect
		others []guikit.Rect
		margin float32
		want   guikit.Rect
		guides []snapGuide
	}{
		{
			name:   "left edge",
			r:      guikit.Rect{X: 5, Y: 300, W: 200, H: 150},
			margin: 8,
			want:   guikit.Rect{X: 0, Y: 300, W: 200, H: 150},
			guides: []snapGuide{{x1: 0, y1: 0, x2: 0, y2: 800}},
		},
		{
			name:   "right edge",
			r:      guikit.Rect{X: 796, Y: 300, W: 200, H: 150},
			margin: 8,
			want:   guikit.Rect{X: 800, Y: 300, W: 200, H: 150},
			guides: []snapGuide{{x1: 1000, y1: 0, x2: 1000, y2: 800}},
		},
		{
			name:   "bottom edge",
			r:      guikit.Rect{X: 100, Y: 645, W: 200, H: 150},
			margin: 8,
			want:   guikit.Rect{X: 100, Y: 650, W: 200, H: 150},
			guides: []snapGuide{{x1: 0, y1: 800, x2: 1000, y2: 800}},
		},
		{
			name:   "neighbor edge",
			r:      guikit.Rect{X: 503, Y: 300, W: 100, H: 100},
			others: []guikit.Rect{neighbor},
			margin: 8,
			want:   guikit.Rect{X: 500, Y: 300, W: 100, H: 100},
			guides: []snapGuide{{x1: 500, y1: 0, x2: 500, y2: 800}},
		},
		{
			name:   "center line",
			r:      guikit.Rect{X: 397, Y: 100, W: 200, H: 100},
			margin: 8,
			want:   guikit.Rect{X: 400, Y: 100, W: 200, H: 100},
			guides: []snapGuide{{x1: 500, y1: 0, x2: 500, y2: 800}},
		},
		{
			name:   "out of reach",
			r:      guikit.Rect{X: 100, Y: 100, W: 200, H: 100},
			margin: 8,
			want:   guikit.Rect{X: 100, Y: 100, W: 200, H: 100},
		},
		{
			name:   "disabled",
			r:      guikit.Rect{X: 2, Y: 2, W: 200, H: 100},
			margin: 0,
			want:   guikit.Rect{X: 2, Y: 2, W: 200, H: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, guides := snapRect(tt.r, area, tt.others, tt.margin)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.guides, guides)
		})
	}
}
