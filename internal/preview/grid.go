package preview

import (
	"image"
	"image/color"
)

const (
	gridRectWidthRatio  = 0.79576
	gridRectHeightRatio = 0.840
	GridThickness       = 2
)

// GridColor is pure green; gocv maps it to BGR when drawing.
var GridColor = color.RGBA{R: 0, G: 255, B: 0, A: 0}

type Segment struct {
	From, To image.Point
}

// Grid is the alignment overlay for a frame of a given size.
type Grid struct {
	Lines []Segment
	Rect  image.Rectangle
}

// NewGrid lays out the centre cross, both diagonals and the framing rectangle.
func NewGrid(width, height int) Grid {
	maxX, maxY := width-1, height-1
	cx, cy := width/2, height/2

	rectW := int(float64(width) * gridRectWidthRatio)
	rectH := int(float64(height) * gridRectHeightRatio)

	return Grid{
		Lines: []Segment{
			{From: image.Pt(0, cy), To: image.Pt(maxX, cy)},
			{From: image.Pt(cx, 0), To: image.Pt(cx, maxY)},
			{From: image.Pt(0, 0), To: image.Pt(maxX, maxY)},
			{From: image.Pt(maxX, 0), To: image.Pt(0, maxY)},
		},
		Rect: image.Rect(cx-rectW/2, cy-rectH/2, cx+rectW/2, cy+rectH/2),
	}
}
