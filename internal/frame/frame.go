package frame

import (
	"errors"
	"image"

	"gocv.io/x/gocv"

	"picamrec/internal/config"
	"picamrec/internal/preview"
)

type Frame struct {
	frameIndex int
	mat        *gocv.Mat
}

func NewFrame(frameIndex int, mat *gocv.Mat) (*Frame, error) {
	if mat.Empty() {
		return nil, errors.New("Frame is empty")
	}

	return &Frame{frameIndex: frameIndex, mat: mat}, nil
}

// own wraps a freshly allocated mat, releasing it if it cannot be used.
func own(frameIndex int, mat *gocv.Mat) (*Frame, error) {
	f, err := NewFrame(frameIndex, mat)
	if err != nil {
		mat.Close()
	}
	return f, err
}

func (f *Frame) Mat() *gocv.Mat {
	return f.mat
}

func (f *Frame) FrameIndex() int {
	return f.frameIndex
}

// BGR returns a 3-channel copy, dropping the padding byte of BGRx frames.
func (f *Frame) BGR() (*Frame, error) {
	if f.mat.Channels() != 4 {
		return f.Clone()
	}
	bgr := gocv.NewMat()
	gocv.CvtColor(*f.mat, &bgr, gocv.ColorBGRAToBGR)

	return own(f.frameIndex, &bgr)
}

func (f *Frame) Resize(size config.Size) (*Frame, error) {
	if f.Width() == size.Width && f.Height() == size.Height {
		return f.Clone()
	}
	resized := gocv.NewMat()
	gocv.Resize(*f.mat, &resized, image.Pt(size.Width, size.Height), 0, 0, gocv.InterpolationLinear)

	return own(f.frameIndex, &resized)
}

// WithGrid returns a copy with the alignment grid drawn over it.
func (f *Frame) WithGrid() (*Frame, error) {
	clone, err := f.Clone()
	if err != nil {
		return nil, err
	}
	grid := preview.NewGrid(clone.Width(), clone.Height())
	for _, l := range grid.Lines {
		gocv.Line(clone.mat, l.From, l.To, preview.GridColor, preview.GridThickness)
	}
	gocv.Rectangle(clone.mat, grid.Rect, preview.GridColor, preview.GridThickness)

	return clone, nil
}

func (f *Frame) Clone() (*Frame, error) {
	clone := f.mat.Clone()

	return own(f.frameIndex, &clone)
}

func (f *Frame) Height() int {
	return f.mat.Rows()
}

func (f *Frame) Width() int {
	return f.mat.Cols()
}

func (f *Frame) Close() {
	f.mat.Close()
}
