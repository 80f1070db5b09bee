package video

import (
	"gocv.io/x/gocv"

	"picamrec/internal/config"
	"picamrec/internal/frame"
	"picamrec/internal/preview"
)

// Preview owns the two preview windows.
type Preview struct {
	normal *gocv.Window
	grid   *gocv.Window
	state  *preview.State
	layout preview.Layout
	size   config.Size
}

func NewPreview(state *preview.State, size config.Size) *Preview {
	p := &Preview{
		normal: gocv.NewWindow(preview.NormalWindow),
		grid:   gocv.NewWindow(preview.GridWindow),
		state:  state,
		layout: preview.NewLayout(size),
		size:   size,
	}
	p.normal.ResizeWindow(size.Width, size.Height)
	p.grid.ResizeWindow(size.Width, size.Height)
	p.Place()
	return p
}

// Place moves each window on or off screen according to the state.
func (p *Preview) Place() {
	normal, grid := p.state.Positions(p.layout)
	p.normal.MoveWindow(normal.X, normal.Y)
	p.grid.MoveWindow(grid.X, grid.Y)
}

// Show draws the frame into whichever windows are enabled.
func (p *Preview) Show(f *frame.Frame) error {
	if !p.state.Enabled {
		return nil
	}
	small, err := f.Resize(p.size)
	if err != nil {
		return err
	}
	defer small.Close()

	if p.state.Normal {
		p.normal.IMShow(*small.Mat())
	}
	if p.state.Grid {
		gridFrame, err := small.WithGrid()
		if err != nil {
			return err
		}
		p.grid.IMShow(*gridFrame.Mat())
		gridFrame.Close()
	}
	return nil
}

// PollKey pumps the window event loop for 1ms and returns the key pressed, or -1.
func (p *Preview) PollKey() int {
	return p.normal.WaitKey(1)
}

func (p *Preview) Close() {
	p.normal.Close()
	p.grid.Close()
}
