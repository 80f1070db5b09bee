package preview

import (
	"image"

	"picamrec/internal/config"
)

const (
	NormalWindow = "Normal Preview"
	GridWindow   = "Grid Preview"
)

// Keys handled by State.HandleKey.
const (
	KeyQuit       = 'q'
	KeyToggleAll  = 'p'
	KeyToggleNorm = '1'
	KeyToggleGrid = '2'
)

var Offscreen = image.Pt(-1000, -1000)

// State tracks which preview windows are visible. A window is on screen only
// when both the global toggle and its own flag are set.
type State struct {
	Enabled bool
	Normal  bool
	Grid    bool
}

func NewState(enabled bool) *State {
	return &State{Enabled: enabled, Normal: true, Grid: true}
}

func (s *State) NormalVisible() bool {
	return s.Enabled && s.Normal
}

func (s *State) GridVisible() bool {
	return s.Enabled && s.Grid
}

// HandleKey applies a key code from waitKey. It reports whether the user asked
// to quit and whether window placement must be refreshed.
func (s *State) HandleKey(key int) (quit bool, changed bool) {
	if key < 0 {
		return false, false
	}
	switch key & 0xFF {
	case KeyQuit:
		return true, false
	case KeyToggleAll:
		s.Enabled = !s.Enabled
	case KeyToggleNorm:
		s.Normal = !s.Normal
	case KeyToggleGrid:
		s.Grid = !s.Grid
	default:
		return false, false
	}
	return false, true
}

// Layout holds the on-screen positions of both windows.
type Layout struct {
	Normal image.Point
	Grid   image.Point
}

func NewLayout(preview config.Size) Layout {
	return Layout{
		Normal: image.Pt(0, 50),
		Grid:   image.Pt(preview.Width+10, 50),
	}
}

// Positions returns where each window belongs for the current state.
func (s *State) Positions(l Layout) (normal, grid image.Point) {
	normal, grid = Offscreen, Offscreen
	if s.NormalVisible() {
		normal = l.Normal
	}
	if s.GridVisible() {
		grid = l.Grid
	}
	return normal, grid
}
