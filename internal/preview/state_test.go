package preview

import (
	"image"
	"testing"

	"picamrec/internal/config"
)

func TestNewState(t *testing.T) {
	s := NewState(true)
	if !s.NormalVisible() || !s.GridVisible() {
		t.Error("both windows should start visible when preview is on")
	}

	s = NewState(false)
	if s.NormalVisible() || s.GridVisible() {
		t.Error("no window should be visible when preview is off")
	}
	if !s.Normal || !s.Grid {
		t.Error("per-window flags should start set even when preview is off")
	}
}

func TestHandleKey(t *testing.T) {
	tests := []struct {
		name        string
		key         int
		wantQuit    bool
		wantChanged bool
		want        State
	}{
		{"no key", -1, false, false, State{true, true, true}},
		{"quit", 'q', true, false, State{true, true, true}},
		{"toggle all", 'p', false, true, State{false, true, true}},
		{"toggle normal", '1', false, true, State{true, false, true}},
		{"toggle grid", '2', false, true, State{true, true, false}},
		{"high bits ignored", 0x100 | 'q', true, false, State{true, true, true}},
		{"other key", 'x', false, false, State{true, true, true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(true)
			quit, changed := s.HandleKey(tt.key)
			if quit != tt.wantQuit || changed != tt.wantChanged {
				t.Errorf("HandleKey(%d) = (%v, %v), want (%v, %v)", tt.key, quit, changed, tt.wantQuit, tt.wantChanged)
			}
			if *s != tt.want {
				t.Errorf("state = %+v, want %+v", *s, tt.want)
			}
		})
	}
}

func TestPositions(t *testing.T) {
	layout := NewLayout(config.Size{Width: 800, Height: 450})
	if layout.Normal != image.Pt(0, 50) || layout.Grid != image.Pt(810, 50) {
		t.Fatalf("layout = %+v", layout)
	}

	s := NewState(true)
	normal, grid := s.Positions(layout)
	if normal != layout.Normal || grid != layout.Grid {
		t.Errorf("visible positions = %v, %v", normal, grid)
	}

	s.HandleKey('2')
	normal, grid = s.Positions(layout)
	if normal != layout.Normal || grid != Offscreen {
		t.Errorf("grid hidden: positions = %v, %v", normal, grid)
	}

	s.HandleKey('p')
	normal, grid = s.Positions(layout)
	if normal != Offscreen || grid != Offscreen {
		t.Errorf("all hidden: positions = %v, %v", normal, grid)
	}

	// re-enabling restores only the windows whose own flag is set
	s.HandleKey('p')
	normal, grid = s.Positions(layout)
	if normal != layout.Normal || grid != Offscreen {
		t.Errorf("re-enabled: positions = %v, %v", normal, grid)
	}
}
