package render

import (
	"strings"
	"testing"
)

func TestRecorderTracksDepth(t *testing.T) {
	r := NewRecorder()
	save := r.Save()
	r.Rotate(45, 5, 5)
	r.DrawRoundRect(Rect{Width: 1, Height: 2}, 0.5, 0.5, NewPaint(sunColor))
	r.RestoreToCount(save)
	r.DrawCircle(5, 5, 2, NewPaint(sunColor))

	if r.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", r.Depth())
	}
	if r.MaxDepth != 1 {
		t.Errorf("MaxDepth = %d, want 1", r.MaxDepth)
	}
	shapes := r.Shapes()
	if len(shapes) != 2 {
		t.Fatalf("len(Shapes()) = %d, want 2", len(shapes))
	}
	if shapes[0].Depth != 1 || shapes[1].Depth != 0 {
		t.Errorf("shape depths = %d, %d, want 1, 0", shapes[0].Depth, shapes[1].Depth)
	}
	if shapes[1].Matrix != Identity {
		t.Errorf("circle drawn with leaked transform %v", shapes[1].Matrix)
	}
	if !strings.HasPrefix(shapes[0].String(), "round_rect") {
		t.Errorf("String() = %q", shapes[0].String())
	}

	r.Reset()
	if len(r.Commands) != 0 || r.MaxDepth != 0 {
		t.Errorf("Reset left %d commands, max depth %d", len(r.Commands), r.MaxDepth)
	}
}
