package host

import (
	"testing"

	"go-flat-icons/internal/event"
	"go-flat-icons/internal/sun"
	"go-flat-icons/pkg/render"
)

type recorder struct {
	types []event.EventType
}

func (r *recorder) OnEvent(e event.Event) { r.types = append(r.types, e.Type) }

func newHost(t *testing.T) (*Host, *sun.Drawable, *recorder) {
	t.Helper()
	d := event.NewDispatcher()
	rec := &recorder{}
	for _, typ := range []event.EventType{event.BoundsChanged, event.AlphaChanged, event.FilterChanged, event.Invalidated} {
		d.Subscribe(typ, rec)
	}
	icon := sun.New()
	return New(icon, d), icon, rec
}

func TestSetBoundsPushesAndNotifies(t *testing.T) {
	h, icon, rec := newHost(t)
	b := render.Rect{Width: 64, Height: 64}
	h.SetBounds(b)

	if icon.Bounds() != b {
		t.Errorf("icon bounds = %+v, want %+v", icon.Bounds(), b)
	}
	want := []event.EventType{event.BoundsChanged, event.Invalidated}
	if len(rec.types) != 2 || rec.types[0] != want[0] || rec.types[1] != want[1] {
		t.Errorf("events = %v, want %v", rec.types, want)
	}

	h.SetBounds(b)
	if len(rec.types) != 2 {
		t.Errorf("unchanged bounds dispatched %v", rec.types[2:])
	}
}

func TestResizeUsesSquareAtOrigin(t *testing.T) {
	h, icon, _ := newHost(t)
	h.Resize(120)
	if icon.Bounds() != (render.Rect{Width: 120, Height: 120}) {
		t.Errorf("bounds = %+v", icon.Bounds())
	}
	g := icon.Geometry()
	if g.Center.X != g.Center.Y {
		t.Errorf("center = %+v, want x == y", g.Center)
	}
	h.Resize(-3)
	if icon.Bounds() != (render.Rect{}) {
		t.Errorf("negative resize bounds = %+v", icon.Bounds())
	}
}

func TestSetAlpha(t *testing.T) {
	h, icon, rec := newHost(t)
	h.SetAlpha(255) // уже 255, событий нет
	if len(rec.types) != 0 {
		t.Errorf("events = %v, want none", rec.types)
	}
	h.SetAlpha(128)
	if icon.Opacity() != 128.0/255 {
		t.Errorf("opacity = %v", icon.Opacity())
	}
	if len(rec.types) != 2 || rec.types[0] != event.AlphaChanged {
		t.Errorf("events = %v", rec.types)
	}
}

func TestSetColorFilter(t *testing.T) {
	h, icon, rec := newHost(t)
	h.SetColorFilter(render.Grayscale{})
	if icon.ColorFilter() != (render.Grayscale{}) {
		t.Errorf("filter = %#v", icon.ColorFilter())
	}
	h.SetColorFilter(nil)
	if icon.ColorFilter() != nil {
		t.Errorf("filter not cleared: %#v", icon.ColorFilter())
	}
	if len(rec.types) != 4 {
		t.Errorf("events = %v, want 4", rec.types)
	}
}

func TestDrawForwards(t *testing.T) {
	h, _, _ := newHost(t)
	h.Resize(32)
	rec := render.NewRecorder()
	h.Draw(rec)
	if n := len(rec.Shapes()); n != 9 {
		t.Errorf("shapes = %d, want 9", n)
	}
}
