// Package host plays the platform side of an icon: it owns the bounds and
// paint settings, pushes them into the icon and tells listeners when the
// icon needs to be drawn again.
package host

import (
	"go-flat-icons/internal/event"
	"go-flat-icons/internal/sun"
	"go-flat-icons/pkg/render"
	"go-flat-icons/pkg/utils"
)

// Host owns one icon.
type Host struct {
	icon       sun.Icon
	dispatcher *event.Dispatcher
	bounds     render.Rect
	hasBounds  bool
	alpha      int
}

// New wraps icon. A nil dispatcher gets a private one.
func New(icon sun.Icon, d *event.Dispatcher) *Host {
	if d == nil {
		d = event.NewDispatcher()
	}
	return &Host{icon: icon, dispatcher: d, alpha: 255}
}

func (h *Host) Icon() sun.Icon                { return h.icon }
func (h *Host) Dispatcher() *event.Dispatcher { return h.dispatcher }
func (h *Host) Bounds() render.Rect           { return h.bounds }

// SetBounds pushes b into the icon. An unchanged box is ignored.
func (h *Host) SetBounds(b render.Rect) {
	if h.hasBounds && b == h.bounds {
		return
	}
	h.bounds, h.hasBounds = b, true
	h.icon.SetBounds(b)
	h.notify(event.BoundsChanged, b)
}

// Resize pushes a square box of the given side at the origin.
func (h *Host) Resize(side int) {
	if side < 0 {
		side = 0
	}
	h.SetBounds(render.Square(float64(side)))
}

// SetAlpha pushes a 0..255 alpha into the icon.
func (h *Host) SetAlpha(alpha int) {
	alpha = int(utils.Clamp(float64(alpha), 0, 255))
	if alpha == h.alpha {
		return
	}
	h.alpha = alpha
	h.icon.SetAlpha(alpha)
	h.notify(event.AlphaChanged, alpha)
}

// SetColorFilter pushes f into the icon; nil clears the filter.
func (h *Host) SetColorFilter(f render.ColorFilter) {
	h.icon.SetColorFilter(f)
	h.notify(event.FilterChanged, f)
}

// Invalidate asks listeners to redraw without changing anything.
func (h *Host) Invalidate() {
	h.dispatcher.Dispatch(event.Event{Type: event.Invalidated})
}

// Draw renders the icon onto s.
func (h *Host) Draw(s render.Surface) {
	h.icon.Draw(s)
}

func (h *Host) notify(t event.EventType, data any) {
	h.dispatcher.Dispatch(event.Event{Type: t, Data: data})
	h.Invalidate()
}
