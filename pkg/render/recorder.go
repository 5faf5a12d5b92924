// pkg/render/recorder.go
package render

import (
	"fmt"
	"image/color"

	"golang.org/x/image/math/f64"
)

// CommandKind names a recorded surface call.
type CommandKind string

const (
	CmdSave      CommandKind = "save"
	CmdRestore   CommandKind = "restore"
	CmdRotate    CommandKind = "rotate"
	CmdRoundRect CommandKind = "round_rect"
	CmdCircle    CommandKind = "circle"
)

// Command is one call made on a Recorder.
type Command struct {
	Kind    CommandKind
	Depth   int // глубина стека после вызова
	Matrix  f64.Aff3
	Rect    Rect
	RX, RY  float64
	Center  Point
	Radius  float64
	Degrees float64
	Color   color.NRGBA // итоговый цвет после фильтра и альфы
	Alpha   float64
}

// IsShape reports whether c draws something.
func (c Command) IsShape() bool {
	return c.Kind == CmdRoundRect || c.Kind == CmdCircle
}

func (c Command) String() string {
	switch c.Kind {
	case CmdRotate:
		return fmt.Sprintf("rotate %.4g about (%.4g, %.4g) depth=%d", c.Degrees, c.Center.X, c.Center.Y, c.Depth)
	case CmdRoundRect:
		return fmt.Sprintf("round_rect [%.4g %.4g %.4g %.4g] r=%.4g/%.4g color=#%02x%02x%02x%02x depth=%d",
			c.Rect.Left, c.Rect.Top, c.Rect.Right(), c.Rect.Bottom(), c.RX, c.RY,
			c.Color.R, c.Color.G, c.Color.B, c.Color.A, c.Depth)
	case CmdCircle:
		return fmt.Sprintf("circle (%.4g, %.4g) r=%.4g color=#%02x%02x%02x%02x depth=%d",
			c.Center.X, c.Center.Y, c.Radius, c.Color.R, c.Color.G, c.Color.B, c.Color.A, c.Depth)
	}
	return fmt.Sprintf("%s depth=%d", c.Kind, c.Depth)
}

// Recorder is a Surface that keeps every call instead of drawing.
type Recorder struct {
	stack    TransformStack
	Commands []Command
	MaxDepth int
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(c Command) {
	c.Depth = r.stack.Depth()
	c.Matrix = r.stack.Matrix()
	if c.Depth > r.MaxDepth {
		r.MaxDepth = c.Depth
	}
	r.Commands = append(r.Commands, c)
}

// Depth returns the current transform stack depth.
func (r *Recorder) Depth() int {
	return r.stack.Depth()
}

func (r *Recorder) Save() int {
	n := r.stack.Save()
	r.record(Command{Kind: CmdSave})
	return n
}

func (r *Recorder) Restore() {
	r.stack.Restore()
	r.record(Command{Kind: CmdRestore})
}

func (r *Recorder) RestoreToCount(n int) {
	for r.stack.Depth() > n && r.stack.Depth() > 0 {
		r.Restore()
	}
}

func (r *Recorder) Rotate(deg, px, py float64) {
	r.stack.Rotate(deg, px, py)
	r.record(Command{Kind: CmdRotate, Degrees: deg, Center: Point{px, py}})
}

func (r *Recorder) DrawRoundRect(rect Rect, rx, ry float64, p Paint) {
	r.record(Command{Kind: CmdRoundRect, Rect: rect, RX: rx, RY: ry, Color: p.Resolve(), Alpha: p.Alpha})
}

func (r *Recorder) DrawCircle(cx, cy, radius float64, p Paint) {
	r.record(Command{Kind: CmdCircle, Center: Point{cx, cy}, Radius: radius, Color: p.Resolve(), Alpha: p.Alpha})
}

// Shapes returns only the drawing commands.
func (r *Recorder) Shapes() []Command {
	var out []Command
	for _, c := range r.Commands {
		if c.IsShape() {
			out = append(out, c)
		}
	}
	return out
}

// Reset clears recorded commands and the transform stack.
func (r *Recorder) Reset() {
	r.stack.Reset()
	r.Commands = r.Commands[:0]
	r.MaxDepth = 0
}
