// pkg/render/transform.go
package render

import (
	"math"

	"go-flat-icons/pkg/utils"

	"golang.org/x/image/math/f64"
)

// Identity is the identity affine transform.
var Identity = f64.Aff3{1, 0, 0, 0, 1, 0}

// Mul returns the transform that applies b first and then a.
func Mul(a, b f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		a[0]*b[0] + a[1]*b[3],
		a[0]*b[1] + a[1]*b[4],
		a[0]*b[2] + a[1]*b[5] + a[2],
		a[3]*b[0] + a[4]*b[3],
		a[3]*b[1] + a[4]*b[4],
		a[3]*b[2] + a[4]*b[5] + a[5],
	}
}

// Apply maps (x, y) through m.
func Apply(m f64.Aff3, x, y float64) (float64, float64) {
	return m[0]*x + m[1]*y + m[2], m[3]*x + m[4]*y + m[5]
}

// RotationAbout returns a rotation by deg degrees around (px, py).
// Positive angles turn clockwise on a y-down surface.
func RotationAbout(deg, px, py float64) f64.Aff3 {
	s, c := math.Sincos(utils.Radians(deg))
	return f64.Aff3{
		c, -s, px - c*px + s*py,
		s, c, py - s*px - c*py,
	}
}

// TransformStack implements the Save/Restore/Rotate part of Surface.
// The zero value is ready to use and starts at the identity transform.
type TransformStack struct {
	m     f64.Aff3
	set   bool
	saved []f64.Aff3
}

// Matrix returns the current transform.
func (t *TransformStack) Matrix() f64.Aff3 {
	if !t.set {
		return Identity
	}
	return t.m
}

// Depth returns the number of saved transforms.
func (t *TransformStack) Depth() int {
	return len(t.saved)
}

// Save pushes the current transform and returns the depth before the push.
func (t *TransformStack) Save() int {
	n := len(t.saved)
	t.saved = append(t.saved, t.Matrix())
	return n
}

// Restore pops one saved transform. At baseline it does nothing.
func (t *TransformStack) Restore() {
	if len(t.saved) == 0 {
		return
	}
	last := len(t.saved) - 1
	t.m, t.set = t.saved[last], true
	t.saved = t.saved[:last]
}

// RestoreToCount pops until Depth() == n.
func (t *TransformStack) RestoreToCount(n int) {
	if n < 0 {
		n = 0
	}
	for len(t.saved) > n {
		t.Restore()
	}
}

// Rotate concatenates a rotation about (px, py) to the current transform.
func (t *TransformStack) Rotate(deg, px, py float64) {
	t.m, t.set = Mul(t.Matrix(), RotationAbout(deg, px, py)), true
}

// Reset drops all saved state and returns to identity.
func (t *TransformStack) Reset() {
	t.m, t.set = Identity, true
	t.saved = t.saved[:0]
}
