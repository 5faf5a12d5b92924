package render

import (
	"testing"

	"go-flat-icons/pkg/utils"
)

const eps = 1e-9

func TestRotationAboutMovesTopToRight(t *testing.T) {
	m := RotationAbout(90, 50, 50)
	x, y := Apply(m, 50, 0)
	if !utils.NearlyEqual(x, 100, eps) || !utils.NearlyEqual(y, 50, eps) {
		t.Errorf("rotate 90 of (50,0) = (%v,%v), want (100,50)", x, y)
	}
	// точка вращения неподвижна
	x, y = Apply(m, 50, 50)
	if !utils.NearlyEqual(x, 50, eps) || !utils.NearlyEqual(y, 50, eps) {
		t.Errorf("pivot moved to (%v,%v)", x, y)
	}
}

func TestTransformStackSaveRestore(t *testing.T) {
	var ts TransformStack
	if ts.Matrix() != Identity {
		t.Fatalf("zero value matrix = %v, want identity", ts.Matrix())
	}

	base := ts.Save()
	if base != 0 || ts.Depth() != 1 {
		t.Fatalf("Save() = %d depth %d, want 0 and 1", base, ts.Depth())
	}
	ts.Rotate(45, 10, 10)
	inner := ts.Save()
	ts.Rotate(45, 10, 10)
	if ts.Depth() != 2 || inner != 1 {
		t.Fatalf("depth = %d inner = %d", ts.Depth(), inner)
	}

	// два поворота по 45 дают 90
	x, y := Apply(ts.Matrix(), 10, 0)
	if !utils.NearlyEqual(x, 20, eps) || !utils.NearlyEqual(y, 10, eps) {
		t.Errorf("composed rotation maps (10,0) to (%v,%v), want (20,10)", x, y)
	}

	ts.RestoreToCount(base)
	if ts.Depth() != 0 {
		t.Errorf("depth after RestoreToCount = %d, want 0", ts.Depth())
	}
	if ts.Matrix() != Identity {
		t.Errorf("matrix after restore = %v, want identity", ts.Matrix())
	}

	ts.Restore() // на базовом уровне ничего не происходит
	if ts.Depth() != 0 {
		t.Errorf("Restore at baseline changed depth to %d", ts.Depth())
	}
}

func TestMulOrder(t *testing.T) {
	r := RotationAbout(90, 0, 0)
	tr := RotationAbout(180, 5, 0)
	// tr затем r
	x, y := Apply(Mul(r, tr), 0, 0)
	wx, wy := Apply(r, 10, 0)
	if !utils.NearlyEqual(x, wx, eps) || !utils.NearlyEqual(y, wy, eps) {
		t.Errorf("Mul order: got (%v,%v), want (%v,%v)", x, y, wx, wy)
	}
}
