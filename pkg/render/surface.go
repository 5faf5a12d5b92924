// pkg/render/surface.go
package render

// Surface — абстрактная поверхность рисования, на которую иконка выводит свои фигуры.
// Save/RestoreToCount работают как стек трансформаций: Save возвращает глубину
// до сохранения, RestoreToCount возвращает стек к этой глубине.
type Surface interface {
	Save() int
	Restore()
	RestoreToCount(n int)
	Rotate(deg, px, py float64)
	DrawRoundRect(r Rect, rx, ry float64, p Paint)
	DrawCircle(cx, cy, radius float64, p Paint)
}
