// internal/event/types.go
package event

const (
	BoundsChanged EventType = "BoundsChanged" // новая рамка иконки, Data: render.Rect
	AlphaChanged  EventType = "AlphaChanged"  // Data: int 0..255
	FilterChanged EventType = "FilterChanged" // Data: render.ColorFilter или nil
	Invalidated   EventType = "Invalidated"   // иконку нужно перерисовать
)
