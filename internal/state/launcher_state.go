// internal/state/launcher_state.go
package state

import "github.com/hajimehoshi/ebiten/v2"

// LauncherState завершает приложение на первом же обновлении.
// Иконки отдаются через провайдер, у самой программы интерфейса нет.
type LauncherState struct {
	updates int
}

func NewLauncherState() *LauncherState {
	return &LauncherState{}
}

func (l *LauncherState) Enter() {}

func (l *LauncherState) Update(deltaTime float64) error {
	l.updates++
	return ebiten.Termination
}

func (l *LauncherState) Draw(screen *ebiten.Image) {}

func (l *LauncherState) Exit() {}

// Updates returns how many times Update ran.
func (l *LauncherState) Updates() int {
	return l.updates
}
