// cmd/launcher/main.go
//
// Точка входа лаунчера: при запуске сразу завершается. Сами иконки
// доступны через провайдер и CLI.
package main

import (
	"errors"
	"os"
	"time"

	"go-flat-icons/internal/logging"
	"go-flat-icons/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
)

type launcherGame struct {
	stateMachine *state.StateMachine
	lastUpdate   time.Time
}

func (g *launcherGame) Update() error {
	now := time.Now()
	dt := now.Sub(g.lastUpdate).Seconds()
	g.lastUpdate = now
	return g.stateMachine.Update(dt)
}

func (g *launcherGame) Draw(screen *ebiten.Image) {
	g.stateMachine.Draw(screen)
}

func (g *launcherGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 1, 1
}

func main() {
	logger := logging.NewDefault()

	sm := state.NewStateMachine()
	launcher := state.NewLauncherState()
	sm.SetState(launcher)

	ebiten.SetWindowSize(1, 1)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowTitle("Flat Icon Provider")
	err := ebiten.RunGame(&launcherGame{stateMachine: sm, lastUpdate: time.Now()})
	sm.SetState(nil)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error().Err(err).Msg("launcher")
		os.Exit(1)
	}
	logger.Debug().Int("updates", launcher.Updates()).Msg("launcher finished")
}
