// cmd/preview/main.go
package main

import (
	"errors"
	"flag"
	"os"
	"time"

	"go-flat-icons/internal/assets"
	"go-flat-icons/internal/config"
	"go-flat-icons/internal/event"
	"go-flat-icons/internal/host"
	"go-flat-icons/internal/logging"
	"go-flat-icons/internal/provider"
	"go-flat-icons/internal/state"
	"go-flat-icons/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	return a.stateMachine.Update(deltaTime)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

// Layout отдаёт реальный размер окна, чтобы иконка следовала за ресайзом
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func main() {
	logger := logging.NewDefault()

	env, err := config.LoadEnv()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}
	if err := logger.SetLevel(env.LogLevel); err != nil {
		logger.Fatal().Err(err).Msg("log level")
	}

	iconName := flag.String("icon", env.Icon, "icon name")
	alpha := flag.Int("alpha", env.Alpha, "alpha 0..255")
	filter := flag.String("filter", env.Filter, "color filter: none, darken, grayscale, tint:#rrggbb")
	flag.Parse()

	icon, err := provider.Default().Get(*iconName)
	if err != nil {
		logger.Fatal().Err(err).Msg("get icon")
	}
	cf, err := render.ParseFilter(*filter)
	if err != nil {
		logger.Fatal().Err(err).Msg("parse filter")
	}

	h := host.New(icon, event.NewDispatcher())
	h.SetAlpha(*alpha)
	h.SetColorFilter(cf)

	fonts, err := assets.NewFontManager()
	if err != nil {
		logger.Fatal().Err(err).Msg("load fonts")
	}
	defer fonts.Cleanup()
	face, err := fonts.Face(config.CaptionFontSize)
	if err != nil {
		logger.Fatal().Err(err).Msg("load caption face")
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewPreviewState(h, face, *iconName))
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Flat icon preview")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	logger.Info().Str("icon", *iconName).Int("alpha", *alpha).Str("filter", *filter).Msg("preview started")

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error().Err(err).Msg("run preview")
		os.Exit(1)
	}
	sm.SetState(nil)
}
