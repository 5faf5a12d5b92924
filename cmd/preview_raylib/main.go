package main

import (
	"flag"
	"fmt"

	"go-flat-icons/internal/config"
	"go-flat-icons/internal/event"
	"go-flat-icons/internal/host"
	"go-flat-icons/internal/logging"
	"go-flat-icons/internal/provider"
	"go-flat-icons/pkg/render"
	"go-flat-icons/pkg/render/rlsurface"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	logger := logging.NewDefault()

	env, err := config.LoadEnv()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}
	iconName := flag.String("icon", env.Icon, "icon name")
	alpha := flag.Int("alpha", env.Alpha, "alpha 0..255")
	filter := flag.String("filter", env.Filter, "color filter")
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

	// --- Инициализация ---
	backgroundColor := rl.NewColor(config.BackgroundColor.R, config.BackgroundColor.G, config.BackgroundColor.B, 255)
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Raylib Icon Preview | Esc - exit")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	surface := rlsurface.New()
	surface.Segments = config.RoundSegments

	// --- Главный цикл ---
	for !rl.WindowShouldClose() {
		w, ht := int(rl.GetScreenWidth()), int(rl.GetScreenHeight())
		side := min(w, ht) - 2*config.PreviewMargin
		// рамка всегда квадратная и в начале координат, сдвиг делаем матрицей
		h.Resize(side)

		rl.BeginDrawing()
		rl.ClearBackground(backgroundColor)
		if side > 0 {
			rl.PushMatrix()
			rl.Translatef(float32(w-side)/2, float32(ht-side)/2, 0)
			h.Draw(surface)
			rl.PopMatrix()
		}
		rl.DrawText(fmt.Sprintf("%s  %dx%d", *iconName, side, side), config.PreviewMargin/2, int32(ht-config.PreviewMargin), config.CaptionFontSize, rl.RayWhite)
		rl.EndDrawing()
	}
	logger.Info().Msg("raylib preview closed")
}
