// internal/state/preview_state.go
package state

import (
	"fmt"

	"go-flat-icons/internal/config"
	"go-flat-icons/internal/event"
	"go-flat-icons/internal/host"
	"go-flat-icons/pkg/render/ebitensurface"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// PreviewState показывает иконку по центру окна. Иконка рисуется в отдельное
// квадратное изображение только после события Invalidated, а в кадре
// копируется одним DrawImage.
type PreviewState struct {
	host    *host.Host
	face    font.Face
	caption string
	iconImg *ebiten.Image
	surface *ebitensurface.Surface
	side    int
	dirty   bool
	redraws int
}

func NewPreviewState(h *host.Host, face font.Face, caption string) *PreviewState {
	return &PreviewState{
		host:    h,
		face:    face,
		caption: caption,
		dirty:   true,
	}
}

func (p *PreviewState) Enter() {
	p.host.Dispatcher().Subscribe(event.Invalidated, p)
}

func (p *PreviewState) Exit() {
	p.host.Dispatcher().Unsubscribe(event.Invalidated, p)
	if p.iconImg != nil {
		p.iconImg.Deallocate()
		p.iconImg = nil
	}
}

// OnEvent помечает иконку для перерисовки
func (p *PreviewState) OnEvent(e event.Event) {
	if e.Type == event.Invalidated {
		p.dirty = true
	}
}

func (p *PreviewState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (p *PreviewState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	b := screen.Bounds()
	side := min(b.Dx(), b.Dy()) - 2*config.PreviewMargin
	if side <= 0 {
		return
	}
	p.ensureImage(side)

	if p.dirty {
		p.iconImg.Clear()
		p.surface.SetTarget(p.iconImg)
		p.host.Draw(p.surface)
		p.dirty = false
		p.redraws++
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(b.Dx()-side)/2, float64(b.Dy()-side)/2)
	screen.DrawImage(p.iconImg, op)

	if p.face != nil {
		label := fmt.Sprintf("%s  %dx%d", p.caption, side, side)
		text.Draw(screen, label, p.face, config.PreviewMargin/2, b.Dy()-config.PreviewMargin/3, config.TextLightColor)
	}
}

// ensureImage пересоздаёт буфер и передаёт новую рамку иконке при смене размера окна
func (p *PreviewState) ensureImage(side int) {
	if side == p.side && p.iconImg != nil {
		return
	}
	if p.iconImg != nil {
		p.iconImg.Deallocate()
	}
	p.iconImg = ebiten.NewImage(side, side)
	if p.surface == nil {
		p.surface = ebitensurface.New(p.iconImg)
	}
	p.side = side
	p.host.Resize(side)
	p.dirty = true
}

// Redraws returns how many times the icon was rendered into the buffer.
func (p *PreviewState) Redraws() int {
	return p.redraws
}
