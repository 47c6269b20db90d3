package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mbaird/drift/internal/particles"
)

const pointRadius = 1.5

// ParticlesGame hosts the particle field in an ebiten window.
type ParticlesGame struct {
	field  *particles.Field
	width  int
	height int
	paused bool
}

// NewParticlesGame builds the windowed particle demo.
func NewParticlesGame(count int) *ParticlesGame {
	return &ParticlesGame{
		field:  particles.New(count, defaultWidth, defaultHeight),
		width:  defaultWidth,
		height: defaultHeight,
	}
}

func (g *ParticlesGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPeriod) {
		g.field.Tick()
	}
	if !g.paused {
		g.field.Tick()
	}
	return nil
}

func (g *ParticlesGame) Draw(screen *ebiten.Image) {
	for i := range g.field.Points() {
		p := &g.field.Points()[i]
		r, gr, b := p.Color.RGB255()
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), pointRadius,
			color.RGBA{R: r, G: gr, B: b, A: 0xff}, false)
	}

	status := fmt.Sprintf("%s -> %s  |  %d points  |  step %d/%d  |  Space pause  .  step  Q quit",
		g.field.Layout(), g.field.NextLayout(), g.field.Count(), g.field.Step(), particles.NumSteps)
	if g.paused {
		status += "  |  PAUSED"
	}
	ebitenutil.DebugPrintAt(screen, status, 8, 8)
}

func (g *ParticlesGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width = outsideWidth
		g.height = outsideHeight
		g.field.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
