package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mbaird/drift/internal/barwave"
)

// barGap is the spacing between adjacent bars, in pixels.
const barGap = 2

// BarsGame hosts the bar wave in an ebiten window.
type BarsGame struct {
	wave    barwave.Model
	springs *barwave.Springs
	levels  []float64
	width   int
	height  int
	paused  bool
}

// NewBarsGame builds the windowed bar-wave demo.
func NewBarsGame() *BarsGame {
	g := &BarsGame{
		wave:    barwave.New(defaultWidth),
		springs: barwave.NewSprings(gameFPS),
		width:   defaultWidth,
		height:  defaultHeight,
	}
	g.springs.Resize(g.wave.Bars())
	g.levels = make([]float64, g.wave.Bars())
	return g
}

func (g *BarsGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.wave.Reverse()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPeriod) {
		g.advance()
	}
	if !g.paused {
		g.advance()
	}
	return nil
}

func (g *BarsGame) advance() {
	g.wave.Tick()
	for i := range g.levels {
		g.levels[i] = g.springs.Step(i, g.wave.Level(i))
	}
}

func (g *BarsGame) Draw(screen *ebiten.Image) {
	bars := g.wave.Bars()
	barW := float64(g.width) / float64(bars)

	for i := range bars {
		level := 0.0
		if i < len(g.levels) {
			level = g.levels[i]
		}
		h := level * float64(g.height)
		x := float64(i) * barW
		y := float64(g.height) - h

		c := colorful.Hsv(g.wave.Hue(i), 0.7, 0.95)
		r, gr, b := c.RGB255()
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(barW-barGap), float32(h),
			color.RGBA{R: r, G: gr, B: b, A: 0xff}, false)
	}

	status := fmt.Sprintf("frame %d  |  %d bars  |  click/R reverse  Space pause  Q quit", g.wave.Frame(), bars)
	if g.wave.Step() < 0 {
		status += "  |  REVERSED"
	}
	if g.paused {
		status += "  |  PAUSED"
	}
	ebitenutil.DebugPrintAt(screen, status, 8, 8)
}

func (g *BarsGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width = outsideWidth
		g.height = outsideHeight
		g.wave.Resize(outsideWidth)
		g.springs.Resize(g.wave.Bars())
		g.levels = make([]float64, g.wave.Bars())
	}
	return outsideWidth, outsideHeight
}
