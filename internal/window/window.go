// Package window renders the demo engines in an ebiten window at 60 FPS.
// It is the alternative display host to the terminal UI; both drive the
// same engines in internal/particles and internal/barwave.
package window

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	defaultWidth  = 1024
	defaultHeight = 768

	gameFPS = 60
)

// RunParticles opens a window running the particle demo until quit.
func RunParticles(count int) error {
	ebiten.SetWindowSize(defaultWidth, defaultHeight)
	ebiten.SetWindowTitle("drift — particles")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewParticlesGame(count)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// RunBars opens a window running the bar-wave demo until quit.
func RunBars() error {
	ebiten.SetWindowSize(defaultWidth, defaultHeight)
	ebiten.SetWindowTitle("drift — bars")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewBarsGame()); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
