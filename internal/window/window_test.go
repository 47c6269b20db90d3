package window

import "testing"

func TestParticlesLayoutResizesField(t *testing.T) {
	g := NewParticlesGame(200)

	w, h := g.Layout(800, 600)
	if w != 800 || h != 600 {
		t.Fatalf("expected logical size to follow the window, got %dx%d", w, h)
	}

	before := g.field.Points()[0].Target(g.field.Layout())
	g.Layout(1600, 1200)
	after := g.field.Points()[0].Target(g.field.Layout())
	if before == after {
		t.Fatal("expected resize to recompute targets")
	}
}

func TestParticlesLayoutNoopForSameSize(t *testing.T) {
	g := NewParticlesGame(200)
	g.Layout(defaultWidth, defaultHeight)
	p := g.field.Points()[0]

	g.Layout(defaultWidth, defaultHeight)
	if got := g.field.Points()[0]; got != p {
		t.Fatal("expected same-size layout to leave the field alone")
	}
}

func TestBarsAdvanceMovesFrameAndLevels(t *testing.T) {
	g := NewBarsGame()
	g.advance()
	if got := g.wave.Frame(); got != 1 {
		t.Fatalf("expected frame 1, got %d", got)
	}

	moved := false
	for _, l := range g.levels {
		if l != 0 {
			moved = true
			break
		}
	}
	if !moved {
		t.Fatal("expected eased levels to move off zero")
	}
}

func TestBarsLayoutRederivesBars(t *testing.T) {
	g := NewBarsGame()
	g.Layout(400, 300)
	if got := g.wave.Bars(); got != 20 {
		t.Fatalf("expected 20 bars for width 400, got %d", got)
	}
	if got := len(g.levels); got != 20 {
		t.Fatalf("expected levels resized to 20, got %d", got)
	}
}
