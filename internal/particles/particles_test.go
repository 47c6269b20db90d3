package particles

import (
	"math"
	"testing"

	"github.com/mbaird/drift/internal/layout"
)

const epsilon = 1e-9

func TestNewFieldRestsAtFirstLayout(t *testing.T) {
	f := New(500, 400, 300)

	if got := f.Pct(); got != 0 {
		t.Fatalf("expected pct 0 at step 0, got %v", got)
	}
	for i, p := range f.Points() {
		want := p.Target(f.Layout())
		if p.X != want.X || p.Y != want.Y {
			t.Fatalf("point %d not at its %v target: (%v, %v) != %+v", i, f.Layout(), p.X, p.Y, want)
		}
	}
}

func TestPointsArriveByEightyPercent(t *testing.T) {
	f := New(200, 400, 300)

	const arrival = int(travelSteps)
	for range arrival {
		f.Tick()
	}
	if got := f.Pct(); got != 1 {
		t.Fatalf("expected pct 1 at step %d, got %v", f.Step(), got)
	}
	next := f.NextLayout()
	for i, p := range f.Points() {
		want := p.Target(next)
		if p.X != want.X || p.Y != want.Y {
			t.Fatalf("point %d not at its %v target after travel: (%v, %v) != %+v", i, next, p.X, p.Y, want)
		}
	}

	// The rest period keeps the points pinned there.
	f.Tick()
	for i, p := range f.Points() {
		want := p.Target(next)
		if p.X != want.X || p.Y != want.Y {
			t.Fatalf("point %d drifted during rest period", i)
		}
	}
}

func TestStepWrapAdvancesCycle(t *testing.T) {
	f := New(100, 400, 300)
	start := f.Layout()
	wantNext := f.NextLayout()

	for range NumSteps {
		f.Tick()
	}
	if got := f.Step(); got != 0 {
		t.Fatalf("expected step to wrap to 0, got %d", got)
	}
	if got := f.Layout(); got != wantNext {
		t.Fatalf("expected layout to advance from %v to %v, got %v", start, wantNext, got)
	}
}

func TestCycleVisitsPhyllotaxisTwice(t *testing.T) {
	seen := map[layout.Kind]int{}
	for _, k := range Cycle {
		seen[k]++
	}
	if seen[layout.KindPhyllotaxis] != 2 {
		t.Fatalf("expected phyllotaxis twice per cycle, got %d", seen[layout.KindPhyllotaxis])
	}
	for _, k := range []layout.Kind{layout.KindGrid, layout.KindWave, layout.KindSpiral} {
		if seen[k] != 1 {
			t.Fatalf("expected %v once per cycle, got %d", k, seen[k])
		}
	}
}

func TestFullCycleReturnsToStart(t *testing.T) {
	f := New(100, 400, 300)
	start := f.Layout()

	for range NumSteps * len(Cycle) {
		f.Tick()
	}
	if got := f.Layout(); got != start {
		t.Fatalf("expected layout to return to %v after a full pass, got %v", start, got)
	}
}

func TestTargetsStableAcrossTicks(t *testing.T) {
	f := New(300, 640, 480)
	p0 := f.Points()[42]
	before := [layout.NumKinds]layout.Point{}
	for k := layout.Kind(0); k < layout.NumKinds; k++ {
		before[k] = p0.Target(k)
	}

	for range 37 {
		f.Tick()
	}
	after := f.Points()[42]
	for k := layout.Kind(0); k < layout.NumKinds; k++ {
		if after.Target(k) != before[k] {
			t.Fatalf("target %v changed across ticks without a resize", k)
		}
	}
}

func TestResizeRebuildsTargets(t *testing.T) {
	f := New(300, 640, 480)
	before := f.Points()[10].Target(layout.KindGrid)

	f.Resize(1280, 960)
	after := f.Points()[10].Target(layout.KindGrid)
	if before == after {
		t.Fatal("expected resize to recompute targets")
	}
	if got := len(f.Points()); got != 300 {
		t.Fatalf("expected resize to preserve count, got %d", got)
	}
}

func TestSetCountClampsAndRebuilds(t *testing.T) {
	f := New(300, 640, 480)

	f.SetCount(0)
	if got := f.Count(); got != 1 {
		t.Fatalf("expected count floor of 1, got %d", got)
	}

	f.SetCount(MaxCount + 5)
	if got := f.Count(); got != MaxCount {
		t.Fatalf("expected count cap of %d, got %d", MaxCount, got)
	}
	if got := len(f.Points()); got != MaxCount {
		t.Fatalf("expected %d points after rebuild, got %d", MaxCount, got)
	}
}

func TestPointColorsAreStableAndDistinct(t *testing.T) {
	f := New(100, 400, 300)
	a := f.Points()[0].Color
	b := f.Points()[50].Color
	if a == b {
		t.Fatal("expected distinct hues for distant indices")
	}

	g := New(100, 800, 600)
	if g.Points()[0].Color != a {
		t.Fatal("expected index-derived color to be independent of window size")
	}
}

func TestMidTravelIsBlendOfNeighbors(t *testing.T) {
	f := New(50, 400, 300)
	for range 48 { // half of the travel window
		f.Tick()
	}
	pct := f.Pct()
	if math.Abs(pct-0.5) > epsilon {
		t.Fatalf("expected pct 0.5 at step 48, got %v", pct)
	}
	p := f.Points()[7]
	a := p.Target(f.Layout())
	b := p.Target(f.NextLayout())
	wantX := a.X + (b.X-a.X)*pct
	if math.Abs(p.X-wantX) > epsilon {
		t.Fatalf("expected midpoint blend x %v, got %v", wantX, p.X)
	}
}
