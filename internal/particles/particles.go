// Package particles implements the morphing point-field demo: a set of
// colored points that drift between the named layouts on a fixed cycle.
package particles

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mbaird/drift/internal/layout"
)

const (
	// NumSteps is the length of one transition cycle in ticks.
	NumSteps = 120

	// DefaultCount is the point count substituted for unparseable input.
	DefaultCount = 1000

	// MaxCount caps the field so a stray input cannot stall a frame.
	MaxCount = 20000

	// travelFraction is how much of a cycle the points spend moving;
	// the remainder is a rest at the destination layout.
	travelFraction = 0.8

	// travelSteps is the tick on which points arrive. Constant arithmetic
	// keeps it exact; NumSteps*0.8 in float64 lands just above 96.
	travelSteps = NumSteps * travelFraction
)

// Cycle is the fixed layout rotation. Phyllotaxis anchors both halves, so
// it appears twice per pass.
var Cycle = [5]layout.Kind{
	layout.KindPhyllotaxis,
	layout.KindGrid,
	layout.KindWave,
	layout.KindPhyllotaxis,
	layout.KindSpiral,
}

// Point is one particle: a stable index-derived id, its current screen
// position and one precomputed screen-space target per layout. Targets are
// recomputed only when the window or the point count changes.
type Point struct {
	ID    int
	X, Y  float64
	Color colorful.Color

	targets [layout.NumKinds]layout.Point
}

// Target returns the point's precomputed screen position for k.
func (p *Point) Target(k layout.Kind) layout.Point {
	return p.targets[k]
}

// Field is the particle demo model. It owns the points, the step counter
// and the position in the layout cycle.
type Field struct {
	points   []Point
	step     int
	cycleIdx int
	count    int
	width    int
	height   int
}

// New builds a field of count points sized to a width x height surface,
// resting at the first layout of the cycle.
func New(count, width, height int) *Field {
	f := &Field{count: clampCount(count), width: width, height: height}
	f.rebuild()
	return f
}

// Tick advances the step counter one frame, wrapping after NumSteps and
// advancing the layout cycle on the wrap, then moves every point.
func (f *Field) Tick() {
	f.step++
	if f.step >= NumSteps {
		f.step = 0
		f.cycleIdx = (f.cycleIdx + 1) % len(Cycle)
	}
	f.apply()
}

// Resize rebuilds the point set for a new surface size.
func (f *Field) Resize(width, height int) {
	if width == f.width && height == f.height {
		return
	}
	f.width = width
	f.height = height
	f.rebuild()
}

// SetCount rebuilds the point set at a new size, clamped to [1, MaxCount].
func (f *Field) SetCount(count int) {
	count = clampCount(count)
	if count == f.count {
		return
	}
	f.count = count
	f.rebuild()
}

// Points exposes the live point slice for rendering. Callers must not
// reorder it; identity is positional.
func (f *Field) Points() []Point { return f.points }

// Count returns the current point count.
func (f *Field) Count() int { return f.count }

// Step returns the position within the current transition cycle.
func (f *Field) Step() int { return f.step }

// Layout returns the cycle entry the points are leaving.
func (f *Field) Layout() layout.Kind { return Cycle[f.cycleIdx] }

// NextLayout returns the cycle entry the points are moving toward.
func (f *Field) NextLayout() layout.Kind {
	return Cycle[(f.cycleIdx+1)%len(Cycle)]
}

// Pct is the interpolation fraction for the current step: it reaches 1 at
// travelFraction of the cycle and holds there for the rest.
func (f *Field) Pct() float64 {
	pct := float64(f.step) / travelSteps
	if pct > 1 {
		return 1
	}
	return pct
}

// rebuild recomputes every point's per-layout targets and color for the
// current (size, count) pair, then snaps positions to the current blend.
func (f *Field) rebuild() {
	f.points = make([]Point, f.count)
	for i := range f.points {
		p := &f.points[i]
		p.ID = i
		p.Color = pointColor(i, f.count)
		for k := layout.Kind(0); k < layout.NumKinds; k++ {
			x, y := layout.Project(f.width, f.height, layout.ByKind(k)(f.count, i))
			p.targets[k] = layout.Point{X: x, Y: y}
		}
	}
	f.apply()
}

// apply lerps every point between the targets of the layouts on either
// side of the current cycle position.
func (f *Field) apply() {
	from := f.Layout()
	to := f.NextLayout()
	pct := f.Pct()
	for i := range f.points {
		p := &f.points[i]
		a := p.targets[from]
		b := p.targets[to]
		// Snap at the endpoints: a+(b-a)*1 can round away from b.
		switch {
		case pct <= 0:
			p.X, p.Y = a.X, a.Y
		case pct >= 1:
			p.X, p.Y = b.X, b.Y
		default:
			p.X = a.X + (b.X-a.X)*pct
			p.Y = a.Y + (b.Y-a.Y)*pct
		}
	}
}

// pointColor derives a stable hue from the point's index.
func pointColor(i, count int) colorful.Color {
	hue := 360 * float64(i) / float64(count)
	return colorful.Hsv(hue, 0.65, 0.95)
}

func clampCount(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxCount {
		return MaxCount
	}
	return n
}
