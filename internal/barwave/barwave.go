// Package barwave implements the sine-driven bar wave demo: a row of
// colored bars whose heights ride a traveling sine of the frame counter.
// Nothing per-bar is stored; every bar's hue and level derive from
// (model, index) at render time.
package barwave

import "math"

const (
	// MaxBars caps how many bars a wide window produces.
	MaxBars = 60

	// barStride is the window width consumed per bar, in pixels.
	barStride = 20

	waveFreq   = 0.06
	barPhase   = 0.45
	waveCenter = 0.5
	waveDepth  = 0.42
)

// Model is the bar-wave demo state.
type Model struct {
	frame int
	step  int
	bars  int
	width int
}

// New builds a model for a window of the given width, moving forward.
func New(width int) Model {
	m := Model{step: 1}
	m.Resize(width)
	return m
}

// Tick advances the frame counter by the current direction step.
func (m *Model) Tick() { m.frame += m.step }

// Reverse flips the wave's direction of travel.
func (m *Model) Reverse() { m.step = -m.step }

// Resize rederives the bar count from the window width.
func (m *Model) Resize(width int) {
	m.width = width
	bars := width / barStride
	if bars < 1 {
		bars = 1
	}
	if bars > MaxBars {
		bars = MaxBars
	}
	m.bars = bars
}

// Frame returns the signed frame counter.
func (m Model) Frame() int { return m.frame }

// Step returns the current direction step, +1 or -1.
func (m Model) Step() int { return m.step }

// Bars returns the derived bar count.
func (m Model) Bars() int { return m.bars }

// BarWidth returns one bar's width as a percentage of the window.
func (m Model) BarWidth() float64 { return 100 / float64(m.bars) }

// Hue returns bar i's hue in degrees: the spectrum spread across the bars,
// rotating with the frame counter.
func (m Model) Hue(i int) float64 {
	h := math.Mod(360/float64(m.bars)*float64(i)+float64(m.frame), 360)
	if h < 0 {
		h += 360
	}
	return h
}

// Level returns bar i's height as a fraction of the window height, in
// (0, 1): a sine of the frame counter phase-shifted per bar so the crest
// travels across the row.
func (m Model) Level(i int) float64 {
	phase := float64(m.frame)*waveFreq + float64(i)*barPhase
	return waveCenter + waveDepth*math.Sin(phase)
}
