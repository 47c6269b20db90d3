package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mbaird/drift/internal/barwave"
)

// cellPxW approximates a terminal cell's pixel width so the engine's
// width-derived bar count works in cell space too.
const cellPxW = 10

// BarsModel is the Bubbletea model for the bar-wave demo.
type BarsModel struct {
	wave     barwave.Model
	springs  *barwave.Springs
	levels   []float64
	paused   bool
	width    int
	height   int
	quitting bool
}

// NewBars creates the bar-wave demo sized for a default terminal.
func NewBars() BarsModel {
	m := BarsModel{
		wave:    barwave.New(80 * cellPxW),
		springs: barwave.NewSprings(tickFPS),
		width:   80,
		height:  24,
	}
	m.springs.Resize(m.wave.Bars())
	m.levels = make([]float64, m.wave.Bars())
	return m
}

func (m BarsModel) Init() tea.Cmd {
	return tea.Batch(tickCmd(), tea.SetWindowTitle("drift — bars"))
}

func (m BarsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleMsg(msg)
}

func (m BarsModel) handleMsg(msg tea.Msg) (BarsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isQuit(msg) {
			m.quitting = true
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
		switch msg.String() {
		case " ":
			m.paused = !m.paused
		case ".":
			m.advance()
		case "r":
			m.wave.Reverse()
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			m.wave.Reverse()
		}
		return m, nil

	case tickMsg:
		if !m.paused {
			m.advance()
		}
		return m, tickCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.wave.Resize(msg.Width * cellPxW)
		m.springs.Resize(m.wave.Bars())
		m.levels = make([]float64, m.wave.Bars())
		m.advance()
		return m, nil
	}

	return m, nil
}

// advance ticks the wave and eases the rendered levels toward it.
func (m *BarsModel) advance() {
	m.wave.Tick()
	for i := range m.levels {
		m.levels[i] = m.springs.Step(i, m.wave.Level(i))
	}
}

func (m BarsModel) View() string {
	if m.quitting {
		return ""
	}

	bars := m.wave.Bars()
	rows := max(1, m.height-2)
	barW := max(1, m.width/bars)

	on := make([]string, bars)
	off := strings.Repeat(" ", barW)
	heights := make([]int, bars)
	for i := range bars {
		hex := colorful.Hsv(m.wave.Hue(i), 0.7, 0.95).Hex()
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
		on[i] = style.Render(strings.Repeat("█", barW))

		level := 0.0
		if i < len(m.levels) {
			level = m.levels[i]
		}
		heights[i] = int(math.Round(level * float64(rows)))
	}

	var b strings.Builder
	status := fmt.Sprintf("frame %d   %d bars   %.1f%% wide", m.wave.Frame(), bars, m.wave.BarWidth())
	if m.wave.Step() < 0 {
		status += "   ← reversed"
	}
	if m.paused {
		status += "  " + pausedStyle.Render("paused")
	}
	b.WriteString(" " + headerStyle.Render("drift") + "  " + statusStyle.Render(status) + "\n")

	for r := range rows {
		for i := range bars {
			if heights[i] >= rows-r {
				b.WriteString(on[i])
			} else {
				b.WriteString(off)
			}
		}
		b.WriteByte('\n')
	}

	b.WriteString(" " + helpStyle.Render(barsHelpText()) + "\n")
	return b.String()
}
