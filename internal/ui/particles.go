package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mbaird/drift/internal/canvas"
	"github.com/mbaird/drift/internal/particles"
)

// chromeRows is the header, status and help lines around the canvas.
const chromeRows = 3

// ParticlesModel is the Bubbletea model for the particle demo.
type ParticlesModel struct {
	field    *particles.Field
	canvas   *canvas.Canvas
	input    textinput.Model
	editing  bool
	paused   bool
	width    int
	height   int
	quitting bool
}

// NewParticles creates the particle demo sized for a default terminal;
// the first WindowSizeMsg resizes it properly.
func NewParticles(count int) ParticlesModel {
	ti := textinput.New()
	ti.Placeholder = strconv.Itoa(particles.DefaultCount)
	ti.CharLimit = 6
	ti.Width = 8

	cols, rows := 80, 24-chromeRows
	return ParticlesModel{
		field:  particles.New(count, cols*2, rows*4),
		canvas: canvas.New(cols, rows),
		input:  ti,
		width:  80,
		height: 24,
	}
}

func (m ParticlesModel) Init() tea.Cmd {
	return tea.Batch(tickCmd(), tea.SetWindowTitle("drift — particles"))
}

func (m ParticlesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.handleMsg(msg)
}

func (m ParticlesModel) handleMsg(msg tea.Msg) (ParticlesModel, tea.Cmd) {
	if m.editing {
		return m.handleCountInput(msg)
	}

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
			m.field.Tick()
		case "c":
			m.editing = true
			m.input.SetValue(strconv.Itoa(m.field.Count()))
			m.input.Focus()
			return m, textinput.Blink
		}
		return m, nil

	case tickMsg:
		if !m.paused {
			m.field.Tick()
		}
		return m, tickCmd()

	case tea.WindowSizeMsg:
		m.resize(msg)
		return m, nil
	}

	return m, nil
}

func (m *ParticlesModel) resize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height
	cols := max(1, msg.Width)
	rows := max(1, msg.Height-chromeRows)
	m.canvas.Resize(cols, rows)
	m.field.Resize(cols*2, rows*4)
}

func (m ParticlesModel) handleCountInput(msg tea.Msg) (ParticlesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			m.field.SetCount(parseCount(m.input.Value()))
			m.editing = false
			m.input.Blur()
			return m, nil
		case "esc":
			m.editing = false
			m.input.Reset()
			m.input.Blur()
			return m, nil
		case "ctrl+c":
			m.quitting = true
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}

	case tickMsg:
		// Keep animating behind the form.
		if !m.paused {
			m.field.Tick()
		}
		return m, tickCmd()

	case tea.WindowSizeMsg:
		m.resize(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// parseCount turns the count form's text into a point count, substituting
// the default for anything that is not a positive integer.
func parseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return particles.DefaultCount
	}
	return n
}

func (m ParticlesModel) View() string {
	if m.quitting {
		return ""
	}

	m.canvas.Clear()
	for _, p := range m.field.Points() {
		m.canvas.Plot(int(p.X), int(p.Y), canvas.FromColor(p.Color))
	}

	status := fmt.Sprintf("%s → %s   %d points   step %3d/%d",
		m.field.Layout(), m.field.NextLayout(), m.field.Count(), m.field.Step(), particles.NumSteps)
	if m.paused {
		status += "  " + pausedStyle.Render("paused")
	}

	bottom := helpStyle.Render(particlesHelpText())
	if m.editing {
		bottom = statusStyle.Render("points: ") + m.input.View()
	}

	var b strings.Builder
	b.WriteString(" " + headerStyle.Render("drift") + "  " + statusStyle.Render(status) + "\n")
	b.WriteString(m.canvas.String())
	b.WriteString("\n " + bottom + "\n")
	return b.String()
}
