package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Demo names accepted on the command line and returned by the picker.
const (
	DemoParticles = "particles"
	DemoBars      = "bars"
)

// PickerResult holds the outcome of the demo picker.
type PickerResult struct {
	Demo      string
	Cancelled bool
}

type demoItem struct {
	name string
	desc string
}

func (i demoItem) Title() string       { return i.name }
func (i demoItem) Description() string { return i.desc }
func (i demoItem) FilterValue() string { return i.name }

// PickerModel is the Bubbletea model for the demo chooser screen.
type PickerModel struct {
	list   list.Model
	result *PickerResult
}

// NewPicker creates the demo chooser.
func NewPicker() PickerModel {
	items := []list.Item{
		demoItem{name: DemoParticles, desc: "points morphing between geometric layouts"},
		demoItem{name: DemoBars, desc: "a traveling sine wave of colored bars"},
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"}).
		BorderLeftForeground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"}).
		BorderLeftForeground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})

	l := list.New(items, delegate, 60, 14)
	l.Title = "drift"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = headerStyle

	return PickerModel{list: l}
}

// Result returns the chosen demo after the program finishes.
func (m PickerModel) Result() PickerResult {
	if m.result != nil {
		return *m.result
	}
	return PickerResult{Cancelled: true}
}

func (m PickerModel) Init() tea.Cmd {
	return tea.SetWindowTitle("drift")
}

func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(demoItem); ok {
				m.result = &PickerResult{Demo: item.name}
				return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
			}
		case "q", "esc", "ctrl+c":
			m.result = &PickerResult{Cancelled: true}
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}

	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m PickerModel) View() string {
	return m.list.View()
}
