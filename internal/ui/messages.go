package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type tickMsg time.Time

// tickFPS is the terminal frame rate. The windowed host runs at its own 60.
const tickFPS = 30

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/tickFPS, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
