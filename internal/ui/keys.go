package ui

import tea "github.com/charmbracelet/bubbletea"

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

func particlesHelpText() string {
	return "space pause  . step  c count  q quit"
}

func barsHelpText() string {
	return "click/r reverse  space pause  . step  q quit"
}
