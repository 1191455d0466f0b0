package chatui

import "github.com/charmbracelet/lipgloss"

// Стили окна чата
var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	userStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	botStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("114"))
	helpStyle  = lipgloss.NewStyle().Faint(true)
)
