package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	cursorStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	unsyncedStyle   = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("214"))
	statusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	errorTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("160"))

	badgeBase      = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	badgeOnline    = badgeBase.Background(lipgloss.Color("28")).Foreground(lipgloss.Color("231"))
	badgeServerOff = badgeBase.Background(lipgloss.Color("178")).Foreground(lipgloss.Color("16"))
	badgeNoNetwork = badgeBase.Background(lipgloss.Color("160")).Foreground(lipgloss.Color("231"))
)
