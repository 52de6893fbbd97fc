package tui

import "github.com/charmbracelet/lipgloss"

// Colors adapt to the terminal background.
var (
	colorAccent = lipgloss.AdaptiveColor{Light: "25", Dark: "39"}
	colorNormal = lipgloss.AdaptiveColor{Light: "236", Dark: "252"}
	colorDim    = lipgloss.AdaptiveColor{Light: "245", Dark: "240"}
	colorError  = lipgloss.AdaptiveColor{Light: "160", Dark: "203"}
)

var (
	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	styleNumber   = lipgloss.NewStyle().Foreground(colorDim)
	styleItem     = lipgloss.NewStyle().Foreground(colorNormal)
	styleSelected = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	styleHelp     = lipgloss.NewStyle().Foreground(colorDim).MarginTop(1)
	styleError    = lipgloss.NewStyle().Foreground(colorError)
)
