package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary  lipgloss.Color
	Muted    lipgloss.Color
	Error    lipgloss.Color
	Success  lipgloss.Color
	Selected lipgloss.Color
	Done     lipgloss.Color
}{
	Primary:  lipgloss.Color("#6C5CE7"), // Purple
	Muted:    lipgloss.Color("#636E72"), // Gray
	Error:    lipgloss.Color("#D63031"), // Red
	Success:  lipgloss.Color("#00B894"), // Green
	Selected: lipgloss.Color("#FFEAA7"), // Yellow
	Done:     lipgloss.Color("#B2BEC3"), // Light gray
}

// Styles holds the lipgloss styles used by the views.
type Styles struct {
	Title    lipgloss.Style
	Task     lipgloss.Style
	TaskDone lipgloss.Style
	Selected lipgloss.Style
	Footer   lipgloss.Style
	Notice   lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the default style set.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			Padding(0, 1),
		Task:     lipgloss.NewStyle(),
		TaskDone: lipgloss.NewStyle().Foreground(Colors.Done).Strikethrough(true),
		Selected: lipgloss.NewStyle().Foreground(Colors.Selected).Bold(true),
		Footer:   lipgloss.NewStyle().Foreground(Colors.Muted),
		Notice:   lipgloss.NewStyle().Foreground(Colors.Success),
		Error:    lipgloss.NewStyle().Foreground(Colors.Error),
		Help:     lipgloss.NewStyle().Foreground(Colors.Muted),
	}
}
