package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding

	// Task management
	Add    key.Binding // Add new task
	Edit   key.Binding // Edit selected task's text
	Toggle key.Binding // Toggle completion
	Delete key.Binding // Delete selected task

	// Bulk operations
	ClearCompleted key.Binding // Remove completed tasks
	ClearAll       key.Binding // Remove every task
	SeedFetch      key.Binding // Seed via request/response transport
	SeedStream     key.Binding // Seed via streaming transport

	// View
	Filter key.Binding // Cycle filter

	// General
	Quit   key.Binding
	Escape key.Binding // Cancel input
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "toggle"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		ClearCompleted: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear done"),
		),
		ClearAll: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "clear all"),
		),
		SeedFetch: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "seed (fetch)"),
		),
		SeedStream: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "seed (stream)"),
		),
		Filter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filter"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}
