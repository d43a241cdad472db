// Package tui provides terminal user interface components for xvenv.
//
// This package uses the Bubble Tea framework for the confirmation prompt
// shown before a sandbox is destroyed.
//
// # Confirmation
//
// NewConfirmer picks the prompt style from the input stream:
//
//	c := tui.NewConfirmer(os.Stdin, os.Stdout)
//	ok, err := c.Confirm("really drop /work/.venv ?")
//
// On a terminal the question is rendered with a text input. Otherwise a
// single line is read. Both accept "y" and "yes" (case-insensitive); any
// other answer, including an empty one, is a refusal.
//
// # Dependencies
//
// Uses the Charm libraries:
//   - github.com/charmbracelet/bubbletea - TUI framework
//   - github.com/charmbracelet/bubbles - UI components
//   - github.com/charmbracelet/lipgloss - Styling
package tui
