// SPDX-License-Identifier: MIT

package render

import "github.com/charmbracelet/lipgloss"

// Terminal styles. lipgloss drops colors when the output is not a TTY.
var (
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 1)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ffffff"))

	Label = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888899"))

	Value = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ccff"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	OK = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ff88"))

	Failure = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ff4444"))
)
