// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle       = lipgloss.NewStyle().Bold(true)
	helpStyle        = lipgloss.NewStyle().Faint(true)
	errorStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	successStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	evenRowStyle     = lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.AdaptiveColor{Light: "#EFEEEE", Dark: "#3A3A3A"})
	oddRowStyle      = lipgloss.NewStyle().Padding(0, 1)
	selectedRowStyle = lipgloss.NewStyle().Padding(0, 1).Reverse(true)
)
