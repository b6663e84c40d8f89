package main

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F25D94"))
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
