// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package tui renders navigation trees for the terminal.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/zimsendapi/docs/internal/openapi"
)

// Palette
var (
	ColorDeep = lipgloss.Color("62")
	ColorIce  = lipgloss.Color("153")
	ColorDim  = lipgloss.Color("240")
	ColorWarn = lipgloss.Color("214")
)

var (
	StyleTitle    = lipgloss.NewStyle().Bold(true).Foreground(ColorIce)
	StyleHeader   = lipgloss.NewStyle().Bold(true).Foreground(ColorDeep)
	StyleSubtle   = lipgloss.NewStyle().Foreground(ColorDim)
	StyleCategory = lipgloss.NewStyle().Bold(true)
	StyleLink     = lipgloss.NewStyle().Underline(true).Foreground(ColorIce)
	StyleBranch   = lipgloss.NewStyle().Foreground(ColorDeep).MarginRight(1)
	StyleCard     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDeep).
			Padding(0, 1)
)

// methodColors follows the usual API explorer badge colors.
var methodColors = map[openapi.Method]lipgloss.Color{
	openapi.MethodGet:    lipgloss.Color("42"),
	openapi.MethodPost:   lipgloss.Color("33"),
	openapi.MethodPut:    lipgloss.Color("214"),
	openapi.MethodDelete: lipgloss.Color("196"),
	openapi.MethodPatch:  lipgloss.Color("141"),
}

// StyleMethod returns the badge style of an HTTP method.
func StyleMethod(m openapi.Method) lipgloss.Style {
	c, ok := methodColors[m]
	if !ok {
		c = ColorDim
	}
	return lipgloss.NewStyle().Bold(true).Foreground(c).Width(6)
}
