package main

import (
	"strings"

	window "Alucut/internal/calc/window"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	labelStyle  = lipgloss.NewStyle().Width(22).Foreground(lipgloss.Color("245"))
	valueStyle  = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	promptStyle = lipgloss.NewStyle().Faint(true)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func renderResult(res window.Result) string {
	rows := [][2]string{
		{"Top/Bottom Track", res.TopBottomTrack},
		{"Side Track", res.SideTrack},
		{"Handle/Interlock", res.HandleInterlock},
		{"Top/Bearing Bottom", res.TopBearingBottom},
		{"Glass", res.GlassDimensions},
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Cut list (inches, whole.eighths)"))
	for _, r := range rows {
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(r[0]), valueStyle.Render(r[1])))
	}
	return boxStyle.Render(b.String())
}
