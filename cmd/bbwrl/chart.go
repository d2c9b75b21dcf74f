package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/patrikgergely/bbwrl/internal/strategist"
)

var (
	chartHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA"))
	chartCellStyle   = lipgloss.NewStyle().Width(3).Align(lipgloss.Center)
	chartBorder      = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#626262"))
)

// printChart renders a basic-strategy chart as a bordered text table, one
// row per hand shape and one column per dealer up-card 2..11, matching the
// teacher's terminal-table rendering idiom in internal/display.
func printChart(rows []strategist.ChartRow) {
	var b strings.Builder

	b.WriteString(chartCellStyle.Render(""))
	for dt := 2; dt <= 11; dt++ {
		label := fmt.Sprintf("%d", dt)
		if dt == 11 {
			label = "A"
		}
		b.WriteString(chartHeaderStyle.Render(chartCellStyle.Render(label)))
	}
	b.WriteString("\n")

	for _, row := range rows {
		b.WriteString(chartCellStyle.Render(row.Label))
		for dt := 2; dt <= 11; dt++ {
			b.WriteString(chartCellStyle.Render(row.Actions[dt].String()))
		}
		b.WriteString("\n")
	}

	fmt.Println(chartBorder.Render(strings.TrimRight(b.String(), "\n")))
}
