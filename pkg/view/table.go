package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("6")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	borderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	placeholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("3"))

	footerStyle = lipgloss.NewStyle().
			Faint(true)

	noteStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("3"))
)

const (
	colSSID = iota
	colSignal
	colBand
	colChannel
	colSecurity
)

var headers = []string{"SSID", "Signal", "Band", "Channel", "Security"}

// RenderTable draws the view as a bordered terminal table with the title on
// top and the footer and any advisory underneath.
func RenderTable(v View) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(v.Title) + "\n")

	if v.Empty() {
		b.WriteString(placeholderStyle.Render(v.Placeholder) + "\n")
		return b.String()
	}

	rows := make([][]string, 0, len(v.Rows))
	for _, r := range v.Rows {
		rows = append(rows, []string{
			r.Record.SSID,
			fmt.Sprintf("%d%%", r.Percent),
			r.Record.Band,
			strconv.Itoa(r.Record.Channel),
			r.Record.Security,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			style := cellStyle
			switch col {
			case colSSID:
				style = style.Foreground(lipgloss.Color("15"))
			case colSignal:
				style = style.Align(lipgloss.Right)
				if row >= 0 && row < len(v.Rows) {
					style = style.Foreground(v.Rows[row].Tier.Color())
				}
			case colBand:
				style = style.Align(lipgloss.Center).Foreground(lipgloss.Color("2"))
			case colChannel:
				style = style.Align(lipgloss.Right)
			case colSecurity:
				style = style.Foreground(lipgloss.Color("5"))
			}
			return style
		})

	b.WriteString(t.Render() + "\n")
	b.WriteString(footerStyle.Render(v.Footer()) + "\n")

	if len(v.Advisory) > 0 {
		b.WriteString("\n" + noteStyle.Render(v.Advisory[0]) + "\n")
		for _, line := range v.Advisory[1:] {
			b.WriteString(line + "\n")
		}
	}

	return b.String()
}
