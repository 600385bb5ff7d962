package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const barWidth = 30

// Theme styles player-facing text. The zero value renders plain text.
type Theme struct {
	color bool
	bar   progress.Model
}

// NewTheme builds a theme; color disables all escape sequences when false.
func NewTheme(color bool) Theme {
	theme := Theme{color: color}
	if color {
		theme.bar = progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(barWidth),
			progress.WithoutPercentage(),
		)
	}
	return theme
}

// Color reports whether the theme emits styled output.
func (t Theme) Color() bool {
	return t.color
}

// Heading renders a banner line.
func (t Theme) Heading(text string) string {
	return t.stylize(text, lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33")))
}

// Correct renders positive feedback.
func (t Theme) Correct(text string) string {
	return t.stylize(text, lipgloss.NewStyle().Foreground(lipgloss.Color("42")))
}

// Incorrect renders negative feedback.
func (t Theme) Incorrect(text string) string {
	return t.stylize(text, lipgloss.NewStyle().Foreground(lipgloss.Color("196")))
}

// Muted renders secondary information.
func (t Theme) Muted(text string) string {
	return t.stylize(text, lipgloss.NewStyle().Foreground(lipgloss.Color("242")))
}

// Emphasis renders bold text.
func (t Theme) Emphasis(text string) string {
	return t.stylize(text, lipgloss.NewStyle().Bold(true))
}

// ScoreBar renders a fixed-width bar for a 0..1 ratio.
func (t Theme) ScoreBar(ratio float64) string {
	ratio = min(max(ratio, 0), 1)
	if t.color {
		return t.bar.ViewAs(ratio)
	}
	filled := int(ratio*barWidth + 0.5)
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", barWidth-filled) + "]"
}

// Percent formats a percentage with one decimal place.
func Percent(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

// stylize applies optional styling.
func (t Theme) stylize(text string, style lipgloss.Style) string {
	if !t.color {
		return text
	}
	return style.Render(text)
}

// Table renders rows under a header row. Plain themes use an ASCII border.
func (t Theme) Table(headers []string, rows [][]string) string {
	cell := lipgloss.NewStyle().Padding(0, 1)
	tbl := table.New().Headers(headers...).Rows(rows...)
	if !t.color {
		return tbl.Border(lipgloss.ASCIIBorder()).
			StyleFunc(func(row, col int) lipgloss.Style { return cell }).
			Render()
	}
	header := cell.Bold(true).Foreground(lipgloss.Color("33"))
	return tbl.Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("242"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		Render()
}
