package client

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true).Width(12)
	valueStyle = lipgloss.NewStyle()
	hintStyle  = lipgloss.NewStyle().Faint(true).Italic(true)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// field is one labelled line of command output.
type field struct {
	label string
	value string
}

// renderFields lays fields out as an aligned two-column block.
func renderFields(fields ...field) string {
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(f.label), valueStyle.Render(f.value)))
	}
	return strings.Join(lines, "\n")
}

// printCard writes a titled, boxed block of fields.
func printCard(w io.Writer, title string, fields ...field) {
	body := titleStyle.Render(title) + "\n" + renderFields(fields...)
	fmt.Fprintln(w, boxStyle.Render(body))
}

func printHint(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, hintStyle.Render(fmt.Sprintf(format, args...)))
}

// RenderError formats err for the terminal.
func RenderError(err error) string {
	return errorStyle.Render("error: " + err.Error())
}
