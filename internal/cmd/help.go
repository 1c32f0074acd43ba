package cmd

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// example is one titled command line shown in a command's help
type example struct {
	title   string
	command string
}

// renderExamples renders the examples section of a command's help with lipgloss styling
func renderExamples(examples ...example) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		MarginTop(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("10"))

	commandStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("14"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Examples"))
	b.WriteString("\n\n")

	for _, e := range examples {
		b.WriteString(sectionStyle.Render(e.title))
		b.WriteString("\n")
		b.WriteString("  " + commandStyle.Render(e.command))
		b.WriteString("\n\n")
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// renderAngleNote renders the note on angle units shared by several commands
func renderAngleNote() string {
	flagStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("11"))

	commentStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Italic(true)

	notes := []struct {
		flag string
		desc string
	}{
		{"(default)", "Angles on the command line are degrees"},
		{"--radians", "Angles on the command line are radians"},
		{"angles:", "Unit of the angles inside a robot file"},
	}

	maxWidth := 0
	for _, n := range notes {
		if len(n.flag) > maxWidth {
			maxWidth = len(n.flag)
		}
	}

	var b strings.Builder
	for _, n := range notes {
		padding := strings.Repeat(" ", maxWidth-len(n.flag)+2)
		b.WriteString("  " + flagStyle.Render(n.flag) + padding + commentStyle.Render(n.desc))
		b.WriteString("\n")
	}
	return b.String()
}
