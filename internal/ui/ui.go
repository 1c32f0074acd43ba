package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colors adapt to light and dark terminals.
var (
	accent  = lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#00D9FF"}
	good    = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#04B575"}
	bad     = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F87"}
	caution = lipgloss.AdaptiveColor{Light: "#AF5F00", Dark: "#FFAF00"}
	muted   = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#626262"}
)

var (
	indent  = lipgloss.NewStyle().PaddingLeft(2)
	section = lipgloss.NewStyle().Bold(true).Foreground(accent).MarginTop(1).PaddingLeft(1)
	label   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	faint   = lipgloss.NewStyle().Foreground(muted)

	success = status("✓", good, true)
	failure = status("✗", bad, true)
	warning = status("⚠", caution, false)
)

// status renders a message behind an icon, both in the same color
func status(icon string, color lipgloss.TerminalColor, bold bool) func(string) string {
	st := lipgloss.NewStyle().Foreground(color).Bold(bold)
	return func(msg string) string {
		return indent.Render(st.Render(icon) + " " + st.Render(msg))
	}
}

// out receives everything printed by this package
var out io.Writer = os.Stdout

// SetOutput redirects all printing and returns the previous writer
func SetOutput(w io.Writer) io.Writer {
	prev := out
	out = w
	return prev
}

func printLine(s string) {
	fmt.Fprintln(out, s)
}

// PrintHeader prints a section header
func PrintHeader(title string) {
	printLine(section.Render("\n▸ " + title))
}

// PrintStep prints an indented step
func PrintStep(step string) {
	printLine(indent.Render(label.Render("→") + " " + step))
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	printLine(success(message))
}

// PrintError prints an error message
func PrintError(message string) {
	printLine(failure(message))
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	printLine(warning(message))
}

// PrintInfo prints a dimmed note; multi-line text keeps its indentation
func PrintInfo(message string) {
	printLine(indent.Render(faint.Render(message)))
}

// PrintSeparator prints a visual separator
func PrintSeparator() {
	printLine(faint.Render(strings.Repeat("─", 45)))
}

// PrintKeyValue prints a key-value pair with nice formatting
func PrintKeyValue(key, value string) {
	printLine(indent.Render(label.Render(key+":") + " " + value))
}

// PrintRaw prints text unstyled, e.g. pre-highlighted source
func PrintRaw(text string) {
	fmt.Fprint(out, text)
}

// Table prints aligned columns with a header row
type Table struct {
	widths []int
}

// NewTable creates a table with the given column widths
func NewTable(widths ...int) *Table {
	return &Table{widths: widths}
}

// PrintHeader prints the header row and a separator line
func (t *Table) PrintHeader(headers ...string) {
	printLine(indent.Render(label.Render(t.row(headers))))

	separator := ""
	for i := range headers {
		if i >= len(t.widths) {
			break
		}
		separator += strings.Repeat("─", t.widths[i])
		if i < len(headers)-1 && i < len(t.widths)-1 {
			separator += "─┼─"
		}
	}
	printLine(indent.Render(faint.Render(separator)))
}

// PrintRow prints a formatted table row; numbers should be pre-formatted
func (t *Table) PrintRow(columns ...string) {
	if len(columns) == 0 {
		return
	}
	printLine(indent.Render(t.row(columns)))
}

func (t *Table) row(columns []string) string {
	row := ""
	for i, col := range columns {
		if i >= len(t.widths) {
			break
		}

		// Truncate or pad the column
		w := t.widths[i]
		if n := len([]rune(col)); n > w {
			col = string([]rune(col)[:w-1]) + "…"
		} else {
			col = strings.Repeat(" ", w-n) + col
		}

		row += col
		if i < len(columns)-1 && i < len(t.widths)-1 {
			row += " │ "
		}
	}
	return row
}
