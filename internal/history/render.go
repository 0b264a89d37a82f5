package history

import (
	"fmt"
	"io"
	"strings"

	"github.com/simple-calc/calc/internal/format"
)

// DefaultTimeLayout matches the HH:MM:SS timestamps shown in the table.
const DefaultTimeLayout = "15:04:05"

// Column widths of the history table.
const (
	timeWidth      = 10
	operationWidth = 25
	resultWidth    = 15
	tableWidth     = 60
)

// Render writes entries as a fixed-width table. An empty slice prints a
// single notice line instead.
func Render(w io.Writer, entries []Entry, f format.Formatter, timeLayout string) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "\nNo calculations in history.")
		return err
	}
	if timeLayout == "" {
		timeLayout = DefaultTimeLayout
	}

	var b strings.Builder
	rule := strings.Repeat("=", tableWidth)
	b.WriteString("\n" + rule + "\n")
	b.WriteString(center("CALCULATION HISTORY", tableWidth) + "\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "%-*s %-*s %-*s\n", timeWidth, "Time", operationWidth, "Operation", resultWidth, "Result")
	b.WriteString(strings.Repeat("-", tableWidth) + "\n")

	for _, e := range entries {
		fmt.Fprintf(&b, "%-*s %-*s %-*s\n",
			timeWidth, e.Timestamp.Format(timeLayout),
			operationWidth, f.Expression(e.Operation, e.Operands),
			resultWidth, f.Number(e.Result),
		)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func center(s string, width int) string {
	pad := (width - len(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
