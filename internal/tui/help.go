package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/simple-calc/calc/internal/menu"
)

// DefaultHelpStyle is the glamour style used for the help overlay.
const DefaultHelpStyle = "dark"

// helpMarkdown builds the help page shown by the "?" overlay.
func helpMarkdown(ansToken string) string {
	var b strings.Builder
	b.WriteString("# Simple Calculator\n\n")
	b.WriteString("Pick an entry from the menu by pressing its number.\n\n")
	b.WriteString("| Key | Action |\n|-----|--------|\n")
	for _, it := range menu.Items() {
		fmt.Fprintf(&b, "| %d | %s |\n", it.Key, it.Label)
	}
	b.WriteString("\n## Operands\n\n")
	fmt.Fprintf(&b, "- Type a number, or `%s` for the current result.\n", ansToken)
	b.WriteString("- After a result you can chain: the next operation starts from it.\n")
	b.WriteString("- Square root always asks for its operand.\n")
	b.WriteString("- `esc` abandons the operation without changing anything.\n")
	return b.String()
}

// renderHelp renders the help page with glamour, falling back to the raw
// markdown when the renderer cannot be built.
func renderHelp(style string, width int, ansToken string) string {
	md := helpMarkdown(ansToken)
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
