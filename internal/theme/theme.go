// Package theme provides the Lip Gloss color palette and reusable styles
// for the calculator TUI. It is a leaf package apart from calc.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/simple-calc/calc/internal/calc"
)

// Operation colors.
var (
	ColorAdd        = lipgloss.Color("#22c55e")
	ColorSubtract   = lipgloss.Color("#f59e0b")
	ColorMultiply   = lipgloss.Color("#3b82f6")
	ColorDivide     = lipgloss.Color("#a855f7")
	ColorPower      = lipgloss.Color("#06b6d4")
	ColorSquareRoot = lipgloss.Color("#ec4899")
	ColorDefault    = lipgloss.Color("#9ca3af")
)

// UI chrome colors.
var (
	ColorBorder  = lipgloss.Color("#4b5563")
	ColorDimmed  = lipgloss.Color("#6b7280")
	ColorBright  = lipgloss.Color("#f9fafb")
	ColorSuccess = lipgloss.Color("#16a34a")
	ColorWarning = lipgloss.Color("#d97706")
	ColorDanger  = lipgloss.Color("#dc2626")
)

// OperationColor returns the accent color for an operation.
func OperationColor(op calc.Operation) lipgloss.Color {
	switch op {
	case calc.OpAdd:
		return ColorAdd
	case calc.OpSubtract:
		return ColorSubtract
	case calc.OpMultiply:
		return ColorMultiply
	case calc.OpDivide:
		return ColorDivide
	case calc.OpPower:
		return ColorPower
	case calc.OpSquareRoot:
		return ColorSquareRoot
	default:
		return ColorDefault
	}
}

// Reusable styles.
var (
	StyleBorder = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	StyleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBright)

	StyleDimmed = lipgloss.NewStyle().
			Foreground(ColorDimmed)

	StyleSelected = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBright)

	StyleError = lipgloss.NewStyle().
			Foreground(ColorDanger)

	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	StyleResult = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBright).
			Padding(0, 1).
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(ColorBorder)
)

// Panel returns the bordered panel style used by overlays.
func Panel(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Padding(1, 2).
		BorderStyle(lipgloss.DoubleBorder()).
		BorderForeground(ColorBorder)
}
