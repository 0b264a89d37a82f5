// Package menu turns raw menu selections into a closed set of choices.
package menu

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/simple-calc/calc/internal/calc"
)

// Number of entries in the main menu.
const Size = 9

var (
	ErrNotANumber = fmt.Errorf("menu selection is not a number: %w", calc.ErrInvalidInput)
	ErrOutOfRange = fmt.Errorf("menu selection must be between 1 and %d: %w", Size, calc.ErrInvalidInput)
)

// Choice is one of Calculate, ShowHistory, ClearHistory or Exit.
type Choice interface {
	isChoice()
}

// Calculate selects an arithmetic operation.
type Calculate struct {
	Op calc.Operation
}

// ShowHistory lists past calculations.
type ShowHistory struct{}

// ClearHistory empties the history.
type ClearHistory struct{}

// Exit ends the session.
type Exit struct{}

func (Calculate) isChoice()    {}
func (ShowHistory) isChoice()  {}
func (ClearHistory) isChoice() {}
func (Exit) isChoice()         {}

// Item is a rendered menu line.
type Item struct {
	Key    int
	Label  string
	Choice Choice
}

// Items returns the menu in display order.
func Items() []Item {
	items := make([]Item, 0, Size)
	for i, op := range calc.Operations {
		items = append(items, Item{
			Key:    i + 1,
			Label:  fmt.Sprintf("%s (%s)", op, op.Symbol()),
			Choice: Calculate{Op: op},
		})
	}
	return append(items,
		Item{Key: 7, Label: "Show Calculation History", Choice: ShowHistory{}},
		Item{Key: 8, Label: "Clear History", Choice: ClearHistory{}},
		Item{Key: 9, Label: "Exit", Choice: Exit{}},
	)
}

// Parse maps the text a user typed to a Choice.
func Parse(text string) (Choice, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return nil, ErrNotANumber
	}
	return FromKey(n)
}

// FromKey maps a menu number to a Choice.
func FromKey(n int) (Choice, error) {
	if n < 1 || n > Size {
		return nil, ErrOutOfRange
	}
	return Items()[n-1].Choice, nil
}

// Message is the user-facing text for a Parse error.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrOutOfRange):
		return fmt.Sprintf("Please enter a number between 1 and %d.", Size)
	default:
		return fmt.Sprintf("Invalid input! Please enter a number between 1 and %d.", Size)
	}
}
