package calc

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Operation identifies one of the six arithmetic operations.
type Operation int

const (
	OpAdd Operation = iota
	OpSubtract
	OpMultiply
	OpDivide
	OpPower
	OpSquareRoot
)

// Operations lists every operation in menu order.
var Operations = []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide, OpPower, OpSquareRoot}

var operationNames = map[Operation]string{
	OpAdd:        "Addition",
	OpSubtract:   "Subtraction",
	OpMultiply:   "Multiplication",
	OpDivide:     "Division",
	OpPower:      "Power",
	OpSquareRoot: "Square Root",
}

var operationSymbols = map[Operation]string{
	OpAdd:        "+",
	OpSubtract:   "-",
	OpMultiply:   "*",
	OpDivide:     "/",
	OpPower:      "^",
	OpSquareRoot: "√",
}

var operationFromName = map[string]Operation{
	"addition":       OpAdd,
	"subtraction":    OpSubtract,
	"multiplication": OpMultiply,
	"division":       OpDivide,
	"power":          OpPower,
	"square root":    OpSquareRoot,
}

func (o Operation) String() string {
	if s, ok := operationNames[o]; ok {
		return s
	}
	return "unknown"
}

// Symbol returns the operator glyph shown in results and history.
func (o Operation) Symbol() string {
	if s, ok := operationSymbols[o]; ok {
		return s
	}
	return "?"
}

// Arity is the number of operands the operation consumes.
func (o Operation) Arity() int {
	if o == OpSquareRoot {
		return 1
	}
	return 2
}

// Valid reports whether o is one of the known operations.
func (o Operation) Valid() bool {
	_, ok := operationNames[o]
	return ok
}

// Prompts returns the operand prompts, one per operand.
func (o Operation) Prompts() []string {
	switch o {
	case OpDivide:
		return []string{"Enter numerator: ", "Enter denominator: "}
	case OpPower:
		return []string{"Enter base: ", "Enter exponent: "}
	case OpSquareRoot:
		return []string{"Enter number: "}
	default:
		return []string{"Enter first number: ", "Enter second number: "}
	}
}

// ParseOperation maps an operation name (case-insensitive) to its Operation.
func ParseOperation(name string) (Operation, error) {
	if op, ok := operationFromName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return op, nil
	}
	return 0, fmt.Errorf("unknown operation %q: %w", name, ErrInvalidInput)
}

func (o Operation) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("operation %d: %w", int(o), ErrInvalidInput)
	}
	return []byte(o.String()), nil
}

func (o *Operation) UnmarshalText(text []byte) error {
	op, err := ParseOperation(string(text))
	if err != nil {
		return err
	}
	*o = op
	return nil
}

func (o Operation) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

func (o *Operation) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	return o.UnmarshalText([]byte(s))
}
