// Package repl runs the calculator as a line-oriented menu loop over any
// reader and writer.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/simple-calc/calc/internal/calc"
	"github.com/simple-calc/calc/internal/format"
	"github.com/simple-calc/calc/internal/history"
	"github.com/simple-calc/calc/internal/menu"
	"github.com/simple-calc/calc/internal/session"
)

const (
	menuWidth   = 50
	resultWidth = 40
)

// Loop drives a Session from text input. It is not safe for concurrent use.
type Loop struct {
	sess       *session.Session
	in         *bufio.Reader
	out        io.Writer
	formatter  format.Formatter
	timeLayout string

	state   State
	pending calc.Operation
	last    history.Entry
}

// Option configures a Loop.
type Option func(*Loop)

// WithFormatter sets the number formatter used for all output.
func WithFormatter(f format.Formatter) Option {
	return func(l *Loop) {
		l.formatter = f
	}
}

// WithTimeLayout sets the time layout of the history table.
func WithTimeLayout(layout string) Option {
	return func(l *Loop) {
		if layout != "" {
			l.timeLayout = layout
		}
	}
}

// New creates a loop reading answers from in and writing prompts to out.
func New(sess *session.Session, in io.Reader, out io.Writer, opts ...Option) *Loop {
	l := &Loop{
		sess:       sess,
		in:         bufio.NewReader(in),
		out:        out,
		formatter:  format.New(),
		timeLayout: history.DefaultTimeLayout,
		state:      AwaitingMenuChoice,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// State returns the current phase of the loop.
func (l *Loop) State() State { return l.state }

// Session returns the session the loop drives.
func (l *Loop) Session() *session.Session { return l.sess }

// Run executes the loop until the user exits, input ends, or ctx is
// cancelled. Exit and end of input both return nil.
func (l *Loop) Run(ctx context.Context) error {
	l.printf("Welcome to the Simple Calculator!\n")
	l.printf("Tip: You can use '%s' to use the previous result in your next calculation.\n", l.sess.AnsToken())

	for l.state != Terminated {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := l.step(ctx)
		switch {
		case errors.Is(err, io.EOF):
			l.printf("\n\nInput closed. Exiting...\n")
			l.state = Terminated
		case err != nil:
			return err
		}
	}
	return nil
}

// step performs one state transition. A panic inside a transition is
// reported and the loop returns to the menu.
func (l *Loop) step(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			l.printf("\nAn unexpected error occurred: %v\nPlease try again.\n", r)
			l.state = AwaitingMenuChoice
			err = nil
		}
	}()

	switch l.state {
	case AwaitingMenuChoice:
		return l.awaitMenuChoice(ctx)
	case AwaitingOperands:
		return l.awaitOperands(ctx)
	case DisplayingResult:
		return l.displayResult(ctx)
	}
	return nil
}

func (l *Loop) awaitMenuChoice(ctx context.Context) error {
	l.displayMenu()

	var choice menu.Choice
	for choice == nil {
		line, err := l.readLine(fmt.Sprintf("Select operation (1-%d): ", menu.Size))
		if err != nil {
			return err
		}
		c, err := menu.Parse(line)
		if err != nil {
			l.printf("✗ %s\n", menu.Message(err))
			continue
		}
		choice = c
	}

	switch c := choice.(type) {
	case menu.Calculate:
		l.pending = c.Op
		l.state = AwaitingOperands
	case menu.ShowHistory:
		if err := history.Render(l.out, l.sess.History().Entries(), l.formatter, l.timeLayout); err != nil {
			return err
		}
	case menu.ClearHistory:
		l.sess.ClearHistory(ctx)
		l.printf("\n✓ Calculation history cleared!\n")
	case menu.Exit:
		l.printf("\nThank you for using the Simple Calculator! Goodbye!\n")
		l.state = Terminated
	}
	return nil
}

func (l *Loop) awaitOperands(ctx context.Context) error {
	op := l.pending
	prompts := op.Prompts()
	operands := make([]float64, 0, op.Arity())

	if v, ok := l.sess.ChainedOperand(op); ok {
		l.printf("Using previous result: %s\n", l.formatter.Number(v))
		operands = append(operands, v)
		prompts = prompts[1:]
	}

	for _, prompt := range prompts {
		v, err := l.readOperand(prompt)
		if err != nil {
			return err
		}
		operands = append(operands, v)
	}

	entry, err := l.sess.Calculate(ctx, op, operands...)
	if err != nil {
		l.printf("✗ Error: %s\n", capitalize(err.Error()))
		l.state = AwaitingMenuChoice
		return nil
	}

	l.last = entry
	l.state = DisplayingResult
	return nil
}

func (l *Loop) displayResult(ctx context.Context) error {
	rule := strings.Repeat("=", resultWidth)
	l.printf("\n%s\n%s\n%s\n", rule, center("CALCULATION RESULT", resultWidth), rule)
	l.printf("Operation: %s\n", l.formatter.Expression(l.last.Operation, l.last.Operands))
	l.printf("Result: %s\n", l.formatter.Number(l.last.Result))
	l.printf("%s\n", rule)

	again, err := l.confirm("\nDo you want to perform another operation with this result? (y/n): ")
	if err != nil {
		return err
	}
	l.sess.Chain(ctx, again)

	if !again {
		reset, err := l.confirm("Do you want to reset calculator? (y/n): ")
		if err != nil {
			return err
		}
		if reset {
			l.sess.Reset(ctx)
		}
	}

	l.state = AwaitingMenuChoice
	return nil
}

func (l *Loop) displayMenu() {
	rule := strings.Repeat("=", menuWidth)
	l.printf("\n%s\n%s\n%s\n", rule, center("SIMPLE CALCULATOR", menuWidth), rule)
	l.printf("Available Operations:\n")
	for _, it := range menu.Items() {
		l.printf("%d. %s\n", it.Key, it.Label)
	}
	l.printf("%s\n", rule)
}

// readOperand prompts until the answer parses. There is no retry limit.
func (l *Loop) readOperand(prompt string) (float64, error) {
	for {
		line, err := l.readLine(prompt)
		if err != nil {
			return 0, err
		}
		v, err := l.sess.ParseOperand(line)
		if err == nil {
			return v, nil
		}
		l.printf("✗ Invalid input! Please enter a valid number or '%s' for previous result.\n", l.sess.AnsToken())
	}
}

func (l *Loop) confirm(prompt string) (bool, error) {
	line, err := l.readLine(prompt)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}

// readLine returns the next input line without its terminator. A final
// unterminated line is returned as-is; io.EOF is reported only when no
// input remains.
func (l *Loop) readLine(prompt string) (string, error) {
	l.printf("%s", prompt)
	line, err := l.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (l *Loop) printf(msg string, args ...any) {
	fmt.Fprintf(l.out, msg, args...)
}

func center(s string, width int) string {
	pad := (width - len(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
