package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/simple-calc/calc/internal/config"
	"github.com/simple-calc/calc/internal/format"
	"github.com/simple-calc/calc/internal/observability"
	"github.com/simple-calc/calc/internal/repl"
	"github.com/simple-calc/calc/internal/session"
	"github.com/simple-calc/calc/internal/tui"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run starts the calculator and returns the process exit code: 0 on a
// normal exit or interrupt, 1 when the session cannot start.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", log.LstdFlags)

	fs := flag.NewFlagSet("calc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "Path to YAML config file")
	useTUI := fs.Bool("tui", false, "Use the full-screen terminal UI")
	debug := fs.Bool("debug", false, "Log session events to stderr")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Printf("Failed to start calculator: %v", err)
		return 1
	}
	if *useTUI {
		cfg.UI = config.UITUI
	}
	if *debug {
		cfg.Log.Level = config.LevelDebug
	}

	observer, err := newObserver(cfg, stderr)
	if err != nil {
		logger.Printf("Failed to start calculator: %v", err)
		return 1
	}

	sess := session.New(
		session.WithObserver(observer),
		session.WithAnsToken(cfg.AnsToken),
	)
	formatter := format.Formatter{Precision: cfg.Precision}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.UI == config.UITUI {
		m := tui.New(ctx, sess,
			tui.WithFormatter(formatter),
			tui.WithTimeLayout(cfg.TimeFormat),
		)
		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx), tea.WithInput(stdin), tea.WithOutput(stdout))
		final, err := p.Run()
		return finishTUI(final, err, stdout, logger)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		fmt.Fprintln(stdout, "\n\nProgram interrupted by user. Exiting...")
		os.Exit(0)
	}()

	loop := repl.New(sess, stdin, stdout,
		repl.WithFormatter(formatter),
		repl.WithTimeLayout(cfg.TimeFormat),
	)
	if err := loop.Run(ctx); err != nil {
		logger.Printf("Calculator stopped: %v", err)
	}
	return 0
}

// finishTUI reports how a TUI run ended and picks the exit code. Signals
// and recovered panics end the session normally; only other errors mean
// the program never started.
func finishTUI(final tea.Model, err error, stdout io.Writer, logger *log.Logger) int {
	switch {
	case errors.Is(err, tea.ErrInterrupted), errors.Is(err, tea.ErrProgramKilled):
		fmt.Fprintln(stdout, "Program interrupted by user. Exiting...")
		return 0
	case errors.Is(err, tea.ErrProgramPanic):
		logger.Printf("An unexpected error occurred: %v", err)
		return 0
	case err != nil:
		logger.Printf("Failed to start calculator: %v", err)
		return 1
	}

	if fm, ok := final.(tui.Model); ok {
		switch {
		case fm.Interrupted():
			fmt.Fprintln(stdout, "Program interrupted by user. Exiting...")
		case fm.Exited():
			fmt.Fprintln(stdout, "Thank you for using the Simple Calculator! Goodbye!")
		}
	}
	return 0
}

func newObserver(cfg *config.Config, w io.Writer) (observability.Observer, error) {
	level, on, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	if !on {
		return observability.NoOpObserver{}, nil
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return observability.NewSlogObserver(slog.New(handler)), nil
}
