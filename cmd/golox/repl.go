package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"

	"golox/internal/runtime"
)

// ---- ANSI colors ----

const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorCyan  = "\033[36m"
	colorGray  = "\033[90m"
	colorBold  = "\033[1m"
)

var colorEnabled = isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())

// colorize wraps s in the given ANSI color when stderr is a terminal.
func colorize(color, s string) string {
	if !colorEnabled {
		return s
	}
	return color + s + colorReset
}

// ---- repl command ----

// cmdRepl runs the interactive session and returns the process exit code.
// Runtime errors are reported and the session continues; any other error
// aborts it.
func cmdRepl() int {
	// History file path (~/.golox_history)
	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".golox_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            colorize(colorGreen, ">> "),
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "readline init failed: %v\n", err)
		return exitFailure
	}
	defer rl.Close()

	// Welcome banner
	fmt.Fprintf(rl.Stdout(), "%s %s\n\n",
		colorize(colorBold+colorCyan, "golox REPL"),
		colorize(colorGray, "(type 'exit' or Ctrl+D to quit)"))

	interp := runtime.NewInterpreter(rl.Stdout())
	var accumulated strings.Builder
	braceDepth := 0

	for {
		// Update prompt based on multi-line state
		if braceDepth > 0 {
			rl.SetPrompt(colorize(colorGray, ".. "))
		} else {
			rl.SetPrompt(colorize(colorGreen, ">> "))
		}

		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if braceDepth > 0 {
					// Cancel multi-line input
					accumulated.Reset()
					braceDepth = 0
					continue
				}
				fmt.Fprintln(rl.Stdout(), colorize(colorGray, "Ctrl-C"))
				continue
			}
			if err == io.EOF {
				break
			}
			fmt.Fprintf(os.Stderr, "readline error: %v\n", err)
			return exitFailure
		}

		// Exit command
		if braceDepth == 0 && strings.TrimSpace(line) == "exit" {
			break
		}

		// Count braces for multi-line input
		braceDepth += strings.Count(line, "{") - strings.Count(line, "}")
		accumulated.WriteString(line)
		accumulated.WriteString("\n")

		// If braces are unbalanced, keep reading
		if braceDepth > 0 {
			continue
		}
		braceDepth = 0

		source := accumulated.String()
		accumulated.Reset()

		if strings.TrimSpace(source) == "" {
			continue
		}

		if err := runSource(interp, source, rl.Stdout(), rl.Stderr()); err != nil {
			fmt.Fprintln(rl.Stderr(), colorize(colorRed, err.Error()))
			if runtime.IsRuntime(err) {
				continue
			}
			return exitCode(err)
		}
	}

	fmt.Fprintln(rl.Stdout(), "Goodbye")
	return 0
}
