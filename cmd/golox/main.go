// Command golox is the CLI entry point for the golox interpreter.
//
// Usage:
//
//	golox                          Start interactive REPL
//	golox <script>                 Run a source file
//	golox tokens <file> [--json]   Print tokens
//	golox parse  <file> [--json]   Print the parsed AST
//	golox run    <file>            Run a source file
//	golox repl                     Start interactive REPL
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golox/internal/ast"
	"golox/internal/lexer"
	"golox/internal/parser"
	"golox/internal/runtime"
)

// Process exit codes, following the BSD sysexits convention.
const (
	exitUsage   = 64 // command line usage error
	exitRuntime = 65 // runtime error in the interpreted program
	exitFailure = 70 // anything else: lexical, syntax, or I/O failure
)

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		os.Exit(cmdRepl())
	}

	switch args[0] {
	case "tokens":
		requireFile(args)
		cmdTokens(readFile(args[1]), hasFlag("--json"))
	case "parse":
		requireFile(args)
		cmdParse(readFile(args[1]), hasFlag("--json"))
	case "run":
		requireFile(args)
		cmdRun(readFile(args[1]))
	case "repl":
		os.Exit(cmdRepl())
	default:
		if len(args) == 1 && !strings.HasPrefix(args[0], "-") {
			cmdRun(readFile(args[0]))
			return
		}
		usage()
		os.Exit(exitUsage)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: golox [script]")
	fmt.Fprintln(os.Stderr, "  golox tokens <file> [--json]   Tokenize and print tokens")
	fmt.Fprintln(os.Stderr, "  golox parse  <file> [--json]   Parse and print the AST")
	fmt.Fprintln(os.Stderr, "  golox run    <file>            Run a source file")
	fmt.Fprintln(os.Stderr, "  golox repl                     Start interactive REPL")
}

func requireFile(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "error: missing file argument")
		usage()
		os.Exit(exitUsage)
	}
}

func readFile(filename string) string {
	source, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: cannot read file %s: %v\n", filename, err)
		os.Exit(exitFailure)
	}
	return string(source)
}

func hasFlag(flag string) bool {
	for _, arg := range os.Args[3:] {
		if arg == flag {
			return true
		}
	}
	return false
}

// exitCode maps an error from runSource to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if runtime.IsRuntime(err) {
		return exitRuntime
	}
	return exitFailure
}

// runSource runs one unit of source text through the whole pipeline.
// Any lexical diagnostic fails the scan as a whole: every diagnostic is
// reported and the collected tokens are discarded. A parse that produces
// no statement fails with its last diagnostic; recovered diagnostics are
// not reported when a statement did parse. The value of an expression
// statement is echoed to out.
func runSource(interp *runtime.Interpreter, source string, out, errw io.Writer) error {
	tokens, lexDiags := lexer.New(source).Tokenize()
	if len(lexDiags) > 0 {
		printDiags(errw, lexDiags)
		return fmt.Errorf("Error parsing code on line %d", tokens[len(tokens)-1].Line)
	}

	stmt, parseDiags := parser.New(tokens).Parse()
	if stmt == nil {
		if len(parseDiags) == 0 {
			return nil
		}
		printDiags(errw, parseDiags)
		return parseDiags[len(parseDiags)-1]
	}

	val, err := interp.Interpret(stmt)
	if err != nil {
		return err
	}
	if _, ok := stmt.(*ast.ExprStmt); ok {
		fmt.Fprintln(out, val)
	}
	return nil
}

// ---- tokens command ----

func cmdTokens(source string, jsonMode bool) {
	tokens, diags := lexer.New(source).Tokenize()

	if jsonMode {
		printTokensJSON(tokens, diags)
	} else {
		printTokensText(tokens, diags)
	}

	if len(diags) > 0 {
		os.Exit(exitFailure)
	}
}

// ---- parse command ----

func cmdParse(source string, jsonMode bool) {
	tokens, lexDiags := lexer.New(source).Tokenize()
	stmt, parseDiags := parser.New(tokens).Parse()
	allDiags := append(lexDiags, parseDiags...)

	if jsonMode {
		printJSON(map[string]interface{}{
			"ast":         ast.NodeToMap(stmt),
			"diagnostics": diagsToSlice(allDiags),
		})
	} else {
		if es, ok := stmt.(*ast.ExprStmt); ok {
			fmt.Println(ast.Print(es.Expression))
		} else if stmt != nil {
			printJSON(ast.NodeToMap(stmt))
		}
		printDiags(os.Stderr, allDiags)
	}

	if len(allDiags) > 0 {
		os.Exit(exitFailure)
	}
}

// ---- run command ----

func cmdRun(source string) {
	interp := runtime.NewInterpreter(os.Stdout)
	if err := runSource(interp, source, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}
