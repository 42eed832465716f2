package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golox/internal/diag"
	"golox/internal/token"
)

// ---- output helpers ----

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "error: JSON encoding failed: %v\n", err)
		os.Exit(exitFailure)
	}
}

func printDiags(w io.Writer, diags []diag.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintln(w, colorize(colorRed, d.String()))
	}
}

func diagsToSlice(diags []diag.Diagnostic) []map[string]interface{} {
	result := make([]map[string]interface{}, len(diags))
	for i, d := range diags {
		result[i] = map[string]interface{}{
			"code":    d.Code,
			"message": d.Message,
			"line":    d.Line,
		}
		if d.Hint != "" {
			result[i]["hint"] = d.Hint
		}
	}
	return result
}

// ---- token output helpers ----

func printTokensText(tokens []token.Token, diags []diag.Diagnostic) {
	for _, tok := range tokens {
		switch tok.Kind {
		case token.COMMENT, token.WHITESPACE:
			fmt.Printf("%-12s %-20q line %d\n", tok.Kind, tok.Lexeme, tok.Line)
		default:
			fmt.Printf("%-12s %-20s line %d\n", tok.Kind, tok.Lexeme, tok.Line)
		}
	}
	printDiags(os.Stderr, diags)
}

func printTokensJSON(tokens []token.Token, diags []diag.Diagnostic) {
	type tokenJSON struct {
		Kind   string  `json:"kind"`
		Lexeme string  `json:"lexeme"`
		Num    float32 `json:"num,omitempty"`
		Line   int     `json:"line"`
	}

	var toks []tokenJSON
	for _, tok := range tokens {
		toks = append(toks, tokenJSON{
			Kind:   tok.Kind.String(),
			Lexeme: tok.Lexeme,
			Num:    tok.Num,
			Line:   tok.Line,
		})
	}

	output := map[string]interface{}{
		"tokens":      toks,
		"diagnostics": diagsToSlice(diags),
	}
	printJSON(output)
}
