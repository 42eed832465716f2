// Package diag provides diagnostic types for the lexer and parser.
package diag

import "fmt"

// Diagnostic represents a lexical or syntax error message.
type Diagnostic struct {
	Code    string `json:"code"`           // stable error code, e.g. "E1001"
	Message string `json:"message"`        // human-readable description
	Line    int    `json:"line"`           // 1-based source line, 0 when unknown
	Hint    string `json:"hint,omitempty"` // optional hint
}

// String returns a human-readable representation of the diagnostic.
func (d Diagnostic) String() string {
	msg := fmt.Sprintf("[%s] error on line %d: %s", d.Code, d.Line, d.Message)
	if d.Hint != "" {
		msg += " (hint: " + d.Hint + ")"
	}
	return msg
}

// Error makes a Diagnostic usable as an error value.
func (d Diagnostic) Error() string {
	return d.String()
}

// Errorf creates a diagnostic at the given line.
func Errorf(code string, line int, format string, args ...interface{}) Diagnostic {
	return Diagnostic{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Line:    line,
	}
}
