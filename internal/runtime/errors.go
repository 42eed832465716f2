package runtime

import (
	"errors"
	"fmt"
)

// RuntimeError represents a generic error during interpretation.
type RuntimeError struct {
	Message string
	Line    int
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error on line %d: %s", e.Line, e.Message)
}

func runtimeErr(line int, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Message: fmt.Sprintf(format, args...), Line: line}
}

// TypeError represents a failed coercion of a value to the type an
// operator requires.
type TypeError struct {
	Expected string
	Actual   string
	Line     int
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("Type error on line %d: expected %s, got %s", e.Line, e.Expected, e.Actual)
}

// UndefinedVariableError represents a read of, or assignment to, a name
// with no binding in any enclosing scope. Line is the line of the use,
// not of any declaration.
type UndefinedVariableError struct {
	Name string
	Line int
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable '%s' on line %d", e.Name, e.Line)
}

// IsRuntime reports whether err is one of the interpreter's runtime error
// kinds. An interactive session continues only after these; lexical,
// syntax, and I/O errors abort it.
func IsRuntime(err error) bool {
	var re *RuntimeError
	var te *TypeError
	var ue *UndefinedVariableError
	return errors.As(err, &re) || errors.As(err, &te) || errors.As(err, &ue)
}
