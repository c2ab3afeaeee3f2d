package interp

import "fmt"

// ErrorKind classifies a RuntimeError; it appears in the error's message
// text.
type ErrorKind string

const (
	TypeError  ErrorKind = "TypeError"
	NameError  ErrorKind = "NameError"
	IndexError ErrorKind = "IndexError"
	ArityError ErrorKind = "ArityError"
	CallError  ErrorKind = "CallError"
)

// Error reports a RuntimeError: a failure discovered while executing
// already-parsed, already-checked code. Line/Column are zero when the
// failing operation has no single source position (e.g. a native builtin
// validating its arguments).
type Error struct {
	Kind    ErrorKind
	Line    int
	Column  int
	Message string
}

func (e *Error) Error() string {
	if e.Line == 0 && e.Column == 0 {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("[%d:%d] %s: %s", e.Line, e.Column, e.Kind, e.Message)
}

func newError(kind ErrorKind, line, column int, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Line: line, Column: column, Message: fmt.Sprintf(format, args...)}
}

// typeErr, nameErr, etc. are constructors for the positioned form, used
// throughout the evaluator where a source position is always in hand.
func typeErr(line, column int, format string, args ...interface{}) *Error {
	return newError(TypeError, line, column, format, args...)
}

func nameErr(line, column int, format string, args ...interface{}) *Error {
	return newError(NameError, line, column, format, args...)
}

func indexErr(line, column int, format string, args ...interface{}) *Error {
	return newError(IndexError, line, column, format, args...)
}

func callErr(line, column int, format string, args ...interface{}) *Error {
	return newError(CallError, line, column, format, args...)
}

// The constructors below are exported for package stdlib: a native
// built-in has no AST position of its own to report, only its own name, so
// it raises a RuntimeError the same way the evaluator does minus the
// position.

// ArityErrorf reports a built-in called with the wrong number of arguments.
func ArityErrorf(format string, args ...interface{}) error {
	return newError(ArityError, 0, 0, format, args...)
}

// TypeErrorf reports a built-in called with an argument of the wrong kind,
// or an operation that hit a type-incompatible edge case (e.g. sqrt of a
// negative number).
func TypeErrorf(format string, args ...interface{}) error {
	return newError(TypeError, 0, 0, format, args...)
}

// IndexErrorf reports a built-in whose positional/index argument is out of
// range (insert/remove).
func IndexErrorf(format string, args ...interface{}) error {
	return newError(IndexError, 0, 0, format, args...)
}
