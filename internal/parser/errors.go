package parser

import "fmt"

// Error reports a SyntaxError: an expected token that wasn't found, an
// invalid assignment target, an unexpected token in primary position, or
// unexpected end of input.
type Error struct {
	Line    int
	Column  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d:%d] SyntaxError: %s", e.Line, e.Column, e.Message)
}

func newError(line, column int, format string, args ...interface{}) *Error {
	return &Error{Line: line, Column: column, Message: fmt.Sprintf(format, args...)}
}
