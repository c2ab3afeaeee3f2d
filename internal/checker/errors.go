package checker

import "fmt"

// Error reports a ScopeError or a static TypeError found during the
// pre-check pass: duplicate parameter, undefined name, arity/type mismatch on a known built-in, or an operand/target type
// that is statically known to be incompatible.
type Error struct {
	Line    int
	Column  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d:%d] ScopeError: %s", e.Line, e.Column, e.Message)
}

func newError(line, column int, format string, args ...interface{}) *Error {
	return &Error{Line: line, Column: column, Message: fmt.Sprintf(format, args...)}
}
