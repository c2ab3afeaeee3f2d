package lexer

import "fmt"

// Error reports a lexical failure: an unexpected character, a malformed
// number, an unterminated string, or an unterminated escape sequence. It carries
// the source position of the offending character so callers can report it
// without re-scanning.
type Error struct {
	Line    int
	Column  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d:%d] LexicalError: %s", e.Line, e.Column, e.Message)
}

func newError(line, column int, format string, args ...interface{}) *Error {
	return &Error{Line: line, Column: column, Message: fmt.Sprintf(format, args...)}
}
