package interp

import (
	"bytes"
	"fmt"
	"io"

	"github.com/glint-lang/glint/internal/checker"
	"github.com/glint-lang/glint/internal/parser"
)

// Interpret runs the whole pipeline — lex, parse, pre-check, evaluate —
// over src. Program output goes to out; any single diagnostic (a syntax
// error, the pre-check's collected violations, or the first runtime error)
// goes to errOut. It returns true only if every phase succeeded.
//
// register is called once with the new Interp before evaluation starts, so callers (package stdlib, or a test) can install the
// built-in catalog without this package needing to know it.
func Interpret(src string, out io.Writer, errOut io.Writer, in io.Reader, register func(it *Interp)) bool {
	p, err := parser.New(src)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return false
	}
	program, err := p.Parse()
	if err != nil {
		fmt.Fprintln(errOut, err)
		return false
	}

	var checkOut bytes.Buffer
	if !checker.Check(program, &checkOut) {
		io.Copy(errOut, &checkOut)
		return false
	}

	it := New(out, in)
	if register != nil {
		register(it)
	}

	if err := it.Run(program); err != nil {
		fmt.Fprintln(errOut, err)
		return false
	}
	return true
}

// RunSource parses and pre-checks src, then runs it against an already
// constructed Interp instead of building a fresh one. This is what the REPL
// uses: each line shares one Interp (and so one Globals chain), so names
// defined on one line stay visible to the next. Returns true only if every
// phase succeeded; any single diagnostic goes to errOut.
func RunSource(it *Interp, src string, errOut io.Writer) bool {
	p, err := parser.New(src)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return false
	}
	program, err := p.Parse()
	if err != nil {
		fmt.Fprintln(errOut, err)
		return false
	}

	var checkOut bytes.Buffer
	if !checker.Check(program, &checkOut) {
		io.Copy(errOut, &checkOut)
		return false
	}

	if err := it.Run(program); err != nil {
		fmt.Fprintln(errOut, err)
		return false
	}
	return true
}
