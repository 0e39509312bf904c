// Package kira is the single entry point the core exposes to
// embedders: it wires the lexer, parser, and evaluator into one
// pipeline and maps the result to the exit-code contract of spec.md §6.
package kira

import (
	"fmt"
	"io"

	"github.com/limem01/kira-lang/eval"
	"github.com/limem01/kira-lang/lexer"
	"github.com/limem01/kira-lang/object"
	"github.com/limem01/kira-lang/parser"
)

// Eval lexes, parses, and evaluates source against env using ev for the
// print/println/input builtins' I/O. It returns the program's final
// value, or one of *lexer.Error, *parser.Error, *eval.Error.
func Eval(source string, ev *eval.Evaluator, env *object.Environment) (object.Value, error) {
	tokens, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	program, err := parser.Parse(tokens)
	if err != nil {
		return nil, err
	}
	return ev.Run(program, env)
}

// Run is the entry point named in spec.md §6: evaluate source against a
// fresh environment, writing print/println output to out and reading
// input() lines from in, and return the process exit code — 0 on
// success, 1 on any lexer, parser, runtime, or internal error. Any
// host-level panic escaping evaluation (a bug in the evaluator itself,
// not a category spec.md §4.4 already turns into a *Error) is caught
// here and reported as an Internal Error rather than crashing the
// process. Note that a genuine Go stack overflow from unbounded user
// recursion is a fatal runtime error, not a panic, and is not
// recoverable here; spec.md §5 only requires it be "otherwise makes no
// guarantee about," which this satisfies.
func Run(source string, out io.Writer, in io.Reader) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(out, "Internal Error: %v\n", r)
			code = 1
		}
	}()

	ev := eval.New(out, in)
	env := object.NewEnvironment()
	_, err := Eval(source, ev, env)
	if err == nil {
		return 0
	}
	fmt.Fprintln(out, formatError(err))
	return 1
}

// formatError passes through the three recognized error kinds (each
// already formats itself as "<Kind> Error at line L, column C: msg", or
// "<Kind> Error: msg" when no source position is known) and wraps
// anything else as an Internal Error per spec.md §7.
func formatError(err error) string {
	switch err.(type) {
	case *lexer.Error, *parser.Error, *eval.Error:
		return err.Error()
	default:
		return fmt.Sprintf("Internal Error: %v", err)
	}
}
