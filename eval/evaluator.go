// Package eval walks a parser.Program against an object.Environment,
// producing values and side effects.
package eval

import (
	"bufio"
	"io"

	"github.com/limem01/kira-lang/object"
	"github.com/limem01/kira-lang/parser"
)

// Runtime is the narrow surface builtins need back from the evaluator:
// just the input stream, since none of the built-ins spec.md lists take
// a user callback.
type Runtime interface {
	GetInputReader() *bufio.Reader
}

// Evaluator walks the AST against a root environment, dispatching node
// kinds through an explicit type switch (evalExpression/evalStatement)
// rather than reflection or a virtual-dispatch visitor.
type Evaluator struct {
	Builtins map[string]*object.Builtin
	Out      io.Writer
	in       *bufio.Reader
}

// New creates an Evaluator writing print/println output to out and
// reading input() lines from in.
func New(out io.Writer, in io.Reader) *Evaluator {
	e := &Evaluator{Out: out, in: bufio.NewReader(in)}
	e.Builtins = registerBuiltins(e)
	return e
}

func (e *Evaluator) GetInputReader() *bufio.Reader { return e.in }

// Run evaluates program against env and returns its final value (the
// value of the last top-level statement), or an error of type *Error.
func (e *Evaluator) Run(program *parser.Program, env *object.Environment) (object.Value, error) {
	var result object.Value = object.NullValue
	for _, stmt := range program.Statements {
		val, sig, err := e.evalStatement(stmt, env)
		if err != nil {
			return nil, err
		}
		switch sig {
		case SigReturn:
			return nil, errf(0, 0, "return outside function")
		case SigBreak:
			return nil, errf(0, 0, "break outside loop")
		case SigContinue:
			return nil, errf(0, 0, "continue outside loop")
		}
		result = val
	}
	return result, nil
}

// evalExpression evaluates an Expression node. Expressions normally
// produce SigNone, but an if-expression's taken block may contain a
// return/break/continue that must propagate to the nearest enclosing
// function call or loop, so the signal is threaded through here too.
func (e *Evaluator) evalExpression(node parser.Expression, env *object.Environment) (object.Value, Signal, error) {
	switch n := node.(type) {
	case *parser.IntegerLiteral:
		return object.Integer{Value: n.Value}, SigNone, nil
	case *parser.FloatLiteral:
		return object.Float{Value: n.Value}, SigNone, nil
	case *parser.StringLiteral:
		return object.String{Value: n.Value}, SigNone, nil
	case *parser.BooleanLiteral:
		return object.NativeBool(n.Value), SigNone, nil
	case *parser.NullLiteral:
		return object.NullValue, SigNone, nil
	case *parser.Identifier:
		return e.evalIdentifier(n, env)
	case *parser.ArrayLiteral:
		return e.evalArrayLiteral(n, env)
	case *parser.DictLiteral:
		return e.evalDictLiteral(n, env)
	case *parser.IndexExpression:
		return e.evalIndexExpression(n, env)
	case *parser.UnaryExpression:
		return e.evalUnaryExpression(n, env)
	case *parser.BinaryExpression:
		return e.evalBinaryExpression(n, env)
	case *parser.IfExpression:
		return e.evalIfExpression(n, env)
	case *parser.FunctionLiteral:
		return e.evalFunctionLiteral(n, env)
	case *parser.CallExpression:
		return e.evalCallExpression(n, env)
	default:
		return nil, SigNone, errf(0, 0, "unknown expression node %T", node)
	}
}
