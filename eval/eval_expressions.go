package eval

import (
	"github.com/limem01/kira-lang/function"
	"github.com/limem01/kira-lang/lexer"
	"github.com/limem01/kira-lang/object"
	"github.com/limem01/kira-lang/parser"
)

func (e *Evaluator) evalIdentifier(n *parser.Identifier, env *object.Environment) (object.Value, Signal, error) {
	if v, ok := env.Get(n.Name); ok {
		return v, SigNone, nil
	}
	if b, ok := e.Builtins[n.Name]; ok {
		return b, SigNone, nil
	}
	return nil, SigNone, e.posErr(n.Token, "undefined variable '%s'", n.Name)
}

func (e *Evaluator) evalArrayLiteral(n *parser.ArrayLiteral, env *object.Environment) (object.Value, Signal, error) {
	elems := make([]object.Value, 0, len(n.Elements))
	for _, expr := range n.Elements {
		v, sig, err := e.evalExpression(expr, env)
		if err != nil || sig != SigNone {
			return v, sig, err
		}
		elems = append(elems, v)
	}
	return &object.Array{Elements: elems}, SigNone, nil
}

func (e *Evaluator) evalDictLiteral(n *parser.DictLiteral, env *object.Environment) (object.Value, Signal, error) {
	dict := object.NewDict()
	for _, pair := range n.Pairs {
		key, sig, err := e.evalExpression(pair.Key, env)
		if err != nil || sig != SigNone {
			return key, sig, err
		}
		val, sig, err := e.evalExpression(pair.Value, env)
		if err != nil || sig != SigNone {
			return val, sig, err
		}
		if ok := dict.Set(key, val); !ok {
			return nil, SigNone, e.posErr(n.Token, "'%s' is not a valid dict key", key.Kind())
		}
	}
	return dict, SigNone, nil
}

func (e *Evaluator) evalIndexExpression(n *parser.IndexExpression, env *object.Environment) (object.Value, Signal, error) {
	left, sig, err := e.evalExpression(n.Left, env)
	if err != nil || sig != SigNone {
		return left, sig, err
	}
	idx, sig, err := e.evalExpression(n.Index, env)
	if err != nil || sig != SigNone {
		return idx, sig, err
	}
	v, err := e.indexGet(left, idx, n.Token)
	if err != nil {
		return nil, SigNone, err
	}
	return v, SigNone, nil
}

func (e *Evaluator) evalUnaryExpression(n *parser.UnaryExpression, env *object.Environment) (object.Value, Signal, error) {
	operand, sig, err := e.evalExpression(n.Operand, env)
	if err != nil || sig != SigNone {
		return operand, sig, err
	}
	switch n.Operator {
	case "-":
		switch v := operand.(type) {
		case object.Integer:
			return object.Integer{Value: -v.Value}, SigNone, nil
		case object.Float:
			return object.Float{Value: -v.Value}, SigNone, nil
		default:
			return nil, SigNone, e.posErr(n.Token, "unsupported operand type for unary -: '%s'", operand.Kind())
		}
	case "not":
		return object.NativeBool(!object.Truthy(operand)), SigNone, nil
	default:
		return nil, SigNone, e.posErr(n.Token, "unknown unary operator '%s'", n.Operator)
	}
}

func (e *Evaluator) evalBinaryExpression(n *parser.BinaryExpression, env *object.Environment) (object.Value, Signal, error) {
	// and/or short-circuit: the right operand is only evaluated when
	// it decides the result, and the deciding operand value itself is
	// returned (not a coerced boolean).
	if n.Operator == "and" || n.Operator == "or" {
		left, sig, err := e.evalExpression(n.Left, env)
		if err != nil || sig != SigNone {
			return left, sig, err
		}
		truthy := object.Truthy(left)
		if n.Operator == "and" && !truthy {
			return left, SigNone, nil
		}
		if n.Operator == "or" && truthy {
			return left, SigNone, nil
		}
		return e.evalExpression(n.Right, env)
	}

	left, sig, err := e.evalExpression(n.Left, env)
	if err != nil || sig != SigNone {
		return left, sig, err
	}
	right, sig, err := e.evalExpression(n.Right, env)
	if err != nil || sig != SigNone {
		return right, sig, err
	}
	v, err := e.applyBinaryOp(n.Operator, left, right, n.Token)
	if err != nil {
		return nil, SigNone, err
	}
	return v, SigNone, nil
}

func (e *Evaluator) evalIfExpression(n *parser.IfExpression, env *object.Environment) (object.Value, Signal, error) {
	cond, sig, err := e.evalExpression(n.Condition, env)
	if err != nil || sig != SigNone {
		return cond, sig, err
	}
	if object.Truthy(cond) {
		return e.evalBlockStatement(n.Consequence, object.NewChild(env))
	}
	if n.Alternative != nil {
		return e.evalBlockStatement(n.Alternative, object.NewChild(env))
	}
	return object.NullValue, SigNone, nil
}

func (e *Evaluator) evalFunctionLiteral(n *parser.FunctionLiteral, env *object.Environment) (object.Value, Signal, error) {
	return e.makeFunction(n.Name, n.Params, n.Body, env), SigNone, nil
}

func (e *Evaluator) makeFunction(name string, params []string, body *parser.BlockStatement, env *object.Environment) *function.Function {
	return &function.Function{Name: name, Params: params, Body: body, Env: env}
}

func (e *Evaluator) evalCallExpression(n *parser.CallExpression, env *object.Environment) (object.Value, Signal, error) {
	callee, sig, err := e.evalExpression(n.Callee, env)
	if err != nil || sig != SigNone {
		return callee, sig, err
	}

	args := make([]object.Value, 0, len(n.Args))
	for _, argExpr := range n.Args {
		v, sig, err := e.evalExpression(argExpr, env)
		if err != nil || sig != SigNone {
			return v, sig, err
		}
		args = append(args, v)
	}

	switch fn := callee.(type) {
	case *object.Builtin:
		v, err := fn.Fn(args)
		if err != nil {
			return nil, SigNone, e.posErr(n.Token, "%s", err.Error())
		}
		return v, SigNone, nil
	case *function.Function:
		return e.callFunction(fn, args, n.Token)
	default:
		return nil, SigNone, e.posErr(n.Token, "'%s' is not callable", callee.Kind())
	}
}

// callFunction binds args positionally in a fresh environment whose
// parent is the function's captured environment (not the caller's),
// evaluates the body, and catches Return at this boundary.
func (e *Evaluator) callFunction(fn *function.Function, args []object.Value, tok lexer.Token) (object.Value, Signal, error) {
	if len(args) != len(fn.Params) {
		return nil, SigNone, e.posErr(tok, "expected %d argument(s), got %d", len(fn.Params), len(args))
	}
	callEnv := object.NewChild(fn.Env)
	for i, param := range fn.Params {
		callEnv.Define(param, args[i], false)
	}
	val, sig, err := e.evalBlockStatement(fn.Body, callEnv)
	if err != nil {
		return nil, SigNone, err
	}
	switch sig {
	case SigReturn:
		return val, SigNone, nil
	case SigBreak:
		return nil, SigNone, e.posErr(tok, "break outside loop")
	case SigContinue:
		return nil, SigNone, e.posErr(tok, "continue outside loop")
	default:
		return val, SigNone, nil
	}
}
