package eval

import (
	"github.com/limem01/kira-lang/object"
	"github.com/limem01/kira-lang/parser"
)

func (e *Evaluator) evalStatement(node parser.Statement, env *object.Environment) (object.Value, Signal, error) {
	switch n := node.(type) {
	case *parser.ExpressionStatement:
		return e.evalExpression(n.Expression, env)
	case *parser.LetStatement:
		return e.evalLetStatement(n, env)
	case *parser.ConstStatement:
		return e.evalConstStatement(n, env)
	case *parser.AssignStatement:
		return e.evalAssignStatement(n, env)
	case *parser.IndexAssignStatement:
		return e.evalIndexAssignStatement(n, env)
	case *parser.ReturnStatement:
		return e.evalReturnStatement(n, env)
	case *parser.WhileStatement:
		return e.evalWhileStatement(n, env)
	case *parser.ForStatement:
		return e.evalForStatement(n, env)
	case *parser.BreakStatement:
		return object.NullValue, SigBreak, nil
	case *parser.ContinueStatement:
		return object.NullValue, SigContinue, nil
	case *parser.FunctionDeclaration:
		return e.evalFunctionDeclaration(n, env)
	case *parser.BlockStatement:
		return e.evalBlockStatement(n, env)
	default:
		return nil, SigNone, errf(0, 0, "unknown statement node %T", node)
	}
}

// evalBlockStatement evaluates every statement in order; its value is
// that of the last evaluated statement. A non-local exit from any
// statement stops the block immediately and propagates upward.
func (e *Evaluator) evalBlockStatement(block *parser.BlockStatement, env *object.Environment) (object.Value, Signal, error) {
	var result object.Value = object.NullValue
	for _, stmt := range block.Statements {
		val, sig, err := e.evalStatement(stmt, env)
		if err != nil {
			return nil, SigNone, err
		}
		if sig != SigNone {
			return val, sig, nil
		}
		result = val
	}
	return result, SigNone, nil
}

func (e *Evaluator) evalLetStatement(n *parser.LetStatement, env *object.Environment) (object.Value, Signal, error) {
	if env.DefinedConstLocally(n.Name) {
		return nil, SigNone, e.posErr(n.Token, "cannot reassign constant '%s'", n.Name)
	}
	val, sig, err := e.evalExpression(n.Value, env)
	if err != nil || sig != SigNone {
		return val, sig, err
	}
	env.Define(n.Name, val, false)
	return object.NullValue, SigNone, nil
}

func (e *Evaluator) evalConstStatement(n *parser.ConstStatement, env *object.Environment) (object.Value, Signal, error) {
	if env.DefinedConstLocally(n.Name) {
		return nil, SigNone, e.posErr(n.Token, "cannot reassign constant '%s'", n.Name)
	}
	val, sig, err := e.evalExpression(n.Value, env)
	if err != nil || sig != SigNone {
		return val, sig, err
	}
	env.Define(n.Name, val, true)
	return object.NullValue, SigNone, nil
}

func (e *Evaluator) evalAssignStatement(n *parser.AssignStatement, env *object.Environment) (object.Value, Signal, error) {
	newVal, sig, err := e.evalExpression(n.Value, env)
	if err != nil || sig != SigNone {
		return newVal, sig, err
	}
	if n.Operator != "=" {
		current, ok := env.Get(n.Name)
		if !ok {
			return nil, SigNone, e.posErr(n.Token, "undefined variable '%s'", n.Name)
		}
		op := "+"
		if n.Operator == "-=" {
			op = "-"
		}
		combined, err := e.applyBinaryOp(op, current, newVal, n.Token)
		if err != nil {
			return nil, SigNone, err
		}
		newVal = combined
	}
	ok, violated := env.Assign(n.Name, newVal)
	if violated {
		return nil, SigNone, e.posErr(n.Token, "cannot reassign constant '%s'", n.Name)
	}
	if !ok {
		return nil, SigNone, e.posErr(n.Token, "undefined variable '%s'", n.Name)
	}
	return object.NullValue, SigNone, nil
}

func (e *Evaluator) evalIndexAssignStatement(n *parser.IndexAssignStatement, env *object.Environment) (object.Value, Signal, error) {
	target, sig, err := e.evalExpression(n.Left, env)
	if err != nil || sig != SigNone {
		return target, sig, err
	}
	idx, sig, err := e.evalExpression(n.Index, env)
	if err != nil || sig != SigNone {
		return idx, sig, err
	}
	newVal, sig, err := e.evalExpression(n.Value, env)
	if err != nil || sig != SigNone {
		return newVal, sig, err
	}

	if n.Operator != "=" {
		current, err := e.indexGet(target, idx, n.Token)
		if err != nil {
			return nil, SigNone, err
		}
		op := "+"
		if n.Operator == "-=" {
			op = "-"
		}
		combined, err := e.applyBinaryOp(op, current, newVal, n.Token)
		if err != nil {
			return nil, SigNone, err
		}
		newVal = combined
	}

	if err := e.indexSet(target, idx, newVal, n.Token); err != nil {
		return nil, SigNone, err
	}
	return object.NullValue, SigNone, nil
}

func (e *Evaluator) evalReturnStatement(n *parser.ReturnStatement, env *object.Environment) (object.Value, Signal, error) {
	if n.Value == nil {
		return object.NullValue, SigReturn, nil
	}
	val, sig, err := e.evalExpression(n.Value, env)
	if err != nil {
		return nil, SigNone, err
	}
	if sig != SigNone {
		return val, sig, nil
	}
	return val, SigReturn, nil
}

func (e *Evaluator) evalWhileStatement(n *parser.WhileStatement, env *object.Environment) (object.Value, Signal, error) {
	for {
		cond, sig, err := e.evalExpression(n.Condition, env)
		if err != nil || sig != SigNone {
			return cond, sig, err
		}
		if !object.Truthy(cond) {
			break
		}
		val, sig, err := e.evalBlockStatement(n.Body, object.NewChild(env))
		if err != nil {
			return nil, SigNone, err
		}
		switch sig {
		case SigBreak:
			return object.NullValue, SigNone, nil
		case SigReturn:
			return val, SigReturn, nil
		}
	}
	return object.NullValue, SigNone, nil
}

func (e *Evaluator) evalForStatement(n *parser.ForStatement, env *object.Environment) (object.Value, Signal, error) {
	iterable, sig, err := e.evalExpression(n.Iterable, env)
	if err != nil || sig != SigNone {
		return iterable, sig, err
	}
	items, err := e.iterate(iterable, n.Token)
	if err != nil {
		return nil, SigNone, err
	}
	for _, item := range items {
		loopEnv := object.NewChild(env)
		loopEnv.Define(n.Name, item, false)
		val, sig, err := e.evalBlockStatement(n.Body, loopEnv)
		if err != nil {
			return nil, SigNone, err
		}
		switch sig {
		case SigBreak:
			return object.NullValue, SigNone, nil
		case SigReturn:
			return val, SigReturn, nil
		}
	}
	return object.NullValue, SigNone, nil
}

func (e *Evaluator) evalFunctionDeclaration(n *parser.FunctionDeclaration, env *object.Environment) (object.Value, Signal, error) {
	fn := e.makeFunction(n.Name, n.Params, n.Body, env)
	env.Define(n.Name, fn, false)
	return object.NullValue, SigNone, nil
}
