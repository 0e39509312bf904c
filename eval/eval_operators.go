package eval

import (
	"math"
	"strings"

	"github.com/limem01/kira-lang/lexer"
	"github.com/limem01/kira-lang/object"
)

// applyBinaryOp implements +, -, *, /, %, **, and the four comparison
// and two equality operators. and/or are handled in evalBinaryExpression
// because they short-circuit.
func (e *Evaluator) applyBinaryOp(op string, left, right object.Value, tok lexer.Token) (object.Value, error) {
	switch op {
	case "+":
		return e.applyPlus(left, right, tok)
	case "-", "*", "/", "%", "**":
		return e.applyArith(op, left, right, tok)
	case "==":
		return object.NativeBool(object.Equal(left, right)), nil
	case "!=":
		return object.NativeBool(!object.Equal(left, right)), nil
	case "<", ">", "<=", ">=":
		return e.applyCompare(op, left, right, tok)
	default:
		return nil, e.posErr(tok, "unknown operator '%s'", op)
	}
}

func (e *Evaluator) applyPlus(left, right object.Value, tok lexer.Token) (object.Value, error) {
	_, lStr := left.(object.String)
	_, rStr := right.(object.String)
	if lStr || rStr {
		return object.String{Value: left.Str() + right.Str()}, nil
	}
	if lArr, ok := left.(*object.Array); ok {
		if rArr, ok := right.(*object.Array); ok {
			elems := make([]object.Value, 0, len(lArr.Elements)+len(rArr.Elements))
			elems = append(elems, lArr.Elements...)
			elems = append(elems, rArr.Elements...)
			return &object.Array{Elements: elems}, nil
		}
	}
	return numericBinary(left, right, tok, func(a, b int64) (int64, error) { return a + b, nil }, func(a, b float64) float64 { return a + b }, e)
}

func (e *Evaluator) applyArith(op string, left, right object.Value, tok lexer.Token) (object.Value, error) {
	if op == "*" {
		if s, ok := left.(object.String); ok {
			if n, ok := right.(object.Integer); ok {
				return object.String{Value: strings.Repeat(s.Value, clampRepeat(n.Value))}, nil
			}
		}
		if n, ok := left.(object.Integer); ok {
			if s, ok := right.(object.String); ok {
				return object.String{Value: strings.Repeat(s.Value, clampRepeat(n.Value))}, nil
			}
		}
		if arr, ok := left.(*object.Array); ok {
			if n, ok := right.(object.Integer); ok {
				return repeatArray(arr, n.Value), nil
			}
		}
		if n, ok := left.(object.Integer); ok {
			if arr, ok := right.(*object.Array); ok {
				return repeatArray(arr, n.Value), nil
			}
		}
	}

	switch op {
	case "-":
		return numericBinary(left, right, tok, func(a, b int64) (int64, error) { return a - b, nil }, func(a, b float64) float64 { return a - b }, e)
	case "*":
		return numericBinary(left, right, tok, func(a, b int64) (int64, error) { return a * b, nil }, func(a, b float64) float64 { return a * b }, e)
	case "/":
		lf, ok1 := asFloat(left)
		rf, ok2 := asFloat(right)
		if !ok1 || !ok2 {
			return nil, e.posErr(tok, "unsupported operand types for /: '%s' and '%s'", left.Kind(), right.Kind())
		}
		if rf == 0 {
			return nil, e.posErr(tok, "division by zero")
		}
		return object.Float{Value: lf / rf}, nil
	case "%":
		li, lok := left.(object.Integer)
		ri, rok := right.(object.Integer)
		if lok && rok {
			if ri.Value == 0 {
				return nil, e.posErr(tok, "division by zero")
			}
			m := li.Value % ri.Value
			if (m < 0) != (ri.Value < 0) && m != 0 {
				m += ri.Value
			}
			return object.Integer{Value: m}, nil
		}
		lf, ok1 := asFloat(left)
		rf, ok2 := asFloat(right)
		if !ok1 || !ok2 {
			return nil, e.posErr(tok, "unsupported operand types for %%: '%s' and '%s'", left.Kind(), right.Kind())
		}
		if rf == 0 {
			return nil, e.posErr(tok, "division by zero")
		}
		m := math.Mod(lf, rf)
		if (m < 0) != (rf < 0) && m != 0 {
			m += rf
		}
		return object.Float{Value: m}, nil
	case "**":
		li, lok := left.(object.Integer)
		ri, rok := right.(object.Integer)
		if lok && rok && ri.Value >= 0 {
			return object.Integer{Value: intPow(li.Value, ri.Value)}, nil
		}
		lf, ok1 := asFloat(left)
		rf, ok2 := asFloat(right)
		if !ok1 || !ok2 {
			return nil, e.posErr(tok, "unsupported operand types for **: '%s' and '%s'", left.Kind(), right.Kind())
		}
		return object.Float{Value: math.Pow(lf, rf)}, nil
	}
	return nil, e.posErr(tok, "unsupported operand types for %s: '%s' and '%s'", op, left.Kind(), right.Kind())
}

func (e *Evaluator) applyCompare(op string, left, right object.Value, tok lexer.Token) (object.Value, error) {
	lt, ok := object.Less(left, right)
	if !ok {
		return nil, e.posErr(tok, "unsupported comparison between '%s' and '%s'", left.Kind(), right.Kind())
	}
	switch op {
	case "<":
		return object.NativeBool(lt), nil
	case ">":
		return object.NativeBool(!lt && !object.Equal(left, right)), nil
	case "<=":
		return object.NativeBool(lt || object.Equal(left, right)), nil
	case ">=":
		return object.NativeBool(!lt), nil
	}
	return nil, e.posErr(tok, "unknown comparison operator '%s'", op)
}

func numericBinary(left, right object.Value, tok lexer.Token, intOp func(a, b int64) (int64, error), floatOp func(a, b float64) float64, e *Evaluator) (object.Value, error) {
	li, lIsInt := left.(object.Integer)
	ri, rIsInt := right.(object.Integer)
	if lIsInt && rIsInt {
		v, err := intOp(li.Value, ri.Value)
		if err != nil {
			return nil, e.posErr(tok, "%s", err.Error())
		}
		return object.Integer{Value: v}, nil
	}
	lf, ok1 := asFloat(left)
	rf, ok2 := asFloat(right)
	if !ok1 || !ok2 {
		return nil, e.posErr(tok, "unsupported operand types: '%s' and '%s'", left.Kind(), right.Kind())
	}
	return object.Float{Value: floatOp(lf, rf)}, nil
}

func asFloat(v object.Value) (float64, bool) {
	switch n := v.(type) {
	case object.Integer:
		return float64(n.Value), true
	case object.Float:
		return n.Value, true
	default:
		return 0, false
	}
}

func clampRepeat(n int64) int {
	if n < 0 {
		return 0
	}
	return int(n)
}

func repeatArray(arr *object.Array, n int64) *object.Array {
	if n < 0 {
		n = 0
	}
	out := make([]object.Value, 0, len(arr.Elements)*int(n))
	for i := int64(0); i < n; i++ {
		out = append(out, arr.Elements...)
	}
	return &object.Array{Elements: out}
}

func intPow(base, exp int64) int64 {
	result := int64(1)
	for i := int64(0); i < exp; i++ {
		result *= base
	}
	return result
}
