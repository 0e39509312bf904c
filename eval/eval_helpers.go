package eval

import (
	"github.com/limem01/kira-lang/lexer"
	"github.com/limem01/kira-lang/object"
)

func (e *Evaluator) posErr(tok lexer.Token, format string, args ...any) error {
	return errf(tok.Line, tok.Column, format, args...)
}

// iterate realizes for-loop iteration over arrays, strings, dicts, and
// ranges (ranges are themselves arrays, produced by the range builtin).
func (e *Evaluator) iterate(v object.Value, tok lexer.Token) ([]object.Value, error) {
	switch val := v.(type) {
	case *object.Array:
		out := make([]object.Value, len(val.Elements))
		copy(out, val.Elements)
		return out, nil
	case object.String:
		out := make([]object.Value, 0, len(val.Value))
		for _, r := range val.Value {
			out = append(out, object.String{Value: string(r)})
		}
		return out, nil
	case *object.Dict:
		return val.Keys(), nil
	default:
		return nil, e.posErr(tok, "'%s' is not iterable", v.Kind())
	}
}

func (e *Evaluator) indexGet(target, idx object.Value, tok lexer.Token) (object.Value, error) {
	switch t := target.(type) {
	case *object.Array:
		i, ok := idx.(object.Integer)
		if !ok {
			return nil, e.posErr(tok, "array index must be an integer, got %s", idx.Kind())
		}
		n := int64(len(t.Elements))
		if i.Value < 0 || i.Value >= n {
			return nil, e.posErr(tok, "index out of bounds")
		}
		return t.Elements[i.Value], nil
	case object.String:
		i, ok := idx.(object.Integer)
		if !ok {
			return nil, e.posErr(tok, "string index must be an integer, got %s", idx.Kind())
		}
		runes := []rune(t.Value)
		if i.Value < 0 || i.Value >= int64(len(runes)) {
			return nil, e.posErr(tok, "index out of bounds")
		}
		return object.String{Value: string(runes[i.Value])}, nil
	case *object.Dict:
		v, ok := t.Get(idx)
		if !ok {
			return nil, e.posErr(tok, "key not found: %s", idx.Repr())
		}
		return v, nil
	default:
		return nil, e.posErr(tok, "'%s' is not indexable", target.Kind())
	}
}

func (e *Evaluator) indexSet(target, idx, value object.Value, tok lexer.Token) error {
	switch t := target.(type) {
	case *object.Array:
		i, ok := idx.(object.Integer)
		if !ok {
			return e.posErr(tok, "array index must be an integer, got %s", idx.Kind())
		}
		n := int64(len(t.Elements))
		if i.Value < 0 || i.Value >= n {
			return e.posErr(tok, "index out of bounds")
		}
		t.Elements[i.Value] = value
		return nil
	case *object.Dict:
		if ok := t.Set(idx, value); !ok {
			return e.posErr(tok, "'%s' is not a valid dict key", idx.Kind())
		}
		return nil
	default:
		return e.posErr(tok, "'%s' does not support index assignment", target.Kind())
	}
}
