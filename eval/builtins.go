package eval

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/limem01/kira-lang/object"
)

// registerBuiltins builds the flat name -> callable registry backing
// identifier resolution's fallback lookup. print/println/input close
// over e for I/O; everything else depends only on its arguments (push
// and pop mutate the array they are given).
func registerBuiltins(e *Evaluator) map[string]*object.Builtin {
	reg := map[string]*object.Builtin{}
	add := func(name string, fn object.BuiltinFunc) {
		reg[name] = &object.Builtin{Name: name, Fn: fn}
	}

	add("print", func(args []object.Value) (object.Value, error) {
		fmt.Fprint(e.Out, joinStr(args))
		return object.NullValue, nil
	})
	add("println", func(args []object.Value) (object.Value, error) {
		fmt.Fprintln(e.Out, joinStr(args))
		return object.NullValue, nil
	})
	add("input", func(args []object.Value) (object.Value, error) {
		switch len(args) {
		case 0:
		case 1:
			prompt, ok := args[0].(object.String)
			if !ok {
				return nil, wrongType("input", args[0])
			}
			fmt.Fprint(e.Out, prompt.Value)
		default:
			return nil, fmt.Errorf("input expects at most 1 argument, got %d", len(args))
		}
		line, err := e.GetInputReader().ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if err != nil && line == "" {
			return object.NullValue, nil
		}
		return object.String{Value: line}, nil
	})

	add("len", builtinLen)
	add("type", builtinType)
	add("str", builtinStr)
	add("int", builtinInt)
	add("float", builtinFloat)
	add("range", builtinRange)

	add("push", builtinPush)
	add("pop", builtinPop)
	add("first", builtinFirst)
	add("last", builtinLast)
	add("rest", builtinRest)
	add("keys", builtinKeys)
	add("values", builtinValues)

	add("abs", builtinAbs)
	add("min", builtinMin)
	add("max", builtinMax)
	add("sum", builtinSum)
	add("sorted", builtinSorted)
	add("reversed", builtinReversed)

	add("join", builtinJoin)
	add("split", builtinSplit)
	add("upper", builtinUpper)
	add("lower", builtinLower)
	add("strip", builtinStrip)
	add("replace", builtinReplace)
	add("contains", builtinContains)

	return reg
}

func joinStr(args []object.Value) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Str()
	}
	return strings.Join(parts, " ")
}

func wrongArgs(name string, want, got int) error {
	return fmt.Errorf("%s expects %d argument(s), got %d", name, want, got)
}

func wrongType(name string, arg object.Value) error {
	return fmt.Errorf("%s does not support argument of type '%s'", name, arg.Kind())
}

func builtinLen(args []object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, wrongArgs("len", 1, len(args))
	}
	switch v := args[0].(type) {
	case object.String:
		return object.Integer{Value: int64(len([]rune(v.Value)))}, nil
	case *object.Array:
		return object.Integer{Value: int64(len(v.Elements))}, nil
	case *object.Dict:
		return object.Integer{Value: int64(v.Len())}, nil
	default:
		return nil, wrongType("len", args[0])
	}
}

func builtinType(args []object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, wrongArgs("type", 1, len(args))
	}
	return object.String{Value: string(args[0].Kind())}, nil
}

func builtinStr(args []object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, wrongArgs("str", 1, len(args))
	}
	return object.String{Value: args[0].Str()}, nil
}

func builtinInt(args []object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, wrongArgs("int", 1, len(args))
	}
	switch v := args[0].(type) {
	case object.Integer:
		return v, nil
	case object.Float:
		return object.Integer{Value: int64(v.Value)}, nil
	case object.Boolean:
		if v.Value {
			return object.Integer{Value: 1}, nil
		}
		return object.Integer{Value: 0}, nil
	case object.String:
		n, err := strconv.ParseInt(strings.TrimSpace(v.Value), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %q to int", v.Value)
		}
		return object.Integer{Value: n}, nil
	default:
		return nil, wrongType("int", args[0])
	}
}

func builtinFloat(args []object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, wrongArgs("float", 1, len(args))
	}
	switch v := args[0].(type) {
	case object.Float:
		return v, nil
	case object.Integer:
		return object.Float{Value: float64(v.Value)}, nil
	case object.String:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Value), 64)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %q to float", v.Value)
		}
		return object.Float{Value: f}, nil
	default:
		return nil, wrongType("float", args[0])
	}
}

// builtinRange implements the well-known stride variant: range(stop),
// range(start, stop), range(start, stop, step).
func builtinRange(args []object.Value) (object.Value, error) {
	var start, stop, step int64 = 0, 0, 1
	ints := make([]int64, len(args))
	for i, a := range args {
		n, ok := a.(object.Integer)
		if !ok {
			return nil, fmt.Errorf("range arguments must be integers")
		}
		ints[i] = n.Value
	}
	switch len(ints) {
	case 1:
		stop = ints[0]
	case 2:
		start, stop = ints[0], ints[1]
	case 3:
		start, stop, step = ints[0], ints[1], ints[2]
		if step == 0 {
			return nil, fmt.Errorf("range step must not be zero")
		}
	default:
		return nil, fmt.Errorf("range expects 1, 2, or 3 arguments, got %d", len(args))
	}
	var out []object.Value
	if step > 0 {
		for i := start; i < stop; i += step {
			out = append(out, object.Integer{Value: i})
		}
	} else {
		for i := start; i > stop; i += step {
			out = append(out, object.Integer{Value: i})
		}
	}
	return &object.Array{Elements: out}, nil
}

func builtinPush(args []object.Value) (object.Value, error) {
	if len(args) != 2 {
		return nil, wrongArgs("push", 2, len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return nil, wrongType("push", args[0])
	}
	arr.Elements = append(arr.Elements, args[1])
	return arr, nil
}

func builtinPop(args []object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, wrongArgs("pop", 1, len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return nil, wrongType("pop", args[0])
	}
	if len(arr.Elements) == 0 {
		return nil, fmt.Errorf("pop from empty array")
	}
	last := arr.Elements[len(arr.Elements)-1]
	arr.Elements = arr.Elements[:len(arr.Elements)-1]
	return last, nil
}

func builtinFirst(args []object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, wrongArgs("first", 1, len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return nil, wrongType("first", args[0])
	}
	if len(arr.Elements) == 0 {
		return object.NullValue, nil
	}
	return arr.Elements[0], nil
}

func builtinLast(args []object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, wrongArgs("last", 1, len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return nil, wrongType("last", args[0])
	}
	if len(arr.Elements) == 0 {
		return object.NullValue, nil
	}
	return arr.Elements[len(arr.Elements)-1], nil
}

func builtinRest(args []object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, wrongArgs("rest", 1, len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return nil, wrongType("rest", args[0])
	}
	if len(arr.Elements) <= 1 {
		return &object.Array{}, nil
	}
	out := make([]object.Value, len(arr.Elements)-1)
	copy(out, arr.Elements[1:])
	return &object.Array{Elements: out}, nil
}

func builtinKeys(args []object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, wrongArgs("keys", 1, len(args))
	}
	d, ok := args[0].(*object.Dict)
	if !ok {
		return nil, wrongType("keys", args[0])
	}
	return &object.Array{Elements: d.Keys()}, nil
}

func builtinValues(args []object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, wrongArgs("values", 1, len(args))
	}
	d, ok := args[0].(*object.Dict)
	if !ok {
		return nil, wrongType("values", args[0])
	}
	return &object.Array{Elements: d.Values()}, nil
}

func builtinAbs(args []object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, wrongArgs("abs", 1, len(args))
	}
	switch v := args[0].(type) {
	case object.Integer:
		if v.Value < 0 {
			return object.Integer{Value: -v.Value}, nil
		}
		return v, nil
	case object.Float:
		if v.Value < 0 {
			return object.Float{Value: -v.Value}, nil
		}
		return v, nil
	default:
		return nil, wrongType("abs", args[0])
	}
}

func builtinMin(args []object.Value) (object.Value, error) {
	vals, err := numericArgsOrArray("min", args)
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("min of empty sequence")
	}
	best := vals[0]
	for _, v := range vals[1:] {
		if lt, ok := object.Less(v, best); ok && lt {
			best = v
		}
	}
	return best, nil
}

func builtinMax(args []object.Value) (object.Value, error) {
	vals, err := numericArgsOrArray("max", args)
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("max of empty sequence")
	}
	best := vals[0]
	for _, v := range vals[1:] {
		if lt, ok := object.Less(best, v); ok && lt {
			best = v
		}
	}
	return best, nil
}

func builtinSum(args []object.Value) (object.Value, error) {
	vals, err := numericArgsOrArray("sum", args)
	if err != nil {
		return nil, err
	}
	var isFloat bool
	var isum int64
	var fsum float64
	for _, v := range vals {
		switch n := v.(type) {
		case object.Integer:
			isum += n.Value
			fsum += float64(n.Value)
		case object.Float:
			isFloat = true
			fsum += n.Value
		default:
			return nil, wrongType("sum", v)
		}
	}
	if isFloat {
		return object.Float{Value: fsum}, nil
	}
	return object.Integer{Value: isum}, nil
}

// numericArgsOrArray accepts either a single array argument or a
// variadic list of values, matching min/max/sum's flexible call shape.
func numericArgsOrArray(name string, args []object.Value) ([]object.Value, error) {
	if len(args) == 1 {
		if arr, ok := args[0].(*object.Array); ok {
			return arr.Elements, nil
		}
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("%s expects at least 1 argument", name)
	}
	return args, nil
}

func builtinSorted(args []object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, wrongArgs("sorted", 1, len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return nil, wrongType("sorted", args[0])
	}
	out := make([]object.Value, len(arr.Elements))
	copy(out, arr.Elements)
	var sortErr error
	sort.SliceStable(out, func(i, j int) bool {
		lt, ok := object.Less(out[i], out[j])
		if !ok && sortErr == nil {
			sortErr = fmt.Errorf("cannot order '%s' and '%s'", out[i].Kind(), out[j].Kind())
		}
		return lt
	})
	if sortErr != nil {
		return nil, sortErr
	}
	return &object.Array{Elements: out}, nil
}

func builtinReversed(args []object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, wrongArgs("reversed", 1, len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return nil, wrongType("reversed", args[0])
	}
	out := make([]object.Value, len(arr.Elements))
	for i, v := range arr.Elements {
		out[len(out)-1-i] = v
	}
	return &object.Array{Elements: out}, nil
}

func builtinJoin(args []object.Value) (object.Value, error) {
	if len(args) != 2 {
		return nil, wrongArgs("join", 2, len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return nil, wrongType("join", args[0])
	}
	sep, ok := args[1].(object.String)
	if !ok {
		return nil, wrongType("join", args[1])
	}
	parts := make([]string, len(arr.Elements))
	for i, v := range arr.Elements {
		parts[i] = v.Str()
	}
	return object.String{Value: strings.Join(parts, sep.Value)}, nil
}

func builtinSplit(args []object.Value) (object.Value, error) {
	if len(args) != 2 {
		return nil, wrongArgs("split", 2, len(args))
	}
	s, ok := args[0].(object.String)
	if !ok {
		return nil, wrongType("split", args[0])
	}
	sep, ok := args[1].(object.String)
	if !ok {
		return nil, wrongType("split", args[1])
	}
	var parts []string
	if sep.Value == "" {
		parts = strings.Split(s.Value, "")
	} else {
		parts = strings.Split(s.Value, sep.Value)
	}
	out := make([]object.Value, len(parts))
	for i, p := range parts {
		out[i] = object.String{Value: p}
	}
	return &object.Array{Elements: out}, nil
}

func builtinUpper(args []object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, wrongArgs("upper", 1, len(args))
	}
	s, ok := args[0].(object.String)
	if !ok {
		return nil, wrongType("upper", args[0])
	}
	return object.String{Value: strings.ToUpper(s.Value)}, nil
}

func builtinLower(args []object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, wrongArgs("lower", 1, len(args))
	}
	s, ok := args[0].(object.String)
	if !ok {
		return nil, wrongType("lower", args[0])
	}
	return object.String{Value: strings.ToLower(s.Value)}, nil
}

func builtinStrip(args []object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, wrongArgs("strip", 1, len(args))
	}
	s, ok := args[0].(object.String)
	if !ok {
		return nil, wrongType("strip", args[0])
	}
	return object.String{Value: strings.TrimSpace(s.Value)}, nil
}

func builtinReplace(args []object.Value) (object.Value, error) {
	if len(args) != 3 {
		return nil, wrongArgs("replace", 3, len(args))
	}
	s, ok := args[0].(object.String)
	if !ok {
		return nil, wrongType("replace", args[0])
	}
	old, ok := args[1].(object.String)
	if !ok {
		return nil, wrongType("replace", args[1])
	}
	new, ok := args[2].(object.String)
	if !ok {
		return nil, wrongType("replace", args[2])
	}
	return object.String{Value: strings.ReplaceAll(s.Value, old.Value, new.Value)}, nil
}

func builtinContains(args []object.Value) (object.Value, error) {
	if len(args) != 2 {
		return nil, wrongArgs("contains", 2, len(args))
	}
	switch v := args[0].(type) {
	case object.String:
		needle, ok := args[1].(object.String)
		if !ok {
			return nil, wrongType("contains", args[1])
		}
		return object.NativeBool(strings.Contains(v.Value, needle.Value)), nil
	case *object.Array:
		for _, e := range v.Elements {
			if object.Equal(e, args[1]) {
				return object.True, nil
			}
		}
		return object.False, nil
	case *object.Dict:
		_, ok := v.Get(args[1])
		return object.NativeBool(ok), nil
	default:
		return nil, wrongType("contains", args[0])
	}
}
