package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/limem01/kira-lang/lexer"
	"github.com/limem01/kira-lang/object"
	"github.com/limem01/kira-lang/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSrc(t *testing.T, src string) (object.Value, *bytes.Buffer) {
	t.Helper()
	tokens, err := lexer.Tokenize(src)
	require.NoError(t, err)
	program, err := parser.Parse(tokens)
	require.NoError(t, err)
	var out bytes.Buffer
	ev := New(&out, strings.NewReader(""))
	result, err := ev.Run(program, object.NewEnvironment())
	require.NoError(t, err)
	return result, &out
}

func runSrcErr(t *testing.T, src string) error {
	t.Helper()
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return err
	}
	program, err := parser.Parse(tokens)
	if err != nil {
		return err
	}
	var out bytes.Buffer
	ev := New(&out, strings.NewReader(""))
	_, err = ev.Run(program, object.NewEnvironment())
	return err
}

func TestIntegerArithmetic(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"5", 5},
		{"-5", -5},
		{"1 + 2 * 3 ** 2", 19},
		{"2 ** 3 ** 2", 512},
		{"7 % 3", 1},
		{"-7 % 3", 2},
	}
	for _, tt := range tests {
		result, _ := runSrc(t, tt.input)
		i, ok := result.(object.Integer)
		require.True(t, ok, "input %q: expected integer, got %T", tt.input, result)
		assert.Equal(t, tt.expected, i.Value, "input %q", tt.input)
	}
}

func TestDivisionAlwaysFloat(t *testing.T) {
	result, _ := runSrc(t, "10 / 2")
	f, ok := result.(object.Float)
	require.True(t, ok)
	assert.Equal(t, 5.0, f.Value)
}

func TestDivisionByZero(t *testing.T) {
	err := runSrcErr(t, "1 / 0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "division by zero")
}

func TestStringConcatenationCoercesOperands(t *testing.T) {
	result, _ := runSrc(t, `"n=" + 5`)
	assert.Equal(t, "n=5", result.(object.String).Value)
}

func TestArrayConcatenation(t *testing.T) {
	result, _ := runSrc(t, "[1, 2] + [3]")
	arr := result.(*object.Array)
	assert.Len(t, arr.Elements, 3)
}

func TestStringAndArrayRepeat(t *testing.T) {
	result, _ := runSrc(t, `"ab" * 3`)
	assert.Equal(t, "ababab", result.(object.String).Value)

	result, _ = runSrc(t, "[1, 2] * 2")
	arr := result.(*object.Array)
	assert.Len(t, arr.Elements, 4)
}

func TestNotOperatorAndPrecedence(t *testing.T) {
	result, _ := runSrc(t, "not true or true")
	assert.Equal(t, true, result.(object.Boolean).Value)
}

func TestShortCircuitAndOr(t *testing.T) {
	// error_expr would raise undefined-variable if evaluated.
	result, _ := runSrc(t, "false and error_expr")
	assert.Equal(t, false, result.(object.Boolean).Value)

	result, _ = runSrc(t, "true or error_expr")
	assert.Equal(t, true, result.(object.Boolean).Value)

	result, _ = runSrc(t, "0 and 5")
	assert.Equal(t, int64(0), result.(object.Integer).Value)

	result, _ = runSrc(t, "3 or 5")
	assert.Equal(t, int64(3), result.(object.Integer).Value)
}

func TestClosureCapture(t *testing.T) {
	result, _ := runSrc(t, `
		let mk = fn(x) { fn(y) { x + y } };
		let f = mk(10);
		let g = mk(20);
		[f(1), g(1)]
	`)
	arr := result.(*object.Array)
	assert.Equal(t, int64(11), arr.Elements[0].(object.Integer).Value)
	assert.Equal(t, int64(21), arr.Elements[1].(object.Integer).Value)
}

func TestClosureSharesMutableEnvironment(t *testing.T) {
	result, _ := runSrc(t, `
		let make = fn() { let n = 0; fn() { n = n + 1; n } };
		let c = make();
		[c(), c(), c()]
	`)
	arr := result.(*object.Array)
	assert.Equal(t, int64(1), arr.Elements[0].(object.Integer).Value)
	assert.Equal(t, int64(2), arr.Elements[1].(object.Integer).Value)
	assert.Equal(t, int64(3), arr.Elements[2].(object.Integer).Value)
}

func TestConstReassignmentFails(t *testing.T) {
	err := runSrcErr(t, "const k = 1; k = 2;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot reassign constant")

	err = runSrcErr(t, "const k = 1; k += 1;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot reassign constant")
}

func TestRedeclaringLetOverConstInSameScopeFails(t *testing.T) {
	err := runSrcErr(t, "const k = 1; let k = 2;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot reassign constant")
}

func TestLetShadowsConstFromOuterScope(t *testing.T) {
	result, _ := runSrc(t, `
		const k = 1;
		fn f() { let k = 2; k }
		[f(), k]
	`)
	arr := result.(*object.Array)
	assert.Equal(t, int64(2), arr.Elements[0].(object.Integer).Value)
	assert.Equal(t, int64(1), arr.Elements[1].(object.Integer).Value)
}

func TestIndexAssignmentSymmetry(t *testing.T) {
	result, _ := runSrc(t, `let a = [1, 2, 3]; a[1] = 9; a[1]`)
	assert.Equal(t, int64(9), result.(object.Integer).Value)

	result, _ = runSrc(t, `let d = {}; d["x"] = 9; d["x"]`)
	assert.Equal(t, int64(9), result.(object.Integer).Value)
}

func TestIndexOutOfBounds(t *testing.T) {
	err := runSrcErr(t, "let a = [1, 2]; a[5]")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index out of bounds")
}

func TestDictKeyNotFound(t *testing.T) {
	err := runSrcErr(t, `let d = {}; d["missing"]`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key not found")
}

func TestArityMismatch(t *testing.T) {
	err := runSrcErr(t, "fn add(a, b) { a + b }; add(1)")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "argument")
}

func TestReturnBreakContinueOutsideContext(t *testing.T) {
	assert.Error(t, runSrcErr(t, "return 1"))
	assert.Error(t, runSrcErr(t, "break"))
	assert.Error(t, runSrcErr(t, "continue"))
}

func TestReturnInsideLoopPropagatesValue(t *testing.T) {
	result, _ := runSrc(t, `
		fn find() {
			for x in [1, 2, 3] {
				if x == 2 { return x * 10 }
			}
			return -1
		}
		find()
	`)
	assert.Equal(t, int64(20), result.(object.Integer).Value)
}

func TestBreakStopsWhileLoop(t *testing.T) {
	result, _ := runSrc(t, `
		let i = 0;
		while true {
			if i == 3 { break }
			i = i + 1
		}
		i
	`)
	assert.Equal(t, int64(3), result.(object.Integer).Value)
}

func TestContinueSkipsRestOfIteration(t *testing.T) {
	result, _ := runSrc(t, `
		let sum = 0;
		for x in range(5) {
			if x % 2 == 0 { continue }
			sum = sum + x
		}
		sum
	`)
	assert.Equal(t, int64(4), result.(object.Integer).Value) // 1 + 3
}

func TestIfExpressionValue(t *testing.T) {
	result, _ := runSrc(t, "if false { 1 }")
	_, isNull := result.(object.Null)
	assert.True(t, isNull)
}

func TestStatementPositionBraceIsDictLiteral(t *testing.T) {
	result, _ := runSrc(t, "{}")
	d, ok := result.(*object.Dict)
	require.True(t, ok)
	assert.Equal(t, 0, d.Len())
}

func TestRecursiveFactorial(t *testing.T) {
	result, _ := runSrc(t, `fn fact(n) { if n <= 1 { 1 } else { n * fact(n - 1) } }; fact(6)`)
	assert.Equal(t, int64(720), result.(object.Integer).Value)
}

func TestForLoopOverRange(t *testing.T) {
	result, _ := runSrc(t, `let s = 0; for i in range(1, 11) { s = s + i }; s`)
	assert.Equal(t, int64(55), result.(object.Integer).Value)
}

func TestPushMutatesArrayInPlace(t *testing.T) {
	result, _ := runSrc(t, `let a = [1, 2, 3]; push(a, 4); sum(a)`)
	assert.Equal(t, int64(10), result.(object.Integer).Value)
}

func TestDictInsertionOrderViaKeys(t *testing.T) {
	result, _ := runSrc(t, `let d = {"a": 1, "b": 2}; d["c"] = 3; keys(d)`)
	arr := result.(*object.Array)
	assert.Equal(t, "a", arr.Elements[0].(object.String).Value)
	assert.Equal(t, "b", arr.Elements[1].(object.String).Value)
	assert.Equal(t, "c", arr.Elements[2].(object.String).Value)
}

func TestUndefinedVariable(t *testing.T) {
	err := runSrcErr(t, "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "undefined variable")
}

func TestPrintWritesToProvidedWriter(t *testing.T) {
	_, out := runSrc(t, `println("hello")`)
	assert.Equal(t, "hello\n", out.String())
}

func TestBuiltinsTypeAndLen(t *testing.T) {
	result, _ := runSrc(t, `type([1, 2, 3])`)
	assert.Equal(t, "array", result.(object.String).Value)

	result, _ = runSrc(t, `len("hello")`)
	assert.Equal(t, int64(5), result.(object.Integer).Value)
}

func TestBuiltinsSortedAndReversed(t *testing.T) {
	result, _ := runSrc(t, `sorted([3, 1, 2])`)
	arr := result.(*object.Array)
	assert.Equal(t, int64(1), arr.Elements[0].(object.Integer).Value)
	assert.Equal(t, int64(2), arr.Elements[1].(object.Integer).Value)
	assert.Equal(t, int64(3), arr.Elements[2].(object.Integer).Value)

	result, _ = runSrc(t, `reversed([1, 2, 3])`)
	arr = result.(*object.Array)
	assert.Equal(t, int64(3), arr.Elements[0].(object.Integer).Value)
}

func TestBuiltinsStringOps(t *testing.T) {
	result, _ := runSrc(t, `join(split("a,b,c", ","), "-")`)
	assert.Equal(t, "a-b-c", result.(object.String).Value)

	result, _ = runSrc(t, `upper(strip("  hi  "))`)
	assert.Equal(t, "HI", result.(object.String).Value)

	result, _ = runSrc(t, `replace("foo bar", "bar", "baz")`)
	assert.Equal(t, "foo baz", result.(object.String).Value)
}

func TestInputBuiltinWithPrompt(t *testing.T) {
	tokens, err := lexer.Tokenize(`input("name: ")`)
	require.NoError(t, err)
	program, err := parser.Parse(tokens)
	require.NoError(t, err)
	var out bytes.Buffer
	ev := New(&out, strings.NewReader("kira\n"))
	result, err := ev.Run(program, object.NewEnvironment())
	require.NoError(t, err)
	assert.Equal(t, "kira", result.(object.String).Value)
	assert.Equal(t, "name: ", out.String())
}

func TestDictLargeIntegerKeysStayDistinct(t *testing.T) {
	result, _ := runSrc(t, `
		let d = {};
		d[9007199254740992] = "a";
		d[9007199254740993] = "b";
		len(d)
	`)
	assert.Equal(t, int64(2), result.(object.Integer).Value)
}

func TestMixedTypeComparisonIsError(t *testing.T) {
	err := runSrcErr(t, `1 < "a"`)
	require.Error(t, err)
}
