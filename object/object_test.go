package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruthiness(t *testing.T) {
	assert.False(t, Truthy(NullValue))
	assert.False(t, Truthy(False))
	assert.True(t, Truthy(True))
	assert.False(t, Truthy(Integer{Value: 0}))
	assert.True(t, Truthy(Integer{Value: 1}))
	assert.False(t, Truthy(String{Value: ""}))
	assert.True(t, Truthy(String{Value: "x"}))
	assert.False(t, Truthy(&Array{}))
	assert.True(t, Truthy(&Array{Elements: []Value{Integer{Value: 1}}}))
}

func TestEqualNumericCrossesTag(t *testing.T) {
	assert.True(t, Equal(Integer{Value: 1}, Float{Value: 1.0}))
	assert.False(t, Equal(Integer{Value: 1}, Float{Value: 1.5}))
	assert.True(t, Equal(NullValue, NullValue))
	assert.False(t, Equal(NullValue, False))
}

func TestDictInsertionOrderAndOverwrite(t *testing.T) {
	d := NewDict()
	d.Set(String{Value: "a"}, Integer{Value: 1})
	d.Set(String{Value: "b"}, Integer{Value: 2})
	d.Set(String{Value: "a"}, Integer{Value: 99})
	keys := d.Keys()
	assert.Len(t, keys, 2)
	assert.Equal(t, "a", keys[0].(String).Value)
	assert.Equal(t, "b", keys[1].(String).Value)
	v, ok := d.Get(String{Value: "a"})
	assert.True(t, ok)
	assert.Equal(t, int64(99), v.(Integer).Value)
}

func TestDictKeyCollapsesIntegerAndFloat(t *testing.T) {
	d := NewDict()
	d.Set(Integer{Value: 1}, String{Value: "one"})
	v, ok := d.Get(Float{Value: 1.0})
	assert.True(t, ok)
	assert.Equal(t, "one", v.(String).Value)
}

func TestEnvironmentShadowingAndChain(t *testing.T) {
	root := NewEnvironment()
	root.Define("x", Integer{Value: 1}, false)
	child := NewChild(root)
	v, ok := child.Get("x")
	assert.True(t, ok)
	assert.Equal(t, int64(1), v.(Integer).Value)

	child.Define("x", Integer{Value: 2}, false)
	v, _ = child.Get("x")
	assert.Equal(t, int64(2), v.(Integer).Value)
	v, _ = root.Get("x")
	assert.Equal(t, int64(1), v.(Integer).Value)
}

func TestEnvironmentConstReassignFails(t *testing.T) {
	env := NewEnvironment()
	env.Define("k", Integer{Value: 1}, true)
	assert.True(t, env.IsConst("k"))
	ok, violated := env.Assign("k", Integer{Value: 2})
	assert.False(t, ok)
	assert.True(t, violated)
}

func TestEnvironmentAssignWalksParent(t *testing.T) {
	root := NewEnvironment()
	root.Define("x", Integer{Value: 1}, false)
	child := NewChild(root)
	ok, violated := child.Assign("x", Integer{Value: 9})
	assert.True(t, ok)
	assert.False(t, violated)
	v, _ := root.Get("x")
	assert.Equal(t, int64(9), v.(Integer).Value)
}

func TestEnvironmentAssignUndefinedFails(t *testing.T) {
	env := NewEnvironment()
	ok, violated := env.Assign("missing", Integer{Value: 1})
	assert.False(t, ok)
	assert.False(t, violated)
}

func TestDefinedConstLocallyDoesNotWalkParent(t *testing.T) {
	root := NewEnvironment()
	root.Define("k", Integer{Value: 1}, true)
	child := NewChild(root)
	assert.True(t, root.DefinedConstLocally("k"))
	assert.False(t, child.DefinedConstLocally("k"))
}

func TestStrVsReprQuoting(t *testing.T) {
	s := String{Value: "hi"}
	assert.Equal(t, "hi", s.Str())
	assert.Equal(t, `"hi"`, s.Repr())

	arr := &Array{Elements: []Value{String{Value: "a"}, Integer{Value: 1}}}
	assert.Equal(t, `["a", 1]`, arr.Str())
}
