// Package function holds the user-defined closure value. It is a
// separate package from object so that object.Environment (which stores
// object.Value) and parser.BlockStatement can both be referenced
// from one function value without object importing parser.
package function

import (
	"fmt"
	"strings"

	"github.com/limem01/kira-lang/object"
	"github.com/limem01/kira-lang/parser"
)

// Function is a user-defined closure: its parameter names, its body,
// and a pointer to the environment active when the `fn` expression was
// evaluated. The environment is never copied, so mutation through one
// closure is visible through any other sharing it.
type Function struct {
	Name   string
	Params []string
	Body   *parser.BlockStatement
	Env    *object.Environment
}

func (f *Function) Kind() object.Kind { return object.FunctionKind }

func (f *Function) Str() string {
	name := f.Name
	if name == "" {
		name = "anonymous"
	}
	return fmt.Sprintf("<function %s>", name)
}

func (f *Function) Repr() string {
	return fmt.Sprintf("<function %s(%s)>", f.displayName(), strings.Join(f.Params, ", "))
}

func (f *Function) displayName() string {
	if f.Name == "" {
		return "anonymous"
	}
	return f.Name
}
