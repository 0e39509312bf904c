package object

// Environment is a lexically nested name -> value mapping. Child
// environments are created per function call, per loop iteration and
// per taken if/else branch, where the Language needs bindings that must
// not escape; they hold a
// pointer to their parent and are never copied, so a closure that
// captures an Environment observes every later mutation through it.
type Environment struct {
	vars   map[string]Value
	consts map[string]bool
	parent *Environment
}

// NewEnvironment creates an empty root environment.
func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]Value), consts: make(map[string]bool)}
}

// NewChild creates an environment whose parent is env.
func NewChild(parent *Environment) *Environment {
	return &Environment{vars: make(map[string]Value), consts: make(map[string]bool), parent: parent}
}

// Get walks the chain from innermost outward, returning (value, true)
// on the first binding found.
func (e *Environment) Get(name string) (Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Define binds name in this environment, shadowing any outer binding.
func (e *Environment) Define(name string, value Value, constant bool) {
	e.vars[name] = value
	if constant {
		e.consts[name] = true
	} else {
		delete(e.consts, name)
	}
}

// DefinedConstLocally reports whether name is already bound as const in
// this exact environment (not a parent) — used to reject `let`/`const`
// redeclaring over an existing const in the same scope.
func (e *Environment) DefinedConstLocally(name string) bool {
	return e.consts[name]
}

// IsConst reports whether name is bound as const anywhere in the chain
// (it always resolves at the same frame Get would).
func (e *Environment) IsConst(name string) bool {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.vars[name]; ok {
			return env.consts[name]
		}
	}
	return false
}

// Assign walks parent environments looking for an existing binding of
// name and overwrites it in place. ok is false if no binding exists
// anywhere in the chain, or if the existing binding is const.
func (e *Environment) Assign(name string, value Value) (ok bool, constViolation bool) {
	for env := e; env != nil; env = env.parent {
		if _, exists := env.vars[name]; exists {
			if env.consts[name] {
				return false, true
			}
			env.vars[name] = value
			return true, false
		}
	}
	return false, false
}
