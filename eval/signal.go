package eval

// Signal is the tagged non-local exit an evaluation can produce,
// distinguished from an ordinary error: Return, Break, and Continue
// unwind across arbitrary nested blocks until caught at the one
// structural boundary each belongs to (per the design note on
// evaluator control flow — a systems-language stand-in for the
// source's host-exception unwinding).
type Signal int

const (
	SigNone Signal = iota
	SigReturn
	SigBreak
	SigContinue
)
