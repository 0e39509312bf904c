package parser

import "fmt"

// Error reports a malformed construct together with its source
// position.
type Error struct {
	Message string
	Line    int
	Column  int
}

func (e *Error) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("Parser Error: %s", e.Message)
	}
	return fmt.Sprintf("Parser Error at line %d, column %d: %s", e.Line, e.Column, e.Message)
}
