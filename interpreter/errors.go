/*
File    : golox/interpreter/errors.go
Package : interpreter
*/
package interpreter

import (
	"fmt"

	"github.com/akashmaji946/golox/object"
)

// RuntimeError is a failure during evaluation: a message plus the
// source line of the operation that raised it. Rendered exactly as
// spec.md §7 requires: "<message>\n[line <n>]".
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Line)
}

func newRuntimeError(line int, format string, a ...any) *RuntimeError {
	return &RuntimeError{Line: line, Message: fmt.Sprintf(format, a...)}
}

// returnSignal unwinds the Go call stack from a `return` statement
// back to the nearest ExecuteBlock invoked by a function call. It
// implements error only so it can travel through the same return path
// as a RuntimeError; callers must type-assert for it explicitly and
// never report it as a failure (spec.md §4.4, §7's "Return is ...not
// an error").
type returnSignal struct {
	Value object.Object
}

func (r *returnSignal) Error() string { return "return" }
