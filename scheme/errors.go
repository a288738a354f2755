package scheme

import (
	"fmt"

	"github.com/pkg/errors"
)

// SyntaxError reports malformed source: a bad token, unbalanced
// brackets, a bad dotted form, or a special form given the wrong shape.
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string { return "syntax error: " + e.Msg }

// RuntimeError reports well-formed source whose semantics fail at
// evaluation time: arity mismatches, type errors, applying a
// non-procedure, or reading an empty input.
type RuntimeError struct {
	Msg string
}

func (e *RuntimeError) Error() string { return "runtime error: " + e.Msg }

// NameError reports a lookup or assignment against an unbound symbol.
type NameError struct {
	Name string
}

func (e *NameError) Error() string { return "name error: unbound variable " + e.Name }

// syntaxErrorf builds a stack-annotated SyntaxError.
func syntaxErrorf(format string, args ...interface{}) error {
	return errors.WithStack(&SyntaxError{Msg: fmt.Sprintf(format, args...)})
}

// runtimeErrorf builds a stack-annotated RuntimeError.
func runtimeErrorf(format string, args ...interface{}) error {
	return errors.WithStack(&RuntimeError{Msg: fmt.Sprintf(format, args...)})
}

// nameErrorf builds a stack-annotated NameError.
func nameErrorf(name string) error {
	return errors.WithStack(&NameError{Name: name})
}
