// Package rxerr defines the evaluator's error taxonomy: a small set of
// named Kinds (UndefinedVariable, TypeError, DivisionByZero, ...) each
// constructed with the position of the node that raised them, in the
// shape of go-dws's internal/interp/errors package.
package rxerr

import (
	"fmt"

	"github.com/rx-lang/rx/internal/token"
)

// Kind names a category of evaluation failure.
type Kind string

const (
	KindUndefinedVariable Kind = "UndefinedVariable"
	KindUndefinedFunction Kind = "UndefinedFunction"
	KindMissingProperty   Kind = "MissingProperty"
	KindArityMismatch     Kind = "ArityMismatch"
	KindTypeError         Kind = "TypeError"
	KindIndexOutOfBounds  Kind = "IndexOutOfBounds"
	KindDivisionByZero    Kind = "DivisionByZero"
	KindInvalidArgument   Kind = "InvalidArgument"
)

// Error is a runtime evaluation error carrying its Kind and the source
// position of the node that raised it, when known.
type Error struct {
	Kind    Kind
	Pos     token.Position
	Message string
}

func (e *Error) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("%s: %s (line %d, column %d)", e.Kind, e.Message, e.Pos.Line, e.Pos.Column)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func New(kind Kind, pos token.Position, format string, args ...any) *Error {
	return &Error{Kind: kind, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

func UndefinedVariable(pos token.Position, name string) *Error {
	return New(KindUndefinedVariable, pos, "undefined variable %q", name)
}

func UndefinedFunction(pos token.Position, name string) *Error {
	return New(KindUndefinedFunction, pos, "undefined function %q", name)
}

func MissingProperty(pos token.Position, name string) *Error {
	return New(KindMissingProperty, pos, "object has no property %q", name)
}

func ArityMismatch(pos token.Position, name string, want, got int) *Error {
	return New(KindArityMismatch, pos, "%s expects %d argument(s), got %d", name, want, got)
}

func TypeErrorf(pos token.Position, format string, args ...any) *Error {
	return New(KindTypeError, pos, format, args...)
}

func IndexOutOfBounds(pos token.Position, index, length int) *Error {
	return New(KindIndexOutOfBounds, pos, "index %d out of bounds for array of length %d", index, length)
}

func DivisionByZero(pos token.Position) *Error {
	return New(KindDivisionByZero, pos, "division by zero")
}

func InvalidArgument(pos token.Position, format string, args ...any) *Error {
	return New(KindInvalidArgument, pos, format, args...)
}
