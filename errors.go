package main

import (
	"errors"
	"fmt"
)

// ErrorKind tags the uniform error kinds of spec.md §7; all trigger the
// same catch mechanism regardless of kind.
type ErrorKind int

const (
	TypeMismatch ErrorKind = iota
	DivideByZero
	IndexOutOfRange
	RegexSyntax
	UserRaised
	IOError
)

func (k ErrorKind) String() string {
	switch k {
	case TypeMismatch:
		return "TypeMismatch"
	case DivideByZero:
		return "DivideByZero"
	case IndexOutOfRange:
		return "IndexOutOfRange"
	case RegexSyntax:
		return "RegexSyntax"
	case UserRaised:
		return "UserRaised"
	case IOError:
		return "IOError"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// CommandError is the uniform error type commands raise; Cell names where
// the error occurred, for the one-line diagnostic of spec.md §7.
type CommandError struct {
	Kind ErrorKind
	Cell Point
	Err  error
}

func (e *CommandError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v at (%d,%d): %v", e.Kind, e.Cell.X, e.Cell.Y, e.Err)
	}
	return fmt.Sprintf("%v at (%d,%d)", e.Kind, e.Cell.X, e.Cell.Y)
}

func (e *CommandError) Unwrap() error { return e.Err }

var (
	errTypeMismatch  = errors.New("type mismatch")
	errDivideByZero  = errors.New("divide by zero")
	errIndexOutOfRng = errors.New("index out of range")
	errUserRaised    = errors.New("user raised")
	errParseUnterm   = errors.New("unterminated string literal")
)

// errorKindOf classifies an error returned by a command handler into the
// uniform kinds spec.md §7 catches identically regardless of kind.
func errorKindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, errDivideByZero):
		return DivideByZero
	case errors.Is(err, errIndexOutOfRng):
		return IndexOutOfRange
	case errors.Is(err, errUserRaised):
		return UserRaised
	case errors.Is(err, errTypeMismatch):
		return TypeMismatch
	}
	var ce *CommandError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	var re regexpError
	if errors.As(err, &re) {
		return RegexSyntax
	}
	return IOError
}

// regexpError wraps a regexp.Compile failure so errorKindOf can classify it
// as RegexSyntax rather than the default IOError.
type regexpError struct{ error }

func (e regexpError) Unwrap() error { return e.error }

// haltError wraps the terminal error passed to (*VM).halt, mirroring
// gothird's core.go/internals.go haltError/vmHaltError.
type haltError struct{ error }

func (e haltError) Error() string {
	if e.error != nil {
		return fmt.Sprintf("halted: %v", e.error)
	}
	return "halted"
}
func (e haltError) Unwrap() error { return e.error }

// exitCodeError carries a specific process exit code through Run, for the
// exit-0 `X` command and the exit-2 parse-time error of spec.md §7.
type exitCodeError struct {
	Code int
	Err  error
}

func (e *exitCodeError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit %d", e.Code)
}
func (e *exitCodeError) Unwrap() error { return e.Err }

// ParseError reports a parse-time failure (spec.md §7: exit code 2).
type ParseError struct {
	Cell Point
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at (%d,%d): %v", e.Cell.X, e.Cell.Y, e.Err)
}
func (e *ParseError) Unwrap() error { return e.Err }
