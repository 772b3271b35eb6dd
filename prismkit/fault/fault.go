// Package fault holds the two programming-error signals used across prismkit:
// failed invariants and unimplemented operations.
//
// Neither is meant to be handled at runtime. Both surface as panics so that a
// broken construction stops the current operation immediately; the host layer
// recovers them only to report and stop.
package fault

import (
	"errors"
	"fmt"
)

var (
	ErrAssertion      = errors.New("assertion failed")
	ErrNotImplemented = errors.New("not implemented")
)

// AssertionError is the panic value raised by Assert.
type AssertionError struct {
	Msg string
}

func (e *AssertionError) Error() string {
	if e.Msg == "" {
		return ErrAssertion.Error()
	}
	return ErrAssertion.Error() + ": " + e.Msg
}

func (e *AssertionError) Unwrap() error { return ErrAssertion }

// Assert panics with an *AssertionError when ok is false.
func Assert(ok bool, format string, args ...any) {
	if ok {
		return
	}
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	panic(&AssertionError{Msg: msg})
}

// NotImplemented panics with ErrNotImplemented wrapped with the operation name.
func NotImplemented(op string) {
	panic(fmt.Errorf("%s: %w", op, ErrNotImplemented))
}

// Recover converts a recovered panic value into an error. Values that are not
// errors are formatted. It returns nil for a nil value.
func Recover(v any) error {
	if v == nil {
		return nil
	}
	if err, ok := v.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", v)
}
