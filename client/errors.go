package client

import (
	"errors"
	"fmt"
)

var (
	// ErrClosed is returned by any operation on a closed connection, statement or result set.
	ErrClosed = errors.New("tinydbc: handle is closed")

	// ErrWrongCommandKind is returned when ExecuteQuery gets SQL that does not
	// produce rows, or ExecuteUpdate gets SQL that does.
	ErrWrongCommandKind = errors.New("tinydbc: wrong command kind")

	// ErrUnsupported is matched by every UnsupportedError.
	ErrUnsupported = errors.New("tinydbc: capability not offered")
)

// UnsupportedError reports a capability outside the implemented subset.
type UnsupportedError struct {
	Op string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("tinydbc: %s: capability not offered", e.Op)
}

// Is makes errors.Is(err, ErrUnsupported) hold.
func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

func unsupported(op string) error {
	return &UnsupportedError{Op: op}
}

// EngineError is an engine failure during single statement execution.
type EngineError struct {
	Op  string
	SQL string
	Err error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("tinydbc: %s failed: %v", e.Op, e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}
