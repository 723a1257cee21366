package emulator

import (
	"errors"

	"github.com/ezrec/uavr/translate"
)

var f = translate.From

var (
	// ErrTickLimit indicates a run exceeded its tick budget.
	ErrTickLimit = errors.New(f("tick limit exceeded"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
