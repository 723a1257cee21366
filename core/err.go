package core

import (
	"errors"

	"github.com/ezrec/uavr/translate"
)

var f = translate.From

var (
	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate  = errors.New(f("label duplicated"))
	ErrMacroSyntax     = errors.New(f(".macro syntax"))
	ErrMacroNesting    = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate  = errors.New(f(".macro duplicated"))
	ErrMacroLonely     = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm = errors.New(f(".endm without .macro"))
	ErrOperandExtra    = errors.New(f("excessive operands"))
	ErrOperandMissing  = errors.New(f("operand missing"))
	ErrOpcodeInvalid   = errors.New(f("opcode invalid"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrRegisterPair    = errors.New(f("register pair invalid"))
	ErrPointerInvalid  = errors.New(f("pointer invalid"))
	ErrBranchRange     = errors.New(f("branch out of range"))
	ErrImmediateRange  = errors.New(f("immediate out of range"))
	ErrOrgBackward     = errors.New(f(".org behind emitted code"))
)

// ErrIllegalOpcode reports an undecodable instruction word. The core
// raises it once per offending word and then treats the word as a
// one-cycle no-op.
type ErrIllegalOpcode uint16

func (eo ErrIllegalOpcode) Error() string {
	return f("illegal opcode 0x%04x", uint16(eo))
}

func (eo ErrIllegalOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrIllegalOpcode)
	return
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseCharacter string

func (err ErrParseCharacter) Error() string {
	return f("'%v' is not a character", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err ErrMacro) Unwrap() error {
	return err.Err
}
