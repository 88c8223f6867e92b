package emulator

import (
	"errors"

	"github.com/ezrec/microvision/tms1100"
	"github.com/ezrec/microvision/translate"
)

var f = translate.From

var (
	// ErrHalted reports that the processor branched into itself and can
	// make no further progress.
	ErrHalted = errors.New(f("processor halted"))

	// Script errors
	ErrScriptFrame = errors.New(f("frame number invalid"))
	ErrScriptVerb  = errors.New(f("script verb unknown"))
	ErrScriptArgs  = errors.New(f("script arguments invalid"))
)

// ErrHalt is the terminal condition report: the address and decode of the
// self branch that parked the processor.
type ErrHalt struct {
	Addr uint16
	Inst tms1100.Instruction
}

func (err *ErrHalt) Error() string {
	return f("rom 0x%03x %v: %v", err.Addr, err.Inst, ErrHalted)
}

func (err *ErrHalt) Unwrap() error {
	return ErrHalted
}

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Addr uint16
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("rom 0x%03x %v", err.Addr, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrKey reports an input event naming a key the overlay does not have.
type ErrKey string

func (err ErrKey) Error() string {
	return f("no overlay key %q", string(err))
}

// ErrScript indicates the location of a script parse error.
type ErrScript struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrScript) Error() string {
	return f("line %d: %v: %v", err.LineNo, err.Err, err.Line)
}

func (err *ErrScript) Unwrap() error {
	return err.Err
}
