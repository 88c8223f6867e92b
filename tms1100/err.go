package tms1100

import (
	"errors"

	"github.com/ezrec/microvision/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrStackOverflow   = errors.New(f("call stack overflow"))
	ErrOpcodeUndefined = errors.New(f("undefined opcode"))
	ErrRomSize         = errors.New(f("rom image size"))

	// Encode errors
	ErrOpcodeInvalid = errors.New(f("opcode invalid"))
	ErrOperandRange  = errors.New(f("operand out of range"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrMacroSyntax        = errors.New(f(".macro syntax"))
	ErrMacroNesting       = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate     = errors.New(f(".macro duplicated"))
	ErrMacroLonely        = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm    = errors.New(f(".endm without .macro"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeMissing      = errors.New(f("opcode missing"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrOriginSyntax       = errors.New(f("origin syntax"))
	ErrOverlap            = errors.New(f("rom location already assembled"))
	ErrBranchPage         = errors.New(f("branch target off page"))
)

// ErrFatal is the terminal condition report: the address and decode of the
// instruction the processor stopped on.
type ErrFatal struct {
	Addr uint16
	Inst Instruction
	Err  error
}

func (err ErrFatal) Error() string {
	return f("$%03x %v: %v", err.Addr, err.Inst, err.Err)
}

func (err ErrFatal) Unwrap() error {
	return err.Err
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
