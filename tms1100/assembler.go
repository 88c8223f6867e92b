// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package tms1100

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Macro represents a macro definition in the assembly language.
type Macro struct {
	LineNo int      // Line number of the macro definition.
	Args   []string // Arguments for the macro.
	Lines  []string // Lines of macro text to expand.
}

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
	"K1":     "1",
	"K2":     "2",
	"K4":     "4",
	"K8":     "8",
}

// Alternate mnemonics for the add-to-accumulator family. AC1AC adds its
// constant plus one.
var aliasMap = map[string][]string{
	"IAC":    {"AC1AC", "0"},
	"A2AAC":  {"AC1AC", "1"},
	"A3AAC":  {"AC1AC", "2"},
	"A4AAC":  {"AC1AC", "3"},
	"A5AAC":  {"AC1AC", "4"},
	"A6AAC":  {"AC1AC", "5"},
	"A7AAC":  {"AC1AC", "6"},
	"A8AAC":  {"AC1AC", "7"},
	"A9AAC":  {"AC1AC", "8"},
	"A10AAC": {"AC1AC", "9"},
	"A11AAC": {"AC1AC", "10"},
	"A12AAC": {"AC1AC", "11"},
	"A13AAC": {"AC1AC", "12"},
	"A14AAC": {"AC1AC", "13"},
	"DAN":    {"AC1AC", "14"},
}

// Assembler is a single pass macro assembler for the TMS1100. Code is
// laid out along the program counter polynomial starting at the boot
// page; the .chapter, .page, and .org directives move the location.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	Chapter uint8 // Current chapter.
	Page    uint8 // Current page.
	Pc      uint8 // Current program counter.

	predefine map[string]string   // Predefines
	Label     map[string]uint16   // Map of labels to ROM addresses.
	Equate    map[string]string   // Map of equates.
	Macro     map[string](*Macro) // Map of macros.

	occupied map[uint16]bool
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value int64, err error) {
	invert := false
	if word[0] == '~' {
		invert = true
		word = word[1:]
	}
	value, err = strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if invert {
		value = ^value
	}

	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var v64 int64
		v64, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be labels
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt64(v64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// parseLine parses a single line as an opcode.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	re := regexp.MustCompile(`\$\([^\$]*\)`)
	line = re.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	words = slices.DeleteFunc(strings.Split(line, " "), func(a string) bool { return len(a) == 0 })

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		if len(word) == 0 {
			continue
		}

		// Check for equate next
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	for strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		if asm.Label == nil {
			asm.Label = make(map[string]uint16, 16)
		}
		asm.Label[label] = asm.currentAddr()
		words = words[1:]
		if len(words) == 0 {
			return
		}
	}

	// .macro processing
	macro, ok := asm.Macro[words[0]]
	if ok {
		name := words[0]

		args := words[1:]
		if len(args) != len(macro.Args) {
			err = ErrMacroSyntax
			return
		}
		// Turn args into equs
		old_equate := maps.Clone(asm.Equate)
		for n, arg := range macro.Args {
			asm.Equate[arg] = words[1+n]
		}
		defer func() { asm.Equate = old_equate }()

		for n, line := range macro.Lines {
			lineno := macro.LineNo + n

			line = strings.ReplaceAll(line, "@", fmt.Sprintf("%v_%v_", name, lineno))
			words, err = asm.parseLine(line, lineno)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
				return
			}

			err = asm.parseWords(words, lineno)
			if err != nil {
				err = &ErrMacro{Macro: name, Line: lineno, Err: err}
				err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
				return
			}
		}

		words = nil
		return
	}

	return
}

// currentAddr is the ROM address the next code byte assembles to.
func (asm *Assembler) currentAddr() uint16 {
	return RomAddr(asm.Chapter, asm.Page, asm.Pc)
}

// emit places one code byte at the current location and walks the
// program counter forward.
func (asm *Assembler) emit(code uint8, codes []uint8) (out []uint8, err error) {
	addr := asm.currentAddr()
	if asm.occupied[addr] {
		return codes, ErrOverlap
	}
	asm.occupied[addr] = true
	asm.Pc = NextPC(asm.Pc)
	return append(codes, code), nil
}

// Parse parses an input stream into a Program containing opcodes.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {

	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var macro *Macro

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	clear(asm.Label)
	asm.Opcode = asm.Opcode[:0]
	if asm.Macro == nil {
		asm.Macro = make(map[string](*Macro))
	}
	clear(asm.Macro)
	asm.Equate = maps.Clone(sysEquate)
	for attr, val := range asm.predefine {
		asm.Equate[attr] = val
	}

	asm.Chapter = 0
	asm.Page = 0xf // boot page
	asm.Pc = 0
	asm.occupied = make(map[uint16]bool, ROM_WORDS)

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])
		all_words := strings.Split(line, " ")

		var words []string
		for _, single := range all_words {
			if len(single) > 0 {
				words = append(words, single)
			}
		}

		// .macro NAME arg...
		if len(words) > 0 && words[0] == ".macro" {
			if macro != nil {
				err = ErrMacroNesting
				return
			}
			if len(words) < 2 {
				err = ErrMacroSyntax
				return
			}
			_, ok := asm.Macro[words[1]]
			if ok {
				err = ErrMacroDuplicate
				return
			}
			macro = &Macro{
				LineNo: lineno + 1,
			}
			if len(words) > 2 {
				macro.Args = words[2:]
			}
			asm.Macro[words[1]] = macro
			continue
		}

		if len(words) > 0 && words[0] == ".endm" {
			if macro == nil {
				err = ErrMacroLonelyEndm
				return
			}
			macro = nil
			continue
		}

		if macro != nil {
			macro.Lines = append(macro.Lines, line)
			continue
		}

		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	if macro != nil {
		err = ErrMacroLonely
		return
	}

	// Final linking of branch labels.
	for n := range asm.Opcode {
		op := &asm.Opcode[n]

		if len(op.LinkLabel) == 0 {
			continue
		}
		addr, ok := asm.Label[op.LinkLabel]
		if !ok {
			err = ErrLabelMissing(op.LinkLabel)
			return
		}
		if len(op.Codes) != 1 {
			log.Fatalf("Unable to link label '%s' to line %d: %v", op.LinkLabel, op.LineNo, op.Words)
		}
		// The 6-bit branch field can only reach the page the branch
		// sits on.
		if op.Addr>>6 != addr>>6 {
			err = ErrBranchPage
			return
		}
		op.Codes[0] |= uint8(addr & 0x3f)
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}

// parseWords evaluates the words in a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	var codes []uint8
	var label string

	// no-op
	if len(words) == 0 {
		return
	}

	initial_words := words
	addr := asm.currentAddr()

	defer func() {
		if len(codes) == 0 {
			return
		}
		opcode := Opcode{LineNo: lineno, Addr: addr, Words: initial_words, Codes: codes, LinkLabel: label}
		asm.Opcode = append(asm.Opcode, opcode)
	}()

	// Location directives
	switch words[0] {
	case ".chapter", ".page", ".org":
		if len(words) != 2 {
			err = ErrOriginSyntax
			return
		}
		var value int64
		value, err = asm.valueOf(words[1])
		if err != nil {
			return
		}
		switch {
		case words[0] == ".chapter" && value >= 0 && value <= 1:
			asm.Chapter = uint8(value)
			asm.Pc = 0
		case words[0] == ".page" && value >= 0 && value <= 15:
			asm.Page = uint8(value)
			asm.Pc = 0
		case words[0] == ".org" && value >= 0 && value <= 63:
			asm.Pc = uint8(value)
		default:
			err = ErrOriginSyntax
		}
		return
	case ".byte":
		if len(words) < 2 {
			err = ErrOpcodeValueMissing
			return
		}
		for _, word := range words[1:] {
			var value int64
			value, err = asm.valueOf(word)
			if err != nil {
				return
			}
			if value < 0 || value > 0xff {
				err = ErrOperandRange
				return
			}
			codes, err = asm.emit(uint8(value), codes)
			if err != nil {
				return
			}
		}
		return
	}

	// Alternate syntax substitutions
	mnemonic := strings.ToUpper(words[0])
	if alias, ok := aliasMap[mnemonic]; ok {
		words = append(slices.Clone(alias), words[1:]...)
		mnemonic = words[0]
	}

	op, ok := OpByName(mnemonic)
	if !ok {
		err = ErrInstructionInvalid
		return
	}

	var code uint8
	switch op.Operand() {
	case OPERAND_NONE:
		if len(words) > 1 {
			err = ErrOpcodeExtraArgs
			return
		}
		code, err = Encode(op, 0)
	case OPERAND_BRANCH:
		if len(words) < 2 {
			err = ErrOpcodeValueMissing
			return
		}
		if len(words) > 2 {
			err = ErrOpcodeExtraArgs
			return
		}
		var value int64
		value, err = asm.valueOf(words[1])
		if err != nil {
			// Not a number; link to the label once the whole
			// source is read.
			label = words[1]
			code, err = Encode(op, 0)
			break
		}
		if value < 0 || value > 0x3f {
			err = ErrOperandRange
			return
		}
		code, err = Encode(op, uint8(value))
	default:
		if len(words) < 2 {
			err = ErrOpcodeValueMissing
			return
		}
		if len(words) > 2 {
			err = ErrOpcodeExtraArgs
			return
		}
		var value int64
		value, err = asm.valueOf(words[1])
		if err != nil {
			return
		}
		if value < 0 || value > 0xf {
			err = ErrOperandRange
			return
		}
		code, err = Encode(op, uint8(value))
	}
	if err != nil {
		return
	}

	codes, err = asm.emit(code, codes)

	return
}
