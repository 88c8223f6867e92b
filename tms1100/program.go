package tms1100

import (
	"fmt"
	"iter"
	"strings"
)

// Opcode represents a single line of assembled output.
type Opcode struct {
	LineNo    int
	Addr      uint16
	Words     []string
	Codes     []uint8
	LinkLabel string
}

type Program struct {
	Opcodes []Opcode
}

type Debug struct {
	*Opcode
	Index int
}

// Debug locates the assembled line that covers a ROM address. Multi-byte
// lines advance along the program counter polynomial, not linearly.
func (prog *Program) Debug(addr uint16) (dbg Debug) {
	for n, op := range prog.Opcodes {
		at := op.Addr
		for index := range op.Codes {
			if at == addr {
				dbg = Debug{
					Opcode: &prog.Opcodes[n],
					Index:  index,
				}
				return
			}
			at = at&^0x3f | uint16(NextPC(uint8(at&0x3f)))
		}
	}

	return
}

func (dbg Debug) String() string {
	if dbg.Opcode == nil {
		return "?"
	}
	return fmt.Sprintf("%v: %v", dbg.LineNo, strings.Join(dbg.Words, " "))
}

// Binary renders the program as a full ROM image.
func (prog *Program) Binary() (bins []byte) {
	bins = make([]byte, ROM_WORDS)
	for addr, code := range prog.Codes() {
		bins[addr] = code
	}

	return
}

func (prog *Program) Codes() iter.Seq2[uint16, uint8] {
	return func(yield func(addr uint16, code uint8) bool) {
		for _, op := range prog.Opcodes {
			addr := op.Addr
			for _, code := range op.Codes {
				if !yield(addr, code) {
					return
				}
				addr = addr&^0x3f | uint16(NextPC(uint8(addr&0x3f)))
			}
		}
	}
}

// Walk yields the instructions of one ROM page in execution order,
// starting from program counter zero.
func (rom *Rom) Walk(ca uint8, pa uint8) iter.Seq2[uint16, Instruction] {
	return func(yield func(addr uint16, inst Instruction) bool) {
		pc := uint8(0)
		for range 64 {
			addr := RomAddr(ca, pa, pc)
			if !yield(addr, Decode(rom.Data[addr])) {
				return
			}
			pc = NextPC(pc)
		}
	}
}
