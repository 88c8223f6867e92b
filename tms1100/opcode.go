package tms1100

import (
	"fmt"
)

// Micro is the set of control lines asserted by the instruction PLA.
type Micro uint16

const (
	CKP  = Micro(1 << 0)  // CKI bus to adder P input
	YTP  = Micro(1 << 1)  // Y register to adder P input
	MTP  = Micro(1 << 2)  // RAM data to adder P input
	ATN  = Micro(1 << 3)  // accumulator to adder N input
	NATN = Micro(1 << 4)  // inverted accumulator to adder N input
	MTN  = Micro(1 << 5)  // RAM data to adder N input
	FTN  = Micro(1 << 6)  // constant 0xf to adder N input
	CKN  = Micro(1 << 7)  // CKI bus to adder N input
	CIN  = Micro(1 << 8)  // carry into the adder
	NE   = Micro(1 << 9)  // status holds only when P and N differ
	C8   = Micro(1 << 10) // status holds only on carry out
	STO  = Micro(1 << 11) // accumulator to RAM write bus
	CKM  = Micro(1 << 12) // CKI bus to RAM write bus
	AUTA = Micro(1 << 13) // adder sum to accumulator
	AUTY = Micro(1 << 14) // adder sum to Y register
	STSL = Micro(1 << 15) // status to status latch
)

// Op is the instruction mnemonic.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_UNDEF  = Op(0)  // ??
	OP_MNEA   = Op(1)  // MNEA
	OP_ALEM   = Op(2)  // ALEM
	OP_YNEA   = Op(3)  // YNEA
	OP_XMA    = Op(4)  // XMA
	OP_DYN    = Op(5)  // DYN
	OP_IYC    = Op(6)  // IYC
	OP_AMAAC  = Op(7)  // AMAAC
	OP_DMAN   = Op(8)  // DMAN
	OP_TKA    = Op(9)  // TKA
	OP_COMX   = Op(10) // COMX
	OP_TDO    = Op(11) // TDO
	OP_COMC   = Op(12) // COMC
	OP_RSTR   = Op(13) // RSTR
	OP_SETR   = Op(14) // SETR
	OP_KNEZ   = Op(15) // KNEZ
	OP_RETN   = Op(16) // RETN
	OP_LDP    = Op(17) // LDP
	OP_TAY    = Op(18) // TAY
	OP_TMA    = Op(19) // TMA
	OP_TMY    = Op(20) // TMY
	OP_TYA    = Op(21) // TYA
	OP_TAMDYN = Op(22) // TAMDYN
	OP_TAMIYC = Op(23) // TAMIYC
	OP_TAMZA  = Op(24) // TAMZA
	OP_TAM    = Op(25) // TAM
	OP_LDX    = Op(26) // LDX
	OP_SBIT   = Op(27) // SBIT
	OP_RBIT   = Op(28) // RBIT
	OP_TBIT1  = Op(29) // TBIT1
	OP_SAMAN  = Op(30) // SAMAN
	OP_CPAIZ  = Op(31) // CPAIZ
	OP_IMAC   = Op(32) // IMAC
	OP_MNEZ   = Op(33) // MNEZ
	OP_TCY    = Op(34) // TCY
	OP_YNEC   = Op(35) // YNEC
	OP_TCMIY  = Op(36) // TCMIY
	OP_AC1AC  = Op(37) // AC1AC
	OP_CLA    = Op(38) // CLA
	OP_BR     = Op(39) // BR
	OP_CALL   = Op(40) // CALL
)

// Operand is the operand field style of a mnemonic.
type Operand int

const (
	OPERAND_NONE   = Operand(0) // no operand
	OPERAND_CONST  = Operand(1) // 4-bit constant
	OPERAND_BIT    = Operand(2) // 2-bit RAM bit index
	OPERAND_FILE   = Operand(3) // 3-bit RAM file index
	OPERAND_BRANCH = Operand(4) // 6-bit in-page target
)

// Instruction is the decode of one ROM word. Decoding is total; a word
// matching neither the fixed set nor the instruction PLA yields OP_UNDEF
// with no control lines asserted.
type Instruction struct {
	Word  uint8 // opcode byte as fetched
	Op    Op
	Micro Micro // PLA output lines, zero for fixed instructions
	Const uint8 // low nibble, bit-reversed
}

// Decode classifies one ROM word.
func Decode(word uint8) (inst Instruction) {
	inst.Word = word
	inst.Const = Rev4(word & 0xf)

	inst.Op, inst.Micro = microPla(word)
	if inst.Op == OP_UNDEF {
		inst.Op = fixedDecode(word)
	}

	return
}

// microPla is the instruction PLA. Words it does not match return the
// zero Micro.
func microPla(word uint8) (op Op, lines Micro) {
	switch {
	case word == 0x00:
		return OP_MNEA, MTP | ATN | NE
	case word == 0x01:
		return OP_ALEM, MTP | NATN | CIN | C8
	case word == 0x02:
		return OP_YNEA, YTP | ATN | NE | STSL
	case word == 0x03:
		return OP_XMA, MTP | STO | AUTA
	case word == 0x04:
		return OP_DYN, YTP | FTN | C8 | AUTY
	case word == 0x05:
		return OP_IYC, YTP | CIN | C8 | AUTY
	case word == 0x06:
		return OP_AMAAC, MTP | ATN | C8 | AUTA
	case word == 0x07:
		return OP_DMAN, MTP | FTN | C8 | AUTA
	case word == 0x08:
		return OP_TKA, CKP | AUTA
	case word == 0x0e:
		return OP_KNEZ, CKP | NE
	case word == 0x20:
		return OP_TAY, ATN | AUTY
	case word == 0x21:
		return OP_TMA, MTP | AUTA
	case word == 0x22:
		return OP_TMY, MTP | AUTY
	case word == 0x23:
		return OP_TYA, YTP | AUTA
	case word == 0x24:
		return OP_TAMDYN, STO | YTP | FTN | C8 | AUTY
	case word == 0x25:
		return OP_TAMIYC, STO | YTP | CIN | C8 | AUTY
	case word == 0x26:
		return OP_TAMZA, STO | AUTA
	case word == 0x27:
		return OP_TAM, STO
	case word >= 0x38 && word <= 0x3b:
		return OP_TBIT1, CKP | CKN | MTP | NE
	case word == 0x3c:
		return OP_SAMAN, MTP | NATN | CIN | C8 | AUTA
	case word == 0x3d:
		return OP_CPAIZ, NATN | CIN | C8 | AUTA
	case word == 0x3e:
		return OP_IMAC, MTP | CIN | C8 | AUTA
	case word == 0x3f:
		return OP_MNEZ, MTP | NE
	case word >= 0x40 && word <= 0x4f:
		return OP_TCY, CKP | AUTY
	case word >= 0x50 && word <= 0x5f:
		return OP_YNEC, YTP | CKN | NE
	case word >= 0x60 && word <= 0x6f:
		return OP_TCMIY, CKM | YTP | CIN | AUTY
	case word >= 0x70 && word <= 0x7e:
		return OP_AC1AC, CKP | ATN | CIN | C8 | AUTA
	case word == 0x7f:
		return OP_CLA, CKP | CIN | C8 | AUTA
	}

	return OP_UNDEF, 0
}

// fixedDecode matches the instructions decoded outside the PLA.
func fixedDecode(word uint8) Op {
	switch {
	case word == 0x09:
		return OP_COMX
	case word == 0x0a:
		return OP_TDO
	case word == 0x0b:
		return OP_COMC
	case word == 0x0c:
		return OP_RSTR
	case word == 0x0d:
		return OP_SETR
	case word == 0x0f:
		return OP_RETN
	case word >= 0x10 && word <= 0x1f:
		return OP_LDP
	case word >= 0x28 && word <= 0x2f:
		return OP_LDX
	case word >= 0x30 && word <= 0x33:
		return OP_SBIT
	case word >= 0x34 && word <= 0x37:
		return OP_RBIT
	case word >= 0x80 && word <= 0xbf:
		return OP_BR
	case word >= 0xc0:
		return OP_CALL
	}

	return OP_UNDEF
}

// opEncoding maps each mnemonic to its opcode base byte and operand style.
var opEncoding = map[Op]struct {
	Base    uint8
	Operand Operand
}{
	OP_MNEA:   {0x00, OPERAND_NONE},
	OP_ALEM:   {0x01, OPERAND_NONE},
	OP_YNEA:   {0x02, OPERAND_NONE},
	OP_XMA:    {0x03, OPERAND_NONE},
	OP_DYN:    {0x04, OPERAND_NONE},
	OP_IYC:    {0x05, OPERAND_NONE},
	OP_AMAAC:  {0x06, OPERAND_NONE},
	OP_DMAN:   {0x07, OPERAND_NONE},
	OP_TKA:    {0x08, OPERAND_NONE},
	OP_COMX:   {0x09, OPERAND_NONE},
	OP_TDO:    {0x0a, OPERAND_NONE},
	OP_COMC:   {0x0b, OPERAND_NONE},
	OP_RSTR:   {0x0c, OPERAND_NONE},
	OP_SETR:   {0x0d, OPERAND_NONE},
	OP_KNEZ:   {0x0e, OPERAND_NONE},
	OP_RETN:   {0x0f, OPERAND_NONE},
	OP_LDP:    {0x10, OPERAND_CONST},
	OP_TAY:    {0x20, OPERAND_NONE},
	OP_TMA:    {0x21, OPERAND_NONE},
	OP_TMY:    {0x22, OPERAND_NONE},
	OP_TYA:    {0x23, OPERAND_NONE},
	OP_TAMDYN: {0x24, OPERAND_NONE},
	OP_TAMIYC: {0x25, OPERAND_NONE},
	OP_TAMZA:  {0x26, OPERAND_NONE},
	OP_TAM:    {0x27, OPERAND_NONE},
	OP_LDX:    {0x28, OPERAND_FILE},
	OP_SBIT:   {0x30, OPERAND_BIT},
	OP_RBIT:   {0x34, OPERAND_BIT},
	OP_TBIT1:  {0x38, OPERAND_BIT},
	OP_SAMAN:  {0x3c, OPERAND_NONE},
	OP_CPAIZ:  {0x3d, OPERAND_NONE},
	OP_IMAC:   {0x3e, OPERAND_NONE},
	OP_MNEZ:   {0x3f, OPERAND_NONE},
	OP_TCY:    {0x40, OPERAND_CONST},
	OP_YNEC:   {0x50, OPERAND_CONST},
	OP_TCMIY:  {0x60, OPERAND_CONST},
	OP_AC1AC:  {0x70, OPERAND_CONST},
	OP_CLA:    {0x7f, OPERAND_NONE},
	OP_BR:     {0x80, OPERAND_BRANCH},
	OP_CALL:   {0xc0, OPERAND_BRANCH},
}

var opByName = map[string]Op{}

func init() {
	for op := range opEncoding {
		opByName[op.String()] = op
	}
}

// OpByName resolves an assembler mnemonic.
func OpByName(name string) (op Op, ok bool) {
	op, ok = opByName[name]
	return
}

// Operand returns the operand field style of a mnemonic.
func (op Op) Operand() Operand {
	return opEncoding[op].Operand
}

// Encode assembles the opcode byte for a mnemonic and operand value. The
// constant fields are wired least significant bit first, so the value is
// bit-reversed into the word.
func Encode(op Op, value uint8) (word uint8, err error) {
	enc, ok := opEncoding[op]
	if !ok {
		return 0, ErrOpcodeInvalid
	}

	switch enc.Operand {
	case OPERAND_NONE:
		if value != 0 {
			return 0, ErrOperandRange
		}
		word = enc.Base
	case OPERAND_CONST:
		if value > 0xf || (op == OP_AC1AC && value == 0xf) {
			return 0, ErrOperandRange
		}
		word = enc.Base | Rev4(value)
	case OPERAND_BIT:
		if value > 0x3 {
			return 0, ErrOperandRange
		}
		word = enc.Base | rev2(value)
	case OPERAND_FILE:
		if value > 0x7 {
			return 0, ErrOperandRange
		}
		word = enc.Base | rev3(value)
	case OPERAND_BRANCH:
		if value > 0x3f {
			return 0, ErrOperandRange
		}
		word = enc.Base | value
	}

	return
}

// Branch returns the 6-bit in-page target of a BR or CALL.
func (inst Instruction) Branch() uint8 {
	return inst.Word & 0x3f
}

// Bit returns the RAM bit index of an SBIT, RBIT, or TBIT1.
func (inst Instruction) Bit() uint8 {
	return inst.Const >> 2
}

// File returns the RAM file index of an LDX.
func (inst Instruction) File() uint8 {
	return inst.Const >> 1
}

// String renders the instruction in assembler syntax.
func (inst Instruction) String() (out string) {
	switch inst.Op.Operand() {
	case OPERAND_BRANCH:
		out = fmt.Sprintf("%v %d", inst.Op, inst.Branch())
	case OPERAND_BIT:
		out = fmt.Sprintf("%v %d", inst.Op, inst.Bit())
	case OPERAND_FILE:
		out = fmt.Sprintf("%v %d", inst.Op, inst.File())
	case OPERAND_CONST:
		out = fmt.Sprintf("%v %d", inst.Op, inst.Const)
	default:
		if inst.Op == OP_UNDEF {
			out = fmt.Sprintf("%v 0x%02x", inst.Op, inst.Word)
		} else {
			out = inst.Op.String()
		}
	}
	return
}

// Rev4 reverses the low four bits of a value.
func Rev4(v uint8) uint8 {
	return (v&0x1)<<3 | (v&0x2)<<1 | (v&0x4)>>1 | (v&0x8)>>3
}

func rev3(v uint8) uint8 {
	return (v&0x1)<<2 | (v & 0x2) | (v&0x4)>>2
}

func rev2(v uint8) uint8 {
	return (v&0x1)<<1 | (v&0x2)>>1
}
