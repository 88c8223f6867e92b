// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package tms1100

import (
	"log"
)

const (
	CYCLES_PER_INSTRUCTION = 6 // oscillator cycles per machine cycle
)

// State is the execution state of the processor.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_AWAITING = State(0) // awaiting reset
	STATE_RUNNING  = State(1) // running
	STATE_HALTED   = State(2) // halted
)

// Policy selects how an undefined opcode executes.
type Policy int

const (
	POLICY_NOOP  = Policy(0) // continue as a no-op
	POLICY_RESET = Policy(1) // reset the processor
)

// Adder is the 4-bit adder and status logic. The P and N inputs merge by
// OR when several sources drive them.
type Adder struct {
	P       uint8
	N       uint8
	CarryIn bool
	Sum     uint8
	Status  bool
}

// Reset clears the inputs and raises the status line.
func (a *Adder) Reset() {
	a.P = 0
	a.N = 0
	a.CarryIn = false
	a.Sum = 0
	a.Status = true
}

// Clock adds the merged inputs. C8 narrows status to the carry output;
// NE narrows status to the inputs differing.
func (a *Adder) Clock(c8, ne bool) {
	r := a.P + a.N
	if a.CarryIn {
		r++
	}

	a.Sum = r & 0xf

	if c8 {
		a.Status = a.Status && r > 0xf
	}
	if ne {
		a.Status = a.Status && a.P != a.N
	}
}

// Cpu is a TMS1100 processor. All architectural state is exported; a
// session owns exactly one Cpu and never shares it between goroutines.
type Cpu struct {
	Verbose bool
	Policy  Policy

	A  uint8 // accumulator
	X  uint8 // RAM file select
	Y  uint8 // RAM word select
	PA uint8 // page address
	PB uint8 // page buffer
	CA uint8 // chapter address
	CB uint8 // chapter buffer
	PC uint8 // program counter
	SL bool  // status latch

	Adder Adder
	Stack Stack
	Latch Latches
	Ram   Ram
	Rom   *Rom

	// Inst is the instruction executing on the next Step, prefetched at
	// InstAddr during the previous machine cycle.
	Inst     Instruction
	InstAddr uint16

	State     State
	Fault     error
	Undefined int // undefined opcodes retired
}

// New returns a processor wired to a ROM, awaiting its first Reset.
func New(rom *Rom) (cpu *Cpu) {
	return &Cpu{Rom: rom}
}

// Reset returns the processor to the power-on state from any state and
// prefetches the first instruction. The boot page is the highest one.
func (cpu *Cpu) Reset() {
	cpu.A = 0
	cpu.X = 0
	cpu.Y = 0
	cpu.PA = 0xf
	cpu.PB = 0xf
	cpu.CA = 0
	cpu.CB = 0
	cpu.PC = 0
	cpu.SL = false

	cpu.Adder.Reset()
	cpu.Stack.Reset()
	cpu.Latch.Reset()
	cpu.Ram.Reset()

	cpu.State = STATE_RUNNING
	cpu.Fault = nil

	cpu.fetch()
}

// fetch latches the next instruction and advances the program counter.
func (cpu *Cpu) fetch() {
	cpu.InstAddr = RomAddr(cpu.CA, cpu.PA, cpu.PC)
	cpu.Inst = Decode(cpu.Rom.At(cpu.CA, cpu.PA, cpu.PC))
	cpu.PC = NextPC(cpu.PC)
}

// NextPC advances the 6-bit program counter polynomial. The counter is a
// feedback shift register, not a binary counter; it visits all 64 states
// before repeating.
func NextPC(pc uint8) uint8 {
	var feedback uint8
	switch pc {
	case 0x1f:
		feedback = 1
	case 0x3f:
		feedback = 0
	default:
		feedback = (pc>>5 ^ pc>>4 ^ 1) & 1
	}
	return (pc<<1 | feedback) & 0x3f
}

// Step executes one instruction, six oscillator cycles of work. Branches
// taken into themselves park the processor in STATE_HALTED; a call past
// the stack depth is fatal and reported through the returned error and
// the Fault field.
func (cpu *Cpu) Step() (err error) {
	if cpu.State != STATE_RUNNING {
		return cpu.Fault
	}

	inst := cpu.Inst
	addr := cpu.InstAddr

	if cpu.Verbose {
		log.Printf("tms1100: $%03x %v", addr, inst)
	}

	// Cycle 0: a pending branch executes on the status line the previous
	// instruction left behind, then the CKI bus and memory read settle
	// and the adder clears.
	switch inst.Op {
	case OP_BR:
		if cpu.Adder.Status {
			if cpu.Stack.Empty() {
				cpu.PA = cpu.PB
			}
			cpu.CA = cpu.CB
			cpu.PC = inst.Branch()
			if RomAddr(cpu.CA, cpu.PA, cpu.PC) == addr {
				cpu.halt(addr, inst)
				return
			}
		}
	case OP_CALL:
		if cpu.Adder.Status {
			if cpu.Stack.Full() {
				cpu.Fault = ErrFatal{Addr: addr, Inst: inst, Err: ErrStackOverflow}
				cpu.State = STATE_HALTED
				err = cpu.Fault
				return
			}
			cpu.Stack.Push(Frame{PC: cpu.PC, CA: cpu.CA})
			cpu.PA, cpu.PB = cpu.PB, cpu.PA
			cpu.CA = cpu.CB
			cpu.PC = inst.Branch()
			if RomAddr(cpu.CA, cpu.PA, cpu.PC) == addr {
				cpu.halt(addr, inst)
				return
			}
		}
	case OP_RETN:
		if frame, ok := cpu.Stack.Pop(); ok {
			cpu.PC = frame.PC
			cpu.CA = frame.CA
		}
		cpu.PA = cpu.PB
	case OP_UNDEF:
		cpu.Undefined++
		if cpu.Verbose {
			log.Printf("tms1100: $%03x %v: %v", addr, inst, ErrOpcodeUndefined)
		}
		if cpu.Policy == POLICY_RESET {
			cpu.Reset()
			return
		}
	}

	cki := cpu.readCKI(inst)
	data := cpu.Ram.At(cpu.X, cpu.Y)
	cpu.Adder.Reset()

	// Cycle 1: the adder inputs merge.
	if inst.Micro&FTN != 0 {
		cpu.Adder.N |= 0xf
	}
	if inst.Micro&ATN != 0 {
		cpu.Adder.N |= cpu.A
	}
	if inst.Micro&NATN != 0 {
		cpu.Adder.N |= cpu.A ^ 0xf
	}
	if inst.Micro&CKN != 0 {
		cpu.Adder.N |= cki
	}
	if inst.Micro&MTN != 0 {
		cpu.Adder.N |= data
	}
	if inst.Micro&CKP != 0 {
		cpu.Adder.P |= cki
	}
	if inst.Micro&MTP != 0 {
		cpu.Adder.P |= data
	}
	if inst.Micro&YTP != 0 {
		cpu.Adder.P |= cpu.Y
	}
	if inst.Micro&CIN != 0 {
		cpu.Adder.CarryIn = true
	}

	// Cycle 2: the adder clocks, the write bus forms, the fixed register
	// and latch effects apply, and memory writes back. Nothing below
	// moves X or Y and writes memory in the same instruction, so the
	// write address is still the one read at cycle 0.
	cpu.Adder.Clock(inst.Micro&C8 != 0, inst.Micro&NE != 0)

	write := data
	store := false
	if inst.Micro&CKM != 0 {
		write = cki
		store = true
	}
	if inst.Micro&STO != 0 {
		write = cpu.A
		store = true
	}

	switch inst.Op {
	case OP_SBIT:
		write = data | cki^0xf
		store = true
	case OP_RBIT:
		write = data & cki
		store = true
	case OP_COMC:
		cpu.CB ^= 0x1
	case OP_COMX:
		cpu.X ^= 0x7
	case OP_LDP:
		cpu.PB = inst.Const
	case OP_LDX:
		cpu.X = inst.File()
	case OP_RSTR:
		cpu.Latch.SetR(cpu.rIndex(), false)
	case OP_SETR:
		cpu.Latch.SetR(cpu.rIndex(), true)
	case OP_TDO:
		cpu.Latch.O = cpu.A & 0xf
		if cpu.SL {
			cpu.Latch.O |= 1 << 4
		}
	}

	if store {
		cpu.Ram.Set(cpu.X, cpu.Y, write)
	}

	// Cycles 3 and 5 are settling time. Cycle 4: the adder output routes
	// to the registers and the next instruction fetches.
	if inst.Micro&AUTA != 0 {
		cpu.A = cpu.Adder.Sum
	}
	if inst.Micro&AUTY != 0 {
		cpu.Y = cpu.Adder.Sum
	}
	if inst.Micro&STSL != 0 {
		cpu.SL = cpu.Adder.Status
	}

	cpu.fetch()

	return
}

func (cpu *Cpu) halt(addr uint16, inst Instruction) {
	cpu.State = STATE_HALTED
	if cpu.Verbose {
		log.Printf("tms1100: $%03x %v: %v", addr, inst, cpu.State)
	}
}

// readCKI selects the CKI data bus source by opcode group.
func (cpu *Cpu) readCKI(inst Instruction) uint8 {
	switch inst.Word & 0xf8 {
	case 0x08:
		// TKA, KNEZ
		return cpu.Latch.K & 0xf
	case 0x30, 0x38:
		// SBIT, RBIT, TBIT1
		return 1<<inst.Bit() ^ 0xf
	case 0x00, 0x40, 0x48, 0x50, 0x58, 0x60, 0x68, 0x70, 0x78:
		return inst.Const
	}
	return 0
}

// rIndex is the R output latch addressed by SETR and RSTR. The high bit
// of X extends the index past the wired latches.
func (cpu *Cpu) rIndex() uint8 {
	return cpu.X>>2<<4 | cpu.Y
}

// Save captures the register, latch, and memory state. The ROM is not
// part of a save; it is immutable for the life of the session.
func (cpu *Cpu) Save() (state Cpu) {
	state = *cpu
	state.Rom = nil
	state.Stack.Frames = append([]Frame(nil), cpu.Stack.Frames...)
	return
}

// Restore resumes from a saved state, keeping the current ROM and
// configuration.
func (cpu *Cpu) Restore(state Cpu) {
	rom, verbose, policy := cpu.Rom, cpu.Verbose, cpu.Policy
	*cpu = state
	cpu.Rom = rom
	cpu.Verbose = verbose
	cpu.Policy = policy
	cpu.Stack.Frames = append([]Frame(nil), state.Stack.Frames...)
}
