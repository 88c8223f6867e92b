// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator wires a TMS1100 to the console peripherals and runs
// them against a shared oscillator cycle counter.
package emulator

import (
	"context"
	"fmt"
	"iter"
	"log"
	"maps"
	"sync/atomic"

	"github.com/ezrec/microvision/cartridge"
	"github.com/ezrec/microvision/internal"
	"github.com/ezrec/microvision/keypad"
	"github.com/ezrec/microvision/lcd"
	"github.com/ezrec/microvision/paddle"
	"github.com/ezrec/microvision/sound"
	"github.com/ezrec/microvision/tms1100"
)

const (
	FRAME_HZ = 50 // display refresh and frame pacing rate
)

// R output latch wiring on the console board.
const (
	R_SPEAKER   = 0  // piezo buzzer pulse
	R_CHARGE    = 2  // rotary controller charge pulse
	R_LCD_LATCH = 6  // LCD driver LATCH PULSE
	R_LCD_CLOCK = 7  // LCD driver !DATA CLK
	R_KEY_COL2  = 8  // keypad column 2 select
	R_KEY_COL1  = 9  // keypad column 1 select
	R_KEY_COL0  = 10 // keypad column 0 select
)

var _emulator_defines = map[string]string{
	"FRAME_HZ": fmt.Sprintf("%v", FRAME_HZ),
}

// Emulator state. CPU + LCD + keypad + paddle + buzzer.
type Emulator struct {
	Verbose      bool // If set, enables verbose logging.
	Turbo        bool // If set, Run does not pace frames to host time.
	Linger       bool // If set, a halted processor keeps the console alive.
	*tms1100.Cpu      // Reference to the CPU simulation.

	Cartridge *cartridge.Cartridge // The inserted game.

	Driver  lcd.Driver    // Hughes 0488 driver pair.
	Display *lcd.Display  // Persistence model of the panel.
	Keypad  keypad.Keypad // Key matrix under the overlay.
	Paddle  *paddle.Paddle
	Buzzer  sound.Buzzer

	// Script, when set, feeds timed input events to Run.
	Script *Script

	Cycles uint64 // Oscillator cycles since reset.
	Frames uint64 // Frames retired since reset.

	frame atomic.Pointer[[lcd.HEIGHT][lcd.WIDTH]uint8]
}

// New creates a new emulator around a loaded cartridge.
func New(cart *cartridge.Cartridge) (emu *Emulator) {
	emu = &Emulator{
		Cpu:       tms1100.New(&cart.Rom),
		Cartridge: cart,
		Display:   lcd.NewDisplay(),
		Paddle:    paddle.New(),
	}

	emu.Paddle.Offset = cart.Settings.Offset
	emu.Paddle.Scale = cart.Settings.Scale

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cartridge.Settings.Defines(),
	)
}

// Reset powers the console on again. The processor, the peripherals,
// and the cycle clock all return to zero; the cartridge and whatever
// the player is holding stay put.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.Driver.Reset()
	emu.Display.Reset()
	emu.Paddle.Reset()
	emu.Buzzer.Reset()

	emu.Cycles = 0
	emu.Frames = 0
	emu.publish()
}

// Us is the emulated time in microseconds. Time derives from the cycle
// counter, never from the host clock, so runs reproduce exactly.
func (emu *Emulator) Us() uint64 {
	return emu.Cycles * 1_000_000 / uint64(emu.Cartridge.Settings.Clock)
}

// Step runs one instruction and presents the settled output lines to
// the peripherals. A halted processor still burns cycles; the lines
// just stop changing.
func (emu *Emulator) Step() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	addr := emu.Cpu.InstAddr
	defer func() {
		if err != nil {
			err = &ErrRuntime{Addr: addr, Err: err}
		}
	}()

	emu.Cpu.Latch.K = emu.sense()

	previous := emu.Cpu.Latch.R
	if err = emu.Cpu.Step(); err != nil {
		return
	}
	emu.Cycles += tms1100.CYCLES_PER_INSTRUCTION

	lines := emu.Cpu.Latch.R
	rising := lines &^ previous

	if rising&(1<<R_SPEAKER) != 0 {
		emu.Buzzer.Pulse(emu.Us())
	}
	if emu.Cartridge.Settings.Rotary && rising&(1<<R_CHARGE) != 0 {
		emu.Paddle.Charge(emu.Us())
	}

	data := emu.Cartridge.Settings.Output.Modify(emu.Cpu.Latch.O)
	pulse := lines&(1<<R_LCD_LATCH) != 0
	clock := lines&(1<<R_LCD_CLOCK) != 0
	if emu.Driver.Clock(pulse, clock, data) && emu.Verbose {
		log.Printf("emulator: lcd row=%04x col=%04x", emu.Driver.Row, emu.Driver.Col)
	}

	// The panel refreshes from the held select lines every cycle, not
	// just on a transfer.
	emu.Display.Strobe(emu.Driver.Row, emu.Driver.Col)

	return
}

// sense reads the K input pins: the keypad rows of whichever columns
// are driven, and the rotary charge sense on K8.
func (emu *Emulator) sense() (k uint8) {
	var cols uint8
	if emu.Cpu.Latch.GetR(R_KEY_COL0) {
		cols |= 1 << 0
	}
	if emu.Cpu.Latch.GetR(R_KEY_COL1) {
		cols |= 1 << 1
	}
	if emu.Cpu.Latch.GetR(R_KEY_COL2) {
		cols |= 1 << 2
	}

	k = emu.Keypad.Sense(cols)

	if emu.Cartridge.Settings.Rotary && emu.Paddle.Charging(emu.Us()) {
		k |= 0x8
	}

	return
}

// RunFrame runs one display frame of instructions and retires the
// frame. A processor that halts mid-frame finishes the frame, so the
// panel is left in a consistent state, and then reports ErrHalted.
func (emu *Emulator) RunFrame() (err error) {
	end := emu.Cycles + uint64(emu.Cartridge.Settings.Clock/FRAME_HZ)

	for emu.Cycles < end {
		if err = emu.Step(); err != nil {
			return
		}
	}

	emu.endFrame()

	return emu.halted()
}

// halted is the terminal condition at a retired frame. A fault has
// already surfaced from Step; with Linger set a plain halt keeps the
// console alive and the image simply decays.
func (emu *Emulator) halted() (err error) {
	if emu.Linger || emu.Cpu.State != tms1100.STATE_HALTED || emu.Cpu.Fault != nil {
		return
	}
	return &ErrHalt{Addr: emu.Cpu.InstAddr, Inst: emu.Cpu.Inst}
}

// endFrame publishes the visible image, ages the panel, and reduces the
// buzzer pulses to a pitch.
func (emu *Emulator) endFrame() {
	emu.publish()
	emu.Display.Decay()
	emu.Buzzer.Sync()
	emu.Frames++
}

// Run paces frames against host time until the context cancels or the
// processor stops, by fault or by halt. With Linger set a halted
// processor keeps the console alive instead; the image simply decays.
func (emu *Emulator) Run(ctx context.Context) (err error) {
	sync := NewSynchronizer(FRAME_HZ)

	for {
		if emu.Script != nil {
			if err = emu.Script.Apply(emu, emu.Frames); err != nil {
				return
			}
		}

		end := emu.Cycles + uint64(emu.Cartridge.Settings.Clock/FRAME_HZ)
		for emu.Cycles < end {
			if err = ctx.Err(); err != nil {
				return
			}
			if err = emu.Step(); err != nil {
				return
			}
		}
		emu.endFrame()
		if err = emu.halted(); err != nil {
			return
		}

		sync.FastForward = emu.Turbo
		sync.MaySleep()
	}
}

// Frame returns the most recently published image. It is safe to call
// from other goroutines while the emulator runs.
func (emu *Emulator) Frame() (frame [lcd.HEIGHT][lcd.WIDTH]uint8) {
	if p := emu.frame.Load(); p != nil {
		frame = *p
	}
	return
}

// publish snapshots the panel for Frame readers.
func (emu *Emulator) publish() {
	frame := emu.Display.Frame()
	emu.frame.Store(&frame)
}

// Press pushes the overlay key with the given label.
func (emu *Emulator) Press(label string) (err error) {
	key, ok := emu.Cartridge.Overlay.Find(label)
	if !ok {
		return ErrKey(label)
	}
	emu.Keypad.Press(keypad.Index(key.Row, key.Col))
	return
}

// Release lets the overlay key with the given label up.
func (emu *Emulator) Release(label string) (err error) {
	key, ok := emu.Cartridge.Overlay.Find(label)
	if !ok {
		return ErrKey(label)
	}
	emu.Keypad.Release(keypad.Index(key.Row, key.Col))
	return
}
