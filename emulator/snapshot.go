// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"github.com/ezrec/microvision/lcd"
	"github.com/ezrec/microvision/sound"
	"github.com/ezrec/microvision/tms1100"
)

// Snapshot is a complete capture of the running console: processor,
// driver, panel, charge timing, buzzer, and the cycle clock. Every
// field is exported and plain data, so a snapshot encodes with any of
// the stock serializers. The cartridge is not captured; a snapshot
// resumes against the same ROM it was taken from.
type Snapshot struct {
	Cpu     tms1100.Cpu
	Driver  lcd.Driver
	Display lcd.Display
	Charge  uint64
	Buzzer  sound.Buzzer
	Cycles  uint64
	Frames  uint64
}

// Snapshot captures the console between steps. Taking one never
// disturbs the machine.
func (emu *Emulator) Snapshot() (snap Snapshot) {
	return Snapshot{
		Cpu:     emu.Cpu.Save(),
		Driver:  emu.Driver,
		Display: *emu.Display,
		Charge:  emu.Paddle.ChargeEnd,
		Buzzer:  emu.Buzzer,
		Cycles:  emu.Cycles,
		Frames:  emu.Frames,
	}
}

// Restore resumes from a snapshot, bit-identically. The keypad and the
// paddle knob keep their live positions; they are inputs, not machine
// state.
func (emu *Emulator) Restore(snap Snapshot) {
	emu.Cpu.Restore(snap.Cpu)
	emu.Driver = snap.Driver
	*emu.Display = snap.Display
	emu.Paddle.ChargeEnd = snap.Charge
	emu.Buzzer = snap.Buzzer
	emu.Cycles = snap.Cycles
	emu.Frames = snap.Frames
	emu.publish()
}
