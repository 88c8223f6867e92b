// Package paddle models the rotary control on the console face. The
// knob sets a potentiometer in an RC circuit; the program pulses a
// charge line and times how long the capacitor takes to charge by
// polling an input bit, so the knob position becomes a pulse width.
package paddle

import (
	"sync/atomic"
)

const (
	CHARGE_OFFSET = 600 // microseconds to charge with the knob at zero
	CHARGE_SCALE  = 65  // additional microseconds per ten percent of turn
)

// Paddle converts the knob position into charge timing. The position
// arrives from the input side at any time; charge timing runs on the
// processor's clock.
type Paddle struct {
	Offset int // microseconds, charge time at zero turn
	Scale  int // microseconds per ten percent of turn

	// ChargeEnd is the emulated microsecond at which the current charge
	// completes. Exported so a snapshot resumes bit-identically.
	ChargeEnd uint64

	turn atomic.Uint32
}

// New returns a paddle with the stock RC constants.
func New() (p *Paddle) {
	return &Paddle{
		Offset: CHARGE_OFFSET,
		Scale:  CHARGE_SCALE,
	}
}

// SetTurn positions the knob, as a percentage of full clockwise.
func (p *Paddle) SetTurn(percent int) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	p.turn.Store(uint32(percent))
}

// Turn reports the knob position.
func (p *Paddle) Turn() int {
	return int(p.turn.Load())
}

// Charge starts the capacitor charging. The charge completes later for
// larger turns.
func (p *Paddle) Charge(nowUs uint64) {
	p.ChargeEnd = nowUs + uint64(p.Offset) + uint64(p.Scale)*uint64(p.turn.Load())/10
}

// Charging reports whether the capacitor is still filling, which the
// program reads as a high input bit.
func (p *Paddle) Charging(nowUs uint64) bool {
	return nowUs < p.ChargeEnd
}

// Reset drains the capacitor.
func (p *Paddle) Reset() {
	p.ChargeEnd = 0
}
