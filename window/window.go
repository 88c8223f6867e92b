// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package window presents the emulated console on the host: the panel
// as a scaled pixel grid, the buzzer as host audio, and the host
// keyboard as the keypad matrix and paddle knob. The SDL presentation
// builds under the sdl2 tag; the default build is headless.
package window

import (
	"github.com/ezrec/microvision/lcd"
)

const (
	SCALE  = 24 // host pixels per panel pixel
	WIDTH  = lcd.WIDTH * SCALE
	HEIGHT = lcd.HEIGHT * SCALE

	AUDIO_HZ = 48_000 // host sample rate for the buzzer
)

// Event is the host input state after a poll: which keypad positions
// are held, by keypad.Index bit, and where the paddle knob sits.
type Event struct {
	Keys uint16
	Turn int
}

// Window is the host presentation surface.
type Window interface {
	// HandleEvents polls host input, reporting a quit request and the
	// current input state.
	HandleEvents() (quit bool, event Event)

	// Update presents one frame of panel brightness and its buzzer
	// pitch in hertz, zero for silence.
	Update(frame [lcd.HEIGHT][lcd.WIDTH]uint8, pitch int) error

	// Close releases the host resources.
	Close() error
}
