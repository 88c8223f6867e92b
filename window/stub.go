// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

//go:build !sdl2

package window

import (
	"github.com/ezrec/microvision/lcd"
)

// Headless is the presentation surface of a build without SDL. Frames
// and tones are discarded and no input ever arrives; runs end by
// script, fault, or signal instead.
type Headless struct {
	event Event
}

// New returns a discarding surface. The title is ignored.
func New(title string) (wind *Headless, err error) {
	return &Headless{event: Event{Turn: 50}}, nil
}

func (wind *Headless) HandleEvents() (quit bool, event Event) {
	return false, wind.event
}

func (wind *Headless) Update(frame [lcd.HEIGHT][lcd.WIDTH]uint8, pitch int) error {
	return nil
}

func (wind *Headless) Close() error {
	return nil
}
