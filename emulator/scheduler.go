package emulator

import (
	"time"
)

// Synchronizer paces emulated frames against host time. With
// FastForward set it stops sleeping and the emulation runs as fast as
// the host allows.
type Synchronizer struct {
	FastForward bool

	prevTime   time.Time
	usPerFrame int
}

// NewSynchronizer paces to a frame rate.
func NewSynchronizer(frameHz int) *Synchronizer {
	return &Synchronizer{
		prevTime:   time.Now(),
		usPerFrame: 1_000_000 / frameHz,
	}
}

// MaySleep sleeps off whatever remains of the current frame's share of
// host time.
func (sync *Synchronizer) MaySleep() {
	if sync.FastForward {
		sync.prevTime = time.Now()
		return
	}

	elapsed := int(time.Since(sync.prevTime).Microseconds())
	if diff := sync.usPerFrame - elapsed; diff > 0 {
		time.Sleep(time.Duration(diff) * time.Microsecond)
	}
	sync.prevTime = time.Now()
}
