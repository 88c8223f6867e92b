// Package sound models the piezo buzzer behind the console grille. The
// program drives the speaker line directly, so the tone is whatever
// square wave the instruction timing produces. Pulse edges are counted
// per frame and reduced to a pitch estimate.
package sound

const (
	PITCH_MIN = 50   // hertz, lowest tone the piezo reproduces
	PITCH_MAX = 2400 // hertz, tones at or above this are inaudible
)

// Buzzer estimates the speaker tone from the rising edges of the
// speaker line. Pitch is the estimate for the most recent frame, in
// hertz, or zero for silence.
type Buzzer struct {
	Pitch int

	// Pulse bookkeeping for the frame in flight. Exported so a snapshot
	// resumes bit-identically.
	Pulses int
	First  uint64
	Last   uint64
}

// Pulse records a rising edge on the speaker line.
func (b *Buzzer) Pulse(nowUs uint64) {
	if b.Pulses == 0 {
		b.First = nowUs
	}
	b.Last = nowUs
	b.Pulses++
}

// Sync reduces the frame's pulses to a pitch and starts a new frame.
// A steady tone needs at least two edges; anything outside the piezo's
// range reads as silence.
func (b *Buzzer) Sync() {
	pitch := 0
	if b.Pulses > 1 && b.Last > b.First {
		pitch = int(uint64(b.Pulses-1) * 1_000_000 / (b.Last - b.First))
	}
	if pitch < PITCH_MIN || pitch >= PITCH_MAX {
		pitch = 0
	}

	b.Pitch = pitch
	b.Pulses = 0
}

// Reset silences the buzzer.
func (b *Buzzer) Reset() {
	b.Pitch = 0
	b.Pulses = 0
	b.First = 0
	b.Last = 0
}
