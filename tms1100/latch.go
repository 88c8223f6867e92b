package tms1100

const (
	R_LINES = 11 // R output latches, R0..R10
	O_LINES = 5  // O output latches, O0..O4
	K_LINES = 4  // K input lines, K1/K2/K4/K8
)

// Latches is the I/O latch bank. The R and O outputs hold the last value
// the program wrote; the K inputs reflect whatever the peripherals drive
// at the moment of the read. Nothing is buffered.
type Latches struct {
	R uint16 // one bit per R output latch
	O uint8  // status latch and accumulator, via TDO
	K uint8  // keypad rows and the paddle sense line
}

// SetR sets or clears one R output latch. Indexes past the wired latches
// are ignored, as unwired pins are.
func (l *Latches) SetR(index uint8, on bool) {
	if index >= R_LINES {
		return
	}
	if on {
		l.R |= 1 << index
	} else {
		l.R &^= 1 << index
	}
}

// GetR reports one R output latch.
func (l *Latches) GetR(index uint8) bool {
	return index < R_LINES && l.R&(1<<index) != 0
}

// Reset clears every latch.
func (l *Latches) Reset() {
	l.R = 0
	l.O = 0
	l.K = 0
}
