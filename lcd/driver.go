// Package lcd models the Hughes 0488 driver pair and the 16x16 liquid
// crystal panel it drives. The processor shifts row and column select
// nibbles into the drivers serially and latches them onto the panel;
// the panel itself only holds an image for a handful of frames, so lit
// crossings are refreshed continuously by the program.
package lcd

// Driver is the cascaded Hughes 0488 pair. Four data lines feed eight
// 4-bit latches addressed by a counter; the first four latches drive
// the row selects and the last four the column selects.
type Driver struct {
	Counter uint8    // latch address counter
	Latches [8]uint8 // shifted select nibbles
	Row     uint16   // latched row selects, bit 0 is the top row
	Col     uint16   // latched column selects, bit 0 is the left column

	// DataClock holds the !DATA CLK level of the previous Clock call,
	// for edge detection. Exported so a snapshot resumes bit-identically.
	DataClock bool
}

// Clock presents one settled state of the control lines. The data
// nibble loads into the addressed latch while the clock is low, and the
// address counter advances on the rising clock edge. A latch pulse with
// the clock high transfers the selects to the panel and reports a
// strobe; any latch pulse rewinds the counter.
func (drv *Driver) Clock(pulse, clock bool, data uint8) (strobe bool) {
	if clock && !drv.DataClock {
		drv.Counter = (drv.Counter + 1) & 7
	}
	drv.DataClock = clock

	if !clock {
		drv.Latches[drv.Counter] = data & 0xf
	}

	if pulse {
		if clock {
			drv.Row = drv.fold(0)
			drv.Col = drv.fold(4)
			strobe = true
		}
		drv.Counter = 0
	}

	return
}

// fold assembles four latches into select lines, first latch most
// significant.
func (drv *Driver) fold(from int) (lines uint16) {
	for _, nibble := range drv.Latches[from : from+4] {
		lines = lines<<4 | uint16(nibble)
	}
	return
}

// Reset returns the driver pair to the power-on state.
func (drv *Driver) Reset() {
	*drv = Driver{}
}
