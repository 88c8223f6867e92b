package lcd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// shift loads the eight select nibbles the way the processor does:
// data settles while the clock is low, then the rising edge advances
// the latch counter.
func shift(drv *Driver, nibbles [8]uint8) {
	for _, nibble := range nibbles {
		drv.Clock(false, false, nibble)
		drv.Clock(false, true, nibble)
	}
}

func TestDriver_Shift(t *testing.T) {
	assert := assert.New(t)

	drv := &Driver{}

	shift(drv, [8]uint8{0x0, 0x0, 0x0, 0x4, 0x0, 0x0, 0x0, 0x8})
	assert.Equal(uint8(0), drv.Counter)

	strobe := drv.Clock(true, true, 0)
	assert.True(strobe)
	assert.Equal(uint16(0x0004), drv.Row)
	assert.Equal(uint16(0x0008), drv.Col)
	assert.Equal(uint8(0), drv.Counter)
}

func TestDriver_FoldOrder(t *testing.T) {
	assert := assert.New(t)

	drv := &Driver{}

	// The first shifted nibble lands in the most significant position.
	shift(drv, [8]uint8{0x1, 0x2, 0x3, 0x4, 0x5, 0x6, 0x7, 0x8})
	drv.Clock(true, true, 0)

	assert.Equal(uint16(0x1234), drv.Row)
	assert.Equal(uint16(0x5678), drv.Col)
}

func TestDriver_PulseRewindsCounter(t *testing.T) {
	assert := assert.New(t)

	drv := &Driver{}

	// Partial shift, then a pulse with the clock low: no transfer,
	// but the counter rewinds.
	drv.Clock(false, false, 0x9)
	drv.Clock(false, true, 0x9)
	drv.Clock(false, false, 0xa)
	assert.Equal(uint8(1), drv.Counter)

	strobe := drv.Clock(true, false, 0xa)
	assert.False(strobe)
	assert.Equal(uint8(0), drv.Counter)
	assert.Equal(uint16(0), drv.Row)
	assert.Equal(uint16(0), drv.Col)
}

func TestDriver_CounterWraps(t *testing.T) {
	assert := assert.New(t)

	drv := &Driver{}

	for range 8 {
		drv.Clock(false, false, 0xf)
		drv.Clock(false, true, 0xf)
	}
	assert.Equal(uint8(0), drv.Counter)
	assert.Equal([8]uint8{0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf, 0xf}, drv.Latches)
}

func TestDriver_Reset(t *testing.T) {
	assert := assert.New(t)

	drv := &Driver{}
	shift(drv, [8]uint8{1, 1, 1, 1, 1, 1, 1, 1})
	drv.Clock(true, true, 0)

	drv.Reset()
	assert.Equal(uint8(0), drv.Counter)
	assert.Equal(uint16(0), drv.Row)
	assert.Equal(uint16(0), drv.Col)
	assert.Equal([8]uint8{}, drv.Latches)
}
