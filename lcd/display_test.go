package lcd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplay_Strobe(t *testing.T) {
	assert := assert.New(t)

	d := NewDisplay()

	d.Strobe(1<<2, 1<<3)

	for y := range HEIGHT {
		for x := range WIDTH {
			if y == 2 && x == 3 {
				assert.Equal(uint8(FADE_MAX), d.Level[y][x])
			} else {
				assert.Equal(uint8(0), d.Level[y][x], "pixel %v,%v", x, y)
			}
		}
	}

	assert.True(d.Lit(3, 2))
	assert.False(d.Lit(2, 3))
}

func TestDisplay_StrobeMultiple(t *testing.T) {
	assert := assert.New(t)

	d := NewDisplay()

	// Two rows and two columns light all four crossings.
	d.Strobe(1<<0|1<<15, 1<<1|1<<14)

	assert.True(d.Lit(1, 0))
	assert.True(d.Lit(14, 0))
	assert.True(d.Lit(1, 15))
	assert.True(d.Lit(14, 15))
	assert.False(d.Lit(0, 0))
}

func TestDisplay_Decay(t *testing.T) {
	assert := assert.New(t)

	d := NewDisplay()
	d.Strobe(1<<2, 1<<3)

	// The persistence window keeps the pixel visible, then it snaps off.
	for n := range int(PERSISTENCE) {
		d.Decay()
		assert.True(d.Lit(3, 2), "frame %v", n)
	}
	assert.Equal(uint8(FADE_MAX-PERSISTENCE), d.Level[2][3])

	d.Decay()
	assert.False(d.Lit(3, 2))
	assert.Equal(uint8(0), d.Level[2][3])

	// Further decay leaves dark pixels alone.
	d.Decay()
	assert.Equal(uint8(0), d.Level[2][3])
}

func TestDisplay_Refresh(t *testing.T) {
	assert := assert.New(t)

	d := NewDisplay()
	d.Strobe(1<<2, 1<<3)
	for range 10 {
		d.Decay()
	}

	// A refresh restores full brightness.
	d.Strobe(1<<2, 1<<3)
	assert.Equal(uint8(FADE_MAX), d.Level[2][3])
}

func TestDisplay_Persistence(t *testing.T) {
	assert := assert.New(t)

	d := NewDisplay()
	d.Persistence = 2
	d.Strobe(1<<0, 1<<0)

	d.Decay()
	assert.True(d.Lit(0, 0))
	d.Decay()
	assert.True(d.Lit(0, 0))
	d.Decay()
	assert.False(d.Lit(0, 0))
}

func TestDisplay_Frame(t *testing.T) {
	assert := assert.New(t)

	d := NewDisplay()
	d.Strobe(1<<5, 1<<6)

	frame := d.Frame()
	assert.Equal(uint8(FADE_MAX), frame[5][6])

	// The frame is a copy, not a view.
	d.Decay()
	assert.Equal(uint8(FADE_MAX), frame[5][6])
	assert.Equal(uint8(FADE_MAX-1), d.Level[5][6])
}

func TestDisplay_Dirty(t *testing.T) {
	assert := assert.New(t)

	d := NewDisplay()
	assert.False(d.Dirty())

	d.Strobe(1<<1, 1<<1)
	assert.True(d.Dirty())
	assert.False(d.Dirty())

	// Re-strobing a crossing already at full brightness is not a change.
	d.Strobe(1<<1, 1<<1)
	assert.False(d.Dirty())

	d.Decay()
	assert.True(d.Dirty())

	// Decay of an all-dark panel changes nothing.
	for range 20 {
		d.Decay()
	}
	d.Dirty()
	d.Decay()
	assert.False(d.Dirty())
}

func TestDisplay_Reset(t *testing.T) {
	assert := assert.New(t)

	d := NewDisplay()
	d.Strobe(0xffff, 0xffff)
	d.Reset()

	assert.Equal([HEIGHT][WIDTH]uint8{}, d.Level)
	assert.True(d.Dirty())
}
