package keypad

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeypad_Sense(t *testing.T) {
	assert := assert.New(t)

	kp := &Keypad{}

	// Nothing pressed reads open on every column.
	assert.Equal(uint8(0), kp.Sense(0x7))

	// Key at row 1, column 1 answers only when its column drives.
	kp.Press(Index(1, 1))
	assert.Equal(uint8(0), kp.Sense(1<<0))
	assert.Equal(uint8(1<<1), kp.Sense(1<<1))
	assert.Equal(uint8(0), kp.Sense(1<<2))
	assert.Equal(uint8(1<<1), kp.Sense(0x7))

	kp.Release(Index(1, 1))
	assert.Equal(uint8(0), kp.Sense(0x7))
}

func TestKeypad_SenseWiredOr(t *testing.T) {
	assert := assert.New(t)

	kp := &Keypad{}

	kp.Press(Index(0, 0))
	kp.Press(Index(3, 2))
	kp.Press(Index(3, 0))

	assert.Equal(uint8(1<<0|1<<3), kp.Sense(1<<0))
	assert.Equal(uint8(1<<3), kp.Sense(1<<2))
	assert.Equal(uint8(0), kp.Sense(1<<1))
	assert.Equal(uint8(1<<0|1<<3), kp.Sense(0x7))
}

func TestKeypad_Bounds(t *testing.T) {
	assert := assert.New(t)

	kp := &Keypad{}

	kp.Press(-1)
	kp.Press(KEYS)
	assert.Equal(uint8(0), kp.Sense(0x7))
	assert.False(kp.Pressed(-1))
	assert.False(kp.Pressed(KEYS))

	kp.Press(Index(2, 2))
	assert.True(kp.Pressed(Index(2, 2)))

	kp.Reset()
	assert.False(kp.Pressed(Index(2, 2)))
}

func TestOverlay_Validate(t *testing.T) {
	assert := assert.New(t)

	overlay := DefaultOverlay()
	assert.NoError(overlay.Validate())
	assert.Equal(KEYS, len(overlay.Keys))

	overlay.Keys = append(overlay.Keys, Key{Label: "X", Row: 4, Col: 0})
	err := overlay.Validate()
	assert.Error(err)

	var oor ErrOverlayRange
	assert.ErrorAs(err, &oor)
	assert.Equal("X", oor.Key.Label)
}

func TestOverlay_Find(t *testing.T) {
	assert := assert.New(t)

	overlay := Overlay{
		Name: "blockbuster",
		Keys: []Key{
			{Label: "serve", Row: 0, Col: 1},
			{Label: "left", Row: 3, Col: 0},
			{Label: "right", Row: 3, Col: 2},
		},
	}
	assert.NoError(overlay.Validate())

	key, ok := overlay.Find("serve")
	assert.True(ok)
	assert.Equal(0, key.Row)
	assert.Equal(1, key.Col)

	_, ok = overlay.Find("fire")
	assert.False(ok)
}

func TestDefaultOverlay(t *testing.T) {
	assert := assert.New(t)

	overlay := DefaultOverlay()

	key, ok := overlay.Find("1")
	assert.True(ok)
	assert.Equal(0, key.Row)
	assert.Equal(0, key.Col)

	key, ok = overlay.Find("12")
	assert.True(ok)
	assert.Equal(3, key.Row)
	assert.Equal(2, key.Col)
}
