//go:build !sdl2

package window

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/microvision/lcd"
)

func TestHeadless(t *testing.T) {
	assert := assert.New(t)

	wind, err := New("test")
	assert.NoError(err)

	quit, event := wind.HandleEvents()
	assert.False(quit)
	assert.Zero(event.Keys)
	assert.Equal(50, event.Turn)

	assert.NoError(wind.Update([lcd.HEIGHT][lcd.WIDTH]uint8{}, 440))
	assert.NoError(wind.Close())
}
