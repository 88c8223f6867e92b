package emulator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSynchronizer_Paces(t *testing.T) {
	assert := assert.New(t)

	sync := NewSynchronizer(100)

	start := time.Now()
	sync.MaySleep()
	sync.MaySleep()

	// Two 10ms frames, with slack for a loaded host.
	assert.GreaterOrEqual(time.Since(start), 10*time.Millisecond)
}

func TestSynchronizer_FastForward(t *testing.T) {
	sync := NewSynchronizer(1)
	sync.FastForward = true

	// A full frame would be a second; fast-forward must not sleep it.
	start := time.Now()
	sync.MaySleep()
	if time.Since(start) > 500*time.Millisecond {
		t.Fatal("fast-forward slept")
	}
}
