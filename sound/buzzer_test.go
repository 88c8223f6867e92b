package sound

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// pulseTrain feeds edges at a fixed period, starting at startUs.
func pulseTrain(b *Buzzer, startUs uint64, periodUs uint64, count int) {
	for n := 0; n < count; n++ {
		b.Pulse(startUs + periodUs*uint64(n))
	}
}

func TestBuzzer_Pitch(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name     string
		periodUs uint64
		count    int
		pitch    int
	}){
		{name: "silence", periodUs: 0, count: 0, pitch: 0},
		{name: "single edge", periodUs: 0, count: 1, pitch: 0},
		{name: "1kHz", periodUs: 1000, count: 21, pitch: 1000},
		{name: "440Hz", periodUs: 2272, count: 9, pitch: 440},
		{name: "50Hz floor", periodUs: 20000, count: 2, pitch: 50},
		{name: "too low", periodUs: 20500, count: 2, pitch: 0},
		{name: "2399Hz ceiling", periodUs: 417, count: 21, pitch: 2398},
		{name: "too high", periodUs: 400, count: 21, pitch: 0},
	}

	for _, entry := range table {
		b := &Buzzer{}
		pulseTrain(b, 10_000, entry.periodUs, entry.count)
		b.Sync()
		assert.Equal(entry.pitch, b.Pitch, entry.name)
	}
}

func TestBuzzer_SyncClears(t *testing.T) {
	assert := assert.New(t)

	b := &Buzzer{}
	pulseTrain(b, 0, 1000, 11)
	b.Sync()
	assert.Equal(1000, b.Pitch)

	// No edges this frame; the tone stops.
	b.Sync()
	assert.Equal(0, b.Pitch)
}

func TestBuzzer_Reset(t *testing.T) {
	assert := assert.New(t)

	b := &Buzzer{}
	pulseTrain(b, 0, 1000, 11)
	b.Reset()
	assert.Equal(0, b.Pitch)

	b.Sync()
	assert.Equal(0, b.Pitch)
}
