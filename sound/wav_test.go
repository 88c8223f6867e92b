package sound

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
)

func recordFrames(t *testing.T, pitches []int) string {
	t.Helper()

	name := filepath.Join(t.TempDir(), "tone.wav")
	fh, err := os.Create(name)
	if err != nil {
		t.Fatal(err)
	}
	defer fh.Close()

	rec := NewRecorder(fh, 44100, 50)
	for _, pitch := range pitches {
		if err := rec.Frame(pitch); err != nil {
			t.Fatal(err)
		}
	}
	if err := rec.Close(); err != nil {
		t.Fatal(err)
	}

	return name
}

func TestRecorder(t *testing.T) {
	assert := assert.New(t)

	name := recordFrames(t, []int{0, 440, 440, 0})

	fh, err := os.Open(name)
	assert.NoError(err)
	defer fh.Close()

	dec := wav.NewDecoder(fh)
	assert.True(dec.IsValidFile())

	buf, err := dec.FullPCMBuffer()
	assert.NoError(err)
	assert.EqualValues(44100, dec.SampleRate)
	assert.EqualValues(1, dec.NumChans)

	// Four frames at 50Hz of 44.1kHz audio.
	assert.Equal(4*44100/50, len(buf.Data))

	quiet := func(data []int) bool {
		for _, sample := range data {
			if sample != 0 {
				return false
			}
		}
		return true
	}

	frame := 44100 / 50
	assert.True(quiet(buf.Data[:frame]))
	assert.False(quiet(buf.Data[frame : 3*frame]))
	assert.True(quiet(buf.Data[3*frame:]))
}

func TestRecorder_Square(t *testing.T) {
	assert := assert.New(t)

	name := recordFrames(t, []int{441})

	fh, err := os.Open(name)
	assert.NoError(err)
	defer fh.Close()

	dec := wav.NewDecoder(fh)
	buf, err := dec.FullPCMBuffer()
	assert.NoError(err)

	// 441Hz at 44.1kHz is a 100 sample period, half high and half low.
	for at := 0; at < 50; at++ {
		assert.Equal(0x4000, buf.Data[at], "sample %v", at)
	}
	for at := 50; at < 100; at++ {
		assert.Equal(-0x4000, buf.Data[at], "sample %v", at)
	}
}
