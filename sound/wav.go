package sound

import (
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Recorder renders per-frame pitch estimates into a mono 16-bit WAV
// stream. Each Frame call appends one frame's worth of square wave at
// the given pitch, or silence for pitch zero.
type Recorder struct {
	encoder *wav.Encoder

	rate    int
	samples int // samples per frame
	phase   int
}

// NewRecorder writes a WAV header for sampleRate mono audio to w, with
// frameHz frames of audio per second.
func NewRecorder(w io.WriteSeeker, sampleRate int, frameHz int) (r *Recorder) {
	return &Recorder{
		encoder: wav.NewEncoder(w, sampleRate, 16, 1, 1),
		rate:    sampleRate,
		samples: sampleRate / frameHz,
	}
}

// Frame appends one frame of audio at the given pitch in hertz.
func (r *Recorder) Frame(pitch int) (err error) {
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  r.rate,
		},
		Data:           make([]int, r.samples),
		SourceBitDepth: 16,
	}

	if pitch <= 0 {
		r.phase = 0
		return r.encoder.Write(buf)
	}

	// Square wave by phase accumulator, so the tone stays continuous
	// across frame boundaries.
	for at := range buf.Data {
		if r.phase < r.rate/2 {
			buf.Data[at] = 0x4000
		} else {
			buf.Data[at] = -0x4000
		}
		r.phase = (r.phase + pitch) % r.rate
	}

	return r.encoder.Write(buf)
}

// Close finalizes the WAV header.
func (r *Recorder) Close() (err error) {
	return r.encoder.Close()
}
