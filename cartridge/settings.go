package cartridge

import (
	"fmt"
	"iter"
	"maps"

	"github.com/ezrec/microvision/paddle"
	"github.com/ezrec/microvision/tms1100"
)

const CLOCK_HZ = 500_000 // stock oscillator rate

// Output is the output PLA wiring between the processor's O latch and
// the LCD driver data lines. The factory wiring reverses the O bits
// onto the data lines; some later boards feed them straight through.
type Output int

//go:generate go tool stringer -linecomment -type=Output
const (
	OUTPUT_REVERSED = Output(0) // reversed
	OUTPUT_NORMAL   = Output(1) // normal
)

// Modify routes the low four O latch bits onto the LCD data lines.
func (o Output) Modify(value uint8) uint8 {
	if o == OUTPUT_NORMAL {
		return value & 0xf
	}
	return tms1100.Rev4(value & 0xf)
}

// Settings is the per-cartridge console wiring.
type Settings struct {
	Output Output // output PLA polarity
	Rotary bool   // rotary controller wired to R2 and K8
	Offset int    // rotary charge offset, microseconds
	Scale  int    // rotary charge scale, microseconds per ten percent of turn
	Clock  int    // oscillator rate, hertz
}

// DefaultSettings is the most common cartridge wiring.
func DefaultSettings() Settings {
	return Settings{
		Output: OUTPUT_REVERSED,
		Rotary: true,
		Offset: paddle.CHARGE_OFFSET,
		Scale:  paddle.CHARGE_SCALE,
		Clock:  CLOCK_HZ,
	}
}

// Defines returns assembler equates describing these settings.
func (s Settings) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{
		"CHARGE_OFFSET": fmt.Sprintf("%v", s.Offset),
		"CHARGE_SCALE":  fmt.Sprintf("%v", s.Scale),
		"CLOCK_HZ":      fmt.Sprintf("%v", s.Clock),
	})
}
