package tms1100

import (
	"math/rand/v2"
)

const (
	ROM_WORDS = 2048 // 2 chapters of 16 pages of 64 words
	RAM_WORDS = 128  // 8 files of 16 nibbles
)

// Rom is the program memory, 2048 words of 8 bits. It is immutable once
// loaded.
type Rom struct {
	Data [ROM_WORDS]uint8
}

// Load copies a complete ROM image. Any other size is rejected.
func (rom *Rom) Load(image []byte) (err error) {
	if len(image) != ROM_WORDS {
		return ErrRomSize
	}
	copy(rom.Data[:], image)
	return
}

// At returns the word at a chapter, page, and program counter location.
func (rom *Rom) At(ca, pa, pc uint8) uint8 {
	return rom.Data[RomAddr(ca, pa, pc)]
}

// RomAddr composes chapter, page, and program counter into a ROM address.
func RomAddr(ca, pa, pc uint8) uint16 {
	return uint16(ca&0x1)<<10 | uint16(pa&0xf)<<6 | uint16(pc&0x3f)
}

// Ram is the data memory, 128 nibbles arranged as 8 files of 16 words.
type Ram struct {
	Data [RAM_WORDS]uint8
}

// At returns the nibble addressed by the X and Y registers. Addresses
// alias into the array; the hardware wraps rather than faults.
func (ram *Ram) At(x, y uint8) uint8 {
	return ram.Data[RamAddr(x, y)] & 0xf
}

// Set stores a nibble at the X and Y registers.
func (ram *Ram) Set(x, y, value uint8) {
	ram.Data[RamAddr(x, y)] = value & 0xf
}

// RamAddr composes the X file and Y word registers into a RAM address.
func RamAddr(x, y uint8) uint8 {
	return (x&0x7)<<4 | y&0xf
}

// Reset clears the data memory.
func (ram *Ram) Reset() {
	ram.Data = [RAM_WORDS]uint8{}
}

// Randomize fills the data memory from a seed, for chasing the
// initialization bugs that zeroed memory hides. The fill is reproducible
// for a given seed.
func (ram *Ram) Randomize(seed uint64) {
	rng := rand.New(rand.NewPCG(seed, 0))
	for i := range ram.Data {
		ram.Data[i] = uint8(rng.UintN(16))
	}
}
