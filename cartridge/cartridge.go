// Package cartridge loads game images and carries the wiring that
// varies between cartridges. Each cartridge is more than its ROM: it
// decides the output PLA polarity, whether the rotary controller is
// connected, the rotary charge constants, and the printed overlay that
// names the keypad.
package cartridge

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ezrec/microvision/keypad"
	"github.com/ezrec/microvision/tms1100"
)

// Cartridge is a loaded game image plus its console wiring.
type Cartridge struct {
	Name     string
	Settings Settings
	Overlay  keypad.Overlay
	Rom      tms1100.Rom
}

// New returns an empty cartridge with stock settings and a plain
// numbered overlay.
func New() (cart *Cartridge) {
	return &Cartridge{
		Settings: DefaultSettings(),
		Overlay:  keypad.DefaultOverlay(),
	}
}

// Load validates and installs a raw image. The overlay is checked here
// too, so a bad key map surfaces before execution starts.
func (cart *Cartridge) Load(image []byte) (err error) {
	defer func() {
		if err != nil {
			err = &ErrImage{Name: cart.Name, Err: err}
		}
	}()

	if err = cart.Rom.Load(image); err != nil {
		return
	}

	return cart.Overlay.Validate()
}

// LoadFile loads an image from a file, naming the cartridge after it.
func (cart *Cartridge) LoadFile(name string) (err error) {
	image, err := os.ReadFile(name)
	if err != nil {
		return
	}

	base := filepath.Base(name)
	cart.Name = strings.TrimSuffix(base, filepath.Ext(base))

	return cart.Load(image)
}

// Checksum identifies the loaded image.
func (cart *Cartridge) Checksum() uint16 {
	return Checksum(cart.Rom.Data[:])
}

// Checksum is the 16-bit wrapping byte sum used to identify images.
func Checksum(image []byte) (sum uint16) {
	for _, value := range image {
		sum += uint16(value)
	}
	return
}
