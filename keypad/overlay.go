package keypad

import (
	"fmt"

	"github.com/ezrec/microvision/translate"
)

var f = translate.From

// Key is one legend on a cartridge overlay.
type Key struct {
	Label string
	Row   int
	Col   int
}

// Overlay is the cartridge key legend. Each cartridge ships a printed
// sheet naming the keys its game uses; unlisted positions are dead.
type Overlay struct {
	Name string
	Keys []Key
}

// ErrOverlayRange reports an overlay key placed outside the matrix.
type ErrOverlayRange struct {
	Key Key
}

func (e ErrOverlayRange) Error() string {
	return fmt.Sprintf("%v: %v (%v,%v)", f("overlay key out of range"), e.Key.Label, e.Key.Row, e.Key.Col)
}

// Validate rejects an overlay naming positions off the matrix.
func (o *Overlay) Validate() (err error) {
	for _, key := range o.Keys {
		if key.Row < 0 || key.Row >= ROWS || key.Col < 0 || key.Col >= COLS {
			return ErrOverlayRange{Key: key}
		}
	}
	return
}

// Find locates a key by its overlay label.
func (o *Overlay) Find(label string) (key Key, ok bool) {
	for _, key = range o.Keys {
		if key.Label == label {
			return key, true
		}
	}
	return Key{}, false
}

// DefaultOverlay numbers every position like a telephone pad, for
// cartridges with no legend of their own.
func DefaultOverlay() Overlay {
	overlay := Overlay{Name: "default"}
	for row := range ROWS {
		for col := range COLS {
			overlay.Keys = append(overlay.Keys, Key{
				Label: fmt.Sprintf("%v", Index(row, col)+1),
				Row:   row,
				Col:   col,
			})
		}
	}
	return overlay
}
