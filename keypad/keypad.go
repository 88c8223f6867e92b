// Package keypad models the 12-key membrane matrix under the cartridge
// overlay. The processor scans it by driving one column select at a
// time and reading the row contacts back on the K input lines.
package keypad

import (
	"sync/atomic"
)

const (
	ROWS = 4 // row contacts, wired to K1/K2/K4/K8
	COLS = 3 // column selects, driven by R latches
	KEYS = ROWS * COLS
)

// Keypad holds the pressed state of the key matrix. Presses and
// releases arrive from the input side at any time; the scan side reads
// whatever is down at that instant, with no debouncing and no buffering.
type Keypad struct {
	pressed atomic.Uint32
}

// Index is the key number of a row and column position.
func Index(row, col int) int {
	return row*COLS + col
}

// Press puts a key down. Out of range keys are ignored.
func (kp *Keypad) Press(key int) {
	if key < 0 || key >= KEYS {
		return
	}
	kp.pressed.Or(1 << key)
}

// Release lets a key up.
func (kp *Keypad) Release(key int) {
	if key < 0 || key >= KEYS {
		return
	}
	kp.pressed.And(^uint32(1 << key))
}

// Pressed reports whether a key is down.
func (kp *Keypad) Pressed(key int) bool {
	if key < 0 || key >= KEYS {
		return false
	}
	return kp.pressed.Load()&(1<<key) != 0
}

// Sense reads the row contacts with a set of columns driven. A pressed
// key connects its column select to its row line; multiple driven
// columns wire-OR onto the same four rows.
func (kp *Keypad) Sense(cols uint8) (k uint8) {
	pressed := kp.pressed.Load()
	for col := range COLS {
		if cols&(1<<col) == 0 {
			continue
		}
		for row := range ROWS {
			if pressed&(1<<Index(row, col)) != 0 {
				k |= 1 << row
			}
		}
	}
	return
}

// Reset releases every key.
func (kp *Keypad) Reset() {
	kp.pressed.Store(0)
}
