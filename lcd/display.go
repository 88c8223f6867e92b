package lcd

const (
	WIDTH  = 16 // columns
	HEIGHT = 16 // rows

	FADE_MAX    = 255 // brightness of a freshly strobed pixel
	PERSISTENCE = 16  // frames a pixel stays lit without a refresh
)

// Display integrates strobes into per-pixel brightness. A strobe
// saturates the crossings of the driven rows and columns; every frame
// tick ages lit pixels until the persistence window closes, which is
// how the slow liquid crystal fluid behaves on the real panel.
type Display struct {
	Persistence uint8 // frames of afterglow, FADE_MAX-level cutoff

	Level [HEIGHT][WIDTH]uint8

	dirty bool
}

// NewDisplay returns a panel with the stock persistence.
func NewDisplay() (d *Display) {
	return &Display{Persistence: PERSISTENCE}
}

// Strobe saturates every pixel at the crossing of a driven row and a
// driven column. The select lines hold between transfers, so a pixel
// strobes again every cycle its crossing stays driven.
func (d *Display) Strobe(rows, cols uint16) {
	for y := range HEIGHT {
		if rows&(1<<y) == 0 {
			continue
		}
		for x := range WIDTH {
			if cols&(1<<x) == 0 {
				continue
			}
			if d.Level[y][x] != FADE_MAX {
				d.Level[y][x] = FADE_MAX
				d.dirty = true
			}
		}
	}
}

// Decay ages every lit pixel by one frame. A pixel past the persistence
// window snaps off rather than dimming forever.
func (d *Display) Decay() {
	min := uint8(FADE_MAX - d.Persistence)
	for y := range HEIGHT {
		for x := range WIDTH {
			level := d.Level[y][x]
			if level == 0 {
				continue
			}
			level--
			if level < min {
				level = 0
			}
			if level != d.Level[y][x] {
				d.Level[y][x] = level
				d.dirty = true
			}
		}
	}
}

// Lit reports whether a pixel is visibly on.
func (d *Display) Lit(x, y int) bool {
	return d.Level[y][x] > 0
}

// Frame returns a copy of the brightness levels.
func (d *Display) Frame() [HEIGHT][WIDTH]uint8 {
	return d.Level
}

// Dirty reports whether any pixel changed since the last call, and
// clears the flag.
func (d *Display) Dirty() (dirty bool) {
	dirty = d.dirty
	d.dirty = false
	return
}

// Reset blanks the panel.
func (d *Display) Reset() {
	d.Level = [HEIGHT][WIDTH]uint8{}
	d.dirty = true
}
