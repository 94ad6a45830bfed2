package chip8

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Frame is a value-type copy of the framebuffer, indexed [y][x].
type Frame [DisplayHeight][DisplayWidth]bool

// Framebuffer is the 64x32 monochrome pixel grid. Only the clear-screen and
// draw instructions mutate it; pixel state persists across frames otherwise.
type Framebuffer struct {
	pix Frame
}

// Clear switches every pixel off.
func (f *Framebuffer) Clear() {
	f.pix = Frame{}
}

// Snapshot returns a copy of the current pixel state.
func (f *Framebuffer) Snapshot() Frame {
	return f.pix
}

// Pixel reports the state at (x, y). Out-of-range coordinates are off.
func (f *Framebuffer) Pixel(x, y int) bool {
	if x < 0 || x >= DisplayWidth || y < 0 || y >= DisplayHeight {
		return false
	}
	return f.pix[y][x]
}

// draw XOR-blits a sprite, one byte per 8-pixel row, with its origin wrapped
// to (x mod 64, y mod 32). Rows and pixels past the right/bottom edge are
// clipped unless wrap is set. Returns 1 if any lit pixel was switched off.
func (f *Framebuffer) draw(sprite []uint8, x, y uint8, wrap bool) uint8 {
	ox := int(x) % DisplayWidth
	oy := int(y) % DisplayHeight

	var collision uint8
	for row, line := range sprite {
		py := oy + row
		if py >= DisplayHeight {
			if !wrap {
				continue
			}
			py %= DisplayHeight
		}
		for bit := 0; bit < 8; bit++ {
			if line&(0x80>>bit) == 0 {
				continue
			}
			px := ox + bit
			if px >= DisplayWidth {
				if !wrap {
					continue
				}
				px %= DisplayWidth
			}
			if f.pix[py][px] {
				f.pix[py][px] = false
				collision = 1
			} else {
				f.pix[py][px] = true
			}
		}
	}
	return collision
}
