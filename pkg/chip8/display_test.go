package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func countLit(f Frame) int {
	n := 0
	for y := range f {
		for _, on := range f[y] {
			if on {
				n++
			}
		}
	}
	return n
}

func TestDrawCollisionAndSelfCancel(t *testing.T) {
	m := New()
	loadWords(t, m,
		0x00E0, // CLS
		0xA209, // LD I, $209: low byte of the DRW word, $11 = 00010001
		0x6005, // LD V0, $05
		0x6103, // LD V1, $03
		0xD011, // DRW V0, V1, 1
		0xD011, // DRW V0, V1, 1 again: XOR self-cancels
	)

	stepN(t, m, 5)
	assert.Equal(t, uint8(0), m.v[flagReg]) // fresh framebuffer: no collision
	frame := m.Display()
	assert.True(t, frame[3][5+3]) // bit pattern 00010001
	assert.True(t, frame[3][5+7])
	assert.Equal(t, 2, countLit(frame))

	stepN(t, m, 1)
	assert.Equal(t, uint8(1), m.v[flagReg]) // every lit pixel erased
	assert.Equal(t, 0, countLit(m.Display()))
}

func TestDrawUsesFontSprites(t *testing.T) {
	m := New()
	loadWords(t, m,
		0x6000, // LD V0, $00
		0xF029, // LD F, V0
		0xD005, // DRW V0, V0, 5: glyph "0" at the origin
	)

	stepN(t, m, 3)
	frame := m.Display()
	// Top row of glyph 0 is $F0: four lit pixels.
	for x := 0; x < 4; x++ {
		assert.True(t, frame[0][x])
	}
	assert.False(t, frame[0][4])
	// Middle rows are $90: only the edges.
	assert.True(t, frame[1][0])
	assert.False(t, frame[1][1])
	assert.True(t, frame[1][3])
}

func TestDrawOriginWraps(t *testing.T) {
	m := New()
	loadWords(t, m,
		0xA050, // LD I, $050 (glyph 0, top row $F0)
		0x6042, // LD V0, $42 (66 mod 64 = 2)
		0x6122, // LD V1, $22 (34 mod 32 = 2)
		0xD011, // DRW V0, V1, 1
	)

	stepN(t, m, 4)
	frame := m.Display()
	assert.True(t, frame[2][2])
	assert.True(t, frame[2][5])
}

func TestDrawClipsAtEdges(t *testing.T) {
	m := New()
	loadWords(t, m,
		0xA050, // LD I, $050
		0x603E, // LD V0, $3E (x=62, 6 of 8 sprite bits off screen)
		0x611F, // LD V1, $1F (y=31, rows 2-5 off screen)
		0xD015, // DRW V0, V1, 5
	)

	stepN(t, m, 4)
	frame := m.Display()
	assert.True(t, frame[31][62]) // $F0 leading bits survive
	assert.True(t, frame[31][63])
	assert.Equal(t, 2, countLit(frame)) // everything else clipped, not wrapped
	assert.Equal(t, uint8(0), m.v[flagReg])
}

func TestDrawWrapQuirk(t *testing.T) {
	m := NewWithQuirks(Quirks{WrapSprites: true, IndexOverflowSetsVF: true})
	loadWords(t, m,
		0xA050, // LD I, $050
		0x603E, // LD V0, $3E
		0x611F, // LD V1, $1F
		0xD011, // DRW V0, V1, 1
	)

	stepN(t, m, 4)
	frame := m.Display()
	assert.True(t, frame[31][62])
	assert.True(t, frame[31][63])
	assert.True(t, frame[31][0]) // $F0 third and fourth bits wrap to x=0,1
	assert.True(t, frame[31][1])
}

func TestClearScreen(t *testing.T) {
	m := New()
	loadWords(t, m,
		0xA050, // LD I, $050
		0xD001, // DRW V0, V0, 1
		0x00E0, // CLS
	)

	stepN(t, m, 2)
	assert.True(t, countLit(m.Display()) > 0)

	stepN(t, m, 1)
	assert.Equal(t, 0, countLit(m.Display()))
}

func TestDrawSpriteReadOutOfBounds(t *testing.T) {
	m := New()
	loadWords(t, m, 0xD012) // DRW V0, V1, 2 with I at the last byte
	m.i = 0x0FFF

	assert.Error(t, m.Step())
}

func TestFramebufferPixel(t *testing.T) {
	var fb Framebuffer
	fb.pix[3][5] = true

	assert.True(t, fb.Pixel(5, 3))
	assert.False(t, fb.Pixel(3, 5))
	assert.False(t, fb.Pixel(-1, 0))
	assert.False(t, fb.Pixel(64, 0))
	assert.False(t, fb.Pixel(0, 32))
}
