package chip8

import (
	"bytes"
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestMemoryReadWrite(t *testing.T) {
	var mem Memory

	assert.NoError(t, mem.WriteByte(0x200, 0xAB))
	b, err := mem.ReadByte(0x200)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0xAB), b)

	_, err = mem.ReadByte(0x1000)
	var oob *OutOfBoundsError
	assert.True(t, errors.As(err, &oob))
	assert.Equal(t, uint16(0x1000), oob.Addr)

	assert.Error(t, mem.WriteByte(0xFFFF, 0x01))
}

func TestReadOpcodeBigEndian(t *testing.T) {
	var mem Memory
	assert.NoError(t, mem.WriteByte(0x200, 0x12))
	assert.NoError(t, mem.WriteByte(0x201, 0x34))

	word, err := mem.ReadOpcode(0x200)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x1234), word)
}

func TestReadOpcodeNeedsBothBytes(t *testing.T) {
	var mem Memory

	_, err := mem.ReadOpcode(0x0FFE)
	assert.NoError(t, err)

	_, err = mem.ReadOpcode(0x0FFF)
	assert.Error(t, err)

	// A pc of 0xFFFF must not wrap back into bounds.
	_, err = mem.ReadOpcode(0xFFFF)
	assert.Error(t, err)
}

func TestLoadProgramBoundary(t *testing.T) {
	var mem Memory

	exact := bytes.Repeat([]byte{0xEE}, MaxROMSize)
	assert.NoError(t, mem.LoadProgram(exact))
	assert.Equal(t, uint8(0xEE), mem.bytes[0x200])
	assert.Equal(t, uint8(0xEE), mem.bytes[0xFFF])

	var fresh Memory
	over := bytes.Repeat([]byte{0xEE}, MaxROMSize+1)
	err := fresh.LoadProgram(over)
	assert.True(t, errors.Is(err, ErrROMTooLarge))
	assert.Equal(t, uint8(0), fresh.bytes[0x200]) // nothing was written
}

func TestFontLoaded(t *testing.T) {
	m := New()

	// Glyph 0 starts at 0x050, glyph F ends at 0x09F.
	assert.Equal(t, uint8(0xF0), m.mem.bytes[0x050])
	assert.Equal(t, uint8(0x80), m.mem.bytes[0x09F])
	assert.Equal(t, uint8(0x00), m.mem.bytes[0x0A0])
}
