package chip8

// Memory is the flat 4096-byte address space. The low 0x200 bytes are the
// interpreter area holding the font set; programs occupy 0x200 onward.
// Runtime stores below 0x200 are not blocked: standard CHIP-8 programs never
// issue them and the original hardware did not enforce the split either.
type Memory struct {
	bytes [MemorySize]byte
}

// ReadByte returns the byte at addr.
func (m *Memory) ReadByte(addr uint16) (uint8, error) {
	if addr >= MemorySize {
		return 0, &OutOfBoundsError{Addr: addr}
	}
	return m.bytes[addr], nil
}

// WriteByte stores val at addr.
func (m *Memory) WriteByte(addr uint16, val uint8) error {
	if addr >= MemorySize {
		return &OutOfBoundsError{Addr: addr}
	}
	m.bytes[addr] = val
	return nil
}

// ReadOpcode fetches the big-endian 16-bit instruction word at pc. Both
// bytes must be in bounds.
func (m *Memory) ReadOpcode(pc uint16) (uint16, error) {
	if pc+1 >= MemorySize || pc+1 < pc {
		return 0, &OutOfBoundsError{Addr: pc}
	}
	return uint16(m.bytes[pc])<<8 | uint16(m.bytes[pc+1]), nil
}

// LoadProgram copies a ROM image to ProgramStart. If the image would run
// past the end of memory, nothing is written.
func (m *Memory) LoadProgram(data []byte) error {
	if len(data) > MaxROMSize {
		return ErrROMTooLarge
	}
	copy(m.bytes[ProgramStart:], data)
	return nil
}

func (m *Memory) loadFont() {
	copy(m.bytes[FontStart:], fontSet[:])
}
