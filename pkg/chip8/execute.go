package chip8

// exec runs one decoded instruction. opAddr is the address the instruction
// was fetched from; PC has already advanced past it, so control-flow ops
// simply overwrite PC and key-wait rewinds it.
//
// Flag-writing ops store the result before VF: when X is 0xF the flag must
// win, since VF's role as carry/borrow output takes precedence over its role
// as destination.
func (m *Machine) exec(inst Instruction, opAddr uint16) error {
	switch inst.Op {
	case OpCLS:
		m.fb.Clear()

	case OpRET:
		ret, err := m.pop(opAddr)
		if err != nil {
			return err
		}
		m.pc = ret

	case OpJP:
		m.pc = inst.NNN

	case OpCALL:
		if err := m.push(m.pc, opAddr); err != nil {
			return err
		}
		m.pc = inst.NNN

	case OpSEByte:
		if m.v[inst.X] == inst.NN {
			m.skip()
		}

	case OpSNEByte:
		if m.v[inst.X] != inst.NN {
			m.skip()
		}

	case OpSEReg:
		if m.v[inst.X] == m.v[inst.Y] {
			m.skip()
		}

	case OpLDByte:
		m.v[inst.X] = inst.NN

	case OpADDByte:
		// Wraps without touching VF.
		m.v[inst.X] += inst.NN

	case OpLDReg:
		m.v[inst.X] = m.v[inst.Y]

	case OpOR:
		m.v[inst.X] |= m.v[inst.Y]

	case OpAND:
		m.v[inst.X] &= m.v[inst.Y]

	case OpXOR:
		m.v[inst.X] ^= m.v[inst.Y]

	case OpADDReg:
		sum := uint16(m.v[inst.X]) + uint16(m.v[inst.Y])
		m.v[inst.X] = uint8(sum)
		if sum > 0xFF {
			m.v[flagReg] = 1
		} else {
			m.v[flagReg] = 0
		}

	case OpSUB:
		vx, vy := m.v[inst.X], m.v[inst.Y]
		m.v[inst.X] = vx - vy
		if vx >= vy {
			m.v[flagReg] = 1
		} else {
			m.v[flagReg] = 0
		}

	case OpSUBN:
		vx, vy := m.v[inst.X], m.v[inst.Y]
		m.v[inst.X] = vy - vx
		if vy >= vx {
			m.v[flagReg] = 1
		} else {
			m.v[flagReg] = 0
		}

	case OpSHR:
		src := m.v[inst.X]
		if m.quirks.ShiftUsesVY {
			src = m.v[inst.Y]
		}
		m.v[inst.X] = src >> 1
		m.v[flagReg] = src & 0x01

	case OpSHL:
		src := m.v[inst.X]
		if m.quirks.ShiftUsesVY {
			src = m.v[inst.Y]
		}
		m.v[inst.X] = src << 1
		m.v[flagReg] = src >> 7

	case OpSNEReg:
		if m.v[inst.X] != m.v[inst.Y] {
			m.skip()
		}

	case OpLDI:
		m.i = inst.NNN

	case OpJPV0:
		offset := m.v[0]
		if m.quirks.JumpOffsetUsesVX {
			offset = m.v[inst.X]
		}
		m.pc = inst.NNN + uint16(offset)

	case OpRND:
		m.v[inst.X] = m.randByte() & inst.NN

	case OpDRW:
		sprite := make([]uint8, inst.N)
		for row := range sprite {
			b, err := m.mem.ReadByte(m.i + uint16(row))
			if err != nil {
				return err
			}
			sprite[row] = b
		}
		m.v[flagReg] = m.fb.draw(sprite, m.v[inst.X], m.v[inst.Y], m.quirks.WrapSprites)

	case OpSKP:
		if m.keys.IsDown(Key(m.v[inst.X] & 0x0F)) {
			m.skip()
		}

	case OpSKNP:
		if !m.keys.IsDown(Key(m.v[inst.X] & 0x0F)) {
			m.skip()
		}

	case OpLDFromDT:
		m.v[inst.X] = m.timers.Delay

	case OpLDKey:
		// Cooperative suspension: PC stays on this instruction and Step
		// polls for a press edge that happens after the wait began.
		m.waiting = true
		m.waitReg = inst.X
		m.pc = opAddr
		m.keys.clearEdges()

	case OpLDToDT:
		m.timers.Delay = m.v[inst.X]

	case OpLDToST:
		m.timers.Sound = m.v[inst.X]

	case OpADDI:
		m.i += uint16(m.v[inst.X])
		if m.quirks.IndexOverflowSetsVF && m.i > 0x0FFF {
			m.v[flagReg] = 1
		}

	case OpLDFont:
		m.i = fontAddr(m.v[inst.X])

	case OpLDBCD:
		vx := m.v[inst.X]
		digits := [3]uint8{vx / 100, vx / 10 % 10, vx % 10}
		for off, d := range digits {
			if err := m.mem.WriteByte(m.i+uint16(off), d); err != nil {
				return err
			}
		}

	case OpLDStore:
		for r := uint8(0); r <= inst.X; r++ {
			if err := m.mem.WriteByte(m.i+uint16(r), m.v[r]); err != nil {
				return err
			}
		}
		if m.quirks.MemIncrementsI {
			m.i += uint16(inst.X) + 1
		}

	case OpLDLoad:
		for r := uint8(0); r <= inst.X; r++ {
			b, err := m.mem.ReadByte(m.i + uint16(r))
			if err != nil {
				return err
			}
			m.v[r] = b
		}
		if m.quirks.MemIncrementsI {
			m.i += uint16(inst.X) + 1
		}
	}
	return nil
}
