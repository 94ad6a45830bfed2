package chip8

import "fmt"

// Op identifies one instruction variant. The decode step produces an Op with
// its operands already extracted so execution can switch over plain values
// and decoding stays unit-testable against literal words.
type Op uint8

const (
	OpCLS     Op = iota // 00E0: clear the framebuffer
	OpRET               // 00EE: return from subroutine
	OpJP                // 1NNN: jump
	OpCALL              // 2NNN: call subroutine
	OpSEByte            // 3XNN: skip next if Vx == NN
	OpSNEByte           // 4XNN: skip next if Vx != NN
	OpSEReg             // 5XY0: skip next if Vx == Vy
	OpLDByte            // 6XNN: Vx = NN
	OpADDByte           // 7XNN: Vx += NN, no flag
	OpLDReg             // 8XY0: Vx = Vy
	OpOR                // 8XY1: Vx |= Vy
	OpAND               // 8XY2: Vx &= Vy
	OpXOR               // 8XY3: Vx ^= Vy
	OpADDReg            // 8XY4: Vx += Vy, VF = carry
	OpSUB               // 8XY5: Vx -= Vy, VF = no borrow
	OpSHR               // 8XY6: shift right, VF = bit out
	OpSUBN              // 8XY7: Vx = Vy - Vx, VF = no borrow
	OpSHL               // 8XYE: shift left, VF = bit out
	OpSNEReg            // 9XY0: skip next if Vx != Vy
	OpLDI               // ANNN: I = NNN
	OpJPV0              // BNNN: jump to NNN + offset register
	OpRND               // CXNN: Vx = random & NN
	OpDRW               // DXYN: draw N-byte sprite at (Vx, Vy), VF = collision
	OpSKP               // EX9E: skip next if key Vx is down
	OpSKNP              // EXA1: skip next if key Vx is up
	OpLDFromDT          // FX07: Vx = delay timer
	OpLDKey             // FX0A: block until a key press, Vx = key
	OpLDToDT            // FX15: delay timer = Vx
	OpLDToST            // FX18: sound timer = Vx
	OpADDI              // FX1E: I += Vx
	OpLDFont            // FX29: I = font glyph address for Vx
	OpLDBCD             // FX33: memory[I..I+2] = BCD of Vx
	OpLDStore           // FX55: memory[I..I+X] = V0..VX
	OpLDLoad            // FX65: V0..VX = memory[I..I+X]
)

// Instruction is one decoded opcode with every operand field extracted.
// Fields that a given Op does not use are zero.
type Instruction struct {
	Op   Op
	X    uint8  // second nibble, register index
	Y    uint8  // third nibble, register index
	N    uint8  // low nibble
	NN   uint8  // low byte
	NNN  uint16 // low 12 bits, address
	Word uint16 // the raw instruction word
}

// Decode maps a 16-bit word to its instruction variant. It is total and
// deterministic over the standard CHIP-8 set; ok is false for any word
// outside it, including the machine-code SYS (0NNN) escapes of the original
// hardware, which this interpreter treats as malformed.
func Decode(word uint16) (Instruction, bool) {
	inst := Instruction{
		X:    uint8(word >> 8 & 0x0F),
		Y:    uint8(word >> 4 & 0x0F),
		N:    uint8(word & 0x0F),
		NN:   uint8(word & 0xFF),
		NNN:  word & 0x0FFF,
		Word: word,
	}

	switch word >> 12 {
	case 0x0:
		switch word {
		case 0x00E0:
			inst.Op = OpCLS
		case 0x00EE:
			inst.Op = OpRET
		default:
			return Instruction{}, false
		}
	case 0x1:
		inst.Op = OpJP
	case 0x2:
		inst.Op = OpCALL
	case 0x3:
		inst.Op = OpSEByte
	case 0x4:
		inst.Op = OpSNEByte
	case 0x5:
		if inst.N != 0 {
			return Instruction{}, false
		}
		inst.Op = OpSEReg
	case 0x6:
		inst.Op = OpLDByte
	case 0x7:
		inst.Op = OpADDByte
	case 0x8:
		switch inst.N {
		case 0x0:
			inst.Op = OpLDReg
		case 0x1:
			inst.Op = OpOR
		case 0x2:
			inst.Op = OpAND
		case 0x3:
			inst.Op = OpXOR
		case 0x4:
			inst.Op = OpADDReg
		case 0x5:
			inst.Op = OpSUB
		case 0x6:
			inst.Op = OpSHR
		case 0x7:
			inst.Op = OpSUBN
		case 0xE:
			inst.Op = OpSHL
		default:
			return Instruction{}, false
		}
	case 0x9:
		if inst.N != 0 {
			return Instruction{}, false
		}
		inst.Op = OpSNEReg
	case 0xA:
		inst.Op = OpLDI
	case 0xB:
		inst.Op = OpJPV0
	case 0xC:
		inst.Op = OpRND
	case 0xD:
		inst.Op = OpDRW
	case 0xE:
		switch inst.NN {
		case 0x9E:
			inst.Op = OpSKP
		case 0xA1:
			inst.Op = OpSKNP
		default:
			return Instruction{}, false
		}
	case 0xF:
		switch inst.NN {
		case 0x07:
			inst.Op = OpLDFromDT
		case 0x0A:
			inst.Op = OpLDKey
		case 0x15:
			inst.Op = OpLDToDT
		case 0x18:
			inst.Op = OpLDToST
		case 0x1E:
			inst.Op = OpADDI
		case 0x29:
			inst.Op = OpLDFont
		case 0x33:
			inst.Op = OpLDBCD
		case 0x55:
			inst.Op = OpLDStore
		case 0x65:
			inst.Op = OpLDLoad
		default:
			return Instruction{}, false
		}
	}
	return inst, true
}

// String renders the conventional assembly mnemonic, e.g. "JP $22A" or
// "LD V1, $05". Used by the trace log.
func (i Instruction) String() string {
	switch i.Op {
	case OpCLS:
		return "CLS"
	case OpRET:
		return "RET"
	case OpJP:
		return fmt.Sprintf("JP $%03X", i.NNN)
	case OpCALL:
		return fmt.Sprintf("CALL $%03X", i.NNN)
	case OpSEByte:
		return fmt.Sprintf("SE V%X, $%02X", i.X, i.NN)
	case OpSNEByte:
		return fmt.Sprintf("SNE V%X, $%02X", i.X, i.NN)
	case OpSEReg:
		return fmt.Sprintf("SE V%X, V%X", i.X, i.Y)
	case OpLDByte:
		return fmt.Sprintf("LD V%X, $%02X", i.X, i.NN)
	case OpADDByte:
		return fmt.Sprintf("ADD V%X, $%02X", i.X, i.NN)
	case OpLDReg:
		return fmt.Sprintf("LD V%X, V%X", i.X, i.Y)
	case OpOR:
		return fmt.Sprintf("OR V%X, V%X", i.X, i.Y)
	case OpAND:
		return fmt.Sprintf("AND V%X, V%X", i.X, i.Y)
	case OpXOR:
		return fmt.Sprintf("XOR V%X, V%X", i.X, i.Y)
	case OpADDReg:
		return fmt.Sprintf("ADD V%X, V%X", i.X, i.Y)
	case OpSUB:
		return fmt.Sprintf("SUB V%X, V%X", i.X, i.Y)
	case OpSHR:
		return fmt.Sprintf("SHR V%X, V%X", i.X, i.Y)
	case OpSUBN:
		return fmt.Sprintf("SUBN V%X, V%X", i.X, i.Y)
	case OpSHL:
		return fmt.Sprintf("SHL V%X, V%X", i.X, i.Y)
	case OpSNEReg:
		return fmt.Sprintf("SNE V%X, V%X", i.X, i.Y)
	case OpLDI:
		return fmt.Sprintf("LD I, $%03X", i.NNN)
	case OpJPV0:
		return fmt.Sprintf("JP V0, $%03X", i.NNN)
	case OpRND:
		return fmt.Sprintf("RND V%X, $%02X", i.X, i.NN)
	case OpDRW:
		return fmt.Sprintf("DRW V%X, V%X, %d", i.X, i.Y, i.N)
	case OpSKP:
		return fmt.Sprintf("SKP V%X", i.X)
	case OpSKNP:
		return fmt.Sprintf("SKNP V%X", i.X)
	case OpLDFromDT:
		return fmt.Sprintf("LD V%X, DT", i.X)
	case OpLDKey:
		return fmt.Sprintf("LD V%X, K", i.X)
	case OpLDToDT:
		return fmt.Sprintf("LD DT, V%X", i.X)
	case OpLDToST:
		return fmt.Sprintf("LD ST, V%X", i.X)
	case OpADDI:
		return fmt.Sprintf("ADD I, V%X", i.X)
	case OpLDFont:
		return fmt.Sprintf("LD F, V%X", i.X)
	case OpLDBCD:
		return fmt.Sprintf("LD B, V%X", i.X)
	case OpLDStore:
		return fmt.Sprintf("LD [I], V%X", i.X)
	case OpLDLoad:
		return fmt.Sprintf("LD V%X, [I]", i.X)
	}
	return fmt.Sprintf("DW $%04X", i.Word)
}
