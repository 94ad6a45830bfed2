package chip8

// Quirks selects between documented behavioral variants of historical CHIP-8
// interpreters. It is consumed only by the execute step, so each divergence
// has a single point of configuration.
type Quirks struct {
	// ShiftUsesVY makes 8XY6/8XYE copy Vy into Vx before shifting, as the
	// original COSMAC VIP interpreter did. Off, the shift operates on Vx in
	// place (CHIP-48 and later).
	ShiftUsesVY bool

	// JumpOffsetUsesVX makes BNNN jump to NNN+Vx instead of NNN+V0
	// (the BXNN reading used by Super-CHIP era interpreters).
	JumpOffsetUsesVX bool

	// MemIncrementsI makes FX55/FX65 leave I pointing past the last byte
	// touched, as the COSMAC VIP did. Off, I is unchanged.
	MemIncrementsI bool

	// WrapSprites makes DRW wrap pixels around the display edges instead of
	// clipping them. The sprite origin wraps regardless.
	WrapSprites bool

	// IndexOverflowSetsVF makes FX1E set VF to 1 when I leaves the 0x000-
	// 0xFFF addressing range (Amiga interpreter behavior); VF is never
	// cleared by it. I wraps within 16 bits either way.
	IndexOverflowSetsVF bool
}

// DefaultQuirks matches the behavior this emulator is verified against:
// in-place shifts, V0-relative jump offset, I untouched by register
// store/load, clipped sprites, and VF flagged on index overflow.
func DefaultQuirks() Quirks {
	return Quirks{
		IndexOverflowSetsVF: true,
	}
}
