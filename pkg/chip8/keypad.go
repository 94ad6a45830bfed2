package chip8

// NumKeys is the size of the hexadecimal keypad.
const NumKeys = 16

// Key is a CHIP-8 key code, 0x0 through 0xF. The host input layer translates
// its own key symbols to these codes; the interpreter never sees anything
// else.
type Key uint8

// Keypad holds the 16 key states. The host input layer is the only writer
// (via SetKey), the interpreter the only reader, so no locking is needed in
// the single-threaded host loop.
//
// Besides the level state used by the skip-if-key instructions, the keypad
// records press edges (up-to-down transitions) for the key-wait instruction.
// The wait completes on a press edge rather than a release; edges recorded
// before the wait began do not count.
type Keypad struct {
	down [NumKeys]bool
	edge [NumKeys]bool
}

// SetKey records the current level of a key and, on an up-to-down
// transition, a press edge. Codes outside 0x0-0xF are ignored.
func (k *Keypad) SetKey(key Key, pressed bool) {
	if key >= NumKeys {
		return
	}
	if pressed && !k.down[key] {
		k.edge[key] = true
	}
	k.down[key] = pressed
}

// IsDown reports whether a key is currently held.
func (k *Keypad) IsDown(key Key) bool {
	if key >= NumKeys {
		return false
	}
	return k.down[key]
}

// takeEdge consumes and returns the lowest-numbered pending press edge.
func (k *Keypad) takeEdge() (Key, bool) {
	for key := range k.edge {
		if k.edge[key] {
			k.edge[key] = false
			return Key(key), true
		}
	}
	return 0, false
}

// clearEdges drops all pending press edges. Called when a key-wait begins so
// only presses observed afterwards complete it.
func (k *Keypad) clearEdges() {
	k.edge = [NumKeys]bool{}
}
