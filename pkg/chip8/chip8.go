// Package chip8 implements the CHIP-8 virtual machine: 4KB of memory, 16
// 8-bit registers, a 64x32 monochrome framebuffer, a hexadecimal keypad and
// two 60Hz countdown timers.
//
// The package deliberately stops at the machine boundary. Rendering, keyboard
// mapping, ROM file handling and audio belong to the host; the host drives a
// Machine by feeding keypad state, calling Step a bounded number of times per
// frame and TickTimers exactly once per frame, then presenting the snapshot
// returned by Display.
package chip8

import (
	"math/rand/v2"
)

const (
	// MemorySize is the full addressable range, 0x000-0xFFF.
	MemorySize = 4096

	// ProgramStart is where ROMs are loaded and execution begins.
	ProgramStart = 0x200

	// FontStart is where the 16-glyph hexadecimal font set lives.
	FontStart = 0x050

	// MaxROMSize is the largest program that fits between ProgramStart and
	// the end of memory (3584 bytes).
	MaxROMSize = MemorySize - ProgramStart

	// NumRegisters is the count of general purpose registers V0-VF.
	NumRegisters = 16

	// StackDepth bounds the subroutine return stack.
	StackDepth = 16

	// DefaultIPS is the conventional instruction rate, decoupled from the
	// 60Hz timer cadence.
	DefaultIPS = 700

	// TimerRate is the fixed timer decrement frequency in Hz.
	TimerRate = 60
)

// flagReg is VF, doubly used as the carry/borrow/collision flag.
const flagReg = 0xF

// Machine is a complete CHIP-8 system. It exclusively owns its memory,
// registers, timers and framebuffer; the keypad is written by the host input
// layer through Keypad and only read here. Machines are independent, so
// multiple instances can run side by side.
//
// A Machine is not safe for concurrent use. The host loop calls Step,
// TickTimers and Display from a single goroutine.
type Machine struct {
	mem    Memory
	v      [NumRegisters]uint8
	i      uint16
	pc     uint16
	stack  [StackDepth]uint16
	sp     int8
	timers Timers
	fb     Framebuffer
	keys   Keypad
	quirks Quirks

	// waiting is set while a key-wait instruction blocks progress. PC keeps
	// pointing at the instruction until a press edge is observed.
	waiting bool
	waitReg uint8

	// randByte produces the random byte consumed by RND. Replaceable in
	// tests for deterministic runs.
	randByte func() uint8

	// Trace, when non-nil, is invoked with every decoded instruction before
	// it executes.
	Trace func(pc uint16, inst Instruction)
}

// New returns a Machine with the font set loaded and the default quirk
// behavior (see DefaultQuirks).
func New() *Machine {
	return NewWithQuirks(DefaultQuirks())
}

// NewWithQuirks returns a Machine using the given quirk configuration.
func NewWithQuirks(q Quirks) *Machine {
	m := &Machine{
		pc:       ProgramStart,
		sp:       -1,
		quirks:   q,
		randByte: func() uint8 { return uint8(rand.IntN(256)) },
	}
	m.mem.loadFont()
	return m
}

// LoadROM copies a raw program image into memory at ProgramStart. Memory is
// left untouched if the image does not fit. Registers, timers and the
// framebuffer are not reset; call Reset for a full restart.
func (m *Machine) LoadROM(data []byte) error {
	return m.mem.LoadProgram(data)
}

// Reset restores power-on state: registers, stack, timers, framebuffer and
// key edges are cleared and PC returns to ProgramStart. The loaded program
// and font survive.
func (m *Machine) Reset() {
	m.v = [NumRegisters]uint8{}
	m.i = 0
	m.pc = ProgramStart
	m.stack = [StackDepth]uint16{}
	m.sp = -1
	m.timers = Timers{}
	m.fb.Clear()
	m.keys.clearEdges()
	m.waiting = false
	m.waitReg = 0
}

// Keypad exposes the key state for the host input layer to write.
func (m *Machine) Keypad() *Keypad {
	return &m.keys
}

// Display returns a copy of the framebuffer for presentation. The core keeps
// strictly binary pixel state; any fade effect is the presenter's business.
func (m *Machine) Display() Frame {
	return m.fb.Snapshot()
}

// TickTimers decrements the delay and sound timers toward zero. The host
// calls this exactly once per fixed 60Hz slice, regardless of how many
// instructions ran in that slice.
func (m *Machine) TickTimers() {
	m.timers.Tick()
}

// SoundActive reports whether the sound timer is running, i.e. a beep should
// be audible. Audio output itself is not implemented.
func (m *Machine) SoundActive() bool {
	return m.timers.Sound > 0
}

// Blocked reports whether the machine is suspended on a key-wait
// instruction. A blocked machine makes no progress in Step until a key press
// edge arrives, but timers must keep ticking.
func (m *Machine) Blocked() bool {
	return m.waiting
}

// Step executes one fetch-decode-execute cycle. While blocked on a key-wait
// it instead polls for a press edge and returns without fetching; once an
// edge is observed, a single Step stores the key and advances PC.
//
// Every error is fatal: the machine state is no longer trustworthy and the
// host must stop stepping.
func (m *Machine) Step() error {
	if m.waiting {
		key, ok := m.keys.takeEdge()
		if !ok {
			return nil
		}
		m.v[m.waitReg] = uint8(key)
		m.waiting = false
		m.pc += 2
		return nil
	}

	word, err := m.mem.ReadOpcode(m.pc)
	if err != nil {
		return err
	}
	inst, ok := Decode(word)
	if !ok {
		return &UnknownInstructionError{Addr: m.pc, Word: word}
	}
	if m.Trace != nil {
		m.Trace(m.pc, inst)
	}

	opAddr := m.pc
	m.pc += 2
	return m.exec(inst, opAddr)
}

// skip jumps over the following instruction.
func (m *Machine) skip() {
	m.pc += 2
}

func (m *Machine) push(ret uint16, opAddr uint16) error {
	if int(m.sp)+1 >= StackDepth {
		return &StackOverflowError{Addr: opAddr}
	}
	m.sp++
	m.stack[m.sp] = ret
	return nil
}

func (m *Machine) pop(opAddr uint16) (uint16, error) {
	if m.sp < 0 {
		return 0, &StackUnderflowError{Addr: opAddr}
	}
	ret := m.stack[m.sp]
	m.sp--
	return ret, nil
}
