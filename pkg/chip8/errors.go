package chip8

import (
	"errors"
	"fmt"
)

// Every interpreter failure is a non-recoverable defect in either the ROM or
// the emulator; errors carry the faulting address and word so the defect is
// diagnosable, and nothing is retried or skipped.

// ErrROMTooLarge reports a program image that does not fit between
// ProgramStart and the end of memory.
var ErrROMTooLarge = errors.New("rom image exceeds available memory")

// UnknownInstructionError reports a word no decode rule matches. Silently
// skipping it would desynchronize PC and mask the underlying bug.
type UnknownInstructionError struct {
	Addr uint16
	Word uint16
}

func (e *UnknownInstructionError) Error() string {
	return fmt.Sprintf("unknown instruction $%04X at $%03X", e.Word, e.Addr)
}

// StackOverflowError reports a CALL past the stack bound.
type StackOverflowError struct {
	Addr uint16
}

func (e *StackOverflowError) Error() string {
	return fmt.Sprintf("call stack overflow at $%03X", e.Addr)
}

// StackUnderflowError reports a RET with an empty stack.
type StackUnderflowError struct {
	Addr uint16
}

func (e *StackUnderflowError) Error() string {
	return fmt.Sprintf("return with empty call stack at $%03X", e.Addr)
}

// OutOfBoundsError reports a memory access outside 0x000-0xFFF.
type OutOfBoundsError struct {
	Addr uint16
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("memory access out of bounds at $%04X", e.Addr)
}
