package chip8

// Timers are the two 8-bit countdown timers. Tick is their only mutator
// apart from the timer-load instructions, which set them from a register.
// A sound timer above zero means a beep should be audible.
type Timers struct {
	Delay uint8
	Sound uint8
}

// Tick decrements each running timer by one, clamping at zero. Called at a
// fixed 60Hz cadence independent of instruction throughput.
func (t *Timers) Tick() {
	if t.Delay > 0 {
		t.Delay--
	}
	if t.Sound > 0 {
		t.Sound--
	}
}
