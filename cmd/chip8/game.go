package main

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/image/colornames"

	"github.com/modbrin/chip-8-emulator/pkg/chip8"
)

// keymap translates the left block of a QWERTY keyboard to the COSMAC
// hexadecimal keypad:
//
//	1 2 3 C        1 2 3 4
//	4 5 6 D   <-   Q W E R
//	7 8 9 E        A S D F
//	A 0 B F        Z X C V
var keymap = map[ebiten.Key]chip8.Key{
	ebiten.KeyDigit1: 0x1, ebiten.KeyDigit2: 0x2, ebiten.KeyDigit3: 0x3, ebiten.KeyDigit4: 0xC,
	ebiten.KeyQ: 0x4, ebiten.KeyW: 0x5, ebiten.KeyE: 0x6, ebiten.KeyR: 0xD,
	ebiten.KeyA: 0x7, ebiten.KeyS: 0x8, ebiten.KeyD: 0x9, ebiten.KeyF: 0xE,
	ebiten.KeyZ: 0xA, ebiten.KeyX: 0x0, ebiten.KeyC: 0xB, ebiten.KeyV: 0xF,
}

// fadeStep is how much a switched-off pixel dims per frame. Full intensity
// is 255, so pixels take a handful of frames to go dark, approximating the
// slow decay of the original phosphor displays. The machine's framebuffer
// stays strictly binary; the fade exists only in this presentation state.
const fadeStep = 48

// phosphor is the color of a fully lit pixel.
var phosphor = colornames.Lime

// Game drives one Machine from ebiten's fixed 60Hz update loop: each tick it
// feeds the keypad, runs the frame's instruction budget, ticks the timers
// once, and renders the framebuffer snapshot with the fade effect applied.
type Game struct {
	machine *chip8.Machine
	logger  *log.Logger
	ctx     context.Context
	ips     int
	scale   int

	// stepDebt accumulates ips per tick so non-multiples of 60 distribute
	// instructions evenly across frames.
	stepDebt int

	wasBlocked bool

	intensity [chip8.DisplayHeight][chip8.DisplayWidth]uint8
	pixels    []byte
	canvas    *ebiten.Image
}

func (g *Game) Update() error {
	select {
	case <-g.ctx.Done():
		return ebiten.Termination
	default:
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	keys := g.machine.Keypad()
	for hostKey, code := range keymap {
		keys.SetKey(code, ebiten.IsKeyPressed(hostKey))
	}

	g.stepDebt += g.ips
	steps := g.stepDebt / chip8.TimerRate
	g.stepDebt %= chip8.TimerRate
	if err := g.runSteps(steps); err != nil {
		return err
	}

	g.machine.TickTimers()
	g.decay(g.machine.Display())
	return nil
}

// runSteps executes the frame's instruction budget, stopping early once the
// machine blocks on a key-wait. Re-polling the key-wait burns no budget, so
// the unused remainder is dropped and reported when the block begins.
func (g *Game) runSteps(steps int) error {
	ran := 0
	for ; ran < steps; ran++ {
		if err := g.machine.Step(); err != nil {
			return err
		}
		if g.machine.Blocked() {
			ran++
			break
		}
	}
	if blocked := g.machine.Blocked(); blocked != g.wasBlocked {
		if blocked {
			g.logger.Debug("waiting for key press", log.Int("skipped_steps", steps-ran))
		}
		g.wasBlocked = blocked
	}
	return nil
}

// decay refreshes presentation intensities from a framebuffer snapshot: lit
// pixels snap to full brightness, unlit ones dim gradually.
func (g *Game) decay(frame chip8.Frame) {
	for y := range frame {
		for x, on := range frame[y] {
			switch {
			case on:
				g.intensity[y][x] = 0xFF
			case g.intensity[y][x] >= fadeStep:
				g.intensity[y][x] -= fadeStep
			default:
				g.intensity[y][x] = 0
			}
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.canvas == nil {
		g.canvas = ebiten.NewImage(chip8.DisplayWidth, chip8.DisplayHeight)
		g.pixels = make([]byte, chip8.DisplayWidth*chip8.DisplayHeight*4)
	}

	idx := 0
	for y := 0; y < chip8.DisplayHeight; y++ {
		for x := 0; x < chip8.DisplayWidth; x++ {
			v := uint16(g.intensity[y][x])
			g.pixels[idx+0] = uint8(uint16(phosphor.R) * v / 0xFF)
			g.pixels[idx+1] = uint8(uint16(phosphor.G) * v / 0xFF)
			g.pixels[idx+2] = uint8(uint16(phosphor.B) * v / 0xFF)
			g.pixels[idx+3] = 0xFF
			idx += 4
		}
	}
	g.canvas.WritePixels(g.pixels)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.canvas, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return chip8.DisplayWidth * g.scale, chip8.DisplayHeight * g.scale
}
