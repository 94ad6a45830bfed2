package main

import (
	"flag"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"

	"github.com/modbrin/chip-8-emulator/pkg/chip8"
	"github.com/modbrin/chip-8-emulator/pkg/rom"
)

func createLogger(debug bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	}
	return log.NewWithConfig(cfg)
}

func main() {
	ips := flag.Int("ips", chip8.DefaultIPS, "instruction rate per second")
	scale := flag.Int("scale", 16, "window pixels per display pixel")
	trace := flag.Bool("trace", false, "log every executed instruction")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger := createLogger(*debug || *trace)

	if flag.NArg() != 1 {
		logger.Fatal("usage: chip8 [flags] <rom file>")
	}
	romPath := flag.Arg(0)
	if *ips <= 0 {
		logger.Fatal("instruction rate must be positive")
	}

	data, err := rom.Read(romPath)
	if err != nil {
		logger.Fatal(err.Error())
	}

	machine := chip8.New()
	if err := machine.LoadROM(data); err != nil {
		logger.Fatal(err.Error())
	}
	if *trace {
		machine.Trace = func(pc uint16, inst chip8.Instruction) {
			logger.Debug("exec",
				log.Hex("addr", pc),
				log.Stringer("inst", inst))
		}
	}
	logger.Info("rom loaded",
		log.String("rom", filepath.Base(romPath)),
		log.Int("size", len(data)),
		log.Int("ips", *ips))

	ebiten.SetWindowSize(chip8.DisplayWidth*(*scale), chip8.DisplayHeight*(*scale))
	ebiten.SetWindowTitle("CHIP-8 - " + filepath.Base(romPath))

	game := &Game{
		machine: machine,
		logger:  logger,
		ctx:     app.Context(),
		ips:     *ips,
		scale:   *scale,
	}
	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal(err.Error())
	}
}
