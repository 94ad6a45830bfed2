// Package rom loads CHIP-8 program images. ROMs are raw binaries with no
// header, checksum or metadata; the only validation is the size limit imposed
// by the machine's address space.
package rom

import (
	"os"

	"github.com/pkg/errors"

	"github.com/modbrin/chip-8-emulator/pkg/chip8"
)

// Read returns the ROM image at path. Oversized images are rejected before
// any machine state could be touched.
func Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading rom %q", path)
	}
	if len(data) > chip8.MaxROMSize {
		return nil, errors.Wrapf(chip8.ErrROMTooLarge, "rom %q is %d bytes, limit is %d", path, len(data), chip8.MaxROMSize)
	}
	return data, nil
}
