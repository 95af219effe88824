// Package detector handles code base address detection.
package detector

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/retroenv/i8080disasm/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// cpmProgramStart is the start of the CP/M transient program area
// that .com files are loaded to.
const cpmProgramStart = 0x0100

// Detector handles code base address detection from file extensions and options.
type Detector struct {
	logger *log.Logger
}

// New creates a new code base address detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the code base address from options or file auto-detection.
// An explicitly passed base address takes precedence, otherwise the address
// is detected from the input filename extension.
func (d *Detector) Detect(opts options.Program) (uint16, error) {
	if opts.Base != "" {
		address, err := ParseAddress(opts.Base)
		if err != nil {
			return 0, fmt.Errorf("parsing code base address: %w", err)
		}
		return address, nil
	}

	address := d.detectFromFile(opts.Input)
	d.logger.Debug("Auto-detected code base address",
		log.Hex("address", address),
		log.String("file", opts.Input))
	return address, nil
}

// detectFromFile determines the code base address based on file extension.
func (d *Detector) detectFromFile(filename string) uint16 {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".com":
		return cpmProgramStart
	default:
		return 0
	}
}

// ParseAddress parses a 16 bit address in decimal, 0x prefixed or $ prefixed hex notation.
func ParseAddress(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	if hex, ok := strings.CutPrefix(s, "$"); ok {
		s = "0x" + hex
	}

	address, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid address '%s': %w", s, err)
	}
	return uint16(address), nil
}
