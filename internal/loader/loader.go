// Package loader handles binary file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
)

// MaxSize is the size of the 8080 address space, larger files can not
// be loaded into memory as a whole.
const MaxSize = 0x10000

var (
	// ErrFileTooLarge is returned for inputs that exceed the 8080 address space.
	ErrFileTooLarge = errors.New("file exceeds the 64 KiB address space")
	// ErrExceedsAddressSpace is returned for inputs that do not fit between
	// the code base address and the end of the address space.
	ErrExceedsAddressSpace = errors.New("data exceeds the address space above the code base address")
)

// Loader handles loading binary files from disk.
type Loader struct{}

// New creates a new binary loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the complete file into memory.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	// read one byte more than allowed to detect oversized files
	data, err := io.ReadAll(io.LimitReader(file, MaxSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	if len(data) > MaxSize {
		return nil, fmt.Errorf("loading file %s: %w", path, ErrFileTooLarge)
	}
	return data, nil
}

// LoadFromBytes returns a private copy of the passed buffer after checking
// that it fits into memory when loaded at the code base address.
func (l *Loader) LoadFromBytes(data []byte, codeBaseAddress uint16) ([]byte, error) {
	if len(data) > MaxSize {
		return nil, ErrFileTooLarge
	}
	if end := int(codeBaseAddress) + len(data); end > MaxSize {
		return nil, fmt.Errorf("%w: %d bytes at $%04x end at $%05x",
			ErrExceedsAddressSpace, len(data), codeBaseAddress, end)
	}
	return slices.Clone(data), nil
}
