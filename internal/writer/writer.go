// Package writer implements the listing file writing functionality.
package writer

import (
	"bufio"
	"fmt"
	"hash/crc32"
	"io"
)

// Writer writes listing lines to an output.
type Writer struct {
	options Options
	writer  *bufio.Writer
}

// Options of the writer.
type Options struct {
	HeaderComments  bool   // write a comment header before the first line
	CodeBaseAddress uint16 // code base address printed in the header
}

// New creates a new writer.
func New(writer io.Writer, options Options) *Writer {
	return &Writer{
		options: options,
		writer:  bufio.NewWriter(writer),
	}
}

// WriteCommentHeader writes the CRC32 checksum, size and code base address of the
// input as comments to the output, if enabled in the options.
func (w *Writer) WriteCommentHeader(data []byte) error {
	if !w.options.HeaderComments {
		return nil
	}

	if _, err := fmt.Fprintf(w.writer, "; CRC32 checksum: %08x\n", crc32.ChecksumIEEE(data)); err != nil {
		return fmt.Errorf("writing checksum: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; Size: %d bytes\n", len(data)); err != nil {
		return fmt.Errorf("writing size: %w", err)
	}
	if _, err := fmt.Fprintf(w.writer, "; Code base address: $%04x\n\n", w.options.CodeBaseAddress); err != nil {
		return fmt.Errorf("writing code base address: %w", err)
	}
	return nil
}

// WriteLine writes a single listing line.
func (w *Writer) WriteLine(line string) error {
	if _, err := fmt.Fprintln(w.writer, line); err != nil {
		return fmt.Errorf("writing line: %w", err)
	}
	return nil
}

// Flush writes any buffered data to the underlying output.
func (w *Writer) Flush() error {
	if err := w.writer.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}
