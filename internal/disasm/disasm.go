// Package disasm implements the Intel 8080 decode loop.
package disasm

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/retroenv/i8080disasm/internal/arch/i8080"
	"github.com/retroenv/i8080disasm/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// hexCommentColumn is the column that hex comments are aligned to.
const hexCommentColumn = 32

// ErrTruncatedInstruction is returned for a buffer that ends inside an instruction.
var ErrTruncatedInstruction = errors.New("truncated instruction")

// LineWriter receives the formatted listing lines.
type LineWriter interface {
	WriteLine(line string) error
}

// Disasm implements a disassembler for a buffer of 8080 machine code.
// It holds no state between runs and can be used for multiple buffers
// concurrently. The buffer has to fit into the address space above the
// code base address, see loader.LoadFromBytes.
type Disasm struct {
	logger  *log.Logger
	options options.Disassembler
	lookup  func(b byte) (i8080.Opcode, bool)
}

// New creates a new disassembler.
func New(logger *log.Logger, options options.Disassembler) *Disasm {
	dis := &Disasm{
		logger:  logger,
		options: options,
		lookup:  i8080.Lookup,
	}
	if options.NoUnofficialInstructions {
		dis.lookup = i8080.LookupOfficial
	}
	return dis
}

// Lines returns a lazy sequence of the decoded lines of data.
// Every call starts a new decoding run from offset 0. The data slices
// of the returned lines share the memory of the passed buffer.
func (dis *Disasm) Lines(data []byte) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for position := 0; position < len(data); {
			line := dis.decodeLine(data, position)
			if !yield(line) {
				return
			}
			if line.Kind == TruncatedInstruction {
				return // no bytes left to decode
			}
			position += line.Size()
		}
	}
}

// decodeLine decodes the instruction at the given position.
func (dis *Disasm) decodeLine(data []byte, position int) Line {
	line := Line{
		Offset:  position,
		Address: dis.options.CodeBaseAddress + uint16(position),
	}

	opcode, ok := dis.lookup(data[position])
	if !ok {
		line.Kind = UndefinedOpcode
		line.Data = data[position : position+1]
		return line
	}
	line.Opcode = opcode
	line.AsData = opcode.Unofficial && !dis.options.OutputUnofficialAsMnemonics

	end := position + opcode.Size()
	if end > len(data) {
		line.Kind = TruncatedInstruction
		line.Data = data[position:]
		line.Missing = end - len(data)
		return line
	}

	line.Kind = InstructionLine
	line.Data = data[position:end]
	return line
}

// FormatLine returns the listing text of a line including the optional hex comment.
func (dis *Disasm) FormatLine(line Line) string {
	s := line.String()
	if !dis.options.HexComments || line.Kind == TruncatedInstruction {
		return s
	}
	return fmt.Sprintf("%-*s ; %s", hexCommentColumn, s, hexBytes(line.Data, "%02X", " "))
}

// Process decodes all of data and writes the formatted lines to the writer.
// Decoding diagnostics are part of the listing and the returned result,
// only write errors and context cancellation are returned as error.
func (dis *Disasm) Process(ctx context.Context, data []byte, writer LineWriter) (Result, error) {
	result := Result{Size: len(data)}

	for line := range dis.Lines(data) {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("decoding offset %04x: %w", line.Offset, err)
		}

		if err := writer.WriteLine(dis.FormatLine(line)); err != nil {
			return result, fmt.Errorf("writing line for offset %04x: %w", line.Offset, err)
		}

		switch line.Kind {
		case InstructionLine:
			result.Instructions++
			result.Position += line.Size()
			if line.Opcode.Unofficial {
				result.Unofficial++
			}

		case UndefinedOpcode:
			result.Undefined++
			result.Position += line.Size()
			dis.logger.Debug("Undefined opcode",
				log.Hex("address", line.Address),
				log.Hex("opcode", line.Data[0]))

		case TruncatedInstruction:
			result.Truncated = true
			result.Missing = line.Missing
			dis.logger.Debug("Truncated instruction",
				log.Hex("address", line.Address),
				log.String("instruction", line.Opcode.Mnemonic),
				log.Int("missing", line.Missing))
		}
	}

	return result, nil
}

// Result summarizes a decoding run.
type Result struct {
	Size     int // size of the decoded buffer
	Position int // final cursor position

	Instructions int // decoded instructions
	Undefined    int // undefined opcode bytes that were skipped
	Unofficial   int // decoded undocumented opcodes, included in Instructions

	Truncated bool // the last instruction was cut off by the end of the buffer
	Missing   int  // operand bytes missing for the truncated instruction
}

// Success returns whether the cursor landed exactly on the end of the buffer.
func (r Result) Success() bool {
	return !r.Truncated && r.Position == r.Size
}

// Err returns an error describing why the run did not end on the end of the buffer.
func (r Result) Err() error {
	if r.Success() {
		return nil
	}
	return fmt.Errorf("%w at offset %04x: cursor misaligned by %d missing operand bytes",
		ErrTruncatedInstruction, r.Position, r.Missing)
}
