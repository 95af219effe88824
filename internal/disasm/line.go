package disasm

import (
	"fmt"
	"strings"

	"github.com/retroenv/i8080disasm/internal/arch/i8080"
)

// LineKind defines what a listing line represents.
type LineKind int

// Line kinds.
const (
	// InstructionLine is a decoded instruction.
	InstructionLine LineKind = iota
	// UndefinedOpcode is a byte without table entry, decoding resumes at the next byte.
	UndefinedOpcode
	// TruncatedInstruction is an instruction whose operand bytes run past the end of the buffer.
	TruncatedInstruction
)

// String returns the name of the line kind.
func (k LineKind) String() string {
	switch k {
	case InstructionLine:
		return "instruction"
	case UndefinedOpcode:
		return "undefined opcode"
	case TruncatedInstruction:
		return "truncated instruction"
	default:
		return fmt.Sprintf("LineKind(%d)", int(k))
	}
}

// Line is a single decoded instruction or decoding diagnostic.
type Line struct {
	Kind    LineKind
	Offset  int    // position in the buffer
	Address uint16 // offset translated by the code base address

	Opcode  i8080.Opcode // zero value for undefined opcodes
	Data    []byte       // opcode byte and all operand bytes present in the buffer
	Missing int          // number of operand bytes missing for a truncated instruction
	AsData  bool         // undocumented opcode that is output as DB data bytes
}

// Size returns the number of bytes the cursor advances after this line.
func (l Line) Size() int {
	if l.Kind == UndefinedOpcode {
		return 1
	}
	return len(l.Data)
}

// Text returns the instruction or diagnostic text without the offset.
func (l Line) Text() string {
	switch l.Kind {
	case UndefinedOpcode:
		return fmt.Sprintf("Unimplemented instruction: %02x", l.Data[0])

	case TruncatedInstruction:
		mnemonic := l.Opcode.Mnemonic
		if l.AsData {
			mnemonic = fmt.Sprintf("DB $%02x", l.Data[0])
		}
		return fmt.Sprintf("Truncated instruction: %s missing %d of %d operand bytes [%s]",
			mnemonic, l.Missing, l.Opcode.OperandWidth(), hexBytes(l.Data[1:], "%02x", " "))

	default:
		if l.AsData {
			return fmt.Sprintf("DB %s ; unofficial %s", hexBytes(l.Data, "$%02x", ","), l.Opcode.Render(l.Data[1:]))
		}
		return l.Opcode.Render(l.Data[1:])
	}
}

// String returns the listing line, e.g. "0000  LXI H $1234".
func (l Line) String() string {
	return fmt.Sprintf("%04x  %s", l.Address, l.Text())
}

func hexBytes(data []byte, format, separator string) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf(format, b)
	}
	return strings.Join(parts, separator)
}
