package i8080

import "fmt"

// OperandFormat defines how the bytes following an opcode are rendered.
type OperandFormat int

// Operand formats, their numeric value equals the operand width in bytes.
const (
	NoOperand     OperandFormat = iota // implied or register operands only
	ImmediateByte                      // 8 bit immediate value or port number
	ImmediateWord                      // 16 bit little endian value or address
)

// String returns the name of the operand format.
func (f OperandFormat) String() string {
	switch f {
	case NoOperand:
		return "none"
	case ImmediateByte:
		return "byte"
	case ImmediateWord:
		return "word"
	default:
		return fmt.Sprintf("OperandFormat(%d)", int(f))
	}
}

// Opcode describes a single 8080 opcode.
type Opcode struct {
	Value      byte          // opcode byte that selects this descriptor
	Mnemonic   string        // instruction name including register operands, e.g. "MVI B"
	Format     OperandFormat // rendering of the trailing operand bytes
	Unofficial bool          // undocumented alias of another instruction
}

// OperandWidth returns the number of bytes following the opcode byte.
func (o Opcode) OperandWidth() int {
	return int(o.Format)
}

// Size returns the total instruction size in bytes.
func (o Opcode) Size() int {
	return 1 + o.OperandWidth()
}

// FormatOperand renders the operand bytes that follow the opcode.
// Word operands are little endian, the first byte is the low byte.
// An empty string is returned if the instruction has no operand or
// not enough bytes are passed.
func (o Opcode) FormatOperand(operand []byte) string {
	if len(operand) < o.OperandWidth() {
		return ""
	}

	switch o.Format {
	case ImmediateByte:
		return fmt.Sprintf("#$%02x", operand[0])
	case ImmediateWord:
		word := uint16(operand[0]) | uint16(operand[1])<<8
		return fmt.Sprintf("$%04x", word)
	default:
		return ""
	}
}

// Render renders the instruction with its operand, e.g. "LXI H $1234".
func (o Opcode) Render(operand []byte) string {
	if param := o.FormatOperand(operand); param != "" {
		return o.Mnemonic + " " + param
	}
	return o.Mnemonic
}

// mnemonics maps official mnemonics back to their opcode.
var mnemonics map[string]byte

func init() {
	mnemonics = make(map[string]byte, len(opcodes))

	for i := range opcodes {
		op := &opcodes[i]
		op.Value = byte(i)
		if op.Mnemonic == "" || op.Unofficial {
			continue
		}
		if _, ok := mnemonics[op.Mnemonic]; ok {
			panic(fmt.Sprintf("duplicate official mnemonic %q for opcode $%02x", op.Mnemonic, i))
		}
		mnemonics[op.Mnemonic] = byte(i)
	}
}

// Lookup returns the descriptor of the opcode b. Undocumented aliases
// are returned with their canonical mnemonic and Unofficial set.
// It returns false if b has no table entry.
func Lookup(b byte) (Opcode, bool) {
	op := opcodes[b]
	if op.Mnemonic == "" {
		return Opcode{}, false
	}
	return op, true
}

// LookupOfficial returns the descriptor of the documented opcode b.
// It returns false for undocumented aliases.
func LookupOfficial(b byte) (Opcode, bool) {
	op, ok := Lookup(b)
	if !ok || op.Unofficial {
		return Opcode{}, false
	}
	return op, true
}

// LookupMnemonic returns the official opcode for the given mnemonic.
func LookupMnemonic(mnemonic string) (Opcode, bool) {
	b, ok := mnemonics[mnemonic]
	if !ok {
		return Opcode{}, false
	}
	return opcodes[b], true
}

// Opcodes returns a copy of the complete opcode table.
func Opcodes() [256]Opcode {
	return opcodes
}
