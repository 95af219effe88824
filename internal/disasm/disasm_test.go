package disasm

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/retroenv/i8080disasm/internal/arch/i8080"
	"github.com/retroenv/i8080disasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

// lineCollector collects all written lines.
type lineCollector struct {
	lines []string
	err   error
}

func (c *lineCollector) WriteLine(line string) error {
	if c.err != nil {
		return c.err
	}
	c.lines = append(c.lines, line)
	return nil
}

func newTestDisasm(t *testing.T, opts options.Disassembler) *Disasm {
	t.Helper()
	return New(log.NewTestLogger(t), opts)
}

func assertLines(t *testing.T, lines []string, expected ...string) {
	t.Helper()
	assert.Equal(t, strings.Join(expected, "\n"), strings.Join(lines, "\n"))
}

func process(t *testing.T, dis *Disasm, data []byte) ([]string, Result) {
	t.Helper()
	collector := &lineCollector{}
	result, err := dis.Process(context.Background(), data, collector)
	assert.NoError(t, err)
	return collector.lines, result
}

var testCode = []byte{
	0x31, 0x00, 0x24, // LXI SP $2400
	0x3E, 0x0F,       // MVI A #$0f
	0xD3, 0x01,       // OUT #$01
	0x21, 0x34, 0x12, // LXI H $1234
	0x7E,             // MOV A,M
	0xFE, 0x20,       // CPI #$20
	0xC2, 0x0A, 0x00, // JNZ $000a
	0xCD, 0xE6, 0x01, // CALL $01e6
	0x76,             // HLT
}

var expectedTestCode = `0000  LXI SP $2400
0003  MVI A #$0f
0005  OUT #$01
0007  LXI H $1234
000a  MOV A,M
000b  CPI #$20
000d  JNZ $000a
0010  CALL $01e6
0013  HLT`

func TestProcess(t *testing.T) {
	dis := newTestDisasm(t, options.NewDisassembler())

	lines, result := process(t, dis, testCode)
	assert.Equal(t, expectedTestCode, strings.Join(lines, "\n"))
	assert.Equal(t, 9, result.Instructions)
	assert.Equal(t, len(testCode), result.Position)
	assert.True(t, result.Success())
	assert.NoError(t, result.Err())
}

func TestProcess_EmptyBuffer(t *testing.T) {
	dis := newTestDisasm(t, options.NewDisassembler())

	lines, result := process(t, dis, nil)
	assert.Empty(t, lines)
	assert.Equal(t, 0, result.Position)
	assert.True(t, result.Success())
	assert.NoError(t, result.Err())
}

func TestProcess_Nop(t *testing.T) {
	dis := newTestDisasm(t, options.NewDisassembler())

	lines, result := process(t, dis, []byte{0x00})
	assert.Len(t, lines, 1)
	assert.Equal(t, "0000  NOP", lines[0])
	assert.Equal(t, 1, result.Position)
	assert.True(t, result.Success())
}

func TestProcess_LittleEndianWord(t *testing.T) {
	dis := newTestDisasm(t, options.NewDisassembler())

	lines, result := process(t, dis, []byte{0x21, 0x34, 0x12})
	assert.Len(t, lines, 1)
	assert.Equal(t, "0000  LXI H $1234", lines[0])
	assert.False(t, strings.Contains(lines[0], "3412"))
	assert.Equal(t, 3, result.Position)
}

func TestProcess_TruncatedInstruction(t *testing.T) {
	dis := newTestDisasm(t, options.NewDisassembler())

	lines, result := process(t, dis, []byte{0x00, 0x21, 0x34})
	assert.Len(t, lines, 2)
	assert.Equal(t, "0000  NOP", lines[0])
	assert.Equal(t, "0001  Truncated instruction: LXI H missing 1 of 2 operand bytes [34]", lines[1])

	assert.True(t, result.Truncated)
	assert.Equal(t, 1, result.Missing)
	assert.Equal(t, 1, result.Position)
	assert.False(t, result.Success())

	err := result.Err()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrTruncatedInstruction))
}

func TestProcess_TruncatedWithoutOperandBytes(t *testing.T) {
	dis := newTestDisasm(t, options.NewDisassembler())

	lines, result := process(t, dis, []byte{0xC3})
	assert.Len(t, lines, 1)
	assert.Equal(t, "0000  Truncated instruction: JMP missing 2 of 2 operand bytes []", lines[0])
	assert.Equal(t, 2, result.Missing)
}

func TestProcess_UndefinedOpcodeResync(t *testing.T) {
	opts := options.NewDisassembler()
	opts.NoUnofficialInstructions = true
	dis := newTestDisasm(t, opts)

	lines, result := process(t, dis, []byte{0xDD, 0x00})
	assert.Len(t, lines, 2)
	assert.Equal(t, "0000  Unimplemented instruction: dd", lines[0])
	assert.Equal(t, "0001  NOP", lines[1])

	assert.Equal(t, 1, result.Undefined)
	assert.Equal(t, 1, result.Instructions)
	assert.Equal(t, 2, result.Position)
	assert.True(t, result.Success())
}

func TestProcess_UndefinedOpcodeInsideOperandPosition(t *testing.T) {
	opts := options.NewDisassembler()
	opts.NoUnofficialInstructions = true
	dis := newTestDisasm(t, opts)

	// resync continues at the byte after the undefined opcode, which can
	// start a multi byte instruction
	lines, _ := process(t, dis, []byte{0x08, 0x3E, 0x08, 0x10})
	assertLines(t, lines,
		"0000  Unimplemented instruction: 08",
		"0001  MVI A #$08",
		"0003  Unimplemented instruction: 10",
	)
}

func TestProcess_UnofficialOpcodes(t *testing.T) {
	dis := newTestDisasm(t, options.NewDisassembler())

	// the alias keeps the operand bytes of the instruction in sync
	lines, result := process(t, dis, []byte{0xCB, 0x00, 0x01, 0x08, 0xC9})
	assertLines(t, lines,
		"0000  DB $cb,$00,$01 ; unofficial JMP $0100",
		"0003  DB $08 ; unofficial NOP",
		"0004  RET",
	)
	assert.Equal(t, 0, result.Undefined)
	assert.Equal(t, 3, result.Instructions)
	assert.Equal(t, 2, result.Unofficial)
	assert.True(t, result.Success())
}

func TestProcess_UnofficialOpcodesAsMnemonics(t *testing.T) {
	opts := options.NewDisassembler()
	opts.OutputUnofficialAsMnemonics = true
	dis := newTestDisasm(t, opts)

	lines, result := process(t, dis, []byte{0xDD, 0x00, 0x01, 0x08})
	assertLines(t, lines,
		"0000  CALL $0100",
		"0003  NOP",
	)
	assert.Equal(t, 0, result.Undefined)
	assert.Equal(t, 2, result.Unofficial)
	assert.True(t, result.Success())
}

func TestProcess_TruncatedUnofficialOpcode(t *testing.T) {
	dis := newTestDisasm(t, options.NewDisassembler())

	lines, result := process(t, dis, []byte{0x00, 0xCB, 0x00})
	assertLines(t, lines,
		"0000  NOP",
		"0001  Truncated instruction: DB $cb missing 1 of 2 operand bytes [00]",
	)
	assert.True(t, result.Truncated)
	assert.Equal(t, 1, result.Missing)
}

func TestProcess_NoUnofficialInstructions(t *testing.T) {
	opts := options.NewDisassembler()
	opts.NoUnofficialInstructions = true
	dis := newTestDisasm(t, opts)

	lines, result := process(t, dis, []byte{0xCB, 0x00, 0x01})
	assertLines(t, lines,
		"0000  Unimplemented instruction: cb",
		"0001  NOP",
		"0002  Truncated instruction: LXI B missing 2 of 2 operand bytes []",
	)
	assert.Equal(t, 1, result.Undefined)
	assert.Equal(t, 0, result.Unofficial)
}

func TestProcess_CodeBaseAddress(t *testing.T) {
	opts := options.NewDisassembler()
	opts.CodeBaseAddress = 0x100
	dis := newTestDisasm(t, opts)

	lines, _ := process(t, dis, []byte{0xC3, 0x00, 0x01, 0xC9})
	assertLines(t, lines,
		"0100  JMP $0100",
		"0103  RET",
	)
}

func TestProcess_HexComments(t *testing.T) {
	opts := options.NewDisassembler()
	opts.HexComments = true
	dis := newTestDisasm(t, opts)

	lines, _ := process(t, dis, []byte{0x21, 0x34, 0x12, 0x08, 0x06})
	assertLines(t, lines,
		"0000  LXI H $1234                ; 21 34 12",
		"0003  DB $08 ; unofficial NOP    ; 08",
		"0004  Truncated instruction: MVI B missing 1 of 1 operand bytes []",
	)
}

func TestProcess_EveryOpcode(t *testing.T) {
	dis := newTestDisasm(t, options.NewDisassembler())

	for _, op := range i8080.Opcodes() {
		data := make([]byte, op.Size())
		data[0] = op.Value
		lines, result := process(t, dis, data)
		assert.Len(t, lines, 1)
		assert.Equal(t, 1, result.Instructions)
		assert.Equal(t, 0, result.Undefined)
		assert.Equal(t, 1+op.OperandWidth(), result.Position)
		assert.True(t, strings.Contains(lines[0], op.Mnemonic))
		if op.Unofficial {
			assert.Equal(t, 1, result.Unofficial)
		}
	}
}

func TestProcess_EveryOpcodeOfficialOnly(t *testing.T) {
	opts := options.NewDisassembler()
	opts.NoUnofficialInstructions = true
	dis := newTestDisasm(t, opts)

	for _, op := range i8080.Opcodes() {
		if !op.Unofficial {
			continue
		}
		lines, result := process(t, dis, []byte{op.Value})
		assert.Len(t, lines, 1)
		assert.Equal(t, 1, result.Undefined)
		assert.Equal(t, 1, result.Position)
	}
}

func TestLines_Idempotent(t *testing.T) {
	dis := newTestDisasm(t, options.NewDisassembler())
	data := append(slices.Clone(testCode), 0xCB, 0x21, 0x00)

	var first, second []string
	for line := range dis.Lines(data) {
		first = append(first, line.String())
	}
	for line := range dis.Lines(data) {
		second = append(second, line.String())
	}
	assertLines(t, second, first...)
	assert.Len(t, first, 10)
}

func TestLines_EarlyStop(t *testing.T) {
	dis := newTestDisasm(t, options.NewDisassembler())

	var count int
	for line := range dis.Lines(testCode) {
		count++
		if line.Opcode.Mnemonic == "OUT" {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func TestProcess_WriteError(t *testing.T) {
	dis := newTestDisasm(t, options.NewDisassembler())
	writeErr := errors.New("disk full")

	_, err := dis.Process(context.Background(), testCode, &lineCollector{err: writeErr})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, writeErr))
}

func TestProcess_Cancelled(t *testing.T) {
	dis := newTestDisasm(t, options.NewDisassembler())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	collector := &lineCollector{}
	_, err := dis.Process(ctx, testCode, collector)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, collector.lines)
}

func TestLineKind_String(t *testing.T) {
	assert.Equal(t, "instruction", InstructionLine.String())
	assert.Equal(t, "undefined opcode", UndefinedOpcode.String())
	assert.Equal(t, "truncated instruction", TruncatedInstruction.String())
	assert.Equal(t, "LineKind(9)", LineKind(9).String())
}
