// Package verification verifies that the generated listing recreates the input.
package verification

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/retroenv/i8080disasm/internal/arch/i8080"
	"github.com/retroenv/i8080disasm/internal/options"
	"github.com/retroenv/retrogolib/log"
)

const (
	undefinedPrefix = "Unimplemented instruction: "
	truncatedPrefix = "Truncated instruction: "
	dataMnemonic    = "DB"
)

// ErrUnofficialOpcodes is returned when verifying a listing that outputs
// undocumented opcodes as mnemonics, they are ambiguous to reassemble.
var ErrUnofficialOpcodes = errors.New("listings with unofficial opcode mnemonics can not be verified")

// VerifyOutput verifies that reassembling the listing recreates the exact input.
func VerifyOutput(logger *log.Logger, listing, input []byte, opts options.Disassembler) error {
	if opts.OutputUnofficialAsMnemonics {
		return ErrUnofficialOpcodes
	}

	output, err := Reassemble(listing, opts.CodeBaseAddress)
	if err != nil {
		return fmt.Errorf("reassembling listing: %w", err)
	}

	if err := checkBufferEqual(logger, input, output); err != nil {
		return fmt.Errorf("listing mismatch: %w", err)
	}
	return nil
}

// Reassemble converts a listing back into machine code. Comment lines, empty
// lines and all comments are ignored, DB lines are converted to their data bytes. The offset of every line is checked to
// follow the previous instruction.
func Reassemble(listing []byte, codeBaseAddress uint16) ([]byte, error) {
	var output []byte

	scanner := bufio.NewScanner(bytes.NewReader(listing))
	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		line := scanner.Text()
		if i := strings.Index(line, ";"); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		address, text, ok := strings.Cut(line, "  ")
		if !ok {
			return nil, fmt.Errorf("line %d: missing offset separator", lineNumber)
		}
		if err := checkAddress(address, int(codeBaseAddress)+len(output)); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}

		data, err := parseText(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		output = append(output, data...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading listing: %w", err)
	}

	return output, nil
}

func checkAddress(s string, expected int) error {
	address, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return fmt.Errorf("parsing offset '%s': %w", s, err)
	}
	if int(address) != expected {
		return fmt.Errorf("offset $%04x does not follow previous instruction, expected $%04x", address, expected)
	}
	return nil
}

// parseText returns the bytes of an instruction or diagnostic text.
func parseText(text string) ([]byte, error) {
	switch {
	case strings.HasPrefix(text, undefinedPrefix):
		b, err := strconv.ParseUint(strings.TrimPrefix(text, undefinedPrefix), 16, 8)
		if err != nil {
			return nil, fmt.Errorf("parsing undefined opcode: %w", err)
		}
		return []byte{byte(b)}, nil

	case strings.HasPrefix(text, truncatedPrefix):
		return parseTruncated(strings.TrimPrefix(text, truncatedPrefix))

	default:
		return parseInstruction(text)
	}
}

// parseInstruction parses an instruction like "LXI H $1234".
func parseInstruction(text string) ([]byte, error) {
	mnemonic, operand := text, ""
	if i := strings.LastIndexByte(text, ' '); i >= 0 {
		last := text[i+1:]
		if strings.HasPrefix(last, "$") || strings.HasPrefix(last, "#$") {
			mnemonic, operand = text[:i], last
		}
	}

	if mnemonic == dataMnemonic {
		return parseData(operand)
	}

	opcode, ok := i8080.LookupMnemonic(mnemonic)
	if !ok {
		return nil, fmt.Errorf("unknown instruction '%s'", mnemonic)
	}

	data := []byte{opcode.Value}
	switch opcode.Format {
	case i8080.NoOperand:
		if operand != "" {
			return nil, fmt.Errorf("unexpected operand '%s' for '%s'", operand, mnemonic)
		}

	case i8080.ImmediateByte:
		value, err := parseOperand(operand, "#$", 8)
		if err != nil {
			return nil, fmt.Errorf("instruction '%s': %w", mnemonic, err)
		}
		data = append(data, byte(value))

	case i8080.ImmediateWord:
		value, err := parseOperand(operand, "$", 16)
		if err != nil {
			return nil, fmt.Errorf("instruction '%s': %w", mnemonic, err)
		}
		data = append(data, byte(value), byte(value>>8))
	}
	return data, nil
}

func parseOperand(operand, prefix string, bitSize int) (uint64, error) {
	if !strings.HasPrefix(operand, prefix) {
		return 0, fmt.Errorf("invalid operand '%s'", operand)
	}
	value, err := strconv.ParseUint(strings.TrimPrefix(operand, prefix), 16, bitSize)
	if err != nil {
		return 0, fmt.Errorf("parsing operand '%s': %w", operand, err)
	}
	return value, nil
}

// parseData parses the bytes of a data line like "DB $cb,$00,$01".
func parseData(operand string) ([]byte, error) {
	if operand == "" {
		return nil, fmt.Errorf("missing data bytes for '%s'", dataMnemonic)
	}

	var data []byte
	for field := range strings.SplitSeq(operand, ",") {
		value, err := parseOperand(field, "$", 8)
		if err != nil {
			return nil, fmt.Errorf("data bytes: %w", err)
		}
		data = append(data, byte(value))
	}
	return data, nil
}

// parseTruncated parses a truncated instruction like "LXI H missing 1 of 2 operand bytes [34]".
func parseTruncated(text string) ([]byte, error) {
	mnemonic, rest, ok := strings.Cut(text, " missing ")
	if !ok {
		return nil, fmt.Errorf("invalid truncated instruction '%s'", text)
	}
	opcode, err := truncatedOpcode(mnemonic)
	if err != nil {
		return nil, err
	}

	start := strings.IndexByte(rest, '[')
	end := strings.LastIndexByte(rest, ']')
	if start < 0 || end < start {
		return nil, fmt.Errorf("missing operand bytes in '%s'", text)
	}

	data := []byte{opcode.Value}
	for _, field := range strings.Fields(rest[start+1 : end]) {
		b, err := strconv.ParseUint(field, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("parsing operand byte '%s': %w", field, err)
		}
		data = append(data, byte(b))
	}
	if len(data) >= opcode.Size() {
		return nil, fmt.Errorf("truncated instruction '%s' is complete", mnemonic)
	}
	return data, nil
}

// truncatedOpcode returns the opcode of a truncated instruction, undocumented
// opcodes are written as "DB $cb".
func truncatedOpcode(mnemonic string) (i8080.Opcode, error) {
	if operand, ok := strings.CutPrefix(mnemonic, dataMnemonic+" "); ok {
		value, err := parseOperand(operand, "$", 8)
		if err != nil {
			return i8080.Opcode{}, fmt.Errorf("truncated data opcode: %w", err)
		}
		opcode, ok := i8080.Lookup(byte(value))
		if !ok {
			return i8080.Opcode{}, fmt.Errorf("undefined truncated opcode '%s'", operand)
		}
		return opcode, nil
	}

	opcode, ok := i8080.LookupMnemonic(mnemonic)
	if !ok {
		return i8080.Opcode{}, fmt.Errorf("unknown instruction '%s'", mnemonic)
	}
	return opcode, nil
}

func checkBufferEqual(logger *log.Logger, input, output []byte) error {
	if len(input) != len(output) {
		return fmt.Errorf("mismatched lengths, %d != %d", len(input), len(output))
	}

	var diffs uint64
	for i := range input {
		if input[i] == output[i] {
			continue
		}

		diffs++
		if diffs < 10 {
			logger.Error("Offset mismatch",
				log.Hex("offset", i),
				log.Hex("expected", input[i]),
				log.Hex("got", output[i]))
		}
	}
	if diffs == 0 {
		return nil
	}
	return fmt.Errorf("%d offset mismatches", diffs)
}
