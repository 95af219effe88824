// Package i8080 provides the Intel 8080 opcode table used by the disassembler.
//
// # Instruction Set
//
// The 8080 uses a single opcode byte followed by zero, one or two operand bytes:
//   - 1 byte: register and implied instructions like MOV B,C or RET
//   - 2 bytes: 8 bit immediates and port numbers like MVI B #$12 or OUT #$01
//   - 3 bytes: 16 bit immediates and addresses like LXI H $1234 or JMP $0100
//
// 16 bit operands are stored little endian, the byte following the opcode is
// the low byte of the value.
//
// # Undocumented Opcodes
//
// 12 byte values are not documented by Intel but are decoded by the CPU as
// aliases of other instructions:
//   - $08 $10 $18 $20 $28 $30 $38: NOP
//   - $CB: JMP
//   - $D9: RET
//   - $DD $ED $FD: CALL
//
// Lookup returns them with their alias mnemonic and Unofficial set,
// LookupOfficial treats them as undefined.
//
// # Usage Example
//
//	op, ok := i8080.Lookup(0x21)
//	if ok {
//		fmt.Println(op.Render([]byte{0x34, 0x12})) // LXI H $1234
//	}
package i8080
