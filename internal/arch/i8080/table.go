package i8080

// opcodes maps every byte value to its instruction descriptor.
// Entries are indexed by the opcode byte, the Value field is filled in by init.
var opcodes = [256]Opcode{
	0x00: {Mnemonic: "NOP"},
	0x01: {Mnemonic: "LXI B", Format: ImmediateWord},
	0x02: {Mnemonic: "STAX B"},
	0x03: {Mnemonic: "INX B"},
	0x04: {Mnemonic: "INR B"},
	0x05: {Mnemonic: "DCR B"},
	0x06: {Mnemonic: "MVI B", Format: ImmediateByte},
	0x07: {Mnemonic: "RLC"},
	0x08: {Mnemonic: "NOP", Unofficial: true},
	0x09: {Mnemonic: "DAD B"},
	0x0A: {Mnemonic: "LDAX B"},
	0x0B: {Mnemonic: "DCX B"},
	0x0C: {Mnemonic: "INR C"},
	0x0D: {Mnemonic: "DCR C"},
	0x0E: {Mnemonic: "MVI C", Format: ImmediateByte},
	0x0F: {Mnemonic: "RRC"},
	0x10: {Mnemonic: "NOP", Unofficial: true},
	0x11: {Mnemonic: "LXI D", Format: ImmediateWord},
	0x12: {Mnemonic: "STAX D"},
	0x13: {Mnemonic: "INX D"},
	0x14: {Mnemonic: "INR D"},
	0x15: {Mnemonic: "DCR D"},
	0x16: {Mnemonic: "MVI D", Format: ImmediateByte},
	0x17: {Mnemonic: "RAL"},
	0x18: {Mnemonic: "NOP", Unofficial: true},
	0x19: {Mnemonic: "DAD D"},
	0x1A: {Mnemonic: "LDAX D"},
	0x1B: {Mnemonic: "DCX D"},
	0x1C: {Mnemonic: "INR E"},
	0x1D: {Mnemonic: "DCR E"},
	0x1E: {Mnemonic: "MVI E", Format: ImmediateByte},
	0x1F: {Mnemonic: "RAR"},
	0x20: {Mnemonic: "NOP", Unofficial: true},
	0x21: {Mnemonic: "LXI H", Format: ImmediateWord},
	0x22: {Mnemonic: "SHLD", Format: ImmediateWord},
	0x23: {Mnemonic: "INX H"},
	0x24: {Mnemonic: "INR H"},
	0x25: {Mnemonic: "DCR H"},
	0x26: {Mnemonic: "MVI H", Format: ImmediateByte},
	0x27: {Mnemonic: "DAA"},
	0x28: {Mnemonic: "NOP", Unofficial: true},
	0x29: {Mnemonic: "DAD H"},
	0x2A: {Mnemonic: "LHLD", Format: ImmediateWord},
	0x2B: {Mnemonic: "DCX H"},
	0x2C: {Mnemonic: "INR L"},
	0x2D: {Mnemonic: "DCR L"},
	0x2E: {Mnemonic: "MVI L", Format: ImmediateByte},
	0x2F: {Mnemonic: "CMA"},
	0x30: {Mnemonic: "NOP", Unofficial: true},
	0x31: {Mnemonic: "LXI SP", Format: ImmediateWord},
	0x32: {Mnemonic: "STA", Format: ImmediateWord},
	0x33: {Mnemonic: "INX SP"},
	0x34: {Mnemonic: "INR M"},
	0x35: {Mnemonic: "DCR M"},
	0x36: {Mnemonic: "MVI M", Format: ImmediateByte},
	0x37: {Mnemonic: "STC"},
	0x38: {Mnemonic: "NOP", Unofficial: true},
	0x39: {Mnemonic: "DAD SP"},
	0x3A: {Mnemonic: "LDA", Format: ImmediateWord},
	0x3B: {Mnemonic: "DCX SP"},
	0x3C: {Mnemonic: "INR A"},
	0x3D: {Mnemonic: "DCR A"},
	0x3E: {Mnemonic: "MVI A", Format: ImmediateByte},
	0x3F: {Mnemonic: "CMC"},
	0x40: {Mnemonic: "MOV B,B"},
	0x41: {Mnemonic: "MOV B,C"},
	0x42: {Mnemonic: "MOV B,D"},
	0x43: {Mnemonic: "MOV B,E"},
	0x44: {Mnemonic: "MOV B,H"},
	0x45: {Mnemonic: "MOV B,L"},
	0x46: {Mnemonic: "MOV B,M"},
	0x47: {Mnemonic: "MOV B,A"},
	0x48: {Mnemonic: "MOV C,B"},
	0x49: {Mnemonic: "MOV C,C"},
	0x4A: {Mnemonic: "MOV C,D"},
	0x4B: {Mnemonic: "MOV C,E"},
	0x4C: {Mnemonic: "MOV C,H"},
	0x4D: {Mnemonic: "MOV C,L"},
	0x4E: {Mnemonic: "MOV C,M"},
	0x4F: {Mnemonic: "MOV C,A"},
	0x50: {Mnemonic: "MOV D,B"},
	0x51: {Mnemonic: "MOV D,C"},
	0x52: {Mnemonic: "MOV D,D"},
	0x53: {Mnemonic: "MOV D,E"},
	0x54: {Mnemonic: "MOV D,H"},
	0x55: {Mnemonic: "MOV D,L"},
	0x56: {Mnemonic: "MOV D,M"},
	0x57: {Mnemonic: "MOV D,A"},
	0x58: {Mnemonic: "MOV E,B"},
	0x59: {Mnemonic: "MOV E,C"},
	0x5A: {Mnemonic: "MOV E,D"},
	0x5B: {Mnemonic: "MOV E,E"},
	0x5C: {Mnemonic: "MOV E,H"},
	0x5D: {Mnemonic: "MOV E,L"},
	0x5E: {Mnemonic: "MOV E,M"},
	0x5F: {Mnemonic: "MOV E,A"},
	0x60: {Mnemonic: "MOV H,B"},
	0x61: {Mnemonic: "MOV H,C"},
	0x62: {Mnemonic: "MOV H,D"},
	0x63: {Mnemonic: "MOV H,E"},
	0x64: {Mnemonic: "MOV H,H"},
	0x65: {Mnemonic: "MOV H,L"},
	0x66: {Mnemonic: "MOV H,M"},
	0x67: {Mnemonic: "MOV H,A"},
	0x68: {Mnemonic: "MOV L,B"},
	0x69: {Mnemonic: "MOV L,C"},
	0x6A: {Mnemonic: "MOV L,D"},
	0x6B: {Mnemonic: "MOV L,E"},
	0x6C: {Mnemonic: "MOV L,H"},
	0x6D: {Mnemonic: "MOV L,L"},
	0x6E: {Mnemonic: "MOV L,M"},
	0x6F: {Mnemonic: "MOV L,A"},
	0x70: {Mnemonic: "MOV M,B"},
	0x71: {Mnemonic: "MOV M,C"},
	0x72: {Mnemonic: "MOV M,D"},
	0x73: {Mnemonic: "MOV M,E"},
	0x74: {Mnemonic: "MOV M,H"},
	0x75: {Mnemonic: "MOV M,L"},
	0x76: {Mnemonic: "HLT"},
	0x77: {Mnemonic: "MOV M,A"},
	0x78: {Mnemonic: "MOV A,B"},
	0x79: {Mnemonic: "MOV A,C"},
	0x7A: {Mnemonic: "MOV A,D"},
	0x7B: {Mnemonic: "MOV A,E"},
	0x7C: {Mnemonic: "MOV A,H"},
	0x7D: {Mnemonic: "MOV A,L"},
	0x7E: {Mnemonic: "MOV A,M"},
	0x7F: {Mnemonic: "MOV A,A"},
	0x80: {Mnemonic: "ADD B"},
	0x81: {Mnemonic: "ADD C"},
	0x82: {Mnemonic: "ADD D"},
	0x83: {Mnemonic: "ADD E"},
	0x84: {Mnemonic: "ADD H"},
	0x85: {Mnemonic: "ADD L"},
	0x86: {Mnemonic: "ADD M"},
	0x87: {Mnemonic: "ADD A"},
	0x88: {Mnemonic: "ADC B"},
	0x89: {Mnemonic: "ADC C"},
	0x8A: {Mnemonic: "ADC D"},
	0x8B: {Mnemonic: "ADC E"},
	0x8C: {Mnemonic: "ADC H"},
	0x8D: {Mnemonic: "ADC L"},
	0x8E: {Mnemonic: "ADC M"},
	0x8F: {Mnemonic: "ADC A"},
	0x90: {Mnemonic: "SUB B"},
	0x91: {Mnemonic: "SUB C"},
	0x92: {Mnemonic: "SUB D"},
	0x93: {Mnemonic: "SUB E"},
	0x94: {Mnemonic: "SUB H"},
	0x95: {Mnemonic: "SUB L"},
	0x96: {Mnemonic: "SUB M"},
	0x97: {Mnemonic: "SUB A"},
	0x98: {Mnemonic: "SBB B"},
	0x99: {Mnemonic: "SBB C"},
	0x9A: {Mnemonic: "SBB D"},
	0x9B: {Mnemonic: "SBB E"},
	0x9C: {Mnemonic: "SBB H"},
	0x9D: {Mnemonic: "SBB L"},
	0x9E: {Mnemonic: "SBB M"},
	0x9F: {Mnemonic: "SBB A"},
	0xA0: {Mnemonic: "ANA B"},
	0xA1: {Mnemonic: "ANA C"},
	0xA2: {Mnemonic: "ANA D"},
	0xA3: {Mnemonic: "ANA E"},
	0xA4: {Mnemonic: "ANA H"},
	0xA5: {Mnemonic: "ANA L"},
	0xA6: {Mnemonic: "ANA M"},
	0xA7: {Mnemonic: "ANA A"},
	0xA8: {Mnemonic: "XRA B"},
	0xA9: {Mnemonic: "XRA C"},
	0xAA: {Mnemonic: "XRA D"},
	0xAB: {Mnemonic: "XRA E"},
	0xAC: {Mnemonic: "XRA H"},
	0xAD: {Mnemonic: "XRA L"},
	0xAE: {Mnemonic: "XRA M"},
	0xAF: {Mnemonic: "XRA A"},
	0xB0: {Mnemonic: "ORA B"},
	0xB1: {Mnemonic: "ORA C"},
	0xB2: {Mnemonic: "ORA D"},
	0xB3: {Mnemonic: "ORA E"},
	0xB4: {Mnemonic: "ORA H"},
	0xB5: {Mnemonic: "ORA L"},
	0xB6: {Mnemonic: "ORA M"},
	0xB7: {Mnemonic: "ORA A"},
	0xB8: {Mnemonic: "CMP B"},
	0xB9: {Mnemonic: "CMP C"},
	0xBA: {Mnemonic: "CMP D"},
	0xBB: {Mnemonic: "CMP E"},
	0xBC: {Mnemonic: "CMP H"},
	0xBD: {Mnemonic: "CMP L"},
	0xBE: {Mnemonic: "CMP M"},
	0xBF: {Mnemonic: "CMP A"},
	0xC0: {Mnemonic: "RNZ"},
	0xC1: {Mnemonic: "POP B"},
	0xC2: {Mnemonic: "JNZ", Format: ImmediateWord},
	0xC3: {Mnemonic: "JMP", Format: ImmediateWord},
	0xC4: {Mnemonic: "CNZ", Format: ImmediateWord},
	0xC5: {Mnemonic: "PUSH B"},
	0xC6: {Mnemonic: "ADI", Format: ImmediateByte},
	0xC7: {Mnemonic: "RST 0"},
	0xC8: {Mnemonic: "RZ"},
	0xC9: {Mnemonic: "RET"},
	0xCA: {Mnemonic: "JZ", Format: ImmediateWord},
	0xCB: {Mnemonic: "JMP", Format: ImmediateWord, Unofficial: true},
	0xCC: {Mnemonic: "CZ", Format: ImmediateWord},
	0xCD: {Mnemonic: "CALL", Format: ImmediateWord},
	0xCE: {Mnemonic: "ACI", Format: ImmediateByte},
	0xCF: {Mnemonic: "RST 1"},
	0xD0: {Mnemonic: "RNC"},
	0xD1: {Mnemonic: "POP D"},
	0xD2: {Mnemonic: "JNC", Format: ImmediateWord},
	0xD3: {Mnemonic: "OUT", Format: ImmediateByte},
	0xD4: {Mnemonic: "CNC", Format: ImmediateWord},
	0xD5: {Mnemonic: "PUSH D"},
	0xD6: {Mnemonic: "SUI", Format: ImmediateByte},
	0xD7: {Mnemonic: "RST 2"},
	0xD8: {Mnemonic: "RC"},
	0xD9: {Mnemonic: "RET", Unofficial: true},
	0xDA: {Mnemonic: "JC", Format: ImmediateWord},
	0xDB: {Mnemonic: "IN", Format: ImmediateByte},
	0xDC: {Mnemonic: "CC", Format: ImmediateWord},
	0xDD: {Mnemonic: "CALL", Format: ImmediateWord, Unofficial: true},
	0xDE: {Mnemonic: "SBI", Format: ImmediateByte},
	0xDF: {Mnemonic: "RST 3"},
	0xE0: {Mnemonic: "RPO"},
	0xE1: {Mnemonic: "POP H"},
	0xE2: {Mnemonic: "JPO", Format: ImmediateWord},
	0xE3: {Mnemonic: "XTHL"},
	0xE4: {Mnemonic: "CPO", Format: ImmediateWord},
	0xE5: {Mnemonic: "PUSH H"},
	0xE6: {Mnemonic: "ANI", Format: ImmediateByte},
	0xE7: {Mnemonic: "RST 4"},
	0xE8: {Mnemonic: "RPE"},
	0xE9: {Mnemonic: "PCHL"},
	0xEA: {Mnemonic: "JPE", Format: ImmediateWord},
	0xEB: {Mnemonic: "XCHG"},
	0xEC: {Mnemonic: "CPE", Format: ImmediateWord},
	0xED: {Mnemonic: "CALL", Format: ImmediateWord, Unofficial: true},
	0xEE: {Mnemonic: "XRI", Format: ImmediateByte},
	0xEF: {Mnemonic: "RST 5"},
	0xF0: {Mnemonic: "RP"},
	0xF1: {Mnemonic: "POP PSW"},
	0xF2: {Mnemonic: "JP", Format: ImmediateWord},
	0xF3: {Mnemonic: "DI"},
	0xF4: {Mnemonic: "CP", Format: ImmediateWord},
	0xF5: {Mnemonic: "PUSH PSW"},
	0xF6: {Mnemonic: "ORI", Format: ImmediateByte},
	0xF7: {Mnemonic: "RST 6"},
	0xF8: {Mnemonic: "RM"},
	0xF9: {Mnemonic: "SPHL"},
	0xFA: {Mnemonic: "JM", Format: ImmediateWord},
	0xFB: {Mnemonic: "EI"},
	0xFC: {Mnemonic: "CM", Format: ImmediateWord},
	0xFD: {Mnemonic: "CALL", Format: ImmediateWord, Unofficial: true},
	0xFE: {Mnemonic: "CPI", Format: ImmediateByte},
	0xFF: {Mnemonic: "RST 7"},
}
