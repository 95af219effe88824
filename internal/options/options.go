// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input binary file"`
	Output string `flag:"o" usage:"output listing file (default: stdout)"`
	Batch  string `flag:"batch" usage:"batch process files matching pattern (e.g. *.bin)"`
	Base   string `flag:"base" usage:"code base address, e.g. 0x100 (default: auto-detect)"`
}

// Flags contains behavior options.
type Flags struct {
	AssembleTest bool `flag:"verify" usage:"verify output by reassembling and comparing to input"`
	Debug        bool `flag:"debug" usage:"enable debug logging"`
	Quiet        bool `flag:"q" usage:"quiet mode"`
}

// OutputFlags contains output formatting options.
type OutputFlags struct {
	HexComments      bool `flag:"hexcomments" usage:"append instruction bytes as hex comments"`
	Header           bool `flag:"header" usage:"write a checksum and base address comment header"`
	NoUnofficial     bool `flag:"no-unofficial" usage:"treat undocumented opcodes as undefined"`
	OutputUnofficial bool `flag:"output-unofficial" usage:"use mnemonics for undocumented opcodes (incompatible with -verify)"`
}

// Program options of the disassembler.
type Program struct {
	Parameters
	Flags
	OutputFlags
}

// Disassembler defines options to control the disassembler.
type Disassembler struct {
	CodeBaseAddress uint16 // address the buffer is loaded at, added to printed offsets

	HeaderComments              bool // write checksum and base address header
	HexComments                 bool // append instruction bytes as hex comments
	NoUnofficialInstructions    bool // report undocumented opcodes as undefined
	OutputUnofficialAsMnemonics bool // output undocumented opcodes as mnemonics instead of DB
}

// NewDisassembler returns a new options instance with default options.
func NewDisassembler() Disassembler {
	return Disassembler{}
}
