// Package cli handles command line interface logic
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/i8080disasm/internal/detector"
	"github.com/retroenv/i8080disasm/internal/options"
)

// ParseFlags parses command line flags and returns program and disassembler options
func ParseFlags() (options.Program, options.Disassembler, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "" && opts.Batch == "") {
		return opts, options.Disassembler{}, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, options.Disassembler{}, err
	}

	if opts.Input == "" && opts.Batch == "" {
		opts.Input = args[0]
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, options.Disassembler{}, err
	}

	disasmOptions := createDisasmOptions(opts)
	if err := validateOptionCombinations(opts, disasmOptions); err != nil {
		return opts, options.Disassembler{}, err
	}

	return opts, disasmOptions, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the error message if set and the usage information.
func (e *UsageError) ShowUsage() {
	e.writeUsage(os.Stdout)
}

func (e *UsageError) writeUsage(w io.Writer) {
	if e.msg != "" {
		_, _ = fmt.Fprintf(w, "%s\n\n", e.msg)
	}
	_, _ = fmt.Fprintf(w, "usage: i8080disasm [options] <file to disassemble>\n\n")
	if e.flags != nil {
		e.flags.SetOutput(w)
		e.flags.PrintDefaults()
	}
	_, _ = fmt.Fprintln(w)
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg != "" && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after file to disassemble, please pass the file to disassemble as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	if opts.Base == "" {
		return nil
	}

	// validate early, the detector parses the address again for every file
	if _, err := detector.ParseAddress(opts.Base); err != nil {
		return fmt.Errorf("unsupported code base address: %w", err)
	}
	return nil
}

// createDisasmOptions creates disassembler options based on program options
func createDisasmOptions(opts options.Program) options.Disassembler {
	disasmOptions := options.NewDisassembler()
	disasmOptions.HeaderComments = opts.Header
	disasmOptions.HexComments = opts.HexComments
	disasmOptions.NoUnofficialInstructions = opts.NoUnofficial
	disasmOptions.OutputUnofficialAsMnemonics = opts.OutputUnofficial
	return disasmOptions
}

// validateOptionCombinations rejects options that can not be used together
func validateOptionCombinations(opts options.Program, disasmOptions options.Disassembler) error {
	if opts.AssembleTest && disasmOptions.OutputUnofficialAsMnemonics {
		return errors.New("the -verify option can not be combined with -output-unofficial, unofficial opcode mnemonics are ambiguous")
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input binary file")
	flags.StringVar(&opts.Output, "o", "", "name of the output listing file, printed on console if no name given")
	flags.StringVar(&opts.Batch, "batch", "", "process a batch of given path and file mask and automatically .lst file naming, for example *.bin")
	flags.StringVar(&opts.Base, "base", "", "code base address of the input, for example 0x100 - detected from file extension if not set")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.AssembleTest, "verify", false, "verify the generated output by reassembling it and check if it matches the input")
	flags.BoolVar(&opts.HexComments, "hexcomments", false, "output instruction bytes as hex values in comments")
	flags.BoolVar(&opts.Header, "header", false, "output a comment header with checksum and code base address")
	flags.BoolVar(&opts.NoUnofficial, "no-unofficial", false, "treat undocumented opcodes as undefined instead of decoding the instruction they alias")
	flags.BoolVar(&opts.OutputUnofficial, "output-unofficial", false, "output undocumented opcodes as mnemonics instead of DB data bytes (incompatible with -verify)")
}
