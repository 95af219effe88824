// Package pipeline orchestrates the disassembly workflow stages.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/retroenv/i8080disasm/internal/detector"
	"github.com/retroenv/i8080disasm/internal/disasm"
	"github.com/retroenv/i8080disasm/internal/loader"
	"github.com/retroenv/i8080disasm/internal/options"
	"github.com/retroenv/i8080disasm/internal/verification"
	"github.com/retroenv/i8080disasm/internal/writer"
	"github.com/retroenv/retrogolib/log"
)

// Pipeline orchestrates the complete disassembly workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new disassembly pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute runs the complete disassembly pipeline.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, disasmOpts options.Disassembler,
	output io.Writer) (disasm.Result, error) {

	codeBaseAddress, err := p.detector.Detect(opts)
	if err != nil {
		return disasm.Result{}, fmt.Errorf("detecting code base address: %w", err)
	}
	disasmOpts.CodeBaseAddress = codeBaseAddress

	data, err := p.loader.Load(opts.Input)
	if err != nil {
		return disasm.Result{}, fmt.Errorf("loading file: %w", err)
	}

	return p.ExecuteWithData(ctx, data, opts, disasmOpts, output)
}

// ExecuteWithData runs the disassembly pipeline with pre-loaded data.
// This is useful for testing and programmatic usage where the data is already in memory.
func (p *Pipeline) ExecuteWithData(ctx context.Context, data []byte, opts options.Program,
	disasmOpts options.Disassembler, output io.Writer) (disasm.Result, error) {

	if err := ctx.Err(); err != nil {
		return disasm.Result{}, err
	}

	data, err := p.loader.LoadFromBytes(data, disasmOpts.CodeBaseAddress)
	if err != nil {
		return disasm.Result{}, fmt.Errorf("loading data: %w", err)
	}

	// keep a copy of the listing for verification
	var listing bytes.Buffer
	if opts.AssembleTest {
		output = io.MultiWriter(output, &listing)
	}

	p.printInfo(opts, data, disasmOpts)

	result, err := p.runDisassembly(ctx, data, disasmOpts, output)
	if err != nil {
		return result, fmt.Errorf("disassembling: %w", err)
	}
	p.reportResult(opts, result)

	if opts.AssembleTest {
		if err := verification.VerifyOutput(p.logger, listing.Bytes(), data, disasmOpts); err != nil {
			return result, fmt.Errorf("verification failed: %w", err)
		}
		p.logger.Info("Verification successful")
	}

	return result, nil
}

// runDisassembly executes the disassembly process and writes the listing.
func (p *Pipeline) runDisassembly(ctx context.Context, data []byte, disasmOpts options.Disassembler,
	output io.Writer) (disasm.Result, error) {

	w := writer.New(output, writer.Options{
		HeaderComments:  disasmOpts.HeaderComments,
		CodeBaseAddress: disasmOpts.CodeBaseAddress,
	})
	if err := w.WriteCommentHeader(data); err != nil {
		return disasm.Result{}, fmt.Errorf("writing header: %w", err)
	}

	dis := disasm.New(p.logger, disasmOpts)
	result, err := dis.Process(ctx, data, w)
	if err != nil {
		return result, fmt.Errorf("processing disassembly: %w", err)
	}

	if err := w.Flush(); err != nil {
		return result, err
	}
	return result, nil
}

// printInfo prints information about the file being processed.
func (p *Pipeline) printInfo(opts options.Program, data []byte, disasmOpts options.Disassembler) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Processing 8080 binary",
		log.String("file", opts.Input),
		log.Int("size", len(data)),
		log.Hex("base", disasmOpts.CodeBaseAddress),
	)
}

// reportResult logs the decoding diagnostics of a run.
func (p *Pipeline) reportResult(opts options.Program, result disasm.Result) {
	if result.Undefined > 0 {
		p.logger.Warn("Undefined opcodes were skipped",
			log.String("file", opts.Input),
			log.Int("count", result.Undefined))
	}
	if err := result.Err(); err != nil {
		p.logger.Warn("File ends inside an instruction",
			log.String("file", opts.Input),
			log.Err(err))
	}

	if opts.Quiet {
		return
	}
	if result.Unofficial > 0 {
		p.logger.Info("Decoded undocumented opcodes",
			log.String("file", opts.Input),
			log.Int("count", result.Unofficial))
	}
	if result.Success() {
		p.logger.Info("Successfully parsed file", log.String("file", opts.Input))
	}
	p.logger.Debug("Disassembly finished",
		log.Int("instructions", result.Instructions),
		log.Int("position", result.Position))
}
