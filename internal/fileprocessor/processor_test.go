package fileprocessor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/i8080disasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestGenerateOutputFilename(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"invaders.bin", "invaders.lst"},
		{"dir/STAT.COM", "dir/STAT.lst"},
		{"rom", "rom.lst"},
		{"archive.tar.bin", "archive.tar.lst"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenerateOutputFilename(tt.input))
		})
	}
}

func TestGetFilesToProcess(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.bin", "b.bin", "a.lst", "c.com"} {
		writeFile(t, filepath.Join(dir, name), []byte{0x00})
	}

	t.Run("single input", func(t *testing.T) {
		opts := &options.Program{Parameters: options.Parameters{Input: "test.bin"}}
		files, err := GetFilesToProcess(opts)
		assert.NoError(t, err)
		assert.Len(t, files, 1)
		assert.Equal(t, "test.bin", files[0])
	})

	t.Run("batch pattern", func(t *testing.T) {
		opts := &options.Program{Parameters: options.Parameters{Batch: filepath.Join(dir, "*.bin")}}
		files, err := GetFilesToProcess(opts)
		assert.NoError(t, err)
		assert.Len(t, files, 2)
		assert.Equal(t, filepath.Join(dir, "a.bin"), files[0])
		assert.Equal(t, filepath.Join(dir, "b.bin"), files[1])
	})

	t.Run("batch skips listings", func(t *testing.T) {
		opts := &options.Program{Parameters: options.Parameters{Batch: filepath.Join(dir, "*")}}
		files, err := GetFilesToProcess(opts)
		assert.NoError(t, err)
		assert.Len(t, files, 3)
	})

	t.Run("batch without matches", func(t *testing.T) {
		opts := &options.Program{Parameters: options.Parameters{Batch: filepath.Join(dir, "*.hex")}}
		_, err := GetFilesToProcess(opts)
		assert.ErrorContains(t, err, "no files found")
	})

	t.Run("invalid batch pattern", func(t *testing.T) {
		opts := &options.Program{Parameters: options.Parameters{Batch: "["}}
		_, err := GetFilesToProcess(opts)
		assert.ErrorContains(t, err, "globbing batch pattern")
	})
}

func TestProcessFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "test.bin")
	output := filepath.Join(dir, "test.lst")
	writeFile(t, input, []byte{0x3E, 0x01, 0xC9})

	opts := options.Program{
		Parameters: options.Parameters{Input: input, Output: output},
		Flags:      options.Flags{AssembleTest: true, Quiet: true},
	}
	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, options.NewDisassembler())
	assert.NoError(t, err)

	listing, err := os.ReadFile(output)
	assert.NoError(t, err)
	assert.Equal(t, "0000  MVI A #$01\n0002  RET\n", string(listing))
}

func TestProcessFile_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing input", func(t *testing.T) {
		opts := options.Program{
			Parameters: options.Parameters{
				Input:  filepath.Join(dir, "missing.bin"),
				Output: filepath.Join(dir, "missing.lst"),
			},
		}
		err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, options.NewDisassembler())
		assert.ErrorContains(t, err, "loading file")
	})

	t.Run("invalid output path", func(t *testing.T) {
		opts := options.Program{
			Parameters: options.Parameters{
				Input:  filepath.Join(dir, "missing.bin"),
				Output: filepath.Join(dir, "nonexistent", "out.lst"),
			},
		}
		err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, options.NewDisassembler())
		assert.ErrorContains(t, err, "creating writer")
	})
}

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
}
