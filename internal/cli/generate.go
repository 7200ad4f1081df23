package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/rogpeppe/tuplekit/internal/config"
	"github.com/rogpeppe/tuplekit/internal/emit"
	"github.com/rogpeppe/tuplekit/internal/resolve"
)

// OutputSuffix replaces the extension of a declaration file to name
// the file its code is written to when no output file is given.
const OutputSuffix = "_tuplegen.go"

// FileError holds the resolution errors for a declaration file.
type FileError struct {
	Path string
	Err  error
}

// Error returns every line of the underlying error prefixed by
// the file name.
func (e *FileError) Error() string {
	lines := strings.Split(e.Err.Error(), "\n")
	for i, line := range lines {
		lines[i] = e.Path + ": " + line
	}
	return strings.Join(lines, "\n")
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// load loads and resolves the declaration file at path.
func load(path string, logger *zap.Logger) (*resolve.Program, error) {
	f, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	prog, err := resolve.Resolve(f, logger)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	return prog, nil
}

// DefaultOutput returns the file that the code for the declaration
// file at path is written to when no output file is given:
// decls.cue is generated into decls_tuplegen.go in the same directory.
func DefaultOutput(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + OutputSuffix
}

// outputPath returns the file that the code for the declaration
// file at path is written to.
func outputPath(path, out string) string {
	if out != "" {
		return out
	}
	return DefaultOutput(path)
}

// checkOutputs returns an error if the code for two of the
// declaration files would be written to the same file.
func checkOutputs(files []string, out string) error {
	seen := make(map[string]string)
	for _, path := range files {
		o, err := filepath.Abs(outputPath(path, out))
		if err != nil {
			return err
		}
		if prev, ok := seen[o]; ok {
			return fmt.Errorf("%s and %s would both be generated into %s", prev, path, outputPath(path, out))
		}
		seen[o] = path
	}
	return nil
}

// generate writes the code for the declaration file at path to out.
// Nothing is written if the declarations cannot be resolved or if
// out is already up to date.
func generate(path, out string, logger *zap.Logger) error {
	prog, err := load(path, logger)
	if err != nil {
		return err
	}
	src, err := emit.Source(prog)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	out = outputPath(path, out)
	old, err := os.ReadFile(out)
	if err == nil && bytes.Equal(old, src) {
		logger.Debug("output up to date", zap.String("file", out))
		return nil
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err := os.WriteFile(out, src, 0o666); err != nil {
		return err
	}
	logger.Info("generated",
		zap.String("source", path),
		zap.String("file", out),
		zap.Int("decls", len(prog.Decls)),
	)
	return nil
}
