// SPDX-License-Identifier: MIT

package calculator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Defaults mirror the sample layout shipped next to the binary.
const (
	DefaultInputDir   = "sample_inputs"
	DefaultOutputDir  = "sample_results"
	DefaultFirstFile  = "matrix1.txt"
	DefaultSecondFile = "matrix2.txt"

	resultSuffix = "_result.txt"
)

// ErrBadDirectory is returned by Config.Validate for a missing input or
// output directory, or a path that is not a directory.
var ErrBadDirectory = errors.New("calculator: directory does not exist")

// Config holds every path the calculator touches. Relative operand file
// names are resolved against InputDir; absolute ones are used as is.
type Config struct {
	InputDir   string // directory holding the operand files
	OutputDir  string // directory receiving <operation>_result.txt
	FirstFile  string // left operand
	SecondFile string // right operand
}

// DefaultConfig returns the sample_inputs/sample_results layout.
func DefaultConfig() Config {
	return Config{
		InputDir:   DefaultInputDir,
		OutputDir:  DefaultOutputDir,
		FirstFile:  DefaultFirstFile,
		SecondFile: DefaultSecondFile,
	}
}

// Validate checks that both directories exist.
func (c Config) Validate() error {
	if err := checkDir("input", c.InputDir); err != nil {
		return err
	}

	return checkDir("output", c.OutputDir)
}

func checkDir(role, path string) error {
	st, err := os.Stat(path)
	if err != nil || !st.IsDir() {
		return fmt.Errorf("%w: %s directory %q", ErrBadDirectory, role, path)
	}

	return nil
}

// FirstPath resolves the left operand path.
func (c Config) FirstPath() string { return c.resolve(c.FirstFile) }

// SecondPath resolves the right operand path.
func (c Config) SecondPath() string { return c.resolve(c.SecondFile) }

// ResultPath returns where the result of op is saved.
func (c Config) ResultPath(op Operation) string {
	return filepath.Join(c.OutputDir, op.String()+resultSuffix)
}

func (c Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}

	return filepath.Join(c.InputDir, name)
}
