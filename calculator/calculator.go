// SPDX-License-Identifier: MIT

// Package calculator drives the matrix package from a menu or a command list.
//
// A Calculator owns two operands loaded from the paths in its Config, applies
// addition, subtraction or multiplication on request, prints each result to
// its output writer and saves it as <operation>_result.txt in OutputDir.
// Input and output are injected (io.Reader/io.Writer), so the whole loop runs
// in tests without a terminal.
package calculator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/sparsemat/matrix"
)

// ErrNotLoaded is returned by Apply before a successful Load.
var ErrNotLoaded = errors.New("calculator: operands not loaded")

const (
	choiceExit = "4"

	msgPrompt  = "Enter choice (1/2/3/4): "
	msgInvalid = "Invalid choice! Please select a valid option."
	msgGoodbye = "Exiting the program. Goodbye!"
)

// Calculator holds the configuration, the loaded operands and the I/O sinks.
// It is not safe for concurrent use.
type Calculator struct {
	cfg    Config
	log    *slog.Logger
	out    io.Writer
	first  *matrix.Matrix
	second *matrix.Matrix
}

// New returns a Calculator writing user-facing text to out.
// A nil logger is replaced by slog.Default().
func New(cfg Config, logger *slog.Logger, out io.Writer) *Calculator {
	if logger == nil {
		logger = slog.Default()
	}

	return &Calculator{cfg: cfg, log: logger, out: out}
}

// Operands returns the loaded matrices, nil before Load.
func (c *Calculator) Operands() (first, second *matrix.Matrix) {
	return c.first, c.second
}

// Load validates the directories and loads both operands.
// Either operand failing aborts the load and leaves no operand set.
func (c *Calculator) Load() error {
	if err := c.cfg.Validate(); err != nil {
		c.log.Error("invalid configuration", "error", err)

		return err
	}
	c.log.Debug("directories", "input", c.cfg.InputDir, "output", c.cfg.OutputDir)

	first, err := c.loadOne(c.cfg.FirstPath())
	if err != nil {
		return err
	}
	second, err := c.loadOne(c.cfg.SecondPath())
	if err != nil {
		return err
	}
	c.first, c.second = first, second

	return nil
}

func (c *Calculator) loadOne(path string) (*matrix.Matrix, error) {
	m, err := matrix.Load(path)
	if err != nil {
		c.log.Error("load failed", "path", path, "kind", matrix.KindOf(err).String(), "error", err)
		fmt.Fprintf(c.out, "Error loading matrices: %v\n", err)

		return nil, err
	}
	c.log.Info("matrix loaded", "path", path, "rows", m.Rows(), "cols", m.Cols(), "entries", m.Len())

	return m, nil
}

// Apply computes op over the loaded operands, prints the result and saves it.
// A *matrix.ShapeError from multiplication is returned before anything is
// printed or written.
func (c *Calculator) Apply(op Operation) (*matrix.Matrix, error) {
	if c.first == nil || c.second == nil {
		return nil, ErrNotLoaded
	}

	res, err := op.Apply(c.first, c.second)
	if err != nil {
		c.log.Error("operation failed", "op", op.String(), "kind", matrix.KindOf(err).String(), "error", err)

		return nil, fmt.Errorf("calculator: %s: %w", op, err)
	}
	c.log.Info("operation done", "op", op.String(), "rows", res.Rows(), "cols", res.Cols(), "entries", res.Len())

	fmt.Fprintf(c.out, "\nResult of %s:\n%s\n", op, res)

	path := c.cfg.ResultPath(op)
	if err := res.Save(path); err != nil {
		c.log.Error("save failed", "path", path, "error", err)

		return res, err
	}
	c.log.Info("result saved", "path", path)
	fmt.Fprintf(c.out, "Result saved to %s\n", path)

	return res, nil
}

// RunMenu shows the menu and serves choices read line by line from in until
// "4" or end of input. Invalid choices and incompatible shapes are reported
// and the loop continues; read and save failures end it with an error.
func (c *Calculator) RunMenu(in io.Reader) error {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(c.out, menuText())
		fmt.Fprint(c.out, msgPrompt)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return fmt.Errorf("calculator: read choice: %w", err)
			}
			fmt.Fprintln(c.out)
			fmt.Fprintln(c.out, msgGoodbye)

			return nil
		}

		choice := sc.Text()
		if isExit(choice) {
			fmt.Fprintln(c.out, msgGoodbye)

			return nil
		}
		op, err := parseMenuChoice(choice)
		if err != nil {
			c.log.Debug("invalid choice", "input", choice)
			fmt.Fprintln(c.out, msgInvalid)

			continue
		}

		if _, err := c.Apply(op); err != nil {
			if matrix.KindOf(err) != matrix.KindShape {
				return err
			}
			fmt.Fprintf(c.out, "Error: %v\n", err)
		}
	}
}

// RunBatch applies ops in order and stops at the first failure.
func (c *Calculator) RunBatch(ops []Operation) error {
	for _, op := range ops {
		if _, err := c.Apply(op); err != nil {
			return err
		}
	}

	return nil
}

// menuText lists Operations under their menu digits, then the exit entry.
func menuText() string {
	var sb strings.Builder
	sb.WriteString("\nChoose an operation:\n")
	for _, op := range Operations {
		fmt.Fprintf(&sb, "%d. %s\n", int(op), op.title())
	}
	fmt.Fprintf(&sb, "%s. Exit\n", choiceExit)

	return sb.String()
}

// parseMenuChoice accepts only the menu digits for operations.
func parseMenuChoice(s string) (Operation, error) {
	switch t := strings.TrimSpace(s); t {
	case "1", "2", "3":
		return ParseOperation(t)
	default:
		return 0, fmt.Errorf("calculator: invalid choice %q", s)
	}
}

func isExit(s string) bool { return strings.TrimSpace(s) == choiceExit }
