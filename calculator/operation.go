// SPDX-License-Identifier: MIT

package calculator

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/sparsemat/matrix"
)

// Operation is the closed set of binary operations offered by the menu.
type Operation int

const (
	OpAdd Operation = iota + 1
	OpSub
	OpMul
)

// Operations lists every operation in menu order.
var Operations = []Operation{OpAdd, OpSub, OpMul}

// String returns the lower-case name used in messages and result file names.
func (op Operation) String() string {
	switch op {
	case OpAdd:
		return "addition"
	case OpSub:
		return "subtraction"
	case OpMul:
		return "multiplication"
	default:
		return fmt.Sprintf("operation(%d)", int(op))
	}
}

// title is the capitalized menu label.
func (op Operation) title() string {
	s := op.String()

	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseOperation accepts a menu digit ("1".."3"), a full name ("addition")
// or a short alias ("add", "sub", "mul"), case-insensitively.
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "add", "addition", "+":
		return OpAdd, nil
	case "2", "sub", "subtract", "subtraction", "-":
		return OpSub, nil
	case "3", "mul", "multiply", "multiplication", "*":
		return OpMul, nil
	default:
		return 0, fmt.Errorf("calculator: unknown operation %q", s)
	}
}

// Apply runs op on (a, b). Only OpMul can fail, with a *matrix.ShapeError.
func (op Operation) Apply(a, b *matrix.Matrix) (*matrix.Matrix, error) {
	switch op {
	case OpAdd:
		return matrix.Add(a, b), nil
	case OpSub:
		return matrix.Sub(a, b), nil
	case OpMul:
		return matrix.Mul(a, b)
	default:
		return nil, fmt.Errorf("calculator: unknown operation %d", int(op))
	}
}
