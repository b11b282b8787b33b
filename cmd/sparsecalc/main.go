// SPDX-License-Identifier: MIT

// Command sparsecalc loads two sparse matrices and adds, subtracts or
// multiplies them, printing each result and saving it next to the others.
//
// Usage:
//
//	sparsecalc                                   # interactive menu on stdin
//	sparsecalc --input-dir in --output-dir out   # custom layout
//	sparsecalc run add mul                       # batch, no menu
//
// Operand files use the "(row,col,value)" format after two header lines;
// results are written as <operation>_result.txt in the output directory.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
