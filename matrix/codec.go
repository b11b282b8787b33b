// SPDX-License-Identifier: MIT

// Package matrix - text codec.
//
// Input format:
//
//	<ignored line 1>
//	<ignored line 2>
//	(row,col,value)
//	...
//
// Output format:
//
//	rows=<N>
//	cols=<M>
//	(row, col, value)
//	...
//
// The output header occupies exactly the two lines the parser skips, so
// Parse(Serialize(m)) reproduces m for any m without explicit zero entries.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

const (
	headerLines  = 2       // leading lines skipped unconditionally by Parse
	maxLineBytes = 1 << 20 // scanner cap for a single input line

	_fieldSep    = ","
	_openParen   = "("
	_closeParen  = ")"
	_fieldsCount = 3
)

// Parse reads a matrix from r.
// Implementation:
//   - Stage 1: skip the first two lines whatever they hold.
//   - Stage 2: skip whitespace-only lines, parse every other one as a triple.
//   - Stage 3: grow rows/cols to one past the largest index seen; store the
//     value at (row,col), later duplicates overwriting earlier ones.
//
// The first malformed line aborts the parse with a *FormatError and no matrix.
// A reader failure is returned wrapped. Zero data lines yield a 0×0 matrix.
// Complexity: O(lines) time, O(nnz) space.
func Parse(r io.Reader) (*Matrix, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)

	m := New(0, 0)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		if lineNo <= headerLines {
			continue
		}
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		row, col, val, err := parseLine(lineNo, text)
		if err != nil {
			return nil, err
		}
		m.r = max(m.r, row+1)
		m.c = max(m.c, col+1)
		m.put(row, col, val)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("matrix: Parse: read line %d: %w", lineNo+1, err)
	}

	return m, nil
}

// parseLine decodes one trimmed "(row,col,value)" line.
func parseLine(lineNo int, text string) (row, col, val int, err error) {
	if !strings.HasPrefix(text, _openParen) || !strings.HasSuffix(text, _closeParen) {
		return 0, 0, 0, &FormatError{Line: lineNo, Text: text, Reason: ReasonParens, Field: -1}
	}
	parts := strings.Split(text[1:len(text)-1], _fieldSep)
	if len(parts) != _fieldsCount {
		return 0, 0, 0, &FormatError{Line: lineNo, Text: text, Reason: ReasonFieldCount, Field: -1}
	}

	var nums [_fieldsCount]int
	for i, p := range parts {
		n, convErr := strconv.Atoi(strings.TrimSpace(p))
		if convErr != nil {
			return 0, 0, 0, &FormatError{Line: lineNo, Text: text, Reason: ReasonNotInteger, Field: i, Err: convErr}
		}
		// Dimensions are one past the largest index, so an index must leave room.
		if i < 2 && n == math.MaxInt {
			return 0, 0, 0, &FormatError{Line: lineNo, Text: text, Reason: ReasonNotInteger, Field: i, Err: strconv.ErrRange}
		}
		nums[i] = n
	}

	return nums[0], nums[1], nums[2], nil
}

// Load opens path, parses it and closes it on every exit path.
// Format failures keep their *FormatError identity; open failures are
// wrapped with the path.
func Load(path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matrix: Load %s: %w", path, err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("matrix: Load %s: %w", path, err)
	}

	return m, nil
}

// WriteTo writes the output format to w and implements io.WriterTo.
// Complexity: O(nnz).
func (m *Matrix) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64

	n, err := fmt.Fprintf(bw, "rows=%d\ncols=%d\n", m.r, m.c)
	total += int64(n)
	if err != nil {
		return total, err
	}
	for _, e := range m.entries {
		n, err = fmt.Fprintf(bw, "(%d, %d, %d)\n", e.Row, e.Col, e.Value)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	return total, bw.Flush()
}

// Serialize returns the output format as a string.
func (m *Matrix) Serialize() string {
	var sb strings.Builder
	_, _ = m.WriteTo(&sb) // strings.Builder never fails

	return sb.String()
}

// Save writes the output format to path, creating or truncating it.
// The file is closed on every exit path; a failed close is reported.
func (m *Matrix) Save(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("matrix: Save %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("matrix: Save %s: %w", path, cerr)
		}
	}()

	if _, err = m.WriteTo(f); err != nil {
		return fmt.Errorf("matrix: Save %s: %w", path, err)
	}

	return nil
}

// String implements fmt.Stringer for display: a "SparseMatrix(rows=N, cols=M)"
// header followed by one "(row, col, value)" line per stored entry.
func (m *Matrix) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "SparseMatrix(rows=%d, cols=%d)\n", m.r, m.c)
	for _, e := range m.entries {
		fmt.Fprintf(&sb, "(%d, %d, %d)\n", e.Row, e.Col, e.Value)
	}

	return sb.String()
}
