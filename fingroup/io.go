package fingroup

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteTable writes the table one row per line, entries separated by tabs,
// each row terminated by a tab and a newline.
func (g *Group) WriteTable(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < g.order; i++ {
		for j := 0; j < g.order; j++ {
			bw.WriteString(strconv.Itoa(g.at(i, j)))
			bw.WriteByte('\t')
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}

// String returns the WriteTable rendering.
func (g *Group) String() string {
	var sb strings.Builder
	_ = g.WriteTable(&sb)

	return sb.String()
}

// ParseTable reads a whitespace-separated square table, one row per line.
// Blank lines and lines starting with '#' are skipped. The first row fixes
// the width; reading stops once that many rows have been read and the rest
// of the input is ignored.
func ParseTable(r io.Reader) ([][]int, error) {
	var (
		sc    = bufio.NewScanner(r)
		rows  [][]int
		line  int
		width = -1
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("line %d: %q: %w", line, f, ErrParse)
			}
			row[i] = v
		}
		if width == -1 {
			width = len(row)
		}
		if len(row) != width {
			return nil, fmt.Errorf("line %d: %d entries, want %d: %w", line, len(row), width, ErrParse)
		}
		rows = append(rows, row)
		if len(rows) == width {
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 || len(rows) != width {
		return nil, fmt.Errorf("read %d rows, want %d: %w", len(rows), width, ErrParse)
	}

	return rows, nil
}

// Parse reads a table with ParseTable and validates it with New.
func Parse(r io.Reader) (*Group, error) {
	rows, err := ParseTable(r)
	if err != nil {
		return nil, err
	}

	return New(rows)
}
