package pyseer

import (
	"bufio"
	"io"
	"strings"

	"github.com/carbocation/pfx"
)

// Lines in pyseer output can carry long k-mer sequences in the variant
// column, far past bufio's default token size.
const maxLineBytes = 64 * 1024 * 1024

type Table struct {
	Header []string
	Rows   [][]string
}

// ReadTable reads every non-blank line of r. The first non-blank line is the
// header; each line is split on delim. A line is blank when it holds nothing
// but whitespace. Trailing carriage returns are removed.
func ReadTable(r io.Reader, delim string) (*Table, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	t := &Table{}
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		cols := strings.Split(line, delim)
		if t.Header == nil {
			t.Header = cols
			continue
		}
		t.Rows = append(t.Rows, cols)
	}
	if err := scanner.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	if t.Header == nil {
		return nil, ErrEmptyTable
	}

	return t, nil
}
