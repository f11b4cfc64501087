package phandango

import (
	"bufio"
	"io"
	"strings"
)

// Writer emits a .plot track. Cells are written verbatim, joined by tabs.
type Writer struct {
	bw *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

func (w *Writer) WriteHeader() error {
	_, err := io.WriteString(w.bw, Header+"\n")
	return err
}

func (w *Writer) Write(r Row) error {
	_, err := io.WriteString(w.bw, strings.Join(r.Fields(), "\t")+"\n")
	return err
}

// WriteAll writes the header followed by rows, then flushes.
func (w *Writer) WriteAll(rows []Row) error {
	if err := w.WriteHeader(); err != nil {
		return err
	}

	for _, r := range rows {
		if err := w.Write(r); err != nil {
			return err
		}
	}

	return w.Flush()
}

func (w *Writer) Flush() error {
	return w.bw.Flush()
}
