package cwriter

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strconv"
)

// https://github.com/dylanaraps/pure-sh-bible#cursor-movement
const (
	escOpen  = "\x1b["
	cuuAndEd = "A\x1b[J"
)

// ErrNotTTY not a TeleTYpewriter error.
var ErrNotTTY = errors.New("not a terminal")

// Writer is a buffered terminal writer. Everything written between two
// Flush calls makes up one frame; Flush erases the lines of the
// previous frame before the new one goes out, so consecutive frames
// overwrite each other in place.
type Writer struct {
	*bytes.Buffer
	out       io.Writer
	escBuf    []byte
	lineCount int
	fd        int
	terminal  bool
}

// New returns a new Writer with defaults.
func New(out io.Writer) *Writer {
	w := &Writer{
		Buffer: new(bytes.Buffer),
		out:    out,
		escBuf: make([]byte, 8),
	}
	if f, ok := out.(*os.File); ok {
		w.fd = int(f.Fd())
		w.terminal = IsTerminal(w.fd)
	}
	return w
}

// Flush flushes the underlying buffer. The lineCount arg is the number
// of lines the flushed frame occupies; the next Flush will move the
// cursor up that many lines and erase downward before writing. The
// buffer is dropped whatever the outcome, and on a short write the
// recorded count shrinks to the lines actually written, so a failed
// flush never corrupts a later redraw.
func (w *Writer) Flush(lineCount int) error {
	defer w.Reset()
	if w.lineCount > 0 {
		if err := w.ansiCuuAndEd(); err != nil {
			return err
		}
	}
	w.lineCount = lineCount
	n, err := w.out.Write(w.Bytes())
	if err != nil {
		w.lineCount = bytes.Count(w.Bytes()[:n], []byte{'\n'})
	}
	return err
}

// LineCount returns the line count of the last flushed frame.
func (w *Writer) LineCount() int {
	return w.lineCount
}

// GetTermSize returns WxH of underlying terminal.
func (w *Writer) GetTermSize() (width, height int, err error) {
	if !w.terminal {
		return -1, -1, ErrNotTTY
	}
	return GetSize(w.fd)
}

// if n > 99 it will allocate because len(escBuf) is 8
func (w *Writer) ansiCuuAndEd() error {
	w.escBuf = strconv.AppendInt(w.escBuf[:copy(w.escBuf, escOpen)], int64(w.lineCount), 10)
	_, err := w.out.Write(append(w.escBuf, cuuAndEd...))
	return err
}
