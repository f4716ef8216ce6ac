package multibar

import (
	"io"
	"unicode/utf8"
)

type pConf struct {
	out      io.Writer
	width    int
	format   string
	capacity int
}

// ProgressOption is a function option which changes the default
// behavior of the progress coordinator, if passed to New(...ProgressOption).
type ProgressOption func(*pConf)

// WithOutput overrides default output os.Stderr. A nil w falls back to
// io.Discard.
func WithOutput(w io.Writer) ProgressOption {
	return func(c *pConf) {
		if w == nil {
			w = io.Discard
		}
		c.out = w
	}
}

// WithWidth overrides default bar track width 50.
func WithWidth(w int) ProgressOption {
	return func(c *pConf) {
		if w > 2 {
			c.width = w
		}
	}
}

// WithFormat overrides default bar format "[=>-]". The format must be
// exactly five runes: left bound, fill, tip, empty, right bound.
func WithFormat(format string) ProgressOption {
	return func(c *pConf) {
		if utf8.RuneCountInString(format) == formatLen {
			c.format = format
		}
	}
}

// WithCapacity hints the expected bar count, to avoid registry
// reallocation as bars are added.
func WithCapacity(n int) ProgressOption {
	return func(c *pConf) {
		if n > 0 {
			c.capacity = n
		}
	}
}
