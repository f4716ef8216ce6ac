package multibar

import (
	"bytes"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/telsho/multibar/internal"
)

const (
	rLeft = iota
	rFill
	rTip
	rEmpty
	rRight
)

const formatLen = 5

type fmtRunes [formatLen]rune

// Bar is an opaque handle to a single progress bar, issued by
// (*Progress).AddBar. A handle is only meaningful to the Progress that
// issued it; it is a plain value and may be freely copied between
// goroutines.
type Bar struct {
	index int
}

// bState is one registry record. Records are created by AddBar only
// and never removed, so a Bar handle resolves to the same record for
// the lifetime of its Progress.
type bState struct {
	label   string
	current int64
	total   int64
	width   int
	format  fmtRunes
}

// set overwrites current, clamped into [0, total]. A total of 0 pins
// the value at 0.
func (s *bState) set(value int64) {
	if value < 0 {
		value = 0
	}
	if value > s.total {
		value = s.total
	}
	s.current = value
}

func (s *bState) incr(n int64) {
	if n > 0 && s.current > math.MaxInt64-n {
		s.set(s.total)
		return
	}
	s.set(s.current + n)
}

func (s *bState) completed() bool {
	return s.total > 0 && s.current >= s.total
}

// draw renders the bar as a single line into buf, never exceeding
// termWidth cells. The track takes the bar's own width; the percent
// field and label only render if they fit in what remains.
func (s *bState) draw(buf *bytes.Buffer, termWidth int) {
	trackWidth := s.width
	if trackWidth > termWidth {
		trackWidth = termWidth
	}
	s.fillTrack(buf, trackWidth)

	rest := termWidth - trackWidth
	if rest >= percentWidth {
		if s.total > 0 {
			fmt.Fprintf(buf, " %3d%%", internal.Percentage(s.total, s.current))
		} else {
			// indeterminate: keep the label column aligned
			buf.WriteString("     ")
		}
		rest -= percentWidth
	}
	if rest > 1 && s.label != "" {
		buf.WriteByte(' ')
		buf.WriteString(runewidth.Truncate(s.label, rest-1, "…"))
	}
}

// percentWidth is the cells taken by the " 100%" field.
const percentWidth = 5

// fillTrack writes the bracketed fill track. A width of 2 or less
// renders nothing: there is no room for even an empty track.
func (s *bState) fillTrack(buf *bytes.Buffer, width int) {
	if width <= 2 {
		return
	}
	// track width without the left and right bound runes
	barWidth := width - 2
	completed := internal.FillWidth(s.total, s.current, barWidth)

	buf.WriteRune(s.format[rLeft])

	for i := 0; i < completed; i++ {
		buf.WriteRune(s.format[rFill])
	}

	if completed > 0 && completed < barWidth {
		_, size := utf8.DecodeLastRune(buf.Bytes())
		buf.Truncate(buf.Len() - size)
		buf.WriteRune(s.format[rTip])
	}

	for i := completed; i < barWidth; i++ {
		buf.WriteRune(s.format[rEmpty])
	}

	buf.WriteRune(s.format[rRight])
}
