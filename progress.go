package multibar

import (
	"fmt"
	"os"

	"github.com/telsho/multibar/cwriter"
)

const (
	// default bar track width
	pwidth = 50
	// default bar style
	pformat = "[=>-]"
	// terminal width fallback when the output is not a terminal
	defaultTermWidth = 80
	// reported terminal widths below this are treated as misreports
	minTermWidth = 8
)

// Progress is the coordinator of all bars addressing one terminal.
// It owns the registry and the render state and must not be shared
// between goroutines without an external mutex; see the package doc.
type Progress struct {
	bars   []bState
	cw     *cwriter.Writer
	width  int
	format fmtRunes
}

// New creates a Progress writing to os.Stderr. Accepts ProgressOption
// funcs for customization.
func New(options ...ProgressOption) *Progress {
	s := pConf{
		out:    os.Stderr,
		width:  pwidth,
		format: pformat,
	}
	for _, opt := range options {
		if opt != nil {
			opt(&s)
		}
	}
	return &Progress{
		bars:   make([]bState, 0, s.capacity),
		cw:     cwriter.New(s.out),
		width:  s.width,
		format: formatRunes(s.format),
	}
}

// AddBar appends a new bar with value 0 to the registry and returns
// its handle. Bars render in registration order, top to bottom, and
// are never removed. A total of 0 makes the bar indeterminate: it
// renders an empty track with a blank percent field and its value
// stays pinned at 0.
func (p *Progress) AddBar(total int64, label string, options ...BarOption) Bar {
	if total < 0 {
		total = 0
	}
	s := bState{
		label:  label,
		total:  total,
		width:  p.width,
		format: p.format,
	}
	for _, opt := range options {
		if opt != nil {
			opt(&s)
		}
	}
	p.bars = append(p.bars, s)
	return Bar{index: len(p.bars) - 1}
}

// Set overwrites the bar's value, clamped into [0, total], without
// drawing. A handle not issued by this Progress panics.
func (p *Progress) Set(b Bar, value int64) {
	p.bars[b.index].set(value)
}

// Incr advances the bar's value by n with the same clamping as Set,
// without drawing. Deltas that would overflow saturate at the total.
func (p *Progress) Incr(b Bar, n int64) {
	p.bars[b.index].incr(n)
}

// SetAndDraw overwrites the bar's value and repaints all bars.
func (p *Progress) SetAndDraw(b Bar, value int64) error {
	p.Set(b, value)
	return p.Draw()
}

// IncrAndDraw advances the bar's value and repaints all bars.
func (p *Progress) IncrAndDraw(b Bar, n int64) error {
	p.Incr(b, n)
	return p.Draw()
}

// Draw repaints every bar in place, overwriting the previous frame.
// With no bars registered it is a no-op. On a write error the registry
// state stays valid and a later Draw may retry.
func (p *Progress) Draw() error {
	if len(p.bars) == 0 {
		return nil
	}
	return p.flush()
}

// Println writes s on its own line above the bar block and repaints
// the block below it. Messages accumulate in scrollback in call order
// while the bars stay pinned at the bottom. Bar values are untouched.
func (p *Progress) Println(s string) error {
	p.cw.WriteString(s)
	p.cw.WriteByte('\n')
	return p.flush()
}

// Printf is Println with fmt.Sprintf formatting.
func (p *Progress) Printf(format string, args ...interface{}) error {
	return p.Println(fmt.Sprintf(format, args...))
}

// Completed reports whether the bar has reached its total.
// Indeterminate bars never complete.
func (p *Progress) Completed(b Bar) bool {
	return p.bars[b.index].completed()
}

// Current returns the bar's current value.
func (p *Progress) Current(b Bar) int64 {
	return p.bars[b.index].current
}

// BarCount returns the number of registered bars.
func (p *Progress) BarCount() int {
	return len(p.bars)
}

func (p *Progress) flush() error {
	tw := p.termWidth()
	for i := range p.bars {
		p.bars[i].draw(p.cw.Buffer, tw)
		p.cw.WriteByte('\n')
	}
	return p.cw.Flush(len(p.bars))
}

func (p *Progress) termWidth() int {
	tw, _, err := p.cw.GetTermSize()
	if err != nil || tw <= 0 {
		return defaultTermWidth
	}
	if tw < minTermWidth {
		return minTermWidth
	}
	return tw
}

func formatRunes(format string) (fr fmtRunes) {
	var i int
	for _, r := range format {
		fr[i] = r
		i++
	}
	return fr
}
