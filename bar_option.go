package multibar

import "unicode/utf8"

// BarOption is a function option which changes the default behavior
// of a bar, if passed to (*Progress).AddBar(...BarOption).
type BarOption func(*bState)

// BarWidth sets bar track width independent of the coordinator's
// default.
func BarWidth(width int) BarOption {
	return func(s *bState) {
		if width > 2 {
			s.width = width
		}
	}
}

// BarFormat sets bar format independent of the coordinator's default.
// Same five rune contract as WithFormat.
func BarFormat(format string) BarOption {
	return func(s *bState) {
		if utf8.RuneCountInString(format) == formatLen {
			s.format = formatRunes(format)
		}
	}
}
