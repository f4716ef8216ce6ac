package internal

// FillWidth calculates the number of filled cells of a bar track of
// the given width. Division happens before scaling so the intermediate
// never exceeds 1.0, i.e. no overflow for any int64 total/current.
func FillWidth(total, current int64, width int) int {
	if total <= 0 || width <= 0 {
		return 0
	}
	if current >= total {
		return width
	}
	if current <= 0 {
		return 0
	}
	return int(float64(current) / float64(total) * float64(width))
}

// Percentage is a shorthand for FillWidth with a 100 cell track.
func Percentage(total, current int64) int {
	return FillWidth(total, current, 100)
}
