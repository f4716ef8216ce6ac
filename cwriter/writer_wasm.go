//go:build js || wasip1

package cwriter

// GetSize do nothing
func GetSize(fd int) (width, height int, err error) {
	return -1, -1, ErrNotTTY
}

// IsTerminal do nothing
func IsTerminal(fd int) bool {
	return false
}
