package utils

import "golang.org/x/exp/constraints"

func BoolToString(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func Clamp[T constraints.Integer | constraints.Float](min, value, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// FormatASCII returns b as a printable character, or "." if it has
// none.
func FormatASCII(b byte) string {
	if b < 0x20 || b > 0x7E {
		return "."
	}
	return string(rune(b))
}
