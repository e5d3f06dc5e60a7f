package format

import "fmt"

// Integer represents the built-in integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Ordinal appends the English ordinal suffix to n ("1st", "22nd", "103rd").
// The suffix is selected from the absolute value, so negative numbers keep
// their sign: Ordinal(-3) == "-3rd". The teens are always "th" (11th, 112th).
func Ordinal[T Integer](n T) string {
	s := fmt.Sprintf("%d", n)

	// Only the last two decimal digits matter for suffix selection.
	mod := 0
	for _, r := range s {
		if r == '-' {
			continue
		}
		mod = (mod*10 + int(r-'0')) % 100
	}

	suffix := "th"
	if mod < 11 || mod > 13 {
		switch mod % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}

	return s + suffix
}

// OrdinalPtr is Ordinal with nil passthrough for nullable columns.
func OrdinalPtr[T Integer](n *T) *string {
	if n == nil {
		return nil
	}
	s := Ordinal(*n)
	return &s
}
