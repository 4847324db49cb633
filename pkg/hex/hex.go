// package hex implements the hex digit handling used by hext: decoding of
// single digits of either case, and lower-case serialization of output.
package hex

const (
	language = "0123456789abcdef"
)

// Serialize serializes a buffer as lower-case hex
func Serialize(buf []byte) string {
	out := make([]byte, len(buf)*2)
	for i, b := range buf {
		offset := i * 2
		out[offset] = language[b>>4]
		out[offset+1] = language[b&0x0f]
	}
	return string(out)
}

// IsDigit reports whether r is an ASCII hex digit, in either case.
func IsDigit(r rune) bool {
	_, ok := DigitValue(r)
	return ok
}

// DigitValue returns the value of a single hex digit.
func DigitValue(r rune) (byte, bool) {
	switch {
	case r >= '0' && r <= '9':
		return byte(r - '0'), true
	case r >= 'a' && r <= 'f':
		return byte(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return byte(r-'A') + 10, true
	}
	return 0, false
}

// Octet combines a high and a low digit into one byte. Both runes must be
// hex digits.
func Octet(high, low rune) (byte, bool) {
	h, ok := DigitValue(high)
	if !ok {
		return 0, false
	}
	l, ok := DigitValue(low)
	if !ok {
		return 0, false
	}
	return h<<4 | l, true
}
