package hext

import (
	"encoding/binary"
	"math"
	"strconv"
	"strings"
)

// leBytes returns the low width/8 bytes of v, least significant first.
func leBytes(v uint64, width int) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	out := make([]byte, width/8)
	copy(out, buf[:])
	return out
}

// orderBytes converts a little-endian encoding to the header's byte order,
// in place.
func (h *Header) orderBytes(b []byte) []byte {
	if h.ByteOrder == BigEndian {
		for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
			b[i], b[j] = b[j], b[i]
		}
	}
	return b
}

// signedWidth is the smallest of 8, 16, 32 and 64 bits that holds v.
func signedWidth(v int64) int {
	switch {
	case v > math.MaxInt32 || v < math.MinInt32:
		return 64
	case v > math.MaxInt16 || v < math.MinInt16:
		return 32
	case v > math.MaxInt8 || v < math.MinInt8:
		return 16
	}
	return 8
}

func unsignedWidth(v uint64) int {
	switch {
	case v > math.MaxUint32:
		return 64
	case v > math.MaxUint16:
		return 32
	case v > math.MaxUint8:
		return 16
	}
	return 8
}

// unsizedLEBytes encodes a decimal written without a width. A leading sign
// selects a signed encoding.
func unsizedLEBytes(token string) ([]byte, error) {
	if len(token) == 0 {
		return nil, &Error{Kind: InvalidDecimal, Token: token}
	}
	if token[0] == '-' || token[0] == '+' {
		v, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return nil, &Error{Kind: InvalidDecimal, Token: token}
		}
		return leBytes(uint64(v), signedWidth(v)), nil
	}
	v, err := strconv.ParseUint(token, 10, 64)
	if err != nil {
		return nil, &Error{Kind: InvalidDecimal, Token: token}
	}
	return leBytes(v, unsignedWidth(v)), nil
}

func parseWidth(bitness string) (int, error) {
	switch bitness {
	case "8", "16", "32", "64":
		width, _ := strconv.Atoi(bitness)
		return width, nil
	}
	return 0, &Error{Kind: InvalidBitness, Token: bitness}
}

// signedLEBytes encodes value as a two's complement integer of the given
// width.
func signedLEBytes(bitness, value string) ([]byte, error) {
	width, err := parseWidth(bitness)
	if err != nil {
		return nil, err
	}
	v, err := strconv.ParseInt(value, 10, width)
	if err != nil {
		return nil, &Error{Kind: InvalidSignedDecimal, Token: value}
	}
	return leBytes(uint64(v), width), nil
}

func unsignedLEBytes(bitness, value string) ([]byte, error) {
	width, err := parseWidth(bitness)
	if err != nil {
		return nil, err
	}
	// A single leading plus sign is accepted, as for signed values.
	v, err := strconv.ParseUint(strings.TrimPrefix(value, "+"), 10, width)
	if err != nil {
		return nil, &Error{Kind: InvalidUnsignedDecimal, Token: value}
	}
	return leBytes(v, width), nil
}
