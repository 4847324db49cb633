package hext

import (
	"strings"
	"unicode"
)

type BitOrder int

const (
	Msb0 BitOrder = iota + 1
	Lsb0
)

type ByteOrder int

const (
	LittleEndian ByteOrder = iota + 1
	BigEndian
)

// Header holds the properties declared on the "~" line of a hext input.
type Header struct {
	BitOrder  BitOrder
	ByteOrder ByteOrder
	PadBits   bool
}

// ParseHeader parses the text following the '~' introducer, up to but not
// including the terminating newline. Properties are separated by single
// spaces and may come in any order.
func ParseHeader(line string) (Header, error) {
	var h Header
	for _, property := range strings.Split(strings.TrimRightFunc(line, unicode.IsSpace), " ") {
		switch property {
		case "msb0", "lsb0":
			if h.BitOrder != 0 {
				return Header{}, headerError(TwoBitOrder, "")
			}
			h.BitOrder = Msb0
			if property == "lsb0" {
				h.BitOrder = Lsb0
			}
		case "big-endian", "little-endian":
			if h.ByteOrder != 0 {
				return Header{}, headerError(TwoByteOrder, "")
			}
			h.ByteOrder = LittleEndian
			if property == "big-endian" {
				h.ByteOrder = BigEndian
			}
		case "padbits":
			h.PadBits = true
		default:
			return Header{}, headerError(InvalidProperty, property)
		}
	}
	if h.BitOrder == 0 {
		return Header{}, headerError(NoBitOrder, "")
	}
	if h.ByteOrder == 0 {
		return Header{}, headerError(NoByteOrder, "")
	}
	return h, nil
}

// String formats the header the way it would be written after '~'.
func (h Header) String() string {
	var properties []string
	switch h.BitOrder {
	case Msb0:
		properties = append(properties, "msb0")
	case Lsb0:
		properties = append(properties, "lsb0")
	}
	switch h.ByteOrder {
	case LittleEndian:
		properties = append(properties, "little-endian")
	case BigEndian:
		properties = append(properties, "big-endian")
	}
	if h.PadBits {
		properties = append(properties, "padbits")
	}
	return strings.Join(properties, " ")
}
