package hext

import (
	"errors"
	"testing"
)

func TestParseHeader(t *testing.T) {
	for _, table := range []struct {
		desc  string
		input string
		want  Header
	}{
		{"msb0 big-endian", "msb0 big-endian", Header{BitOrder: Msb0, ByteOrder: BigEndian}},
		{"lsb0 little-endian", "lsb0 little-endian", Header{BitOrder: Lsb0, ByteOrder: LittleEndian}},
		{"reversed order", "big-endian lsb0", Header{BitOrder: Lsb0, ByteOrder: BigEndian}},
		{"padbits", "little-endian padbits msb0", Header{BitOrder: Msb0, ByteOrder: LittleEndian, PadBits: true}},
		{"padbits twice", "padbits msb0 padbits big-endian", Header{BitOrder: Msb0, ByteOrder: BigEndian, PadBits: true}},
		{"trailing CR", "msb0 big-endian\r", Header{BitOrder: Msb0, ByteOrder: BigEndian}},
		{"trailing spaces", "msb0 big-endian  ", Header{BitOrder: Msb0, ByteOrder: BigEndian}},
	} {
		h, err := ParseHeader(table.input)
		if err != nil {
			t.Errorf("unexpected error in test %q: %v", table.desc, err)
			continue
		}
		if got, want := h, table.want; got != want {
			t.Errorf("got header %+v but wanted %+v in test %q", got, want, table.desc)
		}
	}
}

func TestParseHeaderInvalid(t *testing.T) {
	for _, table := range []struct {
		desc     string
		input    string
		want     HeaderKind
		property string
	}{
		{"two bit orders", "lsb0 msb0", TwoBitOrder, ""},
		{"same bit order twice", "msb0 big-endian msb0", TwoBitOrder, ""},
		{"two byte orders", "little-endian big-endian", TwoByteOrder, ""},
		{"no bit order", "big-endian", NoBitOrder, ""},
		{"no bit order, nor byte order", "padbits", NoBitOrder, ""},
		{"no byte order", "msb0", NoByteOrder, ""},
		{"invalid property", "lsb0 big-endian invalidproperty", InvalidProperty, "invalidproperty"},
		{"double space", "lsb0  big-endian", InvalidProperty, ""},
		{"leading space", " lsb0 big-endian", InvalidProperty, ""},
		{"empty", "", InvalidProperty, ""},
		{"tab separator", "lsb0\tbig-endian", InvalidProperty, "lsb0\tbig-endian"},
	} {
		_, err := ParseHeader(table.input)
		if err == nil {
			t.Errorf("no error in test %q", table.desc)
			continue
		}
		var hextErr *Error
		if !errors.As(err, &hextErr) {
			t.Errorf("unexpected error type %T in test %q", err, table.desc)
			continue
		}
		if hextErr.Kind != InvalidHeader || hextErr.Header != table.want {
			t.Errorf("got error %+v but wanted header kind %d in test %q", hextErr, table.want, table.desc)
		}
		if got, want := hextErr.Token, table.property; got != want {
			t.Errorf("got property %q but wanted %q in test %q", got, want, table.desc)
		}
		if !errors.Is(err, ErrInvalidHeader) {
			t.Errorf("error does not match ErrInvalidHeader in test %q", table.desc)
		}
	}
}

func TestHeaderString(t *testing.T) {
	for _, input := range []string{
		"msb0 big-endian",
		"lsb0 little-endian",
		"msb0 little-endian padbits",
	} {
		h, err := ParseHeader(input)
		if err != nil {
			t.Fatalf("parsing %q failed: %v", input, err)
		}
		if got := h.String(); got != input {
			t.Errorf("got %q, wanted %q", got, input)
		}
	}
}
