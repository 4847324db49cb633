package hext

import (
	"errors"
	"strings"
	"unicode"

	"github.com/hext-tools/hext-go/pkg/hex"
)

type state int

const (
	readingHex state = iota
	readingUnsizedDecimal
	readingSignedDecimal
	readingUnsignedDecimal
	readingLiteral
	readingBinary
	finished
)

type encoder struct {
	s      *scanner
	header Header
	out    []byte
	bits   bitBuffer
	// Line on which the current bitstream group started.
	groupLine int
}

// Parse converts hext text to the bytes it describes. Input that is empty,
// or only holds blank lines and comments, yields an empty result; any other
// input must start with a header line.
func Parse(text string) ([]byte, error) {
	_, out, err := Decode(text)
	return out, err
}

// Decode is like Parse, but also returns the header. The header is the zero
// Header if the input has none.
func Decode(text string) (Header, []byte, error) {
	s := newScanner(text)
	s.skipNondata()

	r, ok := s.next()
	if !ok {
		return Header{}, []byte{}, nil
	}
	if r != '~' {
		return Header{}, nil, &Error{Kind: NoHeader, Line: s.line}
	}
	line := s.line
	header, err := ParseHeader(s.restOfLine())
	if err != nil {
		return Header{}, nil, withLine(err, line)
	}

	e := encoder{s: s, header: header, out: []byte{}}
	out, err := e.run()
	if err != nil {
		return Header{}, nil, err
	}
	return header, out, nil
}

func (e *encoder) run() ([]byte, error) {
	st := readingHex
	for st != finished {
		line := e.s.line
		var err error
		switch st {
		case readingHex:
			st, err = e.readHex()
		case readingUnsizedDecimal:
			st, err = e.readUnsizedDecimal()
		case readingSignedDecimal:
			st, err = e.readSizedDecimal(true)
		case readingUnsignedDecimal:
			st, err = e.readSizedDecimal(false)
		case readingLiteral:
			st, err = e.readLiteral()
		case readingBinary:
			st, err = e.readBinary()
		}
		if err != nil {
			return nil, withLine(err, line)
		}
	}
	return e.out, nil
}

func (e *encoder) readHex() (state, error) {
	r, ok := e.s.peek()
	if !ok {
		return finished, nil
	}
	// Bitstreams keep their introducing period.
	if r == '.' {
		e.groupLine = e.s.line
		return readingBinary, nil
	}
	e.s.next()

	switch {
	case r == '#':
		e.s.skipLine()
	case unicode.IsSpace(r):
	case hex.IsDigit(r):
		low, ok := e.s.peek()
		if !ok || !hex.IsDigit(low) {
			return 0, &Error{Kind: IncompleteOctet}
		}
		e.s.next()
		b, _ := hex.Octet(r, low)
		e.out = append(e.out, b)
	case r == '=':
		return readingUnsizedDecimal, nil
	case r == 'i':
		return readingSignedDecimal, nil
	case r == 'u':
		return readingUnsignedDecimal, nil
	case r == '"':
		return readingLiteral, nil
	default:
		return 0, &Error{Kind: InvalidCharacter, Char: r}
	}
	return readingHex, nil
}

func (e *encoder) readUnsizedDecimal() (state, error) {
	b, err := unsizedLEBytes(e.s.untilSpace())
	if err != nil {
		return 0, err
	}
	e.out = append(e.out, e.header.orderBytes(b)...)
	return readingHex, nil
}

// readSizedDecimal handles the "<width>=<value>" form following 'i' or 'u'.
func (e *encoder) readSizedDecimal(signed bool) (state, error) {
	token := e.s.untilSpace()
	bitness, value, ok := strings.Cut(token, "=")
	if !ok {
		if signed {
			return 0, &Error{Kind: InvalidSignedDecimal, Token: token}
		}
		return 0, &Error{Kind: InvalidDecimal, Token: token}
	}

	var b []byte
	var err error
	if signed {
		b, err = signedLEBytes(bitness, value)
	} else {
		b, err = unsignedLEBytes(bitness, value)
	}
	if err != nil {
		return 0, err
	}
	e.out = append(e.out, e.header.orderBytes(b)...)
	return readingHex, nil
}

func escape(c rune) (byte, bool) {
	switch c {
	case '"':
		return '"', true
	case '\\':
		return '\\', true
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	}
	return 0, false
}

// readLiteral consumes one character, or one escape sequence, of a quoted
// string.
func (e *encoder) readLiteral() (state, error) {
	start := e.s.pos
	r, ok := e.s.next()
	if !ok {
		return 0, &Error{Kind: UnclosedStringLiteral}
	}
	switch r {
	case '"':
		return readingHex, nil
	case '\\':
		c, ok := e.s.next()
		if !ok {
			return 0, &Error{Kind: UnclosedStringLiteral}
		}
		b, ok := escape(c)
		if !ok {
			return 0, &Error{Kind: InvalidEscape, Char: c}
		}
		e.out = append(e.out, b)
	case '\n':
		return 0, &Error{Kind: UnclosedStringLiteral}
	default:
		// Copy the source bytes, so multi-byte characters keep their
		// full encoding.
		e.out = append(e.out, e.s.src[start:e.s.pos]...)
	}
	return readingLiteral, nil
}

// readBinary reads one run of bits, introduced by "." or "..". Runs separated only
// by whitespace and comments belong to the same group; the group is flushed
// once the next data is something other than a run.
func (e *encoder) readBinary() (state, error) {
	r, ok := e.s.peek()
	if !ok || r != '.' {
		b, err := e.bits.drain(e.header.PadBits)
		if err != nil {
			return 0, withLine(err, e.groupLine)
		}
		e.out = append(e.out, b...)
		return readingHex, nil
	}
	e.s.next()

	// ".." introduces a run just like "."; the second period opens an empty
	// segment.
	if r, ok := e.s.peek(); !ok || (r != '0' && r != '1' && r != '.') {
		return 0, &Error{Kind: GarbageCharacterInBitstream, Line: e.s.line}
	}
	for {
		r, ok := e.s.peek()
		switch {
		case !ok, r == '.':
			return readingBinary, nil
		case r == '0', r == '1':
			e.s.next()
			e.bits.push(r == '1')
		case r == '#':
			e.s.skipLine()
		case unicode.IsSpace(r):
			e.s.skipNondata()
			return readingBinary, nil
		default:
			return 0, &Error{Kind: GarbageCharacterInBitstream, Line: e.s.line}
		}
	}
}

// withLine records the line an error occurred on, unless already known.
func withLine(err error, line int) error {
	var hextErr *Error
	if errors.As(err, &hextErr) && hextErr.Line == 0 {
		hextErr.Line = line
	}
	return err
}
