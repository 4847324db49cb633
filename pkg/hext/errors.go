package hext

import (
	"fmt"
)

// Kind identifies the class of a parse failure.
type Kind int

const (
	NoHeader Kind = iota + 1
	InvalidHeader

	IncompleteOctet
	InvalidCharacter

	InvalidDecimal
	InvalidSignedDecimal
	InvalidUnsignedDecimal
	InvalidBitness

	InvalidEscape
	UnclosedStringLiteral

	GarbageCharacterInBitstream
	UnalignedBits
)

// HeaderKind refines an InvalidHeader error.
type HeaderKind int

const (
	TwoBitOrder HeaderKind = iota + 1
	TwoByteOrder
	NoBitOrder
	NoByteOrder
	InvalidProperty
)

// Sentinel errors, for use with errors.Is. Each matches any error of the
// same kind, regardless of token, character or line.
var (
	ErrNoHeader                    = &Error{Kind: NoHeader}
	ErrInvalidHeader               = &Error{Kind: InvalidHeader}
	ErrIncompleteOctet             = &Error{Kind: IncompleteOctet}
	ErrInvalidCharacter            = &Error{Kind: InvalidCharacter}
	ErrInvalidDecimal              = &Error{Kind: InvalidDecimal}
	ErrInvalidSignedDecimal        = &Error{Kind: InvalidSignedDecimal}
	ErrInvalidUnsignedDecimal      = &Error{Kind: InvalidUnsignedDecimal}
	ErrInvalidBitness              = &Error{Kind: InvalidBitness}
	ErrInvalidEscape               = &Error{Kind: InvalidEscape}
	ErrUnclosedStringLiteral       = &Error{Kind: UnclosedStringLiteral}
	ErrGarbageCharacterInBitstream = &Error{Kind: GarbageCharacterInBitstream}
	ErrUnalignedBits               = &Error{Kind: UnalignedBits}
)

// An Error describes why a hext input could not be converted.
type Error struct {
	Kind Kind
	// Set for InvalidHeader errors only.
	Header HeaderKind
	// The offending text, for the decimal, bitness and
	// InvalidProperty errors.
	Token string
	// The offending character, for InvalidCharacter and InvalidEscape.
	Char rune
	// Input line the error was detected on, 1-based. Zero when
	// unknown.
	Line int
}

func (e *Error) Error() string {
	switch e.Kind {
	case NoHeader:
		return "The file must start with a header"
	case InvalidHeader:
		return e.headerMessage()
	case IncompleteOctet:
		return "Octet was not complete"
	case InvalidCharacter:
		return fmt.Sprintf("'%c' is not valid base16", e.Char)
	case InvalidDecimal:
		return fmt.Sprintf("'%s' is not valid decimal", e.Token)
	case InvalidSignedDecimal:
		return fmt.Sprintf("'%s' is not valid signed decimal", e.Token)
	case InvalidUnsignedDecimal:
		return fmt.Sprintf("'%s' is not valid unsigned decimal", e.Token)
	case InvalidBitness:
		return fmt.Sprintf("'%s' is not a valid width. Valid widths are 8, 16, 32, and 64", e.Token)
	case InvalidEscape:
		return fmt.Sprintf("\\%c is not a valid escape code", e.Char)
	case UnclosedStringLiteral:
		return "The line or file ended in an unterminated string literal"
	case GarbageCharacterInBitstream:
		return "Periods to indicate binary data must be directly followed by that data"
	case UnalignedBits:
		return "Not enough bits to form an octet"
	}
	return fmt.Sprintf("unknown hext error kind %d", int(e.Kind))
}

func (e *Error) headerMessage() string {
	switch e.Header {
	case TwoBitOrder:
		return "You may only specify the bit order once"
	case TwoByteOrder:
		return "You may only specify the byte order once"
	case NoBitOrder:
		return "You must specify a bit order"
	case NoByteOrder:
		return "You must specify a byte order"
	case InvalidProperty:
		return fmt.Sprintf("'%s' is not a valid file property", e.Token)
	}
	return "Invalid header"
}

// An error is considered matching if the kind is the same. A target with
// a non-zero Header additionally requires the same HeaderKind. Example:
//
//	if errors.Is(err, hext.ErrUnalignedBits) {...}
func (e *Error) Is(err error) bool {
	target, ok := err.(*Error)
	if !ok {
		return false
	}
	if e.Kind != target.Kind {
		return false
	}
	return target.Header == 0 || e.Header == target.Header
}

func headerError(kind HeaderKind, property string) *Error {
	return &Error{Kind: InvalidHeader, Header: kind, Token: property}
}
