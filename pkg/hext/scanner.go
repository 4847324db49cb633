package hext

import (
	"unicode"
	"unicode/utf8"
)

// scanner walks the input one rune at a time, keeping track of the
// current line.
type scanner struct {
	src  string
	pos  int
	line int
}

func newScanner(src string) *scanner {
	return &scanner{src: src, line: 1}
}

func (s *scanner) peek() (rune, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s.src[s.pos:])
	return r, true
}

func (s *scanner) next() (rune, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(s.src[s.pos:])
	s.pos += size
	if r == '\n' {
		s.line++
	}
	return r, true
}

// skipLine discards everything up to and including the next newline.
func (s *scanner) skipLine() {
	for {
		r, ok := s.next()
		if !ok || r == '\n' {
			return
		}
	}
}

// restOfLine returns the text up to the next newline, and consumes the
// newline as well.
func (s *scanner) restOfLine() string {
	start := s.pos
	for {
		end := s.pos
		r, ok := s.next()
		if !ok || r == '\n' {
			return s.src[start:end]
		}
	}
}

// untilSpace returns the text up to the next whitespace character, which is
// consumed but not returned.
func (s *scanner) untilSpace() string {
	start := s.pos
	for {
		end := s.pos
		r, ok := s.next()
		if !ok || unicode.IsSpace(r) {
			return s.src[start:end]
		}
	}
}

// skipNondata discards whitespace and comment lines.
func (s *scanner) skipNondata() {
	for {
		r, ok := s.peek()
		switch {
		case !ok:
			return
		case r == '#':
			s.skipLine()
		case unicode.IsSpace(r):
			s.next()
		default:
			return
		}
	}
}
