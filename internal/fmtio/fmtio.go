// package fmtio provides basic utilities to format input and output
package fmtio

import (
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadText reads all of r as text. Input is expected to be UTF-8; a
// leading byte order mark is dropped, and UTF-16 input that starts with a
// byte order mark is converted to UTF-8.
func ReadText(r io.Reader) (string, error) {
	b, err := io.ReadAll(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("input is not valid UTF-8")
	}
	return string(b), nil
}
