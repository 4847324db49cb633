// Package batch converts a sequence of hext inputs, one after another.
// Failure to read or convert one input does not stop the inputs after it.
package batch

//go:generate go run github.com/golang/mock/mockgen -destination=../mocks/batch.go -package=mocks github.com/hext-tools/hext-go/internal/batch Source,Sink

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hext-tools/hext-go/internal/fmtio"
	"github.com/hext-tools/hext-go/pkg/hex"
	"github.com/hext-tools/hext-go/pkg/hext"
	"github.com/hext-tools/hext-go/pkg/log"
)

// A Source provides the text of one named input.
type Source interface {
	Name() string
	Text() (string, error)
}

// A Sink receives converted output, in input order.
type Sink interface {
	Write(p []byte) (int, error)
}

type Format int

const (
	// Raw writes the converted bytes as is.
	Raw Format = iota
	// Hex writes one line of lower-case hex per input.
	Hex
)

type readerSource struct {
	name string
	r    io.Reader
}

// ReaderSource reads an input from r, e.g., stdin.
func ReaderSource(name string, r io.Reader) Source {
	return &readerSource{name: name, r: r}
}

func (s *readerSource) Name() string {
	return s.name
}

func (s *readerSource) Text() (string, error) {
	return fmtio.ReadText(s.r)
}

type fileSource struct {
	path string
}

// FileSource reads an input from the named file, when asked for its text.
func FileSource(path string) Source {
	return &fileSource{path: path}
}

func (s *fileSource) Name() string {
	return s.path
}

func (s *fileSource) Text() (string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return fmtio.ReadText(f)
}

// Run converts each source in turn and writes each result to sink. A source
// that can't be read or converted is logged and skipped. Returns the number
// of skipped sources. A failure to write to sink stops the run.
func Run(sources []Source, sink Sink, format Format) (int, error) {
	failed := 0
	for _, src := range sources {
		name := src.Name()
		out, err := convert(name, src)
		if err != nil {
			log.Error("%v", err)
			failed++
			continue
		}
		log.Debug("%s: %d bytes", name, len(out))
		if err := write(sink, out, format); err != nil {
			return failed, fmt.Errorf("writing output for %s failed: %w", name, err)
		}
	}
	return failed, nil
}

func convert(name string, src Source) ([]byte, error) {
	text, err := src.Text()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	header, out, err := hext.Decode(text)
	if err != nil {
		var hextErr *hext.Error
		if errors.As(err, &hextErr) && hextErr.Line > 0 {
			return nil, fmt.Errorf("%s:%d: %w", name, hextErr.Line, err)
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if header != (hext.Header{}) {
		log.Debug("%s: header ~%s", name, header)
	}
	return out, nil
}

func write(sink Sink, out []byte, format Format) error {
	if format == Hex {
		out = []byte(hex.Serialize(out) + "\n")
	}
	_, err := sink.Write(out)
	return err
}
