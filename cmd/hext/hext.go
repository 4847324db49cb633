// package main provides a tool named hext
//
// Install:
//
//	$ go install github.com/hext-tools/hext-go/cmd/hext@latest
//
// Usage:
//
//	$ hext --help
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dchest/safefile"
	"github.com/pborman/getopt/v2"
	"golang.org/x/term"

	"github.com/hext-tools/hext-go/internal/batch"
	"github.com/hext-tools/hext-go/internal/version"
	"github.com/hext-tools/hext-go/pkg/log"
)

type Settings struct {
	outputFile  string
	hexOutput   bool
	diagnostics string
	inputs      []string
	help        bool
	showVersion bool
}

const usage = `
Usage: hext [--help|help] [--version|version]
   or: hext [options] [FILE...]

Convert hext, a plain-text notation for binary data, to bytes.

Each FILE is converted in turn and the results are written one after
another, to stdout or to the file given with the -o option. With no
FILE, input is read from stdin. An input that can't be converted is
reported and skipped, and the exit status is then non-zero.
`

func main() {
	log.SetDate(false)
	log.SetColor(term.IsTerminal(int(os.Stderr.Fd())))

	var settings Settings
	set, err := settings.parse(os.Args)
	// Check help first; if seen, ignore errors about bad arguments.
	if settings.help {
		fmt.Print(usage[1:] + "\n")
		set.PrintUsage(os.Stdout)
		os.Exit(0)
	}
	if err != nil {
		log.Error("%v", err)
		set.PrintUsage(os.Stderr)
		os.Exit(1)
	}
	if settings.showVersion {
		version.DisplayVersion("hext")
		os.Exit(0)
	}
	if err := log.SetLevelFromString(settings.diagnostics); err != nil {
		log.Fatal("%v", err)
	}

	sources := settings.sources(os.Stdin)
	failed := 0
	if err := withOutput(settings.outputFile, 0644, func(w io.Writer) error {
		var err error
		failed, err = batch.Run(sources, w, settings.format())
		return err
	}); err != nil {
		log.Fatal("%v", err)
	}
	if failed > 0 {
		log.Debug("%d of %d inputs failed", failed, len(sources))
		os.Exit(1)
	}
}

// parse fills in s from the command line. The returned set is for printing
// usage, and is non-nil even when parsing fails.
func (s *Settings) parse(args []string) (*getopt.Set, error) {
	s.diagnostics = "info"

	set := getopt.New()
	set.SetProgram("hext")
	set.SetParameters("[FILE...]")
	set.FlagLong(&s.outputFile, "output", 'o', "Write output to file instead of stdout; the file is replaced atomically", "output-file")
	set.FlagLong(&s.hexOutput, "hex", 'x', "Write output as lower-case hex, one line per input")
	set.FlagLong(&s.diagnostics, "diagnostics", 0, "One of \"fatal\", \"error\", \"warning\", \"info\", or \"debug\"", "level")
	set.FlagLong(&s.showVersion, "version", 'v', "Show program version and exit")
	set.FlagLong(&s.help, "help", 0, "Show usage message and exit")

	if len(args) > 1 {
		switch args[1] {
		case "help":
			s.help = true
			return set, nil
		case "version":
			s.showVersion = true
			return set, nil
		}
	}
	if err := set.Getopt(args, nil); err != nil {
		return set, err
	}
	s.inputs = set.Args()
	return set, nil
}

func (s *Settings) sources(stdin io.Reader) []batch.Source {
	if len(s.inputs) == 0 {
		return []batch.Source{batch.ReaderSource("<stdin>", stdin)}
	}
	var sources []batch.Source
	for _, input := range s.inputs {
		sources = append(sources, batch.FileSource(input))
	}
	return sources
}

func (s *Settings) format() batch.Format {
	if s.hexOutput {
		return batch.Hex
	}
	return batch.Raw
}

// If outputFile is non-empty: create it through a temporary file, pass it to
// f, and replace outputFile once f succeeds. Otherwise, just pass os.Stdout
// to f.
func withOutput(outputFile string, mode os.FileMode, f func(io.Writer) error) error {
	if len(outputFile) == 0 {
		return f(os.Stdout)
	}
	file, err := safefile.Create(outputFile, mode)
	if err != nil {
		return fmt.Errorf("failed to create file '%v': %w", outputFile, err)
	}
	defer file.Close()

	if err := f(file); err != nil {
		return err
	}
	// Atomically replace old file with new.
	return file.Commit()
}
