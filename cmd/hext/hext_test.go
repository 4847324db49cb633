package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/hext-tools/hext-go/internal/batch"
)

func TestParseSettings(t *testing.T) {
	for _, table := range []struct {
		desc    string
		args    []string
		want    Settings
		wantErr bool
	}{
		{"no arguments", []string{"hext"}, Settings{diagnostics: "info"}, false},
		{"files", []string{"hext", "a.hxt", "b.hxt"}, Settings{diagnostics: "info", inputs: []string{"a.hxt", "b.hxt"}}, false},
		{"short options", []string{"hext", "-x", "-o", "out.bin", "a.hxt"},
			Settings{outputFile: "out.bin", hexOutput: true, diagnostics: "info", inputs: []string{"a.hxt"}}, false},
		{"long options", []string{"hext", "--hex", "--output=out.bin", "--diagnostics", "debug"},
			Settings{outputFile: "out.bin", hexOutput: true, diagnostics: "debug"}, false},
		{"help flag", []string{"hext", "--help"}, Settings{diagnostics: "info", help: true}, false},
		{"help word", []string{"hext", "help"}, Settings{diagnostics: "info", help: true}, false},
		{"help before bad option", []string{"hext", "--help", "--bogus"}, Settings{diagnostics: "info", help: true}, true},
		{"version flag", []string{"hext", "-v"}, Settings{diagnostics: "info", showVersion: true}, false},
		{"version word", []string{"hext", "version"}, Settings{diagnostics: "info", showVersion: true}, false},
		{"help as second file", []string{"hext", "a.hxt", "help"}, Settings{diagnostics: "info", inputs: []string{"a.hxt", "help"}}, false},
		{"bad option", []string{"hext", "--bogus"}, Settings{diagnostics: "info"}, true},
		{"missing output file", []string{"hext", "-o"}, Settings{diagnostics: "info"}, true},
	} {
		var got Settings
		set, err := got.parse(table.args)
		if set == nil {
			t.Errorf("no option set in test %q", table.desc)
		}
		if gotErr := err != nil; gotErr != table.wantErr {
			t.Errorf("got error %v but wanted error: %v in test %q", err, table.wantErr, table.desc)
		}
		if err != nil {
			// Only help is looked at after a failed parse.
			if got.help != table.want.help {
				t.Errorf("got help %v but wanted %v in test %q", got.help, table.want.help, table.desc)
			}
			continue
		}
		if len(got.inputs) == 0 {
			got.inputs = nil
		}
		if !reflect.DeepEqual(got, table.want) {
			t.Errorf("got %+v but wanted %+v in test %q", got, table.want, table.desc)
		}
	}
}

func TestSettingsSources(t *testing.T) {
	stdin := strings.NewReader("~msb0 little-endian\n41")
	s := Settings{}
	sources := s.sources(stdin)
	if len(sources) != 1 || sources[0].Name() != "<stdin>" {
		t.Fatalf("got %d sources, wanted only stdin", len(sources))
	}
	text, err := sources[0].Text()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := text, "~msb0 little-endian\n41"; got != want {
		t.Errorf("got stdin text %q, wanted %q", got, want)
	}

	s = Settings{inputs: []string{"a.hxt", "b.hxt"}}
	var names []string
	for _, src := range s.sources(stdin) {
		names = append(names, src.Name())
	}
	if want := []string{"a.hxt", "b.hxt"}; !reflect.DeepEqual(names, want) {
		t.Errorf("got sources %v, wanted %v", names, want)
	}
}

func TestSettingsFormat(t *testing.T) {
	for _, table := range []struct {
		desc string
		args []string
		want batch.Format
	}{
		{"default", []string{"hext"}, batch.Raw},
		{"hex", []string{"hext", "-x"}, batch.Hex},
	} {
		var s Settings
		if _, err := s.parse(table.args); err != nil {
			t.Fatalf("parse failed in test %q: %v", table.desc, err)
		}
		if got := s.format(); got != table.want {
			t.Errorf("got %v but wanted %v in test %q", got, table.want, table.desc)
		}
	}
}

func TestWithOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bin")
	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	err := withOutput(path, 0644, func(w io.Writer) error {
		_, err := w.Write([]byte{0x41, 0x42})
		return err
	})
	if err != nil {
		t.Fatalf("withOutput failed: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := []byte{0x41, 0x42}; !bytes.Equal(got, want) {
		t.Errorf("got %x, wanted %x", got, want)
	}
}

func TestWithOutputFailureKeepsOldFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.bin")
	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	err := withOutput(path, 0644, func(w io.Writer) error {
		if _, err := w.Write([]byte("partial")); err != nil {
			return err
		}
		return errors.New("conversion aborted")
	})
	if err == nil {
		t.Fatal("no error from withOutput")
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := "old"; string(got) != want {
		t.Errorf("got %q, wanted original contents %q", got, want)
	}
}

func TestWithOutputMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.bin")
	called := false
	err := withOutput(path, 0644, func(w io.Writer) error {
		called = true
		return nil
	})
	if err == nil {
		t.Errorf("no error for output in missing directory")
	}
	if called {
		t.Errorf("output function called without an output file")
	}
}
