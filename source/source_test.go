package source

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/encoding/unicode"
)

func TestSkipsCommentsAndBlankLines(t *testing.T) {
	in := "# header\n\n0-0: Refresh:\n#comment\n  \n1-0: Refresh:\r\n"
	got, err := ReadAll(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []Line{
		{No: 3, Text: "0-0: Refresh:"},
		{No: 5, Text: "  "},
		{No: 6, Text: "1-0: Refresh:"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lines (-want +got):\n%s", diff)
	}
}

func TestOnlyComments(t *testing.T) {
	got, err := ReadAll(strings.NewReader("#comment\n\n#x"))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %v", got)
	}
}

func TestDecodesWindows1252(t *testing.T) {
	// "Café – ü" in Windows-1252: é=0xE9, en dash=0x96, ü=0xFC
	in := []byte{'C', 'a', 'f', 0xE9, ' ', 0x96, ' ', 0xFC, '\n'}
	got, err := ReadAll(bytes.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Text != "Café – ü" {
		t.Errorf("got %q", got)
	}
}

func TestEveryByteDecodes(t *testing.T) {
	var in []byte
	for b := 0; b < 256; b++ {
		if b == '\n' || b == '\r' {
			continue
		}
		in = append(in, byte(b))
	}
	got, err := ReadAll(bytes.NewReader(append([]byte{'x'}, in...)))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d lines", len(got))
	}
	if n := len([]rune(got[0].Text)); n != len(in)+1 {
		t.Errorf("got %d characters want %d", n, len(in)+1)
	}
}

func TestUTF8Passthrough(t *testing.T) {
	got, err := ReadAll(strings.NewReader("Brücke\n"), WithEncoding(unicode.UTF8))
	if err != nil {
		t.Fatal(err)
	}
	if got[0].Text != "Brücke" {
		t.Errorf("got %q", got[0].Text)
	}
}

type failReader struct{}

func (failReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

func TestReadError(t *testing.T) {
	_, err := ReadAll(io.MultiReader(strings.NewReader("0-0: Refresh:\n"), failReader{}))
	if !errors.Is(err, ErrDecode) {
		t.Errorf("got %v", err)
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("cause lost: %v", err)
	}
}

func TestCharset(t *testing.T) {
	for _, name := range []string{"", "cp1252", "Windows-1252", "latin1", "UTF-8"} {
		if _, err := Charset(name); err != nil {
			t.Errorf("%q: %v", name, err)
		}
	}
	if _, err := Charset("ebcdic"); !errors.Is(err, ErrBadCharset) {
		t.Errorf("got %v", err)
	}
}
