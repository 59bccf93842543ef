package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"j": JSONFormat, "json": JSONFormat,
		"y": YAMLFormat, "yaml": YAMLFormat, "yml": YAMLFormat,
	} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("%q: got %s, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v", err)
	}
}

func TestTextRoundTrip(t *testing.T) {
	var f Format
	if err := f.UnmarshalText([]byte("yaml")); err != nil || f != YAMLFormat {
		t.Fatalf("got %s, %v", f, err)
	}
	if f.Suffix() != ".yaml" || JSONFormat.Suffix() != ".json" {
		t.Errorf("suffixes %s %s", f.Suffix(), JSONFormat.Suffix())
	}
	if Format(9).String() == "json" {
		t.Errorf("bad format stringed as json")
	}
}
