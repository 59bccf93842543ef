package encode

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/signadot/sector-format/format"
	"github.com/signadot/sector-format/parse"
	"github.com/signadot/sector-format/sector"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, in string) *sector.Sector {
	t.Helper()
	s, err := parse.ParseString(in)
	if err != nil {
		t.Fatalf("parse %q: %v", in, err)
	}
	return s
}

func TestEncodeNested(t *testing.T) {
	s := mustParse(t, "0-0: Content:{1000 Content:{2000}, 3000}")
	got, err := Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	want := `{
  "tiles": [
    {
      "offset_x": 0,
      "offset_y": 0,
      "content": [
        {
          "id": 1000,
          "content": [
            {
              "id": 2000
            }
          ]
        },
        {
          "id": 3000
        }
      ]
    }
  ]
}
`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestEncodeFieldOrder(t *testing.T) {
	s := mustParse(t, `5-7: NoLogout, Refresh, Content={3 String="a<b>&c" Amount=2}`)
	got := MustString(s, EncodeWire(true))
	want := `{"tiles":[{"offset_x":5,"offset_y":7,"refresh":true,"no_logout":true,"content":[{"id":3,"amount":2,"text":"a<b>&c"}]}]}`
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeEmpty(t *testing.T) {
	got := MustString(sector.New(), EncodeWire(true))
	if got != `{"tiles":[]}` {
		t.Errorf("got %s", got)
	}
	got = MustString(mustParse(t, "1-1: Content={}"), EncodeWire(true))
	if want := `{"tiles":[{"offset_x":1,"offset_y":1,"content":[]}]}`; got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestEncodeTrailingNewline(t *testing.T) {
	s := mustParse(t, "1-2: Refresh")
	for _, opts := range [][]EncodeOption{
		nil,
		{EncodeWire(true)},
		{EncodeFormat(format.YAMLFormat)},
	} {
		d, err := Marshal(s, opts...)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.HasSuffix(d, []byte("\n")) || bytes.HasSuffix(d, []byte("\n\n")) {
			t.Errorf("want exactly one trailing newline in %q", d)
		}
	}
}

func TestEncodeYAML(t *testing.T) {
	s := mustParse(t, `3-4: ProtectionZone, Content={10 Charges=5}`)
	d, err := Marshal(s, EncodeFormat(format.YAMLFormat))
	if err != nil {
		t.Fatal(err)
	}
	got := string(d)
	order := []string{"tiles:", "offset_x: 3", "offset_y: 4", "protection_zone: true", "content:", "id: 10", "charges: 5"}
	at := 0
	for _, w := range order {
		i := strings.Index(got[at:], w)
		if i < 0 {
			t.Fatalf("%q missing or out of order in\n%s", w, got)
		}
		at += i + len(w)
	}
}

func TestEncodeIdempotent(t *testing.T) {
	in := `0-0: Refresh, Content={1 Content={2 String="x"}, 3}
12-9: NoLogout`
	a, err := Marshal(mustParse(t, in))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Marshal(mustParse(t, in))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Errorf("encodings differ:\n%s\n%s", a, b)
	}
}

func TestEncodePatch(t *testing.T) {
	p, err := DecodePatch([]byte(`
- op: add
  path: /tiles/0/refresh
  value: true
`))
	if err != nil {
		t.Fatal(err)
	}
	s := mustParse(t, "1-2: NoLogout")
	got := MustString(s, EncodeWire(true), EncodePatch(p))
	want := `{"tiles":[{"no_logout":true,"offset_x":1,"offset_y":2,"refresh":true}]}`
	if got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestEncodePatchFails(t *testing.T) {
	p, err := DecodePatch([]byte(`[{"op": "remove", "path": "/tiles/3"}]`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Marshal(sector.New(), EncodePatch(p)); err == nil {
		t.Error("expected an error")
	}
}

func TestSchema(t *testing.T) {
	s := mustParse(t, `0-0: Refresh, Content={1 Content={2 Editor="e" RemainingUses=1}}`)
	if err := ValidateSector(s); err != nil {
		t.Errorf("valid sector rejected: %v", err)
	}
	for _, doc := range []string{
		`{}`,
		`{"tiles":[{"offset_x":0}]}`,
		`{"tiles":[{"offset_x":0,"offset_y":0,"bogus":1}]}`,
		`{"tiles":[{"offset_x":0,"offset_y":0,"content":[{"id":"1"}]}]}`,
		`{"tiles":[{"offset_x":0,"offset_y":0,"content":[{"id":1,"amount":4294967296}]}]}`,
	} {
		err := Validate([]byte(doc))
		if !errors.Is(err, ErrSchema) {
			t.Errorf("%s: want schema error, got %v", doc, err)
		}
	}
}

func TestEncodeValidate(t *testing.T) {
	p, err := DecodePatch([]byte(`[{"op": "add", "path": "/extra", "value": 1}]`))
	if err != nil {
		t.Fatal(err)
	}
	_, err = Marshal(sector.New(), EncodePatch(p), EncodeValidate(true))
	if !errors.Is(err, ErrSchema) {
		t.Errorf("want schema error, got %v", err)
	}
}

func TestEncodeColors(t *testing.T) {
	saved := color.NoColor
	defer func() { color.NoColor = saved }()
	s := mustParse(t, "1-2: Refresh, Content={7}")

	color.NoColor = false
	d, err := Marshal(s, EncodeColors(NewColors()))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(d, []byte("\x1b[")) {
		t.Errorf("no escapes in\n%s", d)
	}

	color.NoColor = true
	plain, err := Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	d, err = Marshal(s, EncodeColors(NewColors()))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(d, plain) {
		t.Errorf("colors applied with color off:\n%s", d)
	}
}

func TestFormatFromOpts(t *testing.T) {
	if f := FormatFromOpts(EncodeWire(true), EncodeFormat(format.YAMLFormat)); f != format.YAMLFormat {
		t.Errorf("got %s", f)
	}
}
