package encode

import (
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/printer"
)

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	StringColor
	NumberColor
	BoolColor
)

// Colors highlights encoded documents for a terminal. Both JSON and YAML
// output are highlighted with the YAML lexer, JSON being a subset.
type Colors struct {
	Map map[ColorAttr]*color.Color
}

func NewColors() *Colors {
	return &Colors{
		Map: map[ColorAttr]*color.Color{
			FieldColor:  color.RGB(128, 168, 196),
			StringColor: color.RGB(8, 196, 16),
			NumberColor: color.RGB(128, 216, 236),
			BoolColor:   color.New(color.FgCyan),
		},
	}
}

func (c *Colors) property(a ColorAttr) printer.PrintFunc {
	col := c.Map[a]
	return func() *printer.Property {
		if col == nil {
			return &printer.Property{}
		}
		// the escape sequences around a marker, empty when color is off
		pre, suf, ok := strings.Cut(col.Sprint("\x00"), "\x00")
		if !ok {
			return &printer.Property{}
		}
		return &printer.Property{Prefix: pre, Suffix: suf}
	}
}

func (c *Colors) highlight(d []byte) []byte {
	if color.NoColor {
		return d
	}
	toks := lexer.Tokenize(string(d))
	if len(toks) == 0 {
		return d
	}
	p := printer.Printer{
		MapKey: c.property(FieldColor),
		String: c.property(StringColor),
		Number: c.property(NumberColor),
		Bool:   c.property(BoolColor),
	}
	res := p.PrintTokens(toks)
	if !strings.HasSuffix(res, "\n") {
		res += "\n"
	}
	return []byte(res)
}
