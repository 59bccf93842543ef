// Package query selects tiles with boolean expressions.
//
// Expressions are written in the expr language (github.com/expr-lang/expr)
// and see one tile at a time:
//
//	x, y                         tile offsets
//	refresh, protection_zone     tile flags
//	no_logout
//	items                        ids of the top level items
//	depth                        deepest item nesting, 0 when empty
//	has(id)                      whether an item with id occurs at any depth
//	count(id)                    how often it occurs
//	getenv(name)                 an environment variable
//
// For example
//
//	refresh && x < 10 && has(2853)
package query

import (
	"errors"
	"fmt"
	"os"

	"github.com/signadot/sector-format/sector"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var ErrQuery = errors.New("query error")

// Env is the environment an expression is evaluated in.
type Env struct {
	X              int   `expr:"x"`
	Y              int   `expr:"y"`
	Refresh        bool  `expr:"refresh"`
	ProtectionZone bool  `expr:"protection_zone"`
	NoLogout       bool  `expr:"no_logout"`
	Items          []int `expr:"items"`
	Depth          int   `expr:"depth"`

	Has   func(id int) bool `expr:"has"`
	Count func(id int) int  `expr:"count"`
}

func NewEnv(t *sector.Tile) Env {
	env := Env{
		X:              t.OffsetX,
		Y:              t.OffsetY,
		Refresh:        flag(t.Refresh),
		ProtectionZone: flag(t.ProtectionZone),
		NoLogout:       flag(t.NoLogout),
		Items:          make([]int, len(t.Content)),
		Depth:          t.Depth(),
		Has:            func(id int) bool { return t.Count(id) != 0 },
		Count:          t.Count,
	}
	for i, it := range t.Content {
		env.Items[i] = it.ID
	}
	return env
}

func flag(b *bool) bool { return b != nil && *b }

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Env(Env{}),
		expr.AsBool(),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

type Filter struct {
	src  string
	prog *vm.Program
}

// Compile compiles src. The expression must evaluate to a bool.
func Compile(src string) (*Filter, error) {
	prog, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return &Filter{src: src, prog: prog}, nil
}

func (f *Filter) String() string { return f.src }

// Match reports whether t satisfies the filter.
func (f *Filter) Match(t *sector.Tile) (bool, error) {
	out, err := expr.Run(f.prog, NewEnv(t))
	if err != nil {
		return false, fmt.Errorf("%w: tile %d-%d: %w", ErrQuery, t.OffsetX, t.OffsetY, err)
	}
	return out.(bool), nil
}

// Apply returns a sector holding the tiles of s that match, in order.
// The tiles are shared with s.
func (f *Filter) Apply(s *sector.Sector) (*sector.Sector, error) {
	res := sector.New()
	for _, t := range s.Tiles {
		ok, err := f.Match(t)
		if err != nil {
			return nil, err
		}
		if ok {
			res.Tiles = append(res.Tiles, t)
		}
	}
	return res, nil
}
