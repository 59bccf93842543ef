package token

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedNumber = errors.New("malformed number")
	ErrUnterminated    = errors.New("unterminated string")
	ErrExpected        = errors.New("expected")
)

// SyntaxErr is an error at a position in the source.
type SyntaxErr struct {
	Err error
	Pos Pos
}

func NewSyntaxErr(e error, p *Pos) *SyntaxErr {
	return &SyntaxErr{Err: e, Pos: *p}
}

func (e *SyntaxErr) Unwrap() error {
	return e.Err
}

func (e *SyntaxErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewSyntaxErr(fmt.Errorf("%w %s", ErrExpected, what), p)
}
