package convert

import "errors"

var (
	ErrIO        = errors.New("i/o error")
	ErrNotSector = errors.New("not a sector file")
)
