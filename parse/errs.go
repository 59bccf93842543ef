package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse           = errors.New("parse error")
	ErrMalformedHeader = fmt.Errorf("%w: malformed tile header", ErrParse)
	ErrUnknownKeyword  = fmt.Errorf("%w: unknown keyword", ErrParse)
	ErrTooDeep         = fmt.Errorf("%w: content nested too deeply", ErrParse)
)
