package parse

import "errors"

var ErrMalformed = errors.New("malformed document")
