package ir

import "errors"

var (
	ErrNoSuchPath = errors.New("no such path")
	ErrNotObject  = errors.New("not an object")
)
