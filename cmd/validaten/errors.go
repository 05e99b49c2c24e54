package main

import "errors"

var (
	ErrInvalidInput     = errors.New("one or more inputs are not valid")
	ErrInvalidOutput    = errors.New("invalid output format")
	ErrInvalidLogFormat = errors.New("invalid log format")
	ErrUnsupportedBrand = errors.New("unsupported card brand")
	ErrInvalidRule      = errors.New("invalid rule argument")
)
