package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	ErrUnknownOperation = errors.New("unknown operation")
	ErrEmptyAddress     = errors.New("empty address")
)
