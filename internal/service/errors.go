package service

import "errors"

var (
	ErrInvalidRequestBody = errors.New("invalid request body")
	ErrValidation         = errors.New("validation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrStorageUnavailable    = errors.New("storage is unavailable")
)
