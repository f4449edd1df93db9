package errors

import (
	"errors"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrInvalidConfig    = errors.New("invalid configuration")
)
