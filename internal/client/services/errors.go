package services

import "errors"

var (
	ErrInvalidID     = errors.New("travel request id must be positive")
	ErrInvalidStatus = errors.New("status is required")
)
