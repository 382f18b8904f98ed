package usecase

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("resource not found")
	ErrUpstream         = errors.New("upstream request failed")
	ErrRetriesExhausted = errors.New("upstream retries exhausted")
	ErrMissingData      = errors.New("missing data in upstream payload")
	ErrPersistence      = errors.New("persistence operation failed")
)
