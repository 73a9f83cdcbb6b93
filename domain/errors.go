package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput       = errors.New("Given Param is not valid")
	ErrInvalidJsonFormat   = errors.New("invalid JSON format")
	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrInvalidAddress      = errors.New("Invalid address")

	// ErrFetchOrParse covers every failure to obtain or interpret the collector list
	ErrFetchOrParse = errors.New("fetch or parse collectors failed")
	// ErrFeedClosed is returned by a feed that was torn down before its load settled
	ErrFeedClosed = errors.New("feed closed")
)

// FetchOrParseError keeps the cause of a failed collector fetch in the chain
// while matching ErrFetchOrParse.
type FetchOrParseError struct {
	Err error
}

func (e *FetchOrParseError) Error() string {
	return fmt.Sprintf("%s: %v", ErrFetchOrParse, e.Err)
}

func (e *FetchOrParseError) Unwrap() error {
	return e.Err
}

func (e *FetchOrParseError) Is(target error) bool {
	return target == ErrFetchOrParse
}
