package store

import "errors"

var (
	ErrListNotFound    = errors.New("list not found")
	ErrEmptyList       = errors.New("list is empty")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrSameList        = errors.New("source and destination are the same list")
)
