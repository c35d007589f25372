package review

import "errors"

var (
	// ErrEmptyStore is returned by operations that need a loaded word list
	ErrEmptyStore = errors.New("no words loaded")

	// ErrIndexOutOfRange is returned when a jump target is not a number in [1, n]
	ErrIndexOutOfRange = errors.New("index out of range")
)
