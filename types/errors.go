package types

import "github.com/pkg/errors"

var (
	// ErrPoolExhausted is returned when there is no free slot left.
	ErrPoolExhausted = errors.New("pool exhausted")

	// ErrInvalidIndex is returned when index does not address a slot of the pool.
	ErrInvalidIndex = errors.New("invalid index")

	// ErrDoubleRelease is returned when slot being released is already free.
	ErrDoubleRelease = errors.New("slot already released")

	// ErrEmptyCollection is returned when element is removed from empty list.
	ErrEmptyCollection = errors.New("list is empty")

	// ErrInvalidPosition is returned when position is outside the valid range.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrValueNotFound is returned when target value is absent from the list.
	ErrValueNotFound = errors.New("value not found")
)
